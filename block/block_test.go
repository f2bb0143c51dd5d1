package block

import (
	"runtime"
	"strings"
	"testing"
	"unsafe"

	blockruntime "github.com/nativekit/block-runtime"
	"github.com/nativekit/block-runtime/engine"
)

var (
	_ blockruntime.Handle = (*Owned0[int])(nil)
	_ blockruntime.Handle = (*Owned1[int, int])(nil)
	_ blockruntime.Handle = (*Owned12[int, int, int, int, int, int, int, int, int, int, int, int, int])(nil)
)

// ptrObserver records lifecycle events for a single heap object.
type ptrObserver struct {
	ptr   unsafe.Pointer
	freed int
}

func (o *ptrObserver) OnObjectEvent(e engine.Event) {
	if e.Ptr == o.ptr && e.Type == engine.EventFreed {
		o.freed++
	}
}

func TestCallBlock(t *testing.T) {
	b := New0(func() int32 { return 13 })
	if got := b.Call(); got != 13 {
		t.Fatalf("Call() = %d, want 13", got)
	}
}

func TestCallBlockArgs(t *testing.T) {
	b := New2(func(a, b int32) int32 { return a + b })
	if got := b.Call(5, 8); got != 13 {
		t.Fatalf("Call(5, 8) = %d, want 13", got)
	}
}

func TestPromoteAndCall(t *testing.T) {
	b := New1(func(a int32) int32 { return a + 5 })
	if got := b.Call(6); got != 11 {
		t.Fatalf("Call(6) = %d, want 11", got)
	}

	owned := b.Promote()
	defer owned.Release()

	if got := owned.Call(6); got != 11 {
		t.Fatalf("promoted Call(6) = %d, want 11", got)
	}
}

func TestPromoteConsumesOriginal(t *testing.T) {
	b := New0(func() int32 { return 1 })
	owned := b.Promote()
	defer owned.Release()

	if b.fn != nil || b.desc != nil {
		t.Fatal("promoted stack block not cleared")
	}
	if (b.h != Header{}) {
		t.Fatal("promoted stack block header not cleared")
	}
}

func TestPromoteRetagsAsHeapBlock(t *testing.T) {
	b := New0(func() int32 { return 1 })

	owned := b.Promote()
	defer owned.Release()

	hdr := (*Header)(owned.Pointer())
	if hdr.Class() != HeapClass() {
		t.Fatalf("promoted block tagged %q, want %q",
			hdr.Class().Name(), HeapClass().Name())
	}
	if hdr.Flags() != FlagHasCopyDispose {
		t.Fatal("promotion changed the flags word")
	}
}

func TestPromoteCapturedString(t *testing.T) {
	s := strings.Repeat("Hello!", 4)
	want := len(s)

	b := New0(func() int { return len(s) })
	if got := b.Call(); got != want {
		t.Fatalf("Call() = %d, want %d", got, want)
	}

	owned := b.Promote()

	obs := &ptrObserver{ptr: owned.Pointer()}
	engine.Heap().Subscribe(obs)
	defer engine.Heap().Unsubscribe(obs)

	// Force collection between the move and the call to catch any captured
	// state the promotion failed to keep reachable.
	runtime.GC()

	if got := owned.Call(); got != want {
		t.Fatalf("promoted Call() = %d, want %d", got, want)
	}
	if obs.freed != 0 {
		t.Fatal("block freed while a handle was live")
	}

	owned.Release()
	if obs.freed != 1 {
		t.Fatalf("block freed %d times, want exactly once", obs.freed)
	}
}

func TestDistinctTrampolinesPerArity(t *testing.T) {
	b0 := New0(func() int32 { return 7 })
	b1 := New1(func(a int32) int32 { return a })
	b2 := New2(func(a, b int32) int32 { return a - b })

	if b0.h.invoke == b1.h.invoke || b1.h.invoke == b2.h.invoke || b0.h.invoke == b2.h.invoke {
		t.Fatal("different arities share a trampoline")
	}

	if got := b0.Call(); got != 7 {
		t.Fatalf("arity 0 Call() = %d, want 7", got)
	}
	if got := b1.Call(3); got != 3 {
		t.Fatalf("arity 1 Call(3) = %d, want 3", got)
	}
	if got := b2.Call(9, 4); got != 5 {
		t.Fatalf("arity 2 Call(9, 4) = %d, want 5", got)
	}
}

func TestDescriptorSizeSurvivesPromotion(t *testing.T) {
	b := New1(func(a int64) int64 { return a * 2 })
	want := unsafe.Sizeof(*b)

	owned := b.Promote()
	defer owned.Release()

	hp := (*stackPrefix)(owned.Pointer())
	if hp.desc.Size() != want {
		t.Fatalf("heap copy descriptor size %d, want %d", hp.desc.Size(), want)
	}
}

func TestRetainRelease(t *testing.T) {
	b := New1(func(a int32) int32 { return a + 1 })
	owned := b.Promote()
	p := owned.Pointer()

	second := owned.Retain()
	if refs, ok := engine.RefCount(p); !ok || refs != 2 {
		t.Fatalf("refcount %d (ok=%v), want 2", refs, ok)
	}

	owned.Release()
	if got := second.Call(41); got != 42 {
		t.Fatalf("Call(41) after partial release = %d, want 42", got)
	}

	second.Release()
	if _, ok := engine.RefCount(p); ok {
		t.Fatal("block still registered after final release")
	}
}

func TestAdoptForeignBlock(t *testing.T) {
	b := New2(func(a, b int64) int64 { return a * b })
	owned := b.Promote()

	// Hand the raw pointer across the bridge and adopt it on the far side.
	adopted := Adopt2[int64, int64, int64](owned.Pointer())
	defer adopted.Release()

	if got := adopted.Call(6, 7); got != 42 {
		t.Fatalf("adopted Call(6, 7) = %d, want 42", got)
	}
}

func TestCopyingPromotedBlockRetains(t *testing.T) {
	b := New0(func() int32 { return 3 })
	owned := b.Promote()
	p := owned.Pointer()

	ret, err := engine.Send(p, CopySelector())
	if err != nil {
		t.Fatalf("copy on heap block: %v", err)
	}
	if ret.(unsafe.Pointer) != p {
		t.Fatal("copying a heap block must return the same object")
	}
	if refs, ok := engine.RefCount(p); !ok || refs != 2 {
		t.Fatalf("refcount %d (ok=%v), want 2 after copy", refs, ok)
	}

	Adopt0[int32](p).Release()
	owned.Release()
}

func TestSignature(t *testing.T) {
	b := New2(func(a int32, b float64) int32 { return a })
	if got := b.Signature().String(); got != "i@?id" {
		t.Fatalf("Signature() = %q, want %q", got, "i@?id")
	}

	owned := b.Promote()
	defer owned.Release()
	if got := owned.Signature().String(); got != "i@?id" {
		t.Fatalf("promoted Signature() = %q, want %q", got, "i@?id")
	}
}

func TestHigherArities(t *testing.T) {
	b := New5(func(a, b, c, d, e int) int { return a + b + c + d + e })
	if got := b.Call(1, 2, 3, 4, 5); got != 15 {
		t.Fatalf("Call = %d, want 15", got)
	}

	owned := b.Promote()
	defer owned.Release()
	if got := owned.Call(1, 2, 3, 4, 5); got != 15 {
		t.Fatalf("promoted Call = %d, want 15", got)
	}

	b12 := New12(func(a, b, c, d, e, f, g, h, i, j, k, l int) int {
		return a + b + c + d + e + f + g + h + i + j + k + l
	})
	if got := b12.Call(1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1); got != 12 {
		t.Fatalf("arity 12 Call = %d, want 12", got)
	}
}
