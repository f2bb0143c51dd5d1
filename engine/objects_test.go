package engine

import (
	"testing"
	"unsafe"
)

type recordingObserver struct {
	events []Event
}

func (o *recordingObserver) OnObjectEvent(e Event) {
	o.events = append(o.events, e)
}

func TestObjectTableAllocCopy(t *testing.T) {
	tab := NewObjectTable()

	src := [4]uint64{0xdeadbeef, 42, 0, ^uint64(0)}
	p := tab.AllocCopy(unsafe.Pointer(&src[0]), unsafe.Sizeof(src), nil)
	if p == nil {
		t.Fatal("AllocCopy returned nil")
	}

	got := *(*[4]uint64)(p)
	if got != src {
		t.Fatalf("copied %x, want %x", got, src)
	}
	if tab.Live() != 1 {
		t.Fatalf("Live() = %d, want 1", tab.Live())
	}
	if refs, ok := tab.RefCount(p); !ok || refs != 1 {
		t.Fatalf("refcount %d (ok=%v), want 1", refs, ok)
	}
}

func TestObjectTableRetainRelease(t *testing.T) {
	tab := NewObjectTable()

	var finalized int
	src := uint64(7)
	p := tab.AllocCopy(unsafe.Pointer(&src), unsafe.Sizeof(src), func(unsafe.Pointer) {
		finalized++
	})

	if !tab.Retain(p) {
		t.Fatal("Retain failed")
	}
	if !tab.Release(p) {
		t.Fatal("Release failed")
	}
	if finalized != 0 {
		t.Fatal("finalizer ran while references remained")
	}

	if !tab.Release(p) {
		t.Fatal("final Release failed")
	}
	if finalized != 1 {
		t.Fatalf("finalizer ran %d times, want 1", finalized)
	}
	if tab.Live() != 0 {
		t.Fatalf("Live() = %d after free, want 0", tab.Live())
	}

	// The freed object is gone from the table.
	if tab.Retain(p) {
		t.Fatal("Retain succeeded on a freed object")
	}
	if tab.Release(p) {
		t.Fatal("Release succeeded on a freed object")
	}
}

func TestObjectTableAnchor(t *testing.T) {
	tab := NewObjectTable()

	src := uint64(1)
	p := tab.AllocCopy(unsafe.Pointer(&src), unsafe.Sizeof(src), nil)
	if !tab.Anchor(p, "kept") {
		t.Fatal("Anchor failed on a live object")
	}
	if tab.Anchor(unsafe.Pointer(&src)) {
		t.Fatal("Anchor succeeded on an unregistered pointer")
	}
	tab.Release(p)
}

func TestObjectTableObserver(t *testing.T) {
	tab := NewObjectTable()
	obs := &recordingObserver{}
	tab.Subscribe(obs)

	src := uint64(9)
	p := tab.AllocCopy(unsafe.Pointer(&src), unsafe.Sizeof(src), nil)
	tab.Retain(p)
	tab.Release(p)
	tab.Release(p)

	want := []EventType{EventCopied, EventRetained, EventReleased, EventFreed}
	if len(obs.events) != len(want) {
		t.Fatalf("got %d events, want %d", len(obs.events), len(want))
	}
	for i, e := range obs.events {
		if e.Type != want[i] {
			t.Fatalf("event %d = %v, want %v", i, e.Type, want[i])
		}
		if e.Ptr != p {
			t.Fatalf("event %d for %p, want %p", i, e.Ptr, p)
		}
	}

	tab.Unsubscribe(obs)
	q := tab.AllocCopy(unsafe.Pointer(&src), unsafe.Sizeof(src), nil)
	tab.Release(q)
	if len(obs.events) != len(want) {
		t.Fatal("observer still notified after Unsubscribe")
	}
}

func TestHeapIsShared(t *testing.T) {
	if Heap() == nil {
		t.Fatal("no process-wide table")
	}
	src := uint64(3)
	p := AllocCopy(unsafe.Pointer(&src), unsafe.Sizeof(src), nil)
	if refs, ok := RefCount(p); !ok || refs != 1 {
		t.Fatalf("refcount %d (ok=%v), want 1", refs, ok)
	}
	if !Anchor(p, "x") {
		t.Fatal("Anchor via package helper failed")
	}
	if !Retain(p) || !Release(p) || !Release(p) {
		t.Fatal("package helpers failed")
	}
}
