package block

import (
	"testing"
	"unsafe"
)

const ptrSize = unsafe.Sizeof(uintptr(0))

func TestHeaderLayout(t *testing.T) {
	var h Header

	if off := unsafe.Offsetof(h.isa); off != 0 {
		t.Fatalf("isa at offset %d, want 0", off)
	}
	if off := unsafe.Offsetof(h.flags); off != ptrSize {
		t.Fatalf("flags at offset %d, want %d", off, ptrSize)
	}
	if off := unsafe.Offsetof(h.reserved); off != ptrSize+4 {
		t.Fatalf("reserved at offset %d, want %d", off, ptrSize+4)
	}
	if off := unsafe.Offsetof(h.invoke); off != ptrSize+8 {
		t.Fatalf("invoke at offset %d, want %d", off, ptrSize+8)
	}
	if size := unsafe.Sizeof(h); size != 2*ptrSize+8 {
		t.Fatalf("Header size %d, want %d", size, 2*ptrSize+8)
	}
}

func TestDescriptorLayout(t *testing.T) {
	var d Descriptor

	if off := unsafe.Offsetof(d.reserved); off != 0 {
		t.Fatalf("reserved at offset %d, want 0", off)
	}
	if off := unsafe.Offsetof(d.size); off != ptrSize {
		t.Fatalf("size at offset %d, want %d", off, ptrSize)
	}
	if off := unsafe.Offsetof(d.copy); off != 2*ptrSize {
		t.Fatalf("copy at offset %d, want %d", off, 2*ptrSize)
	}
	if off := unsafe.Offsetof(d.dispose); off != 3*ptrSize {
		t.Fatalf("dispose at offset %d, want %d", off, 3*ptrSize)
	}
	if size := unsafe.Sizeof(d); size != 4*ptrSize {
		t.Fatalf("Descriptor size %d, want %d", size, 4*ptrSize)
	}
}

// Every stack block must start with the header at offset 0 and the
// descriptor pointer immediately after it; the engine copy path reads both
// through the arity-independent prefix.
func TestStackPrefixLayout(t *testing.T) {
	headerSize := unsafe.Sizeof(Header{})

	var p stackPrefix
	if off := unsafe.Offsetof(p.desc); off != headerSize {
		t.Fatalf("prefix desc at offset %d, want %d", off, headerSize)
	}

	var s0 Stack0[int32]
	if off := unsafe.Offsetof(s0.Block0); off != 0 {
		t.Fatalf("Stack0 header at offset %d, want 0", off)
	}
	if off := unsafe.Offsetof(s0.desc); off != headerSize {
		t.Fatalf("Stack0 desc at offset %d, want %d", off, headerSize)
	}

	var s1 Stack1[int32, int32]
	if off := unsafe.Offsetof(s1.Block1); off != 0 {
		t.Fatalf("Stack1 header at offset %d, want 0", off)
	}
	if off := unsafe.Offsetof(s1.desc); off != headerSize {
		t.Fatalf("Stack1 desc at offset %d, want %d", off, headerSize)
	}

	var s12 Stack12[int, int, int, int, int, int, int, int, int, int, int, int, int]
	if off := unsafe.Offsetof(s12.desc); off != headerSize {
		t.Fatalf("Stack12 desc at offset %d, want %d", off, headerSize)
	}
}

func TestDescriptorRecordsExactInstanceSize(t *testing.T) {
	b0 := New0(func() int32 { return 0 })
	if b0.desc.Size() != unsafe.Sizeof(*b0) {
		t.Fatalf("descriptor size %d, want %d", b0.desc.Size(), unsafe.Sizeof(*b0))
	}

	b3 := New3(func(a int32, b float64, c string) int { return 0 })
	if b3.desc.Size() != unsafe.Sizeof(*b3) {
		t.Fatalf("descriptor size %d, want %d", b3.desc.Size(), unsafe.Sizeof(*b3))
	}
}

func TestNewHeaderFields(t *testing.T) {
	b := New1(func(a int32) int32 { return a })

	if b.h.Class() != StackClass() {
		t.Fatal("new block not tagged with the stack class")
	}
	if b.h.Flags() != FlagHasCopyDispose {
		t.Fatalf("flags %#x, want %#x", b.h.Flags(), FlagHasCopyDispose)
	}
	if b.h.reserved != 0 {
		t.Fatalf("reserved %d, want 0", b.h.reserved)
	}
	if b.h.invoke == nil {
		t.Fatal("invoke pointer not installed")
	}
}
