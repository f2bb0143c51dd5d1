package block

import (
	"unsafe"

	"github.com/nativekit/block-runtime/encoding"
	"github.com/nativekit/block-runtime/engine"
)

// Flags is the header behavior bitfield.
type Flags int32

// FlagHasCopyDispose marks a block whose descriptor carries copy and
// dispose helpers. Set on every block this package constructs.
const FlagHasCopyDispose Flags = 1 << 25

// Header is the ABI-fixed prefix of every block. Field order and sizes are
// a wire-format contract with the engine; they must not be reordered or
// repacked.
type Header struct {
	isa      unsafe.Pointer // type tag, offset 0
	flags    Flags
	reserved int32 // engine use only, zero
	invoke   unsafe.Pointer // untyped entry point, first parameter = self
}

// Class returns the block's type tag.
func (h *Header) Class() *engine.Class {
	return (*engine.Class)(h.isa)
}

// Flags returns the block's behavior bits.
func (h *Header) Flags() Flags {
	return h.flags
}

// Descriptor is the per-block record the engine consults when it takes or
// releases ownership. Exactly one exists per block instance; it is
// heap-allocated and referenced by pointer so its address is stable across
// the block's stack-to-heap move.
type Descriptor struct {
	reserved uintptr
	size     uintptr        // exact byte size of the owning block instance
	copy     unsafe.Pointer // func(dst, src unsafe.Pointer)
	dispose  unsafe.Pointer // func(p unsafe.Pointer)
}

// Size returns the byte count the engine copies when promoting the block.
func (d *Descriptor) Size() uintptr {
	return d.size
}

// stackPrefix is the arity-independent layout every stack block starts
// with. The copy path reaches the descriptor through it.
type stackPrefix struct {
	h    Header
	desc *Descriptor
}

// funcWord erases a function value to the single pointer word stored in
// headers and descriptors. loadFunc is its inverse. Together they are the
// one place typed functions cross to and from untyped words; every other
// path in the package is fully typed.
func funcWord[F any](f F) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&f))
}

func loadFunc[F any](slot *unsafe.Pointer) F {
	return *(*F)(unsafe.Pointer(slot))
}

var (
	stackClass *engine.Class
	heapClass  *engine.Class
	selCopy    engine.Sel
	selRetain  engine.Sel
	selRelease engine.Sel
)

func init() {
	selCopy = engine.RegisterSelector("copy")
	selRetain = engine.RegisterSelector("retain")
	selRelease = engine.RegisterSelector("release")

	objSig := encoding.MethodSig(encoding.Object)
	voidSig := encoding.MethodSig(encoding.Void)

	stackClass = engine.NewClass("__BlockStack")
	mustAdd(stackClass, selCopy, objSig, copyStackIMP)

	heapClass = engine.NewClass("__BlockHeap")
	mustAdd(heapClass, selCopy, objSig, copyHeapIMP)
	mustAdd(heapClass, selRetain, objSig, retainIMP)
	mustAdd(heapClass, selRelease, voidSig, releaseIMP)

	mustRegister(stackClass)
	mustRegister(heapClass)
}

func mustAdd(c *engine.Class, sel engine.Sel, sig encoding.Signature, imp engine.IMP) {
	if err := c.AddMethod(sel, sig, imp); err != nil {
		panic(err)
	}
}

func mustRegister(c *engine.Class) {
	if err := engine.RegisterClass(c); err != nil {
		panic(err)
	}
}

// StackClass returns the type tag of unpromoted blocks.
func StackClass() *engine.Class { return stackClass }

// HeapClass returns the type tag of promoted blocks.
func HeapClass() *engine.Class { return heapClass }

// CopySelector returns the interned selector for the engine copy primitive.
func CopySelector() engine.Sel { return selCopy }

// copyStackIMP implements the engine copy primitive for stack blocks:
// allocate descriptor-sized heap storage, move the block byte-for-byte,
// retag the copy as heap-resident, then run the descriptor's copy helper
// on the new location.
func copyStackIMP(self unsafe.Pointer, _ engine.Sel, _ []any) any {
	d := (*stackPrefix)(self).desc
	dst := engine.AllocCopy(self, d.size, disposeHelper(d))
	(*stackPrefix)(dst).h.isa = unsafe.Pointer(heapClass)
	// The raw copy left the heap block's descriptor word pointing at d
	// from untraced storage; keep d reachable for the block's lifetime.
	engine.Anchor(dst, d)
	if d.copy != nil {
		loadFunc[func(dst, src unsafe.Pointer)](&d.copy)(dst, self)
	}
	return dst
}

// Copying an already-promoted block is a retain.
func copyHeapIMP(self unsafe.Pointer, _ engine.Sel, _ []any) any {
	engine.Retain(self)
	return self
}

func retainIMP(self unsafe.Pointer, _ engine.Sel, _ []any) any {
	engine.Retain(self)
	return self
}

func releaseIMP(self unsafe.Pointer, _ engine.Sel, _ []any) any {
	engine.Release(self)
	return nil
}

func disposeHelper(d *Descriptor) func(unsafe.Pointer) {
	if d.dispose == nil {
		return nil
	}
	return loadFunc[func(unsafe.Pointer)](&d.dispose)
}

// promote sends copy to a stack block and returns the heap copy's address.
// The caller zeroes its own binding afterwards; ownership of the captured
// state has transferred to the heap copy.
func promote(self unsafe.Pointer) unsafe.Pointer {
	ret, err := engine.Send(self, selCopy)
	if err != nil {
		// The stack block class always implements copy.
		panic(err)
	}
	return ret.(unsafe.Pointer)
}
