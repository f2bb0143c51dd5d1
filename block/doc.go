// Package block implements the native-closure bridge: wrapping Go closures
// as engine-callable blocks, invoking them through the fixed ABI header,
// and transferring their ownership to the engine heap.
//
// # Layout
//
// Every block begins with a Header whose field order is a contract with the
// engine: type tag, flags, reserved word, invocation pointer. A stack block
// follows the header with its Descriptor pointer and the captured Go
// closure. The Descriptor records the instance's exact byte size and the
// copy/dispose helpers the engine runs when it takes or releases ownership.
//
// # Arity families
//
// One family exists per arity from 0 through 12, generated by
// internal/genarity. For arity n:
//
//	NewN(fn)      wraps a Go closure as a stack-resident StackN
//	StackN.Call   invokes the closure through the header
//	StackN.Promote consumes the block, returning an OwnedN heap handle
//	OwnedN        owning handle: Call, Retain, Release, Pointer
//	AdoptN        adopts a promoted block received from the engine side
//
// Each constructor installs the arity-matched trampoline as the header's
// invocation pointer, so an n-argument block can only ever dispatch into an
// n-argument closure; no runtime checking is needed or performed.
//
// # One-shot promotion
//
// Promote moves the block byte-for-byte into engine-owned storage via the
// engine's copy primitive and leaves the original binding inert. Using a
// block after promoting it is a contract violation, as is promoting twice;
// the moved-from value is zeroed so a violation fails fast rather than
// corrupting the heap copy.
package block
