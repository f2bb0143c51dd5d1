// Package blockruntime provides a pure-Go bridge between Go closures and a
// native-closure (block) calling convention.
//
// A block is a heap- or stack-resident object whose first words form a fixed
// ABI header: a class pointer, a flags word, a reserved word, and an untyped
// invocation function pointer whose first parameter is the block itself.
// Anything holding a pointer to a block can call it through that header
// without knowing the type of the captured state.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	block-runtime/       Root package with the Handle interface
//	├── block/           Block header, descriptor, per-arity wrappers,
//	│                    promotion to engine-owned heap blocks
//	├── engine/          Embedded runtime: selector interning, classes and
//	│                    method tables, message dispatch, reference-counted
//	│                    heap object table, signature verification
//	├── encoding/        Type-encoding tokens and call signatures
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Wrap a Go closure, call it, promote it to the engine heap, and release it:
//
//	blk := block.New1(func(a int32) int32 { return a + 5 })
//	sum := blk.Call(6) // 11
//
//	owned := blk.Promote() // blk is consumed; use owned from here on
//	defer owned.Release()
//
//	sum = owned.Call(6) // still 11
//
// # Ownership Model
//
// A freshly wrapped block is stack-resident: it has exactly one logical
// owner and must not be shared or copied. Promote consumes it, moving the
// block byte-for-byte into engine-managed storage, and returns an owning,
// reference-counted handle. The original binding is inert after Promote.
// Handles obtained from the engine side are adopted with block.AdoptN.
//
// # Thread Safety
//
// The engine's selector, class, and object tables are internally
// synchronized. A stack-resident block belongs to a single goroutine until
// promoted; a promoted handle may be shared insofar as its captured state
// tolerates it.
package blockruntime
