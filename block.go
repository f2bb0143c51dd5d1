package blockruntime

import "unsafe"

// Handle is an owning reference to an engine-managed block. Every owned
// block type in the block package satisfies it.
type Handle interface {
	// Pointer returns the block's address for handoff across an FFI-style
	// boundary. The returned pointer stays valid until Release.
	Pointer() unsafe.Pointer

	// Release drops this handle's ownership. When the last handle to a
	// block is released, the engine disposes the captured state and frees
	// the block's storage.
	Release()
}
