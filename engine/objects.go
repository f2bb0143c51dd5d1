package engine

import (
	"sync"
	"unsafe"

	"go.uber.org/zap"
)

// Event types for heap object lifecycle notifications.
type EventType uint8

const (
	EventCopied EventType = iota
	EventRetained
	EventReleased
	EventFreed
)

func (t EventType) String() string {
	switch t {
	case EventCopied:
		return "copied"
	case EventRetained:
		return "retained"
	case EventReleased:
		return "released"
	case EventFreed:
		return "freed"
	}
	return "unknown"
}

// Event describes a heap object lifecycle transition.
type Event struct {
	Ptr  unsafe.Pointer
	Size uintptr
	Refs uint32
	Type EventType
}

// Observer receives notifications about heap object lifecycle events.
type Observer interface {
	OnObjectEvent(Event)
}

type object struct {
	storage  []byte
	refs     uint32
	anchors  []any
	finalize func(unsafe.Pointer)
}

// ObjectTable owns the engine's heap objects: raw storage, reference
// counts, and per-object finalizers. All operations are internally
// synchronized.
type ObjectTable struct {
	entries   map[unsafe.Pointer]*object
	mu        sync.Mutex
	observers []Observer
	obsMu     sync.RWMutex
}

// NewObjectTable creates an empty object table.
func NewObjectTable() *ObjectTable {
	return &ObjectTable{
		entries: make(map[unsafe.Pointer]*object),
	}
}

// AllocCopy allocates size bytes of heap storage, copies them byte-for-byte
// from src, and registers the result with a reference count of one.
// finalize, if non-nil, runs in place when the count reaches zero, before
// the storage is freed.
func (t *ObjectTable) AllocCopy(src unsafe.Pointer, size uintptr, finalize func(unsafe.Pointer)) unsafe.Pointer {
	storage := make([]byte, size)
	copy(storage, unsafe.Slice((*byte)(src), size))
	base := unsafe.Pointer(&storage[0])

	t.mu.Lock()
	t.entries[base] = &object{
		storage:  storage,
		refs:     1,
		finalize: finalize,
	}
	t.mu.Unlock()

	Logger().Debug("alloc copy",
		zap.Uintptr("size", size),
		zap.Uintptr("ptr", uintptr(base)))

	t.notify(Event{Type: EventCopied, Ptr: base, Size: size, Refs: 1})
	return base
}

// Anchor attaches values to an object entry, keeping them reachable for the
// collector as long as the object lives.
func (t *ObjectTable) Anchor(p unsafe.Pointer, vs ...any) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	o, ok := t.entries[p]
	if !ok {
		return false
	}
	o.anchors = append(o.anchors, vs...)
	return true
}

// Retain increments an object's reference count.
func (t *ObjectTable) Retain(p unsafe.Pointer) bool {
	t.mu.Lock()
	o, ok := t.entries[p]
	if !ok {
		t.mu.Unlock()
		return false
	}
	o.refs++
	refs := o.refs
	size := uintptr(len(o.storage))
	t.mu.Unlock()

	t.notify(Event{Type: EventRetained, Ptr: p, Size: size, Refs: refs})
	return true
}

// Release decrements an object's reference count. At zero the finalizer
// runs in place and the storage is freed.
func (t *ObjectTable) Release(p unsafe.Pointer) bool {
	t.mu.Lock()
	o, ok := t.entries[p]
	if !ok {
		t.mu.Unlock()
		return false
	}
	o.refs--
	refs := o.refs
	size := uintptr(len(o.storage))
	if refs == 0 {
		delete(t.entries, p)
	}
	t.mu.Unlock()

	if refs > 0 {
		t.notify(Event{Type: EventReleased, Ptr: p, Size: size, Refs: refs})
		return true
	}

	if o.finalize != nil {
		o.finalize(p)
	}
	t.notify(Event{Type: EventFreed, Ptr: p, Size: size, Refs: 0})
	// o.storage and o.anchors drop here, freeing the object.
	return true
}

// RefCount returns an object's current reference count.
func (t *ObjectTable) RefCount(p unsafe.Pointer) (uint32, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	o, ok := t.entries[p]
	if !ok {
		return 0, false
	}
	return o.refs, true
}

// Live returns the number of objects currently held by the table.
func (t *ObjectTable) Live() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Subscribe adds an observer for lifecycle events.
func (t *ObjectTable) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *ObjectTable) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

func (t *ObjectTable) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnObjectEvent(e)
	}
}

// The process-wide table backing the package-level helpers. Blocks promoted
// through the engine live here.
var heap = NewObjectTable()

// Heap returns the engine's process-wide object table.
func Heap() *ObjectTable { return heap }

// AllocCopy copies size bytes from src into engine-owned heap storage.
func AllocCopy(src unsafe.Pointer, size uintptr, finalize func(unsafe.Pointer)) unsafe.Pointer {
	return heap.AllocCopy(src, size, finalize)
}

// Anchor attaches values to a heap object's entry.
func Anchor(p unsafe.Pointer, vs ...any) bool { return heap.Anchor(p, vs...) }

// Retain increments a heap object's reference count.
func Retain(p unsafe.Pointer) bool { return heap.Retain(p) }

// Release decrements a heap object's reference count.
func Release(p unsafe.Pointer) bool { return heap.Release(p) }

// RefCount returns a heap object's current reference count.
func RefCount(p unsafe.Pointer) (uint32, bool) { return heap.RefCount(p) }
