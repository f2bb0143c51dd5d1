package engine

import (
	"sort"
	"sync"
	"unsafe"

	"github.com/nativekit/block-runtime/encoding"
	"github.com/nativekit/block-runtime/errors"
)

// IMP is a method implementation. self is the receiving object, cmd the
// selector the message was sent with.
type IMP func(self unsafe.Pointer, cmd Sel, args []any) any

// Method is a class method: selector, implementation, and declared type
// encoding. The first two declared arguments are the implicit receiver and
// selector.
type Method struct {
	sel Sel
	imp IMP
	sig encoding.Signature
}

// Sel returns the method's selector.
func (m *Method) Sel() Sel { return m.sel }

// Signature returns the method's full declared signature.
func (m *Method) Signature() encoding.Signature { return m.sig }

// ReturnType returns the method's declared return encoding.
func (m *Method) ReturnType() encoding.Encoding { return m.sig.Ret }

// NumArguments returns the declared argument count, including the implicit
// receiver and selector arguments.
func (m *Method) NumArguments() int { return m.sig.NumArgs() }

// ArgumentType returns the declared encoding of the argument at index i.
func (m *Method) ArgumentType(i int) (encoding.Encoding, bool) {
	return m.sig.Arg(i)
}

// Class is a runtime class: a name and a method table. Objects reference
// their class through the isa word at offset 0.
type Class struct {
	name    string
	mu      sync.RWMutex
	methods map[Sel]*Method
}

// NewClass creates a class with an empty method table. The class is not
// visible to LookupClass until registered.
func NewClass(name string) *Class {
	return &Class{
		name:    name,
		methods: make(map[Sel]*Method),
	}
}

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// AddMethod installs an implementation for sel with the given declared
// signature. Installing a selector twice is a registration error.
func (c *Class) AddMethod(sel Sel, sig encoding.Signature, imp IMP) error {
	if sel == 0 {
		return errors.InvalidInput(errors.PhaseRegister, "invalid selector")
	}
	if imp == nil {
		return errors.InvalidInput(errors.PhaseRegister, "nil implementation")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.methods[sel]; ok {
		return errors.Duplicate("method", sel.Name())
	}
	c.methods[sel] = &Method{sel: sel, imp: imp, sig: sig}
	return nil
}

// InstanceMethod looks up the method for sel.
func (c *Class) InstanceMethod(sel Sel) (*Method, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.methods[sel]
	return m, ok
}

// Selectors returns the class's selectors sorted by name.
func (c *Class) Selectors() []Sel {
	c.mu.RLock()
	sels := make([]Sel, 0, len(c.methods))
	for s := range c.methods {
		sels = append(sels, s)
	}
	c.mu.RUnlock()

	sort.Slice(sels, func(i, j int) bool { return sels[i].Name() < sels[j].Name() })
	return sels
}

var classTable = struct {
	mu      sync.RWMutex
	byName  map[string]*Class
	ordered []string
}{
	byName: make(map[string]*Class),
}

// RegisterClass makes a class visible to LookupClass. Registering a name
// twice is a registration error.
func RegisterClass(c *Class) error {
	if c == nil || c.name == "" {
		return errors.InvalidInput(errors.PhaseRegister, "class must have a name")
	}

	classTable.mu.Lock()
	defer classTable.mu.Unlock()

	if _, ok := classTable.byName[c.name]; ok {
		return errors.Duplicate("class", c.name)
	}
	classTable.byName[c.name] = c
	classTable.ordered = append(classTable.ordered, c.name)
	return nil
}

// LookupClass returns the registered class with the given name.
func LookupClass(name string) (*Class, bool) {
	classTable.mu.RLock()
	defer classTable.mu.RUnlock()
	c, ok := classTable.byName[name]
	return c, ok
}

// ClassNames returns registered class names in registration order.
func ClassNames() []string {
	classTable.mu.RLock()
	defer classTable.mu.RUnlock()
	return append([]string(nil), classTable.ordered...)
}
