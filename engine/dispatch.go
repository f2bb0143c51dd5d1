package engine

import (
	"unsafe"

	"go.uber.org/zap"

	"github.com/nativekit/block-runtime/errors"
)

// Send delivers a message to an object. The object's first word must be its
// isa class pointer; the method registered for sel on that class is invoked
// with the object, the selector, and the remaining arguments.
func Send(self unsafe.Pointer, sel Sel, args ...any) (any, error) {
	if self == nil {
		return nil, errors.NilReceiver(sel.Name())
	}

	cls := (*Class)(*(*unsafe.Pointer)(self))
	if cls == nil {
		return nil, errors.NilReceiver(sel.Name())
	}

	m, ok := cls.InstanceMethod(sel)
	if !ok {
		return nil, errors.UnknownSelector(errors.PhaseDispatch, cls.Name(), sel.Name())
	}

	Logger().Debug("send",
		zap.String("class", cls.Name()),
		zap.String("selector", sel.Name()),
		zap.Int("args", len(args)))

	return m.imp(self, sel, args), nil
}

// ClassOf reads an object's isa word.
func ClassOf(self unsafe.Pointer) *Class {
	if self == nil {
		return nil
	}
	return (*Class)(*(*unsafe.Pointer)(self))
}
