package engine

import (
	"github.com/nativekit/block-runtime/encoding"
	"github.com/nativekit/block-runtime/errors"
)

// VerifySignature checks that a call with the given result and argument
// encodings matches the method registered for sel on cls. sig carries the
// caller-side encodings only; the implicit receiver and selector arguments
// are accounted for here. The first mismatch found is reported.
func VerifySignature(cls *Class, sel Sel, sig encoding.Signature) error {
	if cls == nil {
		return errors.InvalidInput(errors.PhaseVerify, "nil class")
	}

	m, ok := cls.InstanceMethod(sel)
	if !ok {
		return errors.MethodNotFound(cls.Name(), sel.Name())
	}

	if m.ReturnType() != sig.Ret {
		return errors.ReturnMismatch(cls.Name(), sel.Name(),
			m.ReturnType().String(), sig.Ret.String())
	}

	// The method's declared arguments include self and _cmd at 0 and 1.
	count := 2 + sig.NumArgs()
	if count != m.NumArguments() {
		return errors.ArgumentCount(cls.Name(), sel.Name(), m.NumArguments(), count)
	}

	for i, actual := range sig.Args {
		idx := i + 2
		expected, ok := m.ArgumentType(idx)
		if !ok || expected != actual {
			exp := "none"
			if ok {
				exp = expected.String()
			}
			return errors.ArgumentType(cls.Name(), sel.Name(), idx, exp, actual.String())
		}
	}

	return nil
}
