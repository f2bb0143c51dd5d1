package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseRegister Phase = "register" // class/selector/method registration
	PhaseDispatch Phase = "dispatch" // message sends
	PhaseVerify   Phase = "verify"   // signature verification
	PhaseCopy     Phase = "copy"     // block promotion and release
)

// Kind categorizes the error
type Kind string

const (
	KindUnknownSelector Kind = "unknown_selector"
	KindMethodNotFound  Kind = "method_not_found"
	KindReturnMismatch  Kind = "return_mismatch"
	KindArgumentCount   Kind = "argument_count"
	KindArgumentType    Kind = "argument_type"
	KindNilReceiver     Kind = "nil_receiver"
	KindDuplicate       Kind = "duplicate"
	KindInvalidInput    Kind = "invalid_input"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause    error
	Phase    Phase
	Kind     Kind
	Class    string
	Selector string
	Expected string // rendered type encoding
	Actual   string // rendered type encoding
	ArgIndex int    // argument index for per-argument mismatches, 0 when unset
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Class != "" || e.Selector != "" {
		b.WriteString(" for ")
		if e.Selector != "" {
			b.WriteByte('-')
			b.WriteString(e.Selector)
		}
		if e.Class != "" {
			if e.Selector != "" {
				b.WriteString(" on ")
			}
			b.WriteString(e.Class)
		}
	}

	if e.ArgIndex > 0 {
		fmt.Fprintf(&b, " at argument index %d", e.ArgIndex)
	}

	if e.Expected != "" || e.Actual != "" {
		b.WriteString(": expected ")
		b.WriteString(e.Expected)
		b.WriteString(", got ")
		b.WriteString(e.Actual)
	}

	if e.Detail != "" {
		if e.Expected != "" || e.Actual != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Class sets the class name
func (b *Builder) Class(name string) *Builder {
	b.err.Class = name
	return b
}

// Selector sets the selector name
func (b *Builder) Selector(name string) *Builder {
	b.err.Selector = name
	return b
}

// Expected sets the expected type encoding
func (b *Builder) Expected(enc string) *Builder {
	b.err.Expected = enc
	return b
}

// Actual sets the actual type encoding
func (b *Builder) Actual(enc string) *Builder {
	b.err.Actual = enc
	return b
}

// ArgIndex sets the offending argument index
func (b *Builder) ArgIndex(i int) *Builder {
	b.err.ArgIndex = i
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnknownSelector creates an error for a selector no class method matches
func UnknownSelector(phase Phase, class, selector string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindUnknownSelector,
		Class:    class,
		Selector: selector,
		Detail:   "no method registered for selector",
	}
}

// NilReceiver creates an error for a message sent to a nil object
func NilReceiver(selector string) *Error {
	return &Error{
		Phase:    PhaseDispatch,
		Kind:     KindNilReceiver,
		Selector: selector,
		Detail:   "message sent to nil receiver",
	}
}

// MethodNotFound creates a verification error for a missing method
func MethodNotFound(class, selector string) *Error {
	return &Error{
		Phase:    PhaseVerify,
		Kind:     KindMethodNotFound,
		Class:    class,
		Selector: selector,
	}
}

// ReturnMismatch creates a verification error for a return encoding mismatch
func ReturnMismatch(class, selector, expected, actual string) *Error {
	return &Error{
		Phase:    PhaseVerify,
		Kind:     KindReturnMismatch,
		Class:    class,
		Selector: selector,
		Expected: expected,
		Actual:   actual,
	}
}

// ArgumentCount creates a verification error for an argument count mismatch
func ArgumentCount(class, selector string, expected, actual int) *Error {
	return &Error{
		Phase:    PhaseVerify,
		Kind:     KindArgumentCount,
		Class:    class,
		Selector: selector,
		Detail:   fmt.Sprintf("method accepts %d arguments, but %d were given", expected, actual),
	}
}

// ArgumentType creates a verification error for a per-argument encoding mismatch
func ArgumentType(class, selector string, index int, expected, actual string) *Error {
	return &Error{
		Phase:    PhaseVerify,
		Kind:     KindArgumentType,
		Class:    class,
		Selector: selector,
		ArgIndex: index,
		Expected: expected,
		Actual:   actual,
	}
}

// Duplicate creates a registration error for a name already taken
func Duplicate(what, name string) *Error {
	return &Error{
		Phase:  PhaseRegister,
		Kind:   KindDuplicate,
		Detail: fmt.Sprintf("%s %q already registered", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}
