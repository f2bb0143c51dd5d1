package encoding

import "strings"

// Signature is the declared encoding of a callable: a result token followed
// by one token per argument. Method signatures include the implicit receiver
// and selector arguments at indices 0 and 1.
type Signature struct {
	Ret  Encoding
	Args []Encoding
}

// NumArgs returns the number of declared arguments.
func (s Signature) NumArgs() int {
	return len(s.Args)
}

// Arg returns the encoding of the argument at index i.
func (s Signature) Arg(i int) (Encoding, bool) {
	if i < 0 || i >= len(s.Args) {
		return Encoding{}, false
	}
	return s.Args[i], true
}

// Equal reports whether two signatures declare the same encoding.
func (s Signature) Equal(o Signature) bool {
	if s.Ret != o.Ret || len(s.Args) != len(o.Args) {
		return false
	}
	for i := range s.Args {
		if s.Args[i] != o.Args[i] {
			return false
		}
	}
	return true
}

// String renders the signature as the result code followed by argument codes.
func (s Signature) String() string {
	var b strings.Builder
	b.WriteString(s.Ret.String())
	for _, a := range s.Args {
		b.WriteString(a.String())
	}
	return b.String()
}

// MethodSig builds a method signature: result, implicit receiver ("@") and
// selector (":") arguments, then the declared argument encodings.
func MethodSig(ret Encoding, args ...Encoding) Signature {
	full := make([]Encoding, 0, len(args)+2)
	full = append(full, Object, Sel)
	full = append(full, args...)
	return Signature{Ret: ret, Args: full}
}
