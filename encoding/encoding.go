package encoding

import (
	"reflect"
	"strings"
)

// Encoding is an opaque, comparable token for a type's runtime signature.
// The zero value renders as the unknown code "?".
type Encoding struct {
	code string
}

// Primitive type codes.
var (
	Char      = Encoding{"c"}
	Int       = Encoding{"i"}
	Short     = Encoding{"s"}
	Long      = Encoding{"l"}
	LongLong  = Encoding{"q"}
	UChar     = Encoding{"C"}
	UInt      = Encoding{"I"}
	UShort    = Encoding{"S"}
	ULong     = Encoding{"L"}
	ULongLong = Encoding{"Q"}
	Float     = Encoding{"f"}
	Double    = Encoding{"d"}
	Bool      = Encoding{"B"}
	Void      = Encoding{"v"}
	CString   = Encoding{"*"}
	Object    = Encoding{"@"}
	Class     = Encoding{"#"}
	Sel       = Encoding{":"}
	Block     = Encoding{"@?"}
	Unknown   = Encoding{"?"}
)

// Pointer returns the encoding of a pointer to the given encoding.
func Pointer(to Encoding) Encoding {
	return Encoding{"^" + to.String()}
}

// Struct returns the encoding of a named struct with the given field encodings.
func Struct(name string, fields ...Encoding) Encoding {
	var b strings.Builder
	b.WriteByte('{')
	b.WriteString(name)
	b.WriteByte('=')
	for _, f := range fields {
		b.WriteString(f.String())
	}
	b.WriteByte('}')
	return Encoding{b.String()}
}

// String renders the type code.
func (e Encoding) String() string {
	if e.code == "" {
		return "?"
	}
	return e.code
}

// TypeOf derives the encoding for a Go type.
func TypeOf[T any]() Encoding {
	return ValueOf(reflect.TypeFor[T]())
}

// ValueOf derives the encoding for a reflected Go type. Types with no
// counterpart in the encoding vocabulary map to Unknown.
func ValueOf(t reflect.Type) Encoding {
	if t == nil {
		return Void
	}
	switch t.Kind() {
	case reflect.Bool:
		return Bool
	case reflect.Int8:
		return Char
	case reflect.Int16:
		return Short
	case reflect.Int32:
		return Int
	case reflect.Int64:
		return LongLong
	case reflect.Int:
		if t.Bits() == 64 {
			return LongLong
		}
		return Int
	case reflect.Uint8:
		return UChar
	case reflect.Uint16:
		return UShort
	case reflect.Uint32:
		return UInt
	case reflect.Uint64, reflect.Uintptr:
		return ULongLong
	case reflect.Uint:
		if t.Bits() == 64 {
			return ULongLong
		}
		return UInt
	case reflect.Float32:
		return Float
	case reflect.Float64:
		return Double
	case reflect.String:
		return CString
	case reflect.Func:
		return Block
	case reflect.UnsafePointer:
		return Pointer(Void)
	case reflect.Ptr:
		return Pointer(ValueOf(t.Elem()))
	case reflect.Struct:
		fields := make([]Encoding, t.NumField())
		for i := range fields {
			fields[i] = ValueOf(t.Field(i).Type)
		}
		return Struct(t.Name(), fields...)
	default:
		return Unknown
	}
}
