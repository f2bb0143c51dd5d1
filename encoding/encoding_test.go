package encoding

import (
	"testing"
	"unsafe"
)

func TestPrimitiveCodes(t *testing.T) {
	cases := []struct {
		enc  Encoding
		want string
	}{
		{Object, "@"},
		{Class, "#"},
		{Sel, ":"},
		{Block, "@?"},
		{Void, "v"},
		{CString, "*"},
		{Encoding{}, "?"},
	}
	for _, c := range cases {
		if got := c.enc.String(); got != c.want {
			t.Fatalf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestTypeOf(t *testing.T) {
	cases := []struct {
		got  Encoding
		want string
	}{
		{TypeOf[bool](), "B"},
		{TypeOf[int8](), "c"},
		{TypeOf[int16](), "s"},
		{TypeOf[int32](), "i"},
		{TypeOf[int64](), "q"},
		{TypeOf[uint8](), "C"},
		{TypeOf[uint16](), "S"},
		{TypeOf[uint32](), "I"},
		{TypeOf[uint64](), "Q"},
		{TypeOf[uintptr](), "Q"},
		{TypeOf[float32](), "f"},
		{TypeOf[float64](), "d"},
		{TypeOf[string](), "*"},
		{TypeOf[func(int) int](), "@?"},
		{TypeOf[unsafe.Pointer](), "^v"},
		{TypeOf[*int32](), "^i"},
		{TypeOf[**float64](), "^^d"},
		{TypeOf[chan int](), "?"},
	}
	for _, c := range cases {
		if c.got.String() != c.want {
			t.Fatalf("TypeOf = %q, want %q", c.got.String(), c.want)
		}
	}
}

func TestTypeOfStruct(t *testing.T) {
	type point struct {
		X int32
		Y int32
	}
	if got := TypeOf[point]().String(); got != "{point=ii}" {
		t.Fatalf("TypeOf[point] = %q, want %q", got, "{point=ii}")
	}
	if got := TypeOf[*point]().String(); got != "^{point=ii}" {
		t.Fatalf("TypeOf[*point] = %q, want %q", got, "^{point=ii}")
	}
}

func TestSignature(t *testing.T) {
	sig := MethodSig(Int, Int, Double)
	if got := sig.String(); got != "i@:id" {
		t.Fatalf("String() = %q, want %q", got, "i@:id")
	}
	if sig.NumArgs() != 4 {
		t.Fatalf("NumArgs() = %d, want 4", sig.NumArgs())
	}

	if a, ok := sig.Arg(0); !ok || a != Object {
		t.Fatal("implicit receiver argument missing")
	}
	if a, ok := sig.Arg(1); !ok || a != Sel {
		t.Fatal("implicit selector argument missing")
	}
	if _, ok := sig.Arg(4); ok {
		t.Fatal("Arg out of range must fail")
	}

	same := MethodSig(Int, Int, Double)
	if !sig.Equal(same) {
		t.Fatal("identical signatures must compare equal")
	}
	if sig.Equal(MethodSig(Int, Int)) {
		t.Fatal("different arities must not compare equal")
	}
	if sig.Equal(MethodSig(Void, Int, Double)) {
		t.Fatal("different returns must not compare equal")
	}
}
