package engine

import (
	stderrors "errors"
	"testing"
	"unsafe"

	"github.com/nativekit/block-runtime/encoding"
	"github.com/nativekit/block-runtime/errors"
)

func verifyTestClass(t *testing.T, name string) (*Class, Sel) {
	t.Helper()

	cls := NewClass(name)
	sel := RegisterSelector("addTo:")
	sig := encoding.MethodSig(encoding.Int, encoding.Int)
	err := cls.AddMethod(sel, sig, func(self unsafe.Pointer, _ Sel, args []any) any {
		return args[0]
	})
	if err != nil {
		t.Fatalf("AddMethod: %v", err)
	}
	return cls, sel
}

func TestVerifySignatureOK(t *testing.T) {
	cls, sel := verifyTestClass(t, "VerifyOK")
	sig := encoding.Signature{
		Ret:  encoding.Int,
		Args: []encoding.Encoding{encoding.Int},
	}
	if err := VerifySignature(cls, sel, sig); err != nil {
		t.Fatalf("VerifySignature: %v", err)
	}
}

func TestVerifyMethodNotFound(t *testing.T) {
	cls, _ := verifyTestClass(t, "VerifyNotFound")
	err := VerifySignature(cls, RegisterSelector("missing:"), encoding.Signature{Ret: encoding.Void})
	if err == nil {
		t.Fatal("expected method-not-found error")
	}
	want := &errors.Error{Phase: errors.PhaseVerify, Kind: errors.KindMethodNotFound}
	if !stderrors.Is(err, want) {
		t.Fatalf("error %v, want kind %s", err, errors.KindMethodNotFound)
	}
}

func TestVerifyReturnMismatch(t *testing.T) {
	cls, sel := verifyTestClass(t, "VerifyRet")
	sig := encoding.Signature{
		Ret:  encoding.Double,
		Args: []encoding.Encoding{encoding.Int},
	}
	err := VerifySignature(cls, sel, sig)
	if err == nil {
		t.Fatal("expected return mismatch error")
	}

	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("error %T, want *errors.Error", err)
	}
	if e.Kind != errors.KindReturnMismatch {
		t.Fatalf("kind %s, want %s", e.Kind, errors.KindReturnMismatch)
	}
	if e.Expected != "i" || e.Actual != "d" {
		t.Fatalf("expected/actual = %q/%q, want i/d", e.Expected, e.Actual)
	}
	if e.Class != "VerifyRet" || e.Selector != "addTo:" {
		t.Fatalf("class/selector = %q/%q", e.Class, e.Selector)
	}
}

func TestVerifyArgumentCount(t *testing.T) {
	cls, sel := verifyTestClass(t, "VerifyCount")
	sig := encoding.Signature{
		Ret:  encoding.Int,
		Args: []encoding.Encoding{encoding.Int, encoding.Int},
	}
	err := VerifySignature(cls, sel, sig)
	if err == nil {
		t.Fatal("expected argument count error")
	}
	want := &errors.Error{Phase: errors.PhaseVerify, Kind: errors.KindArgumentCount}
	if !stderrors.Is(err, want) {
		t.Fatalf("error %v, want kind %s", err, errors.KindArgumentCount)
	}
}

func TestVerifyArgumentType(t *testing.T) {
	cls, sel := verifyTestClass(t, "VerifyArg")
	sig := encoding.Signature{
		Ret:  encoding.Int,
		Args: []encoding.Encoding{encoding.Double},
	}
	err := VerifySignature(cls, sel, sig)
	if err == nil {
		t.Fatal("expected argument type error")
	}

	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("error %T, want *errors.Error", err)
	}
	if e.Kind != errors.KindArgumentType {
		t.Fatalf("kind %s, want %s", e.Kind, errors.KindArgumentType)
	}
	// Index counts the implicit receiver and selector arguments.
	if e.ArgIndex != 2 {
		t.Fatalf("ArgIndex = %d, want 2", e.ArgIndex)
	}
	if e.Expected != "i" || e.Actual != "d" {
		t.Fatalf("expected/actual = %q/%q, want i/d", e.Expected, e.Actual)
	}
}

func TestVerifyFirstMismatchWins(t *testing.T) {
	cls := NewClass("VerifyFirst")
	sel := RegisterSelector("pair::")
	sig := encoding.MethodSig(encoding.Void, encoding.Int, encoding.Double)
	err := cls.AddMethod(sel, sig, func(unsafe.Pointer, Sel, []any) any { return nil })
	if err != nil {
		t.Fatalf("AddMethod: %v", err)
	}

	bad := encoding.Signature{
		Ret:  encoding.Void,
		Args: []encoding.Encoding{encoding.Double, encoding.Int},
	}
	verr := VerifySignature(cls, sel, bad)
	var e *errors.Error
	if !stderrors.As(verr, &e) {
		t.Fatalf("error %T, want *errors.Error", verr)
	}
	if e.ArgIndex != 2 {
		t.Fatalf("ArgIndex = %d, want 2 (first mismatch)", e.ArgIndex)
	}
}
