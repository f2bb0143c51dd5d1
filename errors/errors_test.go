package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	err := ArgumentType("Adder", "addTo:", 2, "i", "d")
	msg := err.Error()

	for _, want := range []string{"[verify]", "argument_type", "-addTo:", "Adder", "index 2", "expected i", "got d"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message %q missing %q", msg, want)
		}
	}
}

func TestErrorFormatDetailOnly(t *testing.T) {
	err := InvalidInput(PhaseRegister, "namespace cannot be empty")
	msg := err.Error()
	if !strings.Contains(msg, "[register]") || !strings.Contains(msg, "namespace cannot be empty") {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestBuilder(t *testing.T) {
	cause := stderrors.New("boom")
	err := New(PhaseDispatch, KindUnknownSelector).
		Class("Adder").
		Selector("frobnicate").
		Detail("selector %q never registered", "frobnicate").
		Cause(cause).
		Build()

	if err.Class != "Adder" || err.Selector != "frobnicate" {
		t.Fatal("builder dropped class/selector")
	}
	if !strings.Contains(err.Detail, `"frobnicate"`) {
		t.Fatalf("detail %q not formatted", err.Detail)
	}
	if !stderrors.Is(err, cause) {
		t.Fatal("cause not unwrapped")
	}
	if !strings.Contains(err.Error(), "caused by: boom") {
		t.Fatalf("message %q missing cause", err.Error())
	}
}

func TestIsMatchesPhaseAndKind(t *testing.T) {
	err := ReturnMismatch("A", "sel", "i", "v")

	if !stderrors.Is(err, &Error{Phase: PhaseVerify, Kind: KindReturnMismatch}) {
		t.Fatal("Is must match on phase and kind")
	}
	if stderrors.Is(err, &Error{Phase: PhaseVerify, Kind: KindArgumentCount}) {
		t.Fatal("Is must not match a different kind")
	}
	if stderrors.Is(err, &Error{Phase: PhaseDispatch, Kind: KindReturnMismatch}) {
		t.Fatal("Is must not match a different phase")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	if err := ArgumentCount("C", "s", 3, 4); !strings.Contains(err.Error(), "accepts 3 arguments, but 4 were given") {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if err := Duplicate("class", "Adder"); !strings.Contains(err.Error(), `class "Adder" already registered`) {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if err := NilReceiver("copy"); err.Kind != KindNilReceiver || err.Phase != PhaseDispatch {
		t.Fatal("NilReceiver phase/kind wrong")
	}
}
