package engine

import (
	stderrors "errors"
	"testing"
	"unsafe"

	"github.com/nativekit/block-runtime/encoding"
	"github.com/nativekit/block-runtime/errors"
)

func TestRegisterSelectorInterns(t *testing.T) {
	a := RegisterSelector("testSelectorA")
	b := RegisterSelector("testSelectorB")
	if a == 0 || b == 0 {
		t.Fatal("expected non-zero selectors")
	}
	if a == b {
		t.Fatal("distinct names must intern to distinct selectors")
	}
	if again := RegisterSelector("testSelectorA"); again != a {
		t.Fatalf("re-registering produced %d, want %d", again, a)
	}
	if a.Name() != "testSelectorA" {
		t.Fatalf("Name() = %q, want %q", a.Name(), "testSelectorA")
	}
}

func TestInvalidSelectorName(t *testing.T) {
	if Sel(0).Name() != "" {
		t.Fatal("Sel 0 must have no name")
	}
	if Sel(1 << 30).Name() != "" {
		t.Fatal("out-of-range Sel must have no name")
	}
}

// counter is a test object: an isa word followed by state.
type counter struct {
	isa unsafe.Pointer
	n   int64
}

func newCounterClass(t *testing.T, name string) *Class {
	t.Helper()

	cls := NewClass(name)
	incr := RegisterSelector("increment")
	value := RegisterSelector("value")

	err := cls.AddMethod(incr, encoding.MethodSig(encoding.Void), func(self unsafe.Pointer, _ Sel, _ []any) any {
		(*counter)(self).n++
		return nil
	})
	if err != nil {
		t.Fatalf("AddMethod: %v", err)
	}
	err = cls.AddMethod(value, encoding.MethodSig(encoding.LongLong), func(self unsafe.Pointer, _ Sel, _ []any) any {
		return (*counter)(self).n
	})
	if err != nil {
		t.Fatalf("AddMethod: %v", err)
	}
	return cls
}

func TestSend(t *testing.T) {
	cls := newCounterClass(t, "TestSendCounter")
	obj := &counter{isa: unsafe.Pointer(cls)}
	self := unsafe.Pointer(obj)

	if got := ClassOf(self); got != cls {
		t.Fatalf("ClassOf = %v, want %v", got, cls)
	}

	insel := RegisterSelector("increment")
	for i := 0; i < 3; i++ {
		if _, err := Send(self, insel); err != nil {
			t.Fatalf("Send(increment): %v", err)
		}
	}

	ret, err := Send(self, RegisterSelector("value"))
	if err != nil {
		t.Fatalf("Send(value): %v", err)
	}
	if ret.(int64) != 3 {
		t.Fatalf("value = %v, want 3", ret)
	}
}

func TestSendNilReceiver(t *testing.T) {
	_, err := Send(nil, RegisterSelector("value"))
	if err == nil {
		t.Fatal("expected error for nil receiver")
	}
	want := &errors.Error{Phase: errors.PhaseDispatch, Kind: errors.KindNilReceiver}
	if !stderrors.Is(err, want) {
		t.Fatalf("error %v, want kind %s", err, errors.KindNilReceiver)
	}
}

func TestSendUnknownSelector(t *testing.T) {
	cls := newCounterClass(t, "TestSendUnknownCounter")
	obj := &counter{isa: unsafe.Pointer(cls)}

	_, err := Send(unsafe.Pointer(obj), RegisterSelector("definitelyNotAMethod"))
	if err == nil {
		t.Fatal("expected error for unknown selector")
	}
	want := &errors.Error{Phase: errors.PhaseDispatch, Kind: errors.KindUnknownSelector}
	if !stderrors.Is(err, want) {
		t.Fatalf("error %v, want kind %s", err, errors.KindUnknownSelector)
	}
}

func TestAddMethodDuplicate(t *testing.T) {
	cls := NewClass("TestAddMethodDuplicate")
	sel := RegisterSelector("dup")
	sig := encoding.MethodSig(encoding.Void)
	imp := func(unsafe.Pointer, Sel, []any) any { return nil }

	if err := cls.AddMethod(sel, sig, imp); err != nil {
		t.Fatalf("first AddMethod: %v", err)
	}
	err := cls.AddMethod(sel, sig, imp)
	if err == nil {
		t.Fatal("expected duplicate method error")
	}
	want := &errors.Error{Phase: errors.PhaseRegister, Kind: errors.KindDuplicate}
	if !stderrors.Is(err, want) {
		t.Fatalf("error %v, want kind %s", err, errors.KindDuplicate)
	}
}

func TestClassRegistry(t *testing.T) {
	cls := NewClass("TestClassRegistry")
	if _, ok := LookupClass("TestClassRegistry"); ok {
		t.Fatal("class visible before registration")
	}
	if err := RegisterClass(cls); err != nil {
		t.Fatalf("RegisterClass: %v", err)
	}
	got, ok := LookupClass("TestClassRegistry")
	if !ok || got != cls {
		t.Fatal("LookupClass did not return the registered class")
	}
	if err := RegisterClass(NewClass("TestClassRegistry")); err == nil {
		t.Fatal("expected duplicate class error")
	}

	found := false
	for _, name := range ClassNames() {
		if name == "TestClassRegistry" {
			found = true
		}
	}
	if !found {
		t.Fatal("registered class missing from ClassNames")
	}
}

func TestClassSelectors(t *testing.T) {
	cls := newCounterClass(t, "TestClassSelectors")
	sels := cls.Selectors()
	if len(sels) != 2 {
		t.Fatalf("got %d selectors, want 2", len(sels))
	}
	// Sorted by name: increment before value.
	if sels[0].Name() != "increment" || sels[1].Name() != "value" {
		t.Fatalf("selectors %q, %q out of order", sels[0].Name(), sels[1].Name())
	}
}
