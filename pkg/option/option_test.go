package option_test

import (
	"testing"

	"github.com/go-vitrine/vitrine/pkg/option"
)

func TestZeroValueIsUnset(t *testing.T) {
	var o option.Option[bool]
	if o.IsSet() {
		t.Error("zero Option should be unset")
	}
	if got := o.Or(true); got != true {
		t.Errorf("Or(true) = %v, want fallback true", got)
	}
}

func TestSomeZeroIsExplicit(t *testing.T) {
	// Some(false) must be distinguishable from an unset Option; this is the
	// whole point of the type.
	o := option.Some(false)
	if !o.IsSet() {
		t.Fatal("Some(false) should be set")
	}
	if got := o.Or(true); got != false {
		t.Errorf("Or(true) = %v, want explicit false", got)
	}
}

func TestNoneEqualsZero(t *testing.T) {
	if option.None[int]() != (option.Option[int]{}) {
		t.Error("None() should equal the zero Option")
	}
}

func TestGet(t *testing.T) {
	v, ok := option.Some(42).Get()
	if !ok || v != 42 {
		t.Errorf("Get() = (%v, %v), want (42, true)", v, ok)
	}
	v, ok = option.None[int]().Get()
	if ok || v != 0 {
		t.Errorf("Get() = (%v, %v), want (0, false)", v, ok)
	}
}

func TestPtr(t *testing.T) {
	if p := option.None[bool]().Ptr(); p != nil {
		t.Error("Ptr() on unset Option should be nil")
	}
	p := option.Some(true).Ptr()
	if p == nil || *p != true {
		t.Errorf("Ptr() = %v, want pointer to true", p)
	}

	// The pointer must not alias the Option's storage.
	o := option.Some(1)
	p2 := o.Ptr()
	*p2 = 2
	if v, _ := o.Get(); v != 1 {
		t.Error("mutating Ptr() result should not affect the Option")
	}
}
