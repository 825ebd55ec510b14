package components_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/go-vitrine/vitrine/pkg/components"
	"github.com/go-vitrine/vitrine/pkg/events"
	"github.com/go-vitrine/vitrine/pkg/option"
)

// Capability checks: the checkbox composes narrow interfaces rather than a
// deep hierarchy.
var (
	_ components.Input                 = (*components.Checkbox)(nil)
	_ components.Output                = (*components.Checkbox)(nil)
	_ components.Selectable            = (*components.Checkbox)(nil)
	_ components.NeighborInterpretable = (*components.Checkbox)(nil)
	_ components.ValueSource           = (*components.Checkbox)(nil)
)

func TestCheckbox_DefaultsToUnchecked(t *testing.T) {
	cb := components.NewCheckbox(components.CheckboxConfig{})
	if cb.Value() {
		t.Error("default value should be false")
	}
	if cb.Every() != 0 {
		t.Errorf("Every() = %v, want no refresh cadence", cb.Every())
	}
}

func TestCheckbox_ExplicitValueRoundTrip(t *testing.T) {
	for _, v := range []bool{true, false} {
		cb := components.NewCheckbox(components.CheckboxConfig{Value: option.Some(v)})
		if cb.Value() != v {
			t.Errorf("constructed with %v, read back %v", v, cb.Value())
		}
	}
}

func TestCheckbox_ValueFuncResolvedAtConstruction(t *testing.T) {
	calls := 0
	cb := components.NewCheckbox(components.CheckboxConfig{
		ValueFunc: func() bool { calls++; return true },
		Config:    components.Config{Every: option.Some(2 * time.Second)},
	})
	if calls != 1 {
		t.Errorf("callable invoked %d times at construction, want 1", calls)
	}
	if !cb.Value() {
		t.Error("value should be the callable's result")
	}
	if cb.Every() != 2*time.Second {
		t.Errorf("Every() = %v, want 2s for callable-backed value", cb.Every())
	}
}

func TestCheckbox_EveryIgnoredWithoutCallable(t *testing.T) {
	cb := components.NewCheckbox(components.CheckboxConfig{
		Value:  option.Some(true),
		Config: components.Config{Every: option.Some(time.Second)},
	})
	if cb.Every() != 0 {
		t.Error("cadence should only apply to callable-backed values")
	}
}

func TestCheckbox_RefreshValue(t *testing.T) {
	next := false
	cb := components.NewCheckbox(components.CheckboxConfig{
		ValueFunc: func() bool { return next },
	})
	next = true
	raw, ok, err := cb.RefreshValue()
	if err != nil || !ok {
		t.Fatalf("RefreshValue() = (%s, %v, %v)", raw, ok, err)
	}
	if string(raw) != "true" || !cb.Value() {
		t.Errorf("refresh should store and encode the new value, got %s / %v", raw, cb.Value())
	}

	plain := components.NewCheckbox(components.CheckboxConfig{})
	if _, ok, _ := plain.RefreshValue(); ok {
		t.Error("non-callable checkbox should report ok=false")
	}
}

func TestCheckbox_InterpretationNeighbors(t *testing.T) {
	cb := components.NewCheckbox(components.CheckboxConfig{})

	neighbors, err := cb.InterpretationNeighbors(true)
	if err != nil {
		t.Fatal(err)
	}
	if len(neighbors) != 1 || neighbors[0] != false {
		t.Errorf("neighbors of true = %v, want [false]", neighbors)
	}

	neighbors, err = cb.InterpretationNeighbors(false)
	if err != nil {
		t.Fatal(err)
	}
	if len(neighbors) != 1 || neighbors[0] != true {
		t.Errorf("neighbors of false = %v, want [true]", neighbors)
	}

	if _, err := cb.InterpretationNeighbors("yes"); err == nil {
		t.Error("non-bool input should be rejected")
	}
}

func TestCheckbox_InterpretationScores(t *testing.T) {
	cb := components.NewCheckbox(components.CheckboxConfig{})

	// The neighbor of a checked box is unchecked, so the supplied score lands
	// in the if-false slot.
	res, err := cb.InterpretationScores(true, []float64{0.7})
	if err != nil {
		t.Fatal(err)
	}
	pair := res.(components.BoolScores)
	if pair.IfFalse == nil || *pair.IfFalse != 0.7 {
		t.Errorf("IfFalse = %v, want 0.7", pair.IfFalse)
	}
	if pair.IfTrue != nil {
		t.Errorf("IfTrue = %v, want absent", *pair.IfTrue)
	}

	res, err = cb.InterpretationScores(false, []float64{-0.2})
	if err != nil {
		t.Fatal(err)
	}
	pair = res.(components.BoolScores)
	if pair.IfTrue == nil || *pair.IfTrue != -0.2 {
		t.Errorf("IfTrue = %v, want -0.2", pair.IfTrue)
	}
	if pair.IfFalse != nil {
		t.Errorf("IfFalse = %v, want absent", *pair.IfFalse)
	}
}

func TestCheckbox_InterpretationScoresArity(t *testing.T) {
	cb := components.NewCheckbox(components.CheckboxConfig{})
	if _, err := cb.InterpretationScores(true, []float64{0.1, 0.2}); err == nil {
		t.Error("two scores should be rejected; a checkbox has one neighbor")
	}
	if _, err := cb.InterpretationScores(true, nil); err == nil {
		t.Error("zero scores should be rejected")
	}
}

func TestCheckbox_PreprocessDecodesBool(t *testing.T) {
	cb := components.NewCheckbox(components.CheckboxConfig{})
	v, err := cb.Preprocess(json.RawMessage("true"))
	if err != nil {
		t.Fatal(err)
	}
	if v != true {
		t.Errorf("Preprocess = %v (%T), want true", v, v)
	}
	if _, err := cb.Preprocess(json.RawMessage(`"on"`)); err == nil {
		t.Error("non-boolean transport value should be rejected")
	}
}

func TestCheckbox_PostprocessEncodesBool(t *testing.T) {
	cb := components.NewCheckbox(components.CheckboxConfig{})
	raw, err := cb.Postprocess(true)
	if err != nil || string(raw) != "true" {
		t.Errorf("Postprocess(true) = (%s, %v)", raw, err)
	}
	// A nil function result leaves the box unchecked.
	raw, err = cb.Postprocess(nil)
	if err != nil || string(raw) != "false" {
		t.Errorf("Postprocess(nil) = (%s, %v), want false", raw, err)
	}
	if _, err := cb.Postprocess(1); err == nil {
		t.Error("non-bool result should be rejected")
	}
}

func TestCheckbox_SelectEventCarriesLabelAndState(t *testing.T) {
	cb := components.NewCheckbox(components.CheckboxConfig{
		Config: components.Config{Label: option.Some("Survived")},
	})
	var got events.SelectData
	cb.OnSelect(func(d events.SelectData) { got = d })

	cb.Listeners().Emit(events.Select, events.SelectData{Value: cb.Label(), Selected: true})

	if got.Value != "Survived" || !got.Selected {
		t.Errorf("select data = %+v, want {Survived true}", got)
	}
}
