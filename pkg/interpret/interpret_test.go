package interpret_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/go-vitrine/vitrine/pkg/components"
	"github.com/go-vitrine/vitrine/pkg/errors"
	"github.com/go-vitrine/vitrine/pkg/interpret"
	"github.com/go-vitrine/vitrine/pkg/option"
)

// survivalModel is a toy predictor: base score from the checkbox, plus half
// the age. Values are chosen to stay exact in float64.
func survivalModel(_ context.Context, inputs []any) ([]any, error) {
	score := inputs[1].(float64) / 2
	if inputs[0].(bool) {
		score++
	}
	return []any{score}, nil
}

func TestRun_EndToEnd(t *testing.T) {
	cb := components.NewCheckbox(components.CheckboxConfig{
		Config: components.Config{Label: option.Some("Survived")},
	})
	age := components.NewNumber(components.NumberConfig{
		Config: components.Config{Label: option.Some("Age")},
	})

	results, err := interpret.Run(context.Background(), survivalModel,
		[]components.Input{cb, age},
		[]json.RawMessage{json.RawMessage("true"), json.RawMessage("30")},
		nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	// Original output is 16. Unchecking drops it to 15, so the if-false score
	// is -1 and the if-true slot stays absent.
	pair := results[0].Scores.(components.BoolScores)
	if pair.IfFalse == nil || *pair.IfFalse != -1 {
		t.Errorf("checkbox IfFalse = %v, want -1", pair.IfFalse)
	}
	if pair.IfTrue != nil {
		t.Errorf("checkbox IfTrue = %v, want absent", *pair.IfTrue)
	}
	if results[0].Label != "Survived" {
		t.Errorf("label = %q", results[0].Label)
	}

	// Age probes at 29 and 31 shift the output by -0.5 and +0.5.
	pairs := results[1].Scores.([]components.NumberScore)
	if pairs[0] != (components.NumberScore{Value: 29, Score: -0.5}) ||
		pairs[1] != (components.NumberScore{Value: 31, Score: 0.5}) {
		t.Errorf("number scores = %v", pairs)
	}
}

func TestRun_UncheckedOriginal(t *testing.T) {
	cb := components.NewCheckbox(components.CheckboxConfig{})
	results, err := interpret.Run(context.Background(), survivalModel,
		[]components.Input{cb, components.NewNumber(components.NumberConfig{})},
		[]json.RawMessage{json.RawMessage("false"), json.RawMessage("0")},
		nil)
	if err != nil {
		t.Fatal(err)
	}
	pair := results[0].Scores.(components.BoolScores)
	if pair.IfTrue == nil || *pair.IfTrue != 1 {
		t.Errorf("IfTrue = %v, want 1", pair.IfTrue)
	}
	if pair.IfFalse != nil {
		t.Error("IfFalse should be absent for an unchecked original")
	}
}

func TestRun_NonInterpretableInputSkipped(t *testing.T) {
	tb := components.NewTextbox(components.TextboxConfig{})
	echo := func(_ context.Context, inputs []any) ([]any, error) {
		return []any{inputs[0]}, nil
	}
	results, err := interpret.Run(context.Background(), echo,
		[]components.Input{tb},
		[]json.RawMessage{json.RawMessage(`"hello"`)},
		nil)
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Scores != nil {
		t.Errorf("textbox scores = %v, want nil", results[0].Scores)
	}
}

func TestRun_SampleArityMismatch(t *testing.T) {
	cb := components.NewCheckbox(components.CheckboxConfig{})
	_, err := interpret.Run(context.Background(), survivalModel,
		[]components.Input{cb}, nil, nil)
	if err == nil {
		t.Fatal("mismatched sample length should fail")
	}
	if errors.KindOf(err) != errors.KindInterpret {
		t.Errorf("kind = %v, want KindInterpret", errors.KindOf(err))
	}
}

func TestRun_PredictorErrorSurfaces(t *testing.T) {
	cb := components.NewCheckbox(components.CheckboxConfig{})
	boom := func(_ context.Context, _ []any) ([]any, error) {
		return nil, fmt.Errorf("model offline")
	}
	_, err := interpret.Run(context.Background(), boom,
		[]components.Input{cb},
		[]json.RawMessage{json.RawMessage("true")},
		nil)
	if err == nil {
		t.Fatal("predictor error should surface")
	}
	if errors.KindOf(err) != errors.KindPredict {
		t.Errorf("kind = %v, want KindPredict", errors.KindOf(err))
	}
}

func TestDeltaScore(t *testing.T) {
	if got := interpret.DeltaScore([]any{1.0}, []any{1.5}); got != 0.5 {
		t.Errorf("DeltaScore = %v, want 0.5", got)
	}
	// First numeric output wins even behind non-numeric ones.
	if got := interpret.DeltaScore([]any{"label", 2.0}, []any{"label", 1.0}); got != -1 {
		t.Errorf("DeltaScore = %v, want -1", got)
	}
	if got := interpret.DeltaScore([]any{"a"}, []any{"b"}); got != 0 {
		t.Errorf("DeltaScore on non-numeric = %v, want 0", got)
	}
}
