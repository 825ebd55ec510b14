package components

import (
	"encoding/json"
	"sync"

	"github.com/go-vitrine/vitrine/pkg/errors"
	"github.com/go-vitrine/vitrine/pkg/events"
	"github.com/go-vitrine/vitrine/pkg/option"
	"github.com/go-vitrine/vitrine/pkg/serialize"
)

// NumberConfig configures a [Number].
type NumberConfig struct {
	Config

	// Value is the initial number. Defaults to 0.
	Value option.Option[float64]

	// ValueFunc backs the value with a callable, re-evaluated on the Every
	// cadence.
	ValueFunc func() float64

	// Delta is the perturbation applied on each side of the current value
	// during interpretation. Defaults to 1.
	Delta option.Option[float64]
}

// Number is a numeric input/output field. All values travel as float64.
//
// Number participates in sensitivity interpretation by probing the function
// at value-Delta and value+Delta.
type Number struct {
	IOComponent
	codec serialize.Number

	// mu guards value against concurrent refresh and config reads.
	mu        sync.RWMutex
	value     float64
	valueFunc func() float64
	delta     float64
}

// NewNumber constructs a Number with every parameter resolved.
func NewNumber(cfg NumberConfig) *Number {
	n := &Number{
		IOComponent: newIOComponent("number", cfg.Config),
		valueFunc:   cfg.ValueFunc,
		delta:       cfg.Delta.Or(1),
	}
	if cfg.ValueFunc != nil {
		n.value = cfg.ValueFunc()
	} else {
		n.value = cfg.Value.OrZero()
		n.every = 0
	}
	return n
}

// Value returns the current number.
func (n *Number) Value() float64 {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.value
}

// SetValue stores a new number and emits a change event.
func (n *Number) SetValue(v float64) {
	n.mu.Lock()
	n.value = v
	n.mu.Unlock()
	n.listeners.Emit(events.Change, events.ChangeData{Value: v})
}

func (n *Number) Preprocess(raw json.RawMessage) (any, error) {
	v, err := n.codec.Decode(raw)
	if err != nil {
		return nil, componentErr(err, n.label)
	}
	return v, nil
}

func (n *Number) Postprocess(v any) (json.RawMessage, error) {
	f, err := toFloat(v)
	if err != nil {
		return nil, errors.Ef("components.Number", errors.KindProcess, "postprocess expected number, got %T", v)
	}
	return n.codec.Encode(f)
}

// NumberScore pairs a probed input value with its interpretation score.
type NumberScore struct {
	Value float64 `json:"value"`
	Score float64 `json:"score"`
}

// InterpretationNeighbors returns the two probes around x: x-Delta and
// x+Delta.
func (n *Number) InterpretationNeighbors(x any) ([]any, error) {
	v, err := toFloat(x)
	if err != nil {
		return nil, errors.Ef("components.Number", errors.KindInterpret, "expected number input, got %T", x)
	}
	return []any{v - n.delta, v + n.delta}, nil
}

// InterpretationScores pairs each probe with its score.
func (n *Number) InterpretationScores(x any, scores []float64) (any, error) {
	v, err := toFloat(x)
	if err != nil {
		return nil, errors.Ef("components.Number", errors.KindInterpret, "expected number input, got %T", x)
	}
	if len(scores) != 2 {
		return nil, errors.Ef("components.Number", errors.KindInterpret, "expected two scores, got %d", len(scores))
	}
	return []NumberScore{
		{Value: v - n.delta, Score: scores[0]},
		{Value: v + n.delta, Score: scores[1]},
	}, nil
}

// RefreshValue re-evaluates the backing callable, if any.
func (n *Number) RefreshValue() (json.RawMessage, bool, error) {
	if n.valueFunc == nil {
		return nil, false, nil
	}
	v := n.valueFunc()
	n.mu.Lock()
	n.value = v
	n.mu.Unlock()
	raw, err := n.codec.Encode(v)
	if err != nil {
		return nil, true, err
	}
	n.listeners.Emit(events.Load, events.ChangeData{Value: v})
	return raw, true, nil
}

func (n *Number) ConfigMap() map[string]any {
	m := n.baseConfigMap()
	m["value"] = n.Value()
	return m
}

// toFloat widens the numeric types a demo function plausibly returns.
func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	default:
		return 0, errors.Ef("components.toFloat", errors.KindProcess, "not a number: %T", v)
	}
}
