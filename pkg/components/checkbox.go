package components

import (
	"encoding/json"
	"sync"

	"github.com/go-vitrine/vitrine/pkg/errors"
	"github.com/go-vitrine/vitrine/pkg/events"
	"github.com/go-vitrine/vitrine/pkg/option"
	"github.com/go-vitrine/vitrine/pkg/serialize"
)

// CheckboxConfig configures a [Checkbox].
//
// Value and ValueFunc are mutually exclusive ways to provide the initial
// state. When ValueFunc is set it wins: it is invoked once at construction
// for the initial value, and re-invoked on the Every cadence while a session
// is open. When neither is set the checkbox starts unchecked.
type CheckboxConfig struct {
	Config

	// Value is the initial checked state. Defaults to false.
	Value option.Option[bool]

	// ValueFunc backs the value with a callable. The checkbox re-evaluates it
	// on the Every cadence while the client connection is open.
	ValueFunc func() bool
}

// Checkbox is a boolean input that can be checked or unchecked.
//
// Preprocessing passes the checked state as a bool into the function.
// Postprocessing expects a bool back from the function and checks the box
// when it is true.
//
//	cb := components.NewCheckbox(components.CheckboxConfig{
//	    Value: option.Some(true),
//	    Config: components.Config{Label: option.Some("Survived")},
//	})
//	cb.OnSelect(func(d events.SelectData) {
//	    log.Printf("%s selected=%v", d.Value, d.Selected)
//	})
//
// Checkbox participates in sensitivity interpretation: its only neighbor is
// the negation of the current value, and interpretation scores report how the
// output would shift if the box were in the other state.
type Checkbox struct {
	IOComponent
	codec serialize.Bool

	// mu guards value: the session refresh goroutine writes it while config
	// reads arrive from request handlers.
	mu        sync.RWMutex
	value     bool
	valueFunc func() bool
}

// NewCheckbox constructs a Checkbox, resolving every configuration parameter
// to a concrete value. The stored value is always a bool after construction,
// never the callable.
func NewCheckbox(cfg CheckboxConfig) *Checkbox {
	c := &Checkbox{
		IOComponent: newIOComponent("checkbox", cfg.Config),
		valueFunc:   cfg.ValueFunc,
	}
	if cfg.ValueFunc != nil {
		c.value = cfg.ValueFunc()
	} else {
		c.value = cfg.Value.Or(false)
		// Cadence only applies to callable-backed values.
		c.every = 0
	}
	return c
}

// Value returns the current checked state.
func (c *Checkbox) Value() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// SetValue stores a new checked state and emits a change event.
func (c *Checkbox) SetValue(v bool) {
	c.mu.Lock()
	c.value = v
	c.mu.Unlock()
	c.listeners.Emit(events.Change, events.ChangeData{Value: v})
}

// Preprocess decodes the transport value into the bool the function receives.
func (c *Checkbox) Preprocess(raw json.RawMessage) (any, error) {
	v, err := c.codec.Decode(raw)
	if err != nil {
		return nil, componentErr(err, c.label)
	}
	return v, nil
}

// Postprocess encodes a bool function result for transport.
func (c *Checkbox) Postprocess(v any) (json.RawMessage, error) {
	if v == nil {
		v = false
	}
	b, ok := v.(bool)
	if !ok {
		return nil, errors.Ef("components.Checkbox", errors.KindProcess, "postprocess expected bool, got %T", v)
	}
	return c.codec.Encode(b)
}

// OnSelect registers a handler for when the user selects or deselects the
// checkbox. The event data carries the checkbox's label and checked state.
func (c *Checkbox) OnSelect(fn func(events.SelectData)) {
	c.listeners.On(events.Select, func(d any) {
		if sd, ok := d.(events.SelectData); ok {
			fn(sd)
		}
	})
}

// BoolScores carries a checkbox's interpretation result: the score the output
// would receive with the box unchecked and checked. Exactly one slot is
// populated; the other corresponds to the original value itself and stays nil.
type BoolScores struct {
	IfFalse *float64 `json:"if_false"`
	IfTrue  *float64 `json:"if_true"`
}

// InterpretationNeighbors returns the single alternative to x: its negation.
func (c *Checkbox) InterpretationNeighbors(x any) ([]any, error) {
	v, ok := x.(bool)
	if !ok {
		return nil, errors.Ef("components.Checkbox", errors.KindInterpret, "expected bool input, got %T", x)
	}
	return []any{!v}, nil
}

// InterpretationScores maps the neighbor's score to a [BoolScores] pair.
//
// The neighbor of a checked box is the unchecked state, so its score lands in
// IfFalse, and vice versa. This branch assignment mirrors long-observed
// behavior; swapping it silently inverts every checkbox explanation.
func (c *Checkbox) InterpretationScores(x any, scores []float64) (any, error) {
	v, ok := x.(bool)
	if !ok {
		return nil, errors.Ef("components.Checkbox", errors.KindInterpret, "expected bool input, got %T", x)
	}
	if len(scores) != 1 {
		return nil, errors.Ef("components.Checkbox", errors.KindInterpret, "expected exactly one score, got %d", len(scores))
	}
	s := scores[0]
	if v {
		return BoolScores{IfFalse: &s}, nil
	}
	return BoolScores{IfTrue: &s}, nil
}

// RefreshValue re-evaluates the backing callable. ok is false when the value
// is not callable-backed.
func (c *Checkbox) RefreshValue() (json.RawMessage, bool, error) {
	if c.valueFunc == nil {
		return nil, false, nil
	}
	v := c.valueFunc()
	c.mu.Lock()
	c.value = v
	c.mu.Unlock()
	raw, err := c.codec.Encode(v)
	if err != nil {
		return nil, true, err
	}
	c.listeners.Emit(events.Load, events.ChangeData{Value: v})
	return raw, true, nil
}

// ConfigMap renders the resolved configuration for the front end.
func (c *Checkbox) ConfigMap() map[string]any {
	m := c.baseConfigMap()
	m["value"] = c.Value()
	return m
}

func componentErr(err error, label string) error {
	var e *errors.Error
	if errors.As(err, &e) {
		e.Component = label
		return e
	}
	return err
}
