package components

import (
	"encoding/json"
	"sync"

	"github.com/go-vitrine/vitrine/pkg/errors"
	"github.com/go-vitrine/vitrine/pkg/events"
	"github.com/go-vitrine/vitrine/pkg/option"
	"github.com/go-vitrine/vitrine/pkg/serialize"
)

// SliderConfig configures a [Slider].
type SliderConfig struct {
	Config

	// Value is the initial position. Defaults to Minimum.
	Value option.Option[float64]

	// ValueFunc backs the value with a callable, re-evaluated on the Every
	// cadence.
	ValueFunc func() float64

	// Minimum is the lower bound. Defaults to 0.
	Minimum option.Option[float64]

	// Maximum is the upper bound. Defaults to 100.
	Maximum option.Option[float64]

	// Steps is how many evenly spaced probes interpretation uses across the
	// range. Defaults to 8.
	Steps option.Option[int]
}

// Slider is a bounded numeric input.
//
// For sensitivity interpretation the slider probes the function at Steps
// evenly spaced positions across its range, reporting a score for each.
type Slider struct {
	IOComponent
	codec serialize.Number

	// mu guards value against concurrent refresh and config reads. The
	// bounds are immutable after construction.
	mu        sync.RWMutex
	value     float64
	valueFunc func() float64
	minimum   float64
	maximum   float64
	steps     int
}

// NewSlider constructs a Slider with every parameter resolved.
func NewSlider(cfg SliderConfig) *Slider {
	s := &Slider{
		IOComponent: newIOComponent("slider", cfg.Config),
		valueFunc:   cfg.ValueFunc,
		minimum:     cfg.Minimum.Or(0),
		maximum:     cfg.Maximum.Or(100),
		steps:       cfg.Steps.Or(8),
	}
	if cfg.ValueFunc != nil {
		s.value = cfg.ValueFunc()
	} else {
		s.value = cfg.Value.Or(s.minimum)
		s.every = 0
	}
	return s
}

// Value returns the current position.
func (s *Slider) Value() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Minimum returns the lower bound.
func (s *Slider) Minimum() float64 { return s.minimum }

// Maximum returns the upper bound.
func (s *Slider) Maximum() float64 { return s.maximum }

// SetValue stores a new position and emits a change event.
func (s *Slider) SetValue(v float64) {
	s.mu.Lock()
	s.value = v
	s.mu.Unlock()
	s.listeners.Emit(events.Change, events.ChangeData{Value: v})
}

func (s *Slider) Preprocess(raw json.RawMessage) (any, error) {
	v, err := s.codec.Decode(raw)
	if err != nil {
		return nil, componentErr(err, s.label)
	}
	if v < s.minimum || v > s.maximum {
		return nil, errors.Ef("components.Slider", errors.KindProcess, "value %v outside [%v, %v]", v, s.minimum, s.maximum)
	}
	return v, nil
}

func (s *Slider) Postprocess(v any) (json.RawMessage, error) {
	f, err := toFloat(v)
	if err != nil {
		return nil, errors.Ef("components.Slider", errors.KindProcess, "postprocess expected number, got %T", v)
	}
	return s.codec.Encode(f)
}

// InterpretationNeighbors returns Steps evenly spaced probes across the
// slider's range, endpoints included.
func (s *Slider) InterpretationNeighbors(x any) ([]any, error) {
	if _, err := toFloat(x); err != nil {
		return nil, errors.Ef("components.Slider", errors.KindInterpret, "expected number input, got %T", x)
	}
	if s.steps < 2 {
		return []any{s.minimum}, nil
	}
	probes := make([]any, s.steps)
	width := (s.maximum - s.minimum) / float64(s.steps-1)
	for i := range probes {
		probes[i] = s.minimum + width*float64(i)
	}
	return probes, nil
}

// InterpretationScores pairs each probe with its score, in probe order.
func (s *Slider) InterpretationScores(x any, scores []float64) (any, error) {
	probes, err := s.InterpretationNeighbors(x)
	if err != nil {
		return nil, err
	}
	if len(scores) != len(probes) {
		return nil, errors.Ef("components.Slider", errors.KindInterpret, "expected %d scores, got %d", len(probes), len(scores))
	}
	out := make([]NumberScore, len(probes))
	for i, p := range probes {
		out[i] = NumberScore{Value: p.(float64), Score: scores[i]}
	}
	return out, nil
}

// RefreshValue re-evaluates the backing callable, if any.
func (s *Slider) RefreshValue() (json.RawMessage, bool, error) {
	if s.valueFunc == nil {
		return nil, false, nil
	}
	v := s.valueFunc()
	s.mu.Lock()
	s.value = v
	s.mu.Unlock()
	raw, err := s.codec.Encode(v)
	if err != nil {
		return nil, true, err
	}
	s.listeners.Emit(events.Load, events.ChangeData{Value: v})
	return raw, true, nil
}

func (s *Slider) ConfigMap() map[string]any {
	m := s.baseConfigMap()
	m["value"] = s.Value()
	m["minimum"] = s.minimum
	m["maximum"] = s.maximum
	return m
}
