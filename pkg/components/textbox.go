package components

import (
	"encoding/json"
	"sync"

	"github.com/go-vitrine/vitrine/pkg/errors"
	"github.com/go-vitrine/vitrine/pkg/events"
	"github.com/go-vitrine/vitrine/pkg/option"
	"github.com/go-vitrine/vitrine/pkg/serialize"
)

// TextboxConfig configures a [Textbox].
type TextboxConfig struct {
	Config

	// Value is the initial text. Defaults to empty.
	Value option.Option[string]

	// ValueFunc backs the value with a callable, re-evaluated on the Every
	// cadence.
	ValueFunc func() string

	// Placeholder is shown when the textbox is empty.
	Placeholder option.Option[string]

	// Lines is the visible line count. Defaults to 1.
	Lines option.Option[int]
}

// Textbox is a string input/output field.
type Textbox struct {
	IOComponent
	codec serialize.String

	// mu guards value against concurrent refresh and config reads.
	mu          sync.RWMutex
	value       string
	valueFunc   func() string
	placeholder string
	lines       int
}

// NewTextbox constructs a Textbox with every parameter resolved.
func NewTextbox(cfg TextboxConfig) *Textbox {
	t := &Textbox{
		IOComponent: newIOComponent("textbox", cfg.Config),
		valueFunc:   cfg.ValueFunc,
		placeholder: cfg.Placeholder.OrZero(),
		lines:       cfg.Lines.Or(1),
	}
	if cfg.ValueFunc != nil {
		t.value = cfg.ValueFunc()
	} else {
		t.value = cfg.Value.OrZero()
		t.every = 0
	}
	return t
}

// Value returns the current text.
func (t *Textbox) Value() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.value
}

// SetValue stores new text and emits a change event.
func (t *Textbox) SetValue(v string) {
	t.mu.Lock()
	t.value = v
	t.mu.Unlock()
	t.listeners.Emit(events.Change, events.ChangeData{Value: v})
}

func (t *Textbox) Preprocess(raw json.RawMessage) (any, error) {
	v, err := t.codec.Decode(raw)
	if err != nil {
		return nil, componentErr(err, t.label)
	}
	return v, nil
}

func (t *Textbox) Postprocess(v any) (json.RawMessage, error) {
	if v == nil {
		v = ""
	}
	s, ok := v.(string)
	if !ok {
		return nil, errors.Ef("components.Textbox", errors.KindProcess, "postprocess expected string, got %T", v)
	}
	return t.codec.Encode(s)
}

// RefreshValue re-evaluates the backing callable, if any.
func (t *Textbox) RefreshValue() (json.RawMessage, bool, error) {
	if t.valueFunc == nil {
		return nil, false, nil
	}
	v := t.valueFunc()
	t.mu.Lock()
	t.value = v
	t.mu.Unlock()
	raw, err := t.codec.Encode(v)
	if err != nil {
		return nil, true, err
	}
	t.listeners.Emit(events.Load, events.ChangeData{Value: v})
	return raw, true, nil
}

func (t *Textbox) ConfigMap() map[string]any {
	m := t.baseConfigMap()
	m["value"] = t.Value()
	m["placeholder"] = t.placeholder
	m["lines"] = t.lines
	return m
}
