// Package session wires components and a demo function into a runnable demo.
//
// A [Demo] is declared once: the wrapped function plus its input and output
// components. Each connected client gets a [Session], which runs the
// callable-value refresh loops and carries live updates back to the transport
// layer.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/go-vitrine/vitrine/pkg/components"
	"github.com/go-vitrine/vitrine/pkg/errors"
	"github.com/go-vitrine/vitrine/pkg/events"
	"github.com/go-vitrine/vitrine/pkg/interpret"
)

// Fn is the wrapped demo function. It receives one preprocessed value per
// input component and returns one result per output component.
type Fn func(ctx context.Context, inputs []any) ([]any, error)

// Demo is a declared interface around a function.
type Demo struct {
	fn      Fn
	inputs  []components.Input
	outputs []components.Output
	byID    map[string]components.Component
	log     *zap.Logger
	clock   Clock
}

// Option customizes a Demo.
type Option func(*Demo)

// WithLogger sets the demo's logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(d *Demo) { d.log = log }
}

// WithClock sets the clock driving value-refresh cadences. Tests use
// [FakeClock].
func WithClock(c Clock) Option {
	return func(d *Demo) { d.clock = c }
}

// New declares a demo. Components attached as inputs become interactive
// unless explicitly configured otherwise; outputs become non-interactive.
func New(fn Fn, inputs []components.Input, outputs []components.Output, opts ...Option) (*Demo, error) {
	if fn == nil {
		return nil, errors.Ef("session.New", errors.KindConfig, "demo function is required")
	}
	d := &Demo{
		fn:      fn,
		inputs:  inputs,
		outputs: outputs,
		byID:    make(map[string]components.Component),
		log:     zap.NewNop(),
		clock:   SystemClock{},
	}
	for _, opt := range opts {
		opt(d)
	}
	for _, c := range inputs {
		c.ResolveInteractive(true)
		d.byID[c.ID()] = c
	}
	for _, c := range outputs {
		c.ResolveInteractive(false)
		d.byID[c.ID()] = c
	}
	return d, nil
}

// Config renders the demo's component layout for the front end.
func (d *Demo) Config() map[string]any {
	comps := make([]map[string]any, 0, len(d.inputs)+len(d.outputs))
	inputIDs := make([]string, len(d.inputs))
	outputIDs := make([]string, len(d.outputs))
	for i, c := range d.inputs {
		comps = append(comps, c.ConfigMap())
		inputIDs[i] = c.ID()
	}
	for i, c := range d.outputs {
		comps = append(comps, c.ConfigMap())
		outputIDs[i] = c.ID()
	}
	return map[string]any{
		"components": comps,
		"inputs":     inputIDs,
		"outputs":    outputIDs,
	}
}

// Process runs the full pipeline for one prediction: deserialize and
// preprocess each input, call the function, then postprocess and serialize
// each output.
func (d *Demo) Process(ctx context.Context, raw []json.RawMessage) ([]json.RawMessage, error) {
	const op = "session.Process"
	start := time.Now()

	if len(raw) != len(d.inputs) {
		return nil, errors.Ef(op, errors.KindProcess, "got %d values for %d inputs", len(raw), len(d.inputs))
	}

	xs := make([]any, len(d.inputs))
	for i, comp := range d.inputs {
		v, err := comp.Preprocess(raw[i])
		if err != nil {
			return nil, err
		}
		xs[i] = v
	}

	out, err := d.fn(ctx, xs)
	if err != nil {
		return nil, errors.E(op, errors.KindPredict, err)
	}
	if len(out) != len(d.outputs) {
		return nil, errors.Ef(op, errors.KindProcess, "function returned %d values for %d outputs", len(out), len(d.outputs))
	}

	encoded := make([]json.RawMessage, len(out))
	for i, comp := range d.outputs {
		enc, err := comp.Postprocess(out[i])
		if err != nil {
			return nil, err
		}
		encoded[i] = enc
	}

	d.log.Debug("processed prediction",
		zap.Int("inputs", len(xs)),
		zap.Duration("elapsed", time.Since(start)))
	return encoded, nil
}

// Interpret runs sensitivity interpretation at the given sample.
func (d *Demo) Interpret(ctx context.Context, raw []json.RawMessage) ([]interpret.Result, error) {
	return interpret.Run(ctx, interpret.Predictor(d.fn), d.inputs, raw, nil)
}

// Dispatch delivers a browser event to a component's listeners.
func (d *Demo) Dispatch(componentID string, ev events.Event, payload json.RawMessage) error {
	const op = "session.Dispatch"
	comp, ok := d.byID[componentID]
	if !ok {
		return errors.Ef(op, errors.KindServer, "unknown component %q", componentID)
	}
	switch ev {
	case events.Select:
		var data events.SelectData
		if err := json.Unmarshal(payload, &data); err != nil {
			return errors.E(op, errors.KindSerialize, err)
		}
		comp.Listeners().Emit(ev, data)
	default:
		var value any
		if err := json.Unmarshal(payload, &value); err != nil {
			return errors.E(op, errors.KindSerialize, err)
		}
		comp.Listeners().Emit(ev, events.ChangeData{Value: value})
	}
	d.log.Debug("dispatched event",
		zap.String("component", componentID),
		zap.String("event", string(ev)))
	return nil
}

// Update carries a refreshed component value to the transport layer.
type Update struct {
	ComponentID string          `json:"component_id"`
	Value       json.RawMessage `json:"value"`
}

// Session is one client's connection to a demo.
type Session struct {
	id      string
	demo    *Demo
	updates chan Update
}

// NewSession opens a session for one client.
func (d *Demo) NewSession() *Session {
	return &Session{
		id:      uuid.NewString(),
		demo:    d,
		updates: make(chan Update, 16),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Updates delivers refreshed component values while Run is active.
func (s *Session) Updates() <-chan Update { return s.updates }

// Run drives the refresh cadence of every callable-backed component until ctx
// is cancelled, then closes the updates channel.
func (s *Session) Run(ctx context.Context) {
	defer close(s.updates)

	var sources []components.ValueSource
	for _, c := range s.demo.byID {
		if vs, ok := c.(components.ValueSource); ok && vs.Every() > 0 {
			sources = append(sources, vs)
		}
	}
	if len(sources) == 0 {
		<-ctx.Done()
		return
	}

	log := s.demo.log.With(zap.String("session", s.id))
	log.Info("session started", zap.Int("refreshing", len(sources)))

	done := make(chan struct{})
	for _, src := range sources {
		go func() {
			ticker := s.demo.clock.NewTicker(src.Every())
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					done <- struct{}{}
					return
				case <-ticker.C():
					raw, ok, err := src.RefreshValue()
					if err != nil {
						log.Warn("value refresh failed",
							zap.String("component", src.ID()), zap.Error(err))
						continue
					}
					if !ok {
						continue
					}
					select {
					case s.updates <- Update{ComponentID: src.ID(), Value: raw}:
					case <-ctx.Done():
						done <- struct{}{}
						return
					}
				}
			}
		}()
	}
	for range sources {
		<-done
	}
	log.Info("session closed")
}

// String identifies the session in logs.
func (s *Session) String() string {
	return fmt.Sprintf("session(%s)", s.id)
}
