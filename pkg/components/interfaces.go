package components

import (
	"encoding/json"
	"time"

	"github.com/go-vitrine/vitrine/pkg/events"
)

// Component is the surface every widget exposes to the runtime.
type Component interface {
	// ID is the stable identifier of this instance within its session.
	ID() string
	// Type names the widget kind as the front end knows it ("checkbox").
	Type() string
	// Label is the component's display name. Empty when none was configured.
	Label() string
	// ConfigMap renders the resolved configuration for the front-end
	// transport.
	ConfigMap() map[string]any
	// Listeners is the component's event registry.
	Listeners() *events.Listeners
	// ResolveInteractive decides an undecided interactive flag, typically
	// when the component is attached to a demo as an input or output.
	// Explicitly configured components are unaffected.
	ResolveInteractive(fallback bool)
}

// Input converts a transport value into the demo function's input.
type Input interface {
	Component
	// Preprocess decodes the browser-supplied value and converts it to the
	// shape the wrapped function receives.
	Preprocess(raw json.RawMessage) (any, error)
}

// Output converts the demo function's output into a transport value.
type Output interface {
	Component
	// Postprocess converts a function result to its encoded transport form.
	Postprocess(v any) (json.RawMessage, error)
}

// Selectable is implemented by components whose elements the user can select
// or deselect in the browser.
type Selectable interface {
	Component
	// OnSelect registers a handler for select events.
	OnSelect(fn func(events.SelectData))
}

// NeighborInterpretable is implemented by inputs that explain a function's
// sensitivity by perturbing their value.
type NeighborInterpretable interface {
	Input
	// InterpretationNeighbors returns the perturbed alternatives of x in the
	// function-input shape.
	InterpretationNeighbors(x any) ([]any, error)
	// InterpretationScores maps the per-neighbor scores (in the order
	// InterpretationNeighbors produced them) to this component's
	// interpretation shape for the front end.
	InterpretationScores(x any, scores []float64) (any, error)
}

// ValueSource is implemented by components whose value is backed by a
// callable and can be refreshed on a cadence.
type ValueSource interface {
	Component
	// Every is the refresh cadence. Zero means the value never refreshes.
	Every() time.Duration
	// RefreshValue re-evaluates the backing callable, stores the result, and
	// returns it in transport form. ok is false when the component has no
	// backing callable.
	RefreshValue() (raw json.RawMessage, ok bool, err error)
}
