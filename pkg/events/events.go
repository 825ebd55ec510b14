// Package events defines the event surface components expose to the runtime.
//
// Components own a [Listeners] registry. User code registers handlers through
// typed helpers on the component (OnSelect, OnChange); the session emits events
// into the registry when browser interactions or value refreshes arrive.
package events

import "sync"

// Event names a kind of component event.
type Event string

const (
	// Change fires when a component's value changes for any reason.
	Change Event = "change"
	// Input fires when the user changes a component's value directly.
	Input Event = "input"
	// Select fires when the user selects or deselects a selectable element.
	Select Event = "select"
	// Load fires when a callable-backed value is refreshed on its cadence.
	Load Event = "load"
)

// SelectData is the payload of a Select event. Value carries the label of the
// selected element and Selected its state.
type SelectData struct {
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
}

// ChangeData is the payload of Change, Input, and Load events.
type ChangeData struct {
	Value any `json:"value"`
}

// Handler receives an event payload: SelectData for Select, ChangeData
// otherwise.
type Handler func(data any)

// Listeners is a per-component registry of event handlers.
//
// Registration and emission are safe for concurrent use. Handlers for an event
// run synchronously in registration order.
type Listeners struct {
	mu       sync.RWMutex
	handlers map[Event][]Handler
}

// On registers fn for ev. A nil handler is ignored.
func (l *Listeners) On(ev Event, fn Handler) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.handlers == nil {
		l.handlers = make(map[Event][]Handler)
	}
	l.handlers[ev] = append(l.handlers[ev], fn)
}

// Has reports whether any handler is registered for ev.
func (l *Listeners) Has(ev Event) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.handlers[ev]) > 0
}

// Emit invokes every handler registered for ev with data.
func (l *Listeners) Emit(ev Event, data any) {
	l.mu.RLock()
	handlers := make([]Handler, len(l.handlers[ev]))
	copy(handlers, l.handlers[ev])
	l.mu.RUnlock()

	for _, fn := range handlers {
		fn(data)
	}
}
