// Package components provides the widget set declared by a demo.
//
// A component is an immutable-ish description of one element of the demo's
// interface: its configuration (label, layout hints, visibility) and its
// runtime value. Components are constructed once when the interface is
// declared and live for the enclosing session.
//
// # Construction
//
// Each component takes a config bundle of optional parameters. Every parameter
// is independently defaultable through [option.Option], so an explicit zero
// value (Visible: option.Some(false)) is distinct from "use the default":
//
//	cb := components.NewCheckbox(components.CheckboxConfig{
//	    Value: option.Some(true),
//	    Config: components.Config{
//	        Label: option.Some("Survived"),
//	        Info:  option.Some("Whether the passenger survived"),
//	    },
//	})
//
// Construction resolves every parameter to a concrete value; reading a
// component back never yields a sentinel.
//
// # Capabilities
//
// A component's behaviors are separate narrow interfaces, not a deep
// hierarchy: [Input] and [Output] for value conversion, [Selectable] for the
// select event surface, [NeighborInterpretable] for sensitivity
// interpretation, [ValueSource] for callable-backed refresh. The session and
// the interpretation engine discover capabilities with type assertions.
package components
