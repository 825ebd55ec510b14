package components

import (
	"time"

	"github.com/google/uuid"

	"github.com/go-vitrine/vitrine/pkg/events"
	"github.com/go-vitrine/vitrine/pkg/option"
)

// Config is the bundle of optional parameters shared by every component.
//
// Each field distinguishes "unset, use the default" from an explicit value,
// including explicit zero values. Defaults: ShowLabel true, Container true,
// MinWidth 160, Visible true; everything else empty or zero. Interactive has
// no construction-time default: when unset it is inferred from how the
// component is attached to a demo (inputs become interactive, outputs do not).
type Config struct {
	// Label is the component's name in the interface.
	Label option.Option[string]
	// Info is an additional description shown with the component.
	Info option.Option[string]
	// Every is the refresh cadence for callable-backed values. It has no
	// effect when the value is not callable-backed.
	Every option.Option[time.Duration]
	// ShowLabel controls whether the label is displayed.
	ShowLabel option.Option[bool]
	// Container wraps the component in a padded container when true.
	Container option.Option[bool]
	// Scale is the relative width compared to adjacent components in a row.
	Scale option.Option[int]
	// MinWidth is the minimum pixel width before the layout wraps. It takes
	// precedence over Scale when the two conflict.
	MinWidth option.Option[int]
	// Interactive controls whether the user can operate the component.
	Interactive option.Option[bool]
	// Visible hides the component when false.
	Visible option.Option[bool]
	// ElemID is the HTML DOM id assigned to the component, for CSS targeting.
	ElemID option.Option[string]
	// ElemClasses are HTML DOM classes assigned to the component.
	ElemClasses option.Option[[]string]
}

// IOComponent is the embedded base of every widget. It holds the resolved
// configuration and the event registry. After construction every field is
// concrete; sentinels never escape the constructor.
type IOComponent struct {
	id          string
	typ         string
	label       string
	info        string
	every       time.Duration
	showLabel   bool
	container   bool
	scale       int
	minWidth    int
	interactive *bool // nil until inferred from input/output placement
	visible     bool
	elemID      string
	elemClasses []string
	listeners   events.Listeners
}

func newIOComponent(typ string, cfg Config) IOComponent {
	return IOComponent{
		id:          uuid.NewString(),
		typ:         typ,
		label:       cfg.Label.OrZero(),
		info:        cfg.Info.OrZero(),
		every:       cfg.Every.OrZero(),
		showLabel:   cfg.ShowLabel.Or(true),
		container:   cfg.Container.Or(true),
		scale:       cfg.Scale.OrZero(),
		minWidth:    cfg.MinWidth.Or(160),
		interactive: cfg.Interactive.Ptr(),
		visible:     cfg.Visible.Or(true),
		elemID:      cfg.ElemID.OrZero(),
		elemClasses: cfg.ElemClasses.OrZero(),
	}
}

// ID returns the component's session-unique identifier.
func (c *IOComponent) ID() string { return c.id }

// Type returns the widget kind.
func (c *IOComponent) Type() string { return c.typ }

// Label returns the component's display name.
func (c *IOComponent) Label() string { return c.label }

// Info returns the component's additional description.
func (c *IOComponent) Info() string { return c.info }

// Every returns the refresh cadence for callable-backed values.
func (c *IOComponent) Every() time.Duration { return c.every }

// Visible reports whether the component is shown.
func (c *IOComponent) Visible() bool { return c.visible }

// Interactive reports whether the user can operate the component, and whether
// that has been decided yet. Undecided components are resolved when attached
// to a demo.
func (c *IOComponent) Interactive() (value, decided bool) {
	if c.interactive == nil {
		return false, false
	}
	return *c.interactive, true
}

// ResolveInteractive decides an undecided interactive flag. Explicitly
// configured components are unaffected.
func (c *IOComponent) ResolveInteractive(fallback bool) {
	if c.interactive == nil {
		c.interactive = &fallback
	}
}

// Listeners returns the component's event registry.
func (c *IOComponent) Listeners() *events.Listeners { return &c.listeners }

// baseConfigMap renders the shared configuration fields. Widgets extend the
// returned map with their value and any widget-specific entries.
func (c *IOComponent) baseConfigMap() map[string]any {
	m := map[string]any{
		"id":           c.id,
		"type":         c.typ,
		"label":        c.label,
		"info":         c.info,
		"show_label":   c.showLabel,
		"container":    c.container,
		"scale":        c.scale,
		"min_width":    c.minWidth,
		"visible":      c.visible,
		"elem_id":      c.elemID,
		"elem_classes": c.elemClasses,
	}
	if c.every > 0 {
		m["every"] = c.every.Seconds()
	}
	if c.interactive != nil {
		m["interactive"] = *c.interactive
	}
	return m
}
