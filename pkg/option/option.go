// Package option provides a tagged optional value used throughout component
// configuration.
//
// Component constructors accept a bundle of optional parameters. Each parameter
// must distinguish "the caller said nothing, use the framework default" from an
// explicit caller-supplied value, including explicit zero values such as false,
// 0, or "". A pointer or a bare zero value cannot express that difference, so
// configuration fields use Option instead:
//
//	components.NewCheckbox(components.CheckboxConfig{
//	    Label:   option.Some("Terms accepted"),
//	    Visible: option.Some(false), // explicitly hidden, not "use default"
//	})
//
// The zero Option is unset, so omitting a field in a struct literal means
// "use default" with no extra ceremony.
package option

// Option holds either an explicit value or nothing.
//
// The zero value is unset. Use [Some] to supply an explicit value.
type Option[T any] struct {
	value T
	set   bool
}

// Some returns an Option holding v. The value may be the zero value of T;
// Some(false) is an explicit false, not "use default".
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, set: true}
}

// None returns an unset Option. It is equivalent to the zero value and exists
// for call sites where spelling the intent out reads better.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSet reports whether an explicit value was supplied.
func (o Option[T]) IsSet() bool {
	return o.set
}

// Get returns the explicit value and whether one was supplied.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.set
}

// Or returns the explicit value if one was supplied, otherwise fallback.
func (o Option[T]) Or(fallback T) T {
	if o.set {
		return o.value
	}
	return fallback
}

// OrZero returns the explicit value if one was supplied, otherwise the zero
// value of T.
func (o Option[T]) OrZero() T {
	return o.value
}

// Ptr returns a pointer to the explicit value, or nil if unset. It is intended
// for tri-state fields whose default cannot be resolved at construction time,
// such as a component's interactive flag.
func (o Option[T]) Ptr() *T {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}
