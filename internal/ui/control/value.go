// Package control models component values that are either owned by the
// parent (controlled) or by the component itself (uncontrolled).
//
// The mode is fixed when the value is constructed. A controlled value never
// changes on its own: the component proposes a new value to its consumer and
// waits for the consumer to call Sync with whatever it decided to keep.
package control

// Mode identifies who owns a value.
type Mode int

const (
	// ModeUncontrolled means the component owns the value.
	ModeUncontrolled Mode = iota
	// ModeControlled means the parent owns the value.
	ModeControlled
)

func (m Mode) String() string {
	if m == ModeControlled {
		return "controlled"
	}
	return "uncontrolled"
}

// Value is a controlled or uncontrolled value of type T.
type Value[T any] struct {
	mode    Mode
	current T
}

// Controlled creates a value mirrored from an external source of truth.
func Controlled[T any](external T) Value[T] {
	return Value[T]{mode: ModeControlled, current: external}
}

// Uncontrolled creates a value owned by the component, seeded once.
func Uncontrolled[T any](initial T) Value[T] {
	return Value[T]{mode: ModeUncontrolled, current: initial}
}

// FromOptional picks Controlled when external is non-nil, otherwise
// Uncontrolled seeded from fallback.
func FromOptional[T any](external *T, fallback T) Value[T] {
	if external != nil {
		return Controlled(*external)
	}
	return Uncontrolled(fallback)
}

// Get returns the value currently rendered.
func (v Value[T]) Get() T {
	return v.current
}

// Mode reports who owns the value.
func (v Value[T]) Mode() Mode {
	return v.mode
}

// IsControlled reports whether the parent owns the value.
func (v Value[T]) IsControlled() bool {
	return v.mode == ModeControlled
}

// Propose offers a new value. Uncontrolled values store it immediately;
// controlled values keep the current mirror until Sync is called. The
// return value tells the caller whether the stored value changed.
func (v *Value[T]) Propose(next T) bool {
	if v.mode == ModeControlled {
		return false
	}
	v.current = next
	return true
}

// Sync mirrors a new external value. It is a no-op for uncontrolled values.
func (v *Value[T]) Sync(external T) {
	if v.mode != ModeControlled {
		return
	}
	v.current = external
}
