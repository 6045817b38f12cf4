// Package slider implements a multi-thumb range input driven by mouse and
// keyboard messages.
//
// A press on a thumb acquires a pointer capture for that thumb. While the
// capture is held, Capturing reports true and the host must route every
// mouse message to the slider, wherever the pointer is. The capture is
// released on mouse release, on Unmount and when the slider is disabled.
package slider

import (
	"fmt"

	"github.com/alexisbeaulieu97/moonui/internal/logger"
	"github.com/alexisbeaulieu97/moonui/internal/ui"
	"github.com/alexisbeaulieu97/moonui/internal/ui/components"
	"github.com/alexisbeaulieu97/moonui/internal/ui/control"
	moonerrors "github.com/alexisbeaulieu97/moonui/pkg/errors"
)

const (
	defaultMin        = 0
	defaultMax        = 100
	defaultStep       = 1
	defaultTrackWidth = 24
	pageSteps         = 10
)

// ThumbInfo is the accessibility contract of one thumb.
type ThumbInfo struct {
	Index    int
	Role     string
	Label    string
	ValueMin float64
	ValueMax float64
	ValueNow float64
	TabIndex int
	Offset   float64
	Focused  bool
	Dragging bool
}

// Option configures a Slider at construction.
type Option func(*Slider)

// Slider is a track with one thumb per value.
type Slider struct {
	components.BaseComponent

	id            string
	values        control.Value[[]float64]
	min           float64
	max           float64
	step          float64
	disabled      bool
	onValueChange func([]float64)

	bounds     ui.Rect
	trackWidth int
	focused    bool
	focusIndex int
	capture    *capture
	proposed   []float64

	keys KeyMap
	log  *logger.Logger

	explicitValue   []float64
	hasValue        bool
	defaultValue    []float64
	hasDefaultValue bool
}

// capture is the pointer grab held while a thumb is dragged.
type capture struct {
	thumb int
}

// WithID names the slider in change messages.
func WithID(id string) Option {
	return func(s *Slider) { s.id = id }
}

// WithValue makes the slider controlled by values.
func WithValue(values ...float64) Option {
	return func(s *Slider) {
		s.explicitValue = append([]float64(nil), values...)
		s.hasValue = true
	}
}

// WithDefaultValue seeds an uncontrolled slider.
func WithDefaultValue(values ...float64) Option {
	return func(s *Slider) {
		s.defaultValue = append([]float64(nil), values...)
		s.hasDefaultValue = true
	}
}

func WithMin(min float64) Option {
	return func(s *Slider) { s.min = min }
}

func WithMax(max float64) Option {
	return func(s *Slider) { s.max = max }
}

// WithStep sets the step. Steps below 1 also set the rounding precision.
func WithStep(step float64) Option {
	return func(s *Slider) { s.step = step }
}

func WithDisabled(disabled bool) Option {
	return func(s *Slider) { s.disabled = disabled }
}

// WithOnValueChange registers the change callback. It is called
// synchronously on every drag sample, track click and key step.
func WithOnValueChange(fn func([]float64)) Option {
	return func(s *Slider) { s.onValueChange = fn }
}

// WithTrackWidth sets the drawn track width in cells.
func WithTrackWidth(width int) Option {
	return func(s *Slider) { s.trackWidth = width }
}

func WithKeyMap(keys KeyMap) Option {
	return func(s *Slider) { s.keys = keys }
}

func WithLogger(log *logger.Logger) Option {
	return func(s *Slider) { s.log = log.WithComponent("slider") }
}

// New creates a slider. Values come from WithValue, else WithDefaultValue,
// else a single thumb at 0. Out-of-domain options are corrected rather than
// rejected; use Validate to report them.
func New(opts ...Option) *Slider {
	s := &Slider{
		BaseComponent: components.NewBaseComponent(),
		min:           defaultMin,
		max:           defaultMax,
		step:          defaultStep,
		trackWidth:    defaultTrackWidth,
		keys:          DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := Validate(s.min, s.max, s.step); err != nil {
		s.log.Warn("correcting slider options", "error", err.Error())
	}
	if s.step <= 0 {
		s.step = defaultStep
	}
	if s.max < s.min {
		s.max = s.min
	}
	if s.trackWidth < 1 {
		s.trackWidth = 1
	}

	switch {
	case s.hasValue:
		s.values = control.Controlled(s.explicitValue)
	case s.hasDefaultValue:
		s.values = control.Uncontrolled(s.defaultValue)
	default:
		s.values = control.Uncontrolled([]float64{0})
	}
	s.explicitValue, s.defaultValue = nil, nil

	return s
}

// Validate reports option combinations outside the slider's domain.
func Validate(min, max, step float64) error {
	if step <= 0 {
		return moonerrors.NewValidationError("step", fmt.Sprintf("must be greater than zero, got %v", step), nil)
	}
	if max < min {
		return moonerrors.NewValidationError("max", fmt.Sprintf("must not be less than min (%v < %v)", max, min), nil)
	}
	return nil
}

// ID returns the slider id.
func (s *Slider) ID() string {
	return s.id
}

// Values returns a copy of the current values.
func (s *Slider) Values() []float64 {
	return append([]float64(nil), s.values.Get()...)
}

// SetValue mirrors a new controlled value. Uncontrolled sliders ignore it.
func (s *Slider) SetValue(values []float64) {
	s.values.Sync(append([]float64(nil), values...))
	s.clampFocus()
}

// IsControlled reports whether the parent owns the values.
func (s *Slider) IsControlled() bool {
	return s.values.IsControlled()
}

func (s *Slider) Min() float64  { return s.min }
func (s *Slider) Max() float64  { return s.max }
func (s *Slider) Step() float64 { return s.step }

// Disabled reports whether interaction is off.
func (s *Slider) Disabled() bool {
	return s.disabled
}

// SetDisabled toggles interaction. Disabling mid-drag releases the capture.
func (s *Slider) SetDisabled(disabled bool) {
	s.disabled = disabled
	if disabled {
		s.release("disabled")
	}
}

// SetBounds records where the track was drawn. A positive width also
// resizes the track.
func (s *Slider) SetBounds(rect ui.Rect) {
	s.bounds = rect
	if rect.Width > 0 {
		s.trackWidth = rect.Width
	}
}

// Bounds returns the recorded track area.
func (s *Slider) Bounds() ui.Rect {
	return s.bounds
}

// TrackWidth is the drawn track width in cells.
func (s *Slider) TrackWidth() int {
	return s.trackWidth
}

// Focus gives the slider keyboard focus.
func (s *Slider) Focus() {
	s.focused = true
	s.clampFocus()
}

// Blur removes keyboard focus.
func (s *Slider) Blur() {
	s.focused = false
}

// Focused reports keyboard focus.
func (s *Slider) Focused() bool {
	return s.focused
}

// FocusedThumb is the index keyboard steps apply to.
func (s *Slider) FocusedThumb() int {
	return s.focusIndex
}

// Capturing reports whether a drag holds the pointer capture.
func (s *Slider) Capturing() bool {
	return s.capture != nil
}

// DraggedThumb returns the thumb being dragged, if any.
func (s *Slider) DraggedThumb() (int, bool) {
	if s.capture == nil {
		return 0, false
	}
	return s.capture.thumb, true
}

// Unmount releases the pointer capture if a drag is in progress. Hosts call
// it when the slider leaves the screen.
func (s *Slider) Unmount() {
	s.release("unmount")
}

// KeyMap returns the active bindings.
func (s *Slider) KeyMap() KeyMap {
	return s.keys
}

// Thumbs describes every thumb for assistive output.
func (s *Slider) Thumbs() []ThumbInfo {
	values := s.values.Get()
	infos := make([]ThumbInfo, len(values))
	for i, v := range values {
		info := ThumbInfo{
			Index:    i,
			Role:     "slider",
			ValueMin: s.min,
			ValueMax: s.max,
			ValueNow: v,
			TabIndex: 0,
			Offset:   Offset(v, s.min, s.max),
			Focused:  s.focused && i == s.focusIndex,
		}
		if len(values) > 1 {
			info.Label = fmt.Sprintf("Thumb %d", i+1)
		}
		if s.disabled {
			info.TabIndex = -1
		}
		if s.capture != nil && s.capture.thumb == i {
			info.Dragging = true
		}
		infos[i] = info
	}
	return infos
}

// WithAppliers appends consumer style overrides, applied after the slider's
// own styling.
func (s *Slider) WithAppliers(appliers ...components.StyleFunc) *Slider {
	s.AddAppliers(appliers...)
	return s
}

// WithAttr stores a pass-through attribute.
func (s *Slider) WithAttr(key, value string) *Slider {
	s.SetAttr(key, value)
	return s
}

func (s *Slider) acquire(thumb int) {
	s.capture = &capture{thumb: thumb}
	s.focusIndex = thumb
	s.log.Debug("drag started", "thumb", thumb)
}

func (s *Slider) release(reason string) {
	if s.capture == nil {
		return
	}
	s.log.Debug("drag ended", "thumb", s.capture.thumb, "reason", reason, "values", s.values.Get())
	s.capture = nil
}

func (s *Slider) clampFocus() {
	n := len(s.values.Get())
	if s.focusIndex >= n {
		s.focusIndex = n - 1
	}
	if s.focusIndex < 0 {
		s.focusIndex = 0
	}
}

// setThumb proposes a new value for one thumb and notifies the consumer.
func (s *Slider) setThumb(index int, value float64) bool {
	current := s.values.Get()
	if index < 0 || index >= len(current) {
		return false
	}

	next := append([]float64(nil), current...)
	next[index] = value
	s.values.Propose(next)
	s.proposed = next

	if s.onValueChange != nil {
		s.onValueChange(append([]float64(nil), next...))
	}
	return true
}
