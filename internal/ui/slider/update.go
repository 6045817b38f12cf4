package slider

import (
	"github.com/alexisbeaulieu97/moonui/internal/ui"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ChangeMsg is emitted after any interaction that produced new values.
type ChangeMsg struct {
	ID     string
	Values []float64
}

// Update handles mouse and key messages. Disabled sliders ignore input.
func (s *Slider) Update(msg tea.Msg) (*Slider, tea.Cmd) {
	if s.disabled {
		return s, nil
	}

	changed := false
	switch msg := msg.(type) {
	case tea.MouseMsg:
		changed = s.handleMouse(msg)
	case tea.KeyMsg:
		if s.focused {
			changed = s.handleKey(msg)
		}
	}

	if !changed {
		return s, nil
	}
	return s, s.changeCmd()
}

func (s *Slider) changeCmd() tea.Cmd {
	msg := ChangeMsg{ID: s.id, Values: append([]float64(nil), s.proposed...)}
	return func() tea.Msg { return msg }
}

func (s *Slider) handleMouse(msg tea.MouseMsg) bool {
	if s.capture != nil {
		switch msg.Action {
		case tea.MouseActionMotion:
			return s.setThumb(s.capture.thumb, s.valueAtColumn(msg.X))
		case tea.MouseActionRelease:
			s.release("pointer up")
			return false
		case tea.MouseActionPress:
			// The release of the previous drag never arrived.
			s.release("lost release")
		default:
			return false
		}
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	if !s.trackRect().Contains(msg.X, msg.Y) {
		return false
	}

	if thumb, ok := s.thumbAt(msg.X); ok {
		s.focused = true
		s.acquire(thumb)
		return false
	}

	// A bare track click always moves the first thumb.
	return s.setThumb(0, s.valueAtColumn(msg.X))
}

func (s *Slider) handleKey(msg tea.KeyMsg) bool {
	values := s.values.Get()
	if len(values) == 0 {
		return false
	}
	s.clampFocus()
	current := values[s.focusIndex]

	switch {
	case key.Matches(msg, s.keys.NextThumb):
		s.focusIndex = (s.focusIndex + 1) % len(values)
		return false
	case key.Matches(msg, s.keys.PrevThumb):
		s.focusIndex = (s.focusIndex - 1 + len(values)) % len(values)
		return false
	case key.Matches(msg, s.keys.Decrease):
		return s.stepTo(current - s.step)
	case key.Matches(msg, s.keys.Increase):
		return s.stepTo(current + s.step)
	case key.Matches(msg, s.keys.PageDecrease):
		return s.stepTo(current - s.step*pageSteps)
	case key.Matches(msg, s.keys.PageIncrease):
		return s.stepTo(current + s.step*pageSteps)
	case key.Matches(msg, s.keys.Home):
		return s.stepTo(s.min)
	case key.Matches(msg, s.keys.End):
		return s.stepTo(s.max)
	}
	return false
}

func (s *Slider) stepTo(raw float64) bool {
	next := Snap(raw, s.min, s.max, s.step)
	if next == s.values.Get()[s.focusIndex] {
		return false
	}
	return s.setThumb(s.focusIndex, next)
}

func (s *Slider) valueAtColumn(x int) float64 {
	return ValueAt(PercentAt(x, s.trackRect()), s.min, s.max, s.step)
}

// trackRect is the hit area: the recorded origin with the drawn width and
// at least one row.
func (s *Slider) trackRect() ui.Rect {
	rect := ui.Rect{X: s.bounds.X, Y: s.bounds.Y, Width: s.trackWidth, Height: s.bounds.Height}
	if rect.Height < 1 {
		rect.Height = 1
	}
	return rect
}
