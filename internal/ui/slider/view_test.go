package slider

import (
	"testing"

	"github.com/alexisbeaulieu97/moonui/internal/ui"
	"github.com/alexisbeaulieu97/moonui/internal/ui/components"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestViewFillsUpToFirstThumb(t *testing.T) {
	t.Parallel()

	s := New(WithDefaultValue(50), WithTrackWidth(11))
	assert.Equal(t, "━━━━━●─────", s.View())
}

func TestViewDrawsEveryThumb(t *testing.T) {
	t.Parallel()

	s := New(WithDefaultValue(20, 80), WithTrackWidth(11))
	assert.Equal(t, "━━●─────●──", s.View())
}

func TestViewMarksFocusedAndDraggedThumb(t *testing.T) {
	t.Parallel()

	s := New(WithDefaultValue(0, 100), WithTrackWidth(5))
	s.Focus()
	assert.Equal(t, "◉───●", s.View())

	s.SetBounds(ui.Rect{Width: 5, Height: 1})
	s.Update(press(4, 0))
	assert.Equal(t, "●───◉", s.View())
}

func TestViewAppliesConsumerOverridesLast(t *testing.T) {
	t.Parallel()

	s := New(WithDefaultValue(100), WithTrackWidth(4)).
		WithAppliers(func(base lipgloss.Style, _ components.Theme) lipgloss.Style {
			return base.PaddingLeft(2)
		}).
		WithAttr("data-testid", "volume")

	assert.Equal(t, "  ━━━●", s.View())
	value, ok := s.Attr("data-testid")
	assert.True(t, ok)
	assert.Equal(t, "volume", value)
}

func TestViewWithDarkTheme(t *testing.T) {
	t.Parallel()

	s := New(WithDefaultValue(0), WithTrackWidth(3))
	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
	assert.Equal(t, "●──", s.ViewWithContext(ctx))
}
