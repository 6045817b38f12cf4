package playground

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestViewShowsEverySection(t *testing.T) {
	m := newTestModel(t, nil)
	view := m.View()

	assert.Contains(t, view, "MoonUI playground")
	assert.Contains(t, view, "› Slider")
	for _, title := range []string{"Calendar", "Date", "Date range", "Date and time", "Month"} {
		assert.Contains(t, view, title)
	}
	assert.Contains(t, view, "Pick a date")
	assert.Contains(t, view, "January 2024")
	assert.Contains(t, view, "tab next section")
	assert.NotContains(t, view, "Terminal too small")
}

func TestViewRecordsColumns(t *testing.T) {
	m := newTestModel(t, nil)

	slider := m.Area(SectionSlider)
	cal := m.Area(SectionCalendar)
	date := m.Area(SectionDate)

	assert.Equal(t, indent, slider.X)
	assert.Equal(t, slider.X, cal.X)
	assert.Greater(t, cal.Y, slider.Y+slider.Height)
	assert.Equal(t, slider.Y, date.Y)
	assert.GreaterOrEqual(t, date.X, leftColumn+columnGap)

	lines := strings.Split(m.View(), "\n")
	assert.Contains(t, lines[slider.Y], "Slider")
	assert.Contains(t, lines[date.Y], "Date")
}

func TestViewWarnsWhenTooSmall(t *testing.T) {
	m := newTestModel(t, nil)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	view := updated.(Model).View()

	assert.Contains(t, view, "Terminal too small (60x20)")
}

func TestHelpExpands(t *testing.T) {
	m := newTestModel(t, nil)
	short := m.View()

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	full := m.View()

	assert.Contains(t, full, "toggle theme")
	assert.NotContains(t, short, "toggle theme")
}
