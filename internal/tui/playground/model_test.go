package playground

import (
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/moonui/internal/config"
	"github.com/alexisbeaulieu97/moonui/internal/ui/components"
	moonerrors "github.com/alexisbeaulieu97/moonui/pkg/errors"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func today() time.Time {
	return time.Date(2024, time.January, 10, 0, 0, 0, 0, time.Local)
}

func newTestModel(t *testing.T, cfg *config.Config) Model {
	t.Helper()

	m, err := NewModel(cfg, WithClock(today))
	require.NoError(t, err)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)
	_ = m.View()
	return m
}

func TestNewModelDefaults(t *testing.T) {
	m, err := NewModel(nil, WithClock(today))
	require.NoError(t, err)

	assert.Equal(t, SectionSlider, m.Focused())
	assert.True(t, m.Slider().Focused())
	assert.Equal(t, []float64{25, 75}, m.Slider().Values())
	assert.Equal(t, components.ThemeNameLight, m.Theme().Name)
	assert.Equal(t, "Initializing...", m.View())
	assert.Nil(t, m.Init())
}

func TestNewModelRejectsBadSlider(t *testing.T) {
	cfg := config.Default()
	cfg.Slider.Step = 0

	_, err := NewModel(&cfg)

	var validationErr *moonerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "step", validationErr.Field)
}

func TestNewModelAppliesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Theme = "dark"
	cfg.Slider.Values = []float64{40}
	cfg.Pickers.DefaultDate = "2024-01-20"
	cfg.Pickers.DefaultTime = "09:30"
	cfg.Pickers.TimeFormat = "12h"

	m, err := NewModel(&cfg, WithClock(today))
	require.NoError(t, err)

	assert.Equal(t, components.ThemeNameDark, m.Theme().Name)
	assert.Equal(t, []float64{40}, m.Slider().Values())
	assert.Equal(t, "January 20th, 2024", m.DatePicker().Label())
	assert.Equal(t, "January 20th, 2024 09:30 AM", m.DateTimePicker().Label())
	assert.Equal(t, "January 2024", m.MonthPicker().Label())
	assert.Equal(t, "Pick a date range", m.RangePicker().Label())
}

func TestWithThemeOverridesConfig(t *testing.T) {
	m, err := NewModel(nil, WithTheme(components.DarkTheme()))
	require.NoError(t, err)
	assert.Equal(t, components.ThemeNameDark, m.Theme().Name)
}

func TestSectionString(t *testing.T) {
	assert.Equal(t, "Date and time", SectionDateTime.String())
	assert.Equal(t, "Section(9)", Section(9).String())
}
