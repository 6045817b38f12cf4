package playground

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/moonui/internal/dateformat"
	"github.com/alexisbeaulieu97/moonui/internal/ui/calendar"
	"github.com/alexisbeaulieu97/moonui/internal/ui/components"
	"github.com/alexisbeaulieu97/moonui/internal/ui/datepicker"
	"github.com/alexisbeaulieu97/moonui/internal/ui/slider"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case slider.ChangeMsg:
		m.status = fmt.Sprintf("slider: %s", formatValues(msg.Values, m.slider.Step()))
		return m, nil

	case calendar.SelectMsg:
		m.status = "calendar: " + describeSelection(msg.Selection)
		return m, nil

	case calendar.MonthMsg:
		m.status = "calendar showing " + dateformat.Format(msg.Month, dateformat.PatternMonthYear, "")
		return m, nil

	case datepicker.DateMsg:
		pattern := dateformat.PatternLongDate
		if msg.ID == "datetime" {
			pattern += " HH:mm"
		}
		m.status = fmt.Sprintf("%s: %s", msg.ID, dateformat.Format(msg.Date, pattern, "cleared"))
		return m, nil

	case datepicker.RangeMsg:
		m.status = fmt.Sprintf("%s: %s", msg.ID, dateformat.FormatRange(msg.Range.From, msg.Range.To, dateformat.PatternRangeDate, "cleared"))
		if msg.Range.IsOpen() {
			m.status += " - pick the end"
		}
		return m, nil

	case datepicker.MonthMsg:
		m.status = fmt.Sprintf("%s: %s", msg.ID, dateformat.Format(msg.Month, dateformat.PatternMonthYear, "cleared"))
		return m, nil

	case ConfigMsg:
		return m.reload(msg), nil

	case ConfigErrorMsg:
		m.log.Error(msg.Err, "config reload failed", "source", msg.Source)
		m.status = fmt.Sprintf("config error: %v", msg.Err)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.log.Warn("clipboard unavailable", "error", msg.err.Error())
			m.status = fmt.Sprintf("copy failed: %v", msg.err)
		} else {
			m.status = "copied " + msg.text
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.slider.Unmount()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.applyFocus((m.focus + 1) % sectionCount)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.applyFocus((m.focus + sectionCount - 1) % sectionCount)
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyValue()
	}

	return m, m.updateSection(m.focus, msg)
}

func (m *Model) toggleTheme() {
	if m.theme.Name == components.ThemeNameDark {
		m.theme = components.DefaultTheme()
	} else {
		m.theme = components.DarkTheme()
	}
	m.styles = newStyles(m.theme)
	m.log.Debug("theme switched", "theme", m.theme.Name)
}

// reload rebuilds every section from a new config, keeping the window
// size, help state and focused section.
func (m Model) reload(msg ConfigMsg) Model {
	next, err := newModel(msg.Config, m.opts)
	if err != nil {
		m.log.Error(err, "config rejected", "source", msg.Source)
		m.status = fmt.Sprintf("config error: %v", err)
		return m
	}

	m.slider.Unmount()
	next.width, next.height = m.width, m.height
	next.help.Width = m.help.Width
	next.help.ShowAll = m.help.ShowAll
	next.applyFocus(m.focus)
	next.status = "reloaded " + msg.Source
	next.log.Info("config reloaded", "source", msg.Source)
	return next
}

// copyValue sends the focused section's value to the clipboard.
func (m Model) copyValue() tea.Cmd {
	text, ok := m.value(m.focus)
	if !ok {
		m.log.Debug("nothing to copy", "section", m.focus.String())
		return nil
	}
	write := m.opts.copy
	return func() tea.Msg {
		return copiedMsg{text: text, err: write(text)}
	}
}

// value is the text a section currently holds, if any.
func (m Model) value(s Section) (string, bool) {
	switch s {
	case SectionSlider:
		values := m.slider.Values()
		return formatValues(values, m.slider.Step()), len(values) > 0
	case SectionCalendar:
		sel := m.calendar.Selected()
		if sel.Date.IsZero() && sel.Range.From.IsZero() {
			return "", false
		}
		return describeSelection(sel), true
	case SectionDate:
		return m.date.Label(), !m.date.Date().IsZero()
	case SectionRange:
		return m.dateRng.Label(), !m.dateRng.Range().From.IsZero()
	case SectionDateTime:
		return m.dateTime.Label(), !m.dateTime.Date().IsZero()
	case SectionMonth:
		return m.month.Label(), !m.month.Month().IsZero()
	}
	return "", false
}

// handleMouse gives a captured slider every pointer event. Otherwise a
// press focuses the section under it and every section sees the event, so
// open popovers can dismiss themselves.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.slider.Capturing() {
		_, cmd := m.slider.Update(msg)
		return cmd
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		for s := Section(0); s < sectionCount; s++ {
			if m.frame.areas[s].Contains(msg.X, msg.Y) && s != m.focus {
				m.applyFocus(s)
				break
			}
		}
	}

	cmds := make([]tea.Cmd, 0, sectionCount)
	for s := Section(0); s < sectionCount; s++ {
		cmds = append(cmds, m.updateSection(s, msg))
	}
	return tea.Batch(cmds...)
}

func (m Model) updateSection(s Section, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s {
	case SectionSlider:
		_, cmd = m.slider.Update(msg)
	case SectionCalendar:
		_, cmd = m.calendar.Update(msg)
	case SectionDate:
		_, cmd = m.date.Update(msg)
	case SectionRange:
		_, cmd = m.dateRng.Update(msg)
	case SectionDateTime:
		_, cmd = m.dateTime.Update(msg)
	case SectionMonth:
		_, cmd = m.month.Update(msg)
	}
	return cmd
}

func formatValues(values []float64, step float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%.*f", slider.Precision(step), v)
	}
	return strings.Join(parts, ", ")
}

func describeSelection(sel calendar.Selection) string {
	if !sel.Date.IsZero() {
		return dateformat.Format(sel.Date, dateformat.PatternLongDate, "")
	}
	text := dateformat.FormatRange(sel.Range.From, sel.Range.To, dateformat.PatternRangeDate, "nothing selected")
	if sel.Range.IsOpen() {
		text += " - pick the end"
	}
	return text
}
