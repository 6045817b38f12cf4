package calendar

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// SelectMsg is emitted after a day was selected.
type SelectMsg struct {
	Selection Selection
}

// MonthMsg is emitted after the displayed month changed.
type MonthMsg struct {
	Month time.Time
}

// Update handles keyboard navigation and mouse clicks on days and chevrons.
func (c *Calendar) Update(msg tea.Msg) (*Calendar, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if c.focused {
			return c, c.handleKey(msg)
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return c, c.handleClick(msg.X, msg.Y)
		}
	}
	return c, nil
}

func (c *Calendar) handleKey(msg tea.KeyMsg) tea.Cmd {
	before := c.month

	switch {
	case key.Matches(msg, c.keys.Left):
		c.moveCursor(-1)
	case key.Matches(msg, c.keys.Right):
		c.moveCursor(1)
	case key.Matches(msg, c.keys.Up):
		c.moveCursor(-7)
	case key.Matches(msg, c.keys.Down):
		c.moveCursor(7)
	case key.Matches(msg, c.keys.PrevMonth):
		c.PrevMonth()
	case key.Matches(msg, c.keys.NextMonth):
		c.NextMonth()
	case key.Matches(msg, c.keys.Select):
		return c.selectCmd(c.cursor)
	default:
		return nil
	}

	if !c.month.Equal(before) {
		return c.monthCmd()
	}
	return nil
}

func (c *Calendar) handleClick(x, y int) tea.Cmd {
	col := x - c.origin.X
	row := y - c.origin.Y
	if col < 0 || col >= gridWidth || row < 0 {
		return nil
	}

	switch row {
	case captionRow:
		switch col {
		case 0:
			c.PrevMonth()
			return c.monthCmd()
		case gridWidth - 1:
			c.NextMonth()
			return c.monthCmd()
		}
		return nil
	case weekdayRow:
		return nil
	}

	if day, ok := c.DayAt(x, y); ok {
		return c.selectCmd(day.Date)
	}
	return nil
}

// DayAt returns the day drawn at screen cell (x, y), if any.
func (c *Calendar) DayAt(x, y int) (Day, bool) {
	col := x - c.origin.X
	row := y - c.origin.Y - firstWeekRow
	if col < 0 || col >= gridWidth || row < 0 || col%cellStride == cellWidth {
		return Day{}, false
	}
	weeks := c.Weeks()
	index := col / cellStride
	if row >= len(weeks) || index >= len(weeks[row]) || weeks[row][index].Empty {
		return Day{}, false
	}
	return weeks[row][index], true
}

func (c *Calendar) selectCmd(day time.Time) tea.Cmd {
	selection, ok := c.Select(day)
	if !ok {
		return nil
	}
	return func() tea.Msg { return SelectMsg{Selection: selection} }
}

func (c *Calendar) monthCmd() tea.Cmd {
	month := c.month
	return func() tea.Msg { return MonthMsg{Month: month} }
}
