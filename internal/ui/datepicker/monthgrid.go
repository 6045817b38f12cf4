package datepicker

import (
	"strings"
	"time"

	"github.com/alexisbeaulieu97/moonui/internal/dateformat"
	"github.com/alexisbeaulieu97/moonui/internal/ui/calendar"
	"github.com/alexisbeaulieu97/moonui/internal/ui/components"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Month grid geometry: a caption row, then four rows of three months.
const (
	monthCellWidth  = 5
	monthCellStride = monthCellWidth + 1
	monthColumns    = 3
	monthGridWidth  = monthColumns*monthCellStride - 1
)

// monthGrid shows the twelve months of the browsed year.
type monthGrid struct {
	year     int
	selected time.Time
	cursor   time.Month
	focused  bool
	today    func() time.Time
	keys     calendar.KeyMap
	x, y     int
	onPick   func(time.Time)
}

func (g *monthGrid) prevYear() { g.year-- }
func (g *monthGrid) nextYear() { g.year++ }

// moveCursor steps through months, carrying into the browsed year.
func (g *monthGrid) moveCursor(delta int) {
	index := int(g.cursor) - 1 + delta
	for index < 0 {
		index += 12
		g.year--
	}
	for index >= 12 {
		index -= 12
		g.year++
	}
	g.cursor = time.Month(index + 1)
}

func (g *monthGrid) pick(month time.Month) {
	g.cursor = month
	if g.onPick != nil {
		g.onPick(time.Date(g.year, month, 1, 0, 0, 0, 0, time.Local))
	}
}

func (g *monthGrid) update(msg tea.Msg) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !g.focused {
			return
		}
		switch {
		case key.Matches(msg, g.keys.Left):
			g.moveCursor(-1)
		case key.Matches(msg, g.keys.Right):
			g.moveCursor(1)
		case key.Matches(msg, g.keys.Up):
			g.moveCursor(-monthColumns)
		case key.Matches(msg, g.keys.Down):
			g.moveCursor(monthColumns)
		case key.Matches(msg, g.keys.PrevMonth):
			g.prevYear()
		case key.Matches(msg, g.keys.NextMonth):
			g.nextYear()
		case key.Matches(msg, g.keys.Select):
			g.pick(g.cursor)
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			g.click(msg.X-g.x, msg.Y-g.y)
		}
	}
}

func (g *monthGrid) click(col, row int) {
	if col < 0 || col >= monthGridWidth || row < 0 {
		return
	}
	if row == 0 {
		switch col {
		case 0:
			g.prevYear()
		case monthGridWidth - 1:
			g.nextYear()
		}
		return
	}
	if month, ok := monthAt(col, row); ok {
		g.pick(month)
	}
}

// monthAt maps a cell relative to the grid's corner to a month.
func monthAt(col, row int) (time.Month, bool) {
	if col%monthCellStride == monthCellWidth {
		return 0, false
	}
	index := (row-1)*monthColumns + col/monthCellStride
	if row < 1 || index >= 12 {
		return 0, false
	}
	return time.Month(index + 1), true
}

func (g *monthGrid) view(ctx components.RenderContext) string {
	theme := ctx.Normalized().Theme

	nav := components.VariantStyle(theme, components.CalendarNav)
	caption := components.VariantStyle(theme, components.CalendarCaption).
		Width(monthGridWidth - 2).
		Align(lipgloss.Center).
		Render(dateformat.Format(time.Date(g.year, time.January, 1, 0, 0, 0, 0, time.Local), "yyyy", ""))
	lines := []string{nav.Render(theme.Glyphs.ChevronLeft) + caption + nav.Render(theme.Glyphs.ChevronRight)}

	today := g.today()
	for row := 0; row < 12/monthColumns; row++ {
		cells := make([]string, 0, monthColumns)
		for col := 0; col < monthColumns; col++ {
			month := time.Month(row*monthColumns + col + 1)
			first := time.Date(g.year, month, 1, 0, 0, 0, 0, time.Local)

			style := components.VariantStyle(theme, components.CalendarMonthCell)
			switch {
			case dateformat.IsValid(g.selected) && calendar.SameMonth(first, g.selected):
				style = components.VariantStyle(theme, components.CalendarMonthCellSelected)
			case calendar.SameMonth(first, today):
				style = components.ApplyVariant(style, theme, components.DayToday)
			}
			if g.focused && month == g.cursor {
				style = components.ApplyVariant(style, theme, components.DayCursor)
			}
			cells = append(cells, style.Width(monthCellWidth).Align(lipgloss.Center).Render(dateformat.Format(first, "MMM", "")))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}
