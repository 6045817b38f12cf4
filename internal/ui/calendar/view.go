package calendar

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/moonui/internal/dateformat"
	"github.com/alexisbeaulieu97/moonui/internal/ui/components"
	"github.com/charmbracelet/lipgloss"
)

// Grid geometry in cells. Days are two cells wide with one cell between.
const (
	cellWidth    = 2
	cellStride   = cellWidth + 1
	gridWidth    = 7*cellStride - 1
	captionRow   = 0
	weekdayRow   = 1
	firstWeekRow = 2
)

// View renders the calendar with the default theme.
func (c *Calendar) View() string {
	return c.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the caption with chevrons, the weekday header and
// one row per week.
func (c *Calendar) ViewWithContext(ctx components.RenderContext) string {
	ctx = ctx.Normalized()
	theme := ctx.Theme

	lines := []string{c.renderCaption(theme), c.renderWeekdays(theme)}
	for _, week := range c.Weeks() {
		lines = append(lines, c.renderWeek(theme, week))
	}

	return c.ApplyOverrides(c.RawStyle(), theme).Render(strings.Join(lines, "\n"))
}

func (c *Calendar) renderCaption(theme components.Theme) string {
	nav := components.VariantStyle(theme, components.CalendarNav)
	title := components.VariantStyle(theme, components.CalendarCaption).
		Width(gridWidth - 2).
		Align(lipgloss.Center).
		Render(dateformat.Format(c.month, dateformat.PatternMonthYear, ""))

	return nav.Render(theme.Glyphs.ChevronLeft) + title + nav.Render(theme.Glyphs.ChevronRight)
}

func (c *Calendar) renderWeekdays(theme components.Theme) string {
	style := components.VariantStyle(theme, components.CalendarWeekday)
	labels := make([]string, 0, 7)
	for _, wd := range Weekdays(c.weekStart) {
		labels = append(labels, style.Render(wd.String()[:cellWidth]))
	}
	return strings.Join(labels, " ")
}

func (c *Calendar) renderWeek(theme components.Theme, week []Day) string {
	cells := make([]string, 0, len(week))
	for _, day := range week {
		if day.Empty {
			cells = append(cells, strings.Repeat(" ", cellWidth))
			continue
		}

		state := c.Classify(day.Date)
		style := components.VariantStyle(theme, state.Variant())
		if state.Cursor && c.focused {
			style = components.ApplyVariant(style, theme, components.DayCursor)
		}
		cells = append(cells, style.Render(fmt.Sprintf("%*d", cellWidth, day.Date.Day())))
	}
	return strings.Join(cells, " ")
}
