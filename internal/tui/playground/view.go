package playground

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/moonui/internal/ui"
	"github.com/alexisbeaulieu97/moonui/internal/ui/components"
)

const (
	minWidth  = 72
	minHeight = 24
)

var (
	leftSections  = []Section{SectionSlider, SectionCalendar}
	rightSections = []Section{SectionDate, SectionRange, SectionDateTime, SectionMonth}
)

// View renders the current model state. Drawing also records each
// section's screen position for mouse hit-testing.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	ctx := components.RenderContext{
		Theme:       m.theme,
		Constraints: components.Unconstrained(),
		ParentWidth: m.width,
	}

	header := m.renderHeader()
	if m.width < minWidth || m.height < minHeight {
		banner := m.styles.errorBanner.Render(
			fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d", m.width, m.height, minWidth, minHeight),
		)
		header = lipgloss.JoinVertical(lipgloss.Left, header, banner)
	}
	top := lipgloss.Height(header)

	left := m.renderColumn(ctx, leftSections, indent, top)
	leftWidth := max(leftColumn, lipgloss.Width(left))
	right := m.renderColumn(ctx, rightSections, leftWidth+columnGap+indent, top)
	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.NewStyle().Width(leftWidth).Render(left),
		strings.Repeat(" ", columnGap),
		right,
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.renderFooter())
}

func (m Model) renderHeader() string {
	title := m.styles.title.Render("MoonUI playground")
	status := m.styles.status.Render(m.status)
	return m.styles.header.Render(lipgloss.JoinVertical(lipgloss.Left, title, status))
}

// renderColumn stacks sections top to bottom from screen cell (x, y), each
// titled and separated by a blank line.
func (m Model) renderColumn(ctx components.RenderContext, sections []Section, x, y int) string {
	blocks := make([]string, 0, len(sections))
	for _, s := range sections {
		title := m.styles.section.Render(s.String())
		if s == m.focus {
			title = m.styles.sectionActive.Render("› " + s.String())
		}

		widget := m.renderSection(ctx, s)
		m.place(s, x, y+1)

		block := lipgloss.JoinVertical(lipgloss.Left, title, widget)
		m.frame.areas[s] = ui.Rect{X: x, Y: y, Width: lipgloss.Width(block), Height: lipgloss.Height(block)}

		blocks = append(blocks, block)
		y += lipgloss.Height(block) + 1
	}
	return m.styles.column.Render(strings.Join(blocks, "\n\n"))
}

func (m Model) renderSection(ctx components.RenderContext, s Section) string {
	switch s {
	case SectionSlider:
		values := formatValues(m.slider.Values(), m.slider.Step())
		return m.slider.ViewWithContext(ctx) + " " + m.styles.status.Render(values)
	case SectionCalendar:
		return m.calendar.ViewWithContext(ctx)
	case SectionDate:
		return m.date.ViewWithContext(ctx)
	case SectionRange:
		return m.dateRng.ViewWithContext(ctx)
	case SectionDateTime:
		return m.dateTime.ViewWithContext(ctx)
	case SectionMonth:
		return m.month.ViewWithContext(ctx)
	}
	return ""
}

// place tells a section where its body was drawn.
func (m Model) place(s Section, x, y int) {
	switch s {
	case SectionSlider:
		m.slider.SetBounds(ui.Rect{X: x, Y: y, Height: 1})
	case SectionCalendar:
		m.calendar.SetOrigin(x, y)
	case SectionDate:
		m.date.SetOrigin(x, y)
	case SectionRange:
		m.dateRng.SetOrigin(x, y)
	case SectionDateTime:
		m.dateTime.SetOrigin(x, y)
	case SectionMonth:
		m.month.SetOrigin(x, y)
	}
}

func (m Model) renderFooter() string {
	return m.styles.footer.Render(m.help.View(helpKeys{global: m.keys, section: m.sectionKeys()}))
}
