package playground

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/moonui/internal/ui/components"
)

// Layout in cells.
const (
	indent     = 2
	columnGap  = 2
	leftColumn = 40
)

type styles struct {
	title         lipgloss.Style
	status        lipgloss.Style
	header        lipgloss.Style
	section       lipgloss.Style
	sectionActive lipgloss.Style
	column        lipgloss.Style
	footer        lipgloss.Style
	errorBanner   lipgloss.Style
}

// newStyles derives the chrome from the active theme, so ctrl+t restyles
// the frame along with the components.
func newStyles(theme components.Theme) styles {
	p := theme.Palette
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary.Base),
		status: lipgloss.NewStyle().
			Foreground(p.Muted.Base),
		header: lipgloss.NewStyle().
			PaddingLeft(indent).
			MarginBottom(1),
		section: lipgloss.NewStyle().
			Foreground(p.Muted.Base),
		sectionActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary.Base),
		column: lipgloss.NewStyle().
			PaddingLeft(indent),
		footer: lipgloss.NewStyle().
			PaddingLeft(indent).
			MarginTop(1),
		errorBanner: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Destructive.Base).
			PaddingLeft(indent),
	}
}
