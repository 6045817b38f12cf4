package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Heading is a title with an optional description line underneath, as used
// at the top of cards, alerts and dialogs.
type Heading struct {
	BaseComponent
	title       string
	description string
	level       int
}

// NewHeading creates a level 1 heading.
func NewHeading(title string) *Heading {
	return &Heading{
		BaseComponent: NewBaseComponent(),
		title:         title,
		level:         1,
	}
}

func (h *Heading) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the title and, when set, the muted description.
func (h *Heading) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Normalized().Theme
	title := h.ApplyOverrides(TypographyStyle(theme, h.typography()).Inherit(h.RawStyle()), theme)
	if h.level == 1 {
		title = title.Underline(true)
	}
	if h.description == "" {
		return title.Render(h.title)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		title.Render(h.title),
		TypographyStyle(theme, TypographyVariantMuted).Render(h.description),
	)
}

func (h *Heading) typography() TypographyVariant {
	switch h.level {
	case 1, 2:
		return TypographyVariantTitle
	case 3:
		return TypographyVariantSubtitle
	default:
		return TypographyVariantLabel
	}
}

func (h *Heading) WithDescription(description string) *Heading {
	h.description = description
	return h
}

// WithLevel sets the heading level, clamped to 1..6.
func (h *Heading) WithLevel(level int) *Heading {
	h.level = max(1, min(6, level))
	return h
}

func (h *Heading) WithAppliers(appliers ...StyleFunc) *Heading {
	h.AddAppliers(appliers...)
	return h
}

func (h *Heading) WithAttr(key, value string) *Heading {
	h.SetAttr(key, value)
	return h
}

func (h *Heading) Title() string       { return h.title }
func (h *Heading) Description() string { return h.description }
func (h *Heading) Level() int          { return h.level }
