package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BreadcrumbItem is one step of a breadcrumb trail.
type BreadcrumbItem struct {
	Label string
	Href  string
	// Current marks the page the user is on.
	Current bool
	// Ellipsis collapses hidden steps into one marker.
	Ellipsis bool
	// Mode renders a consumer child with link styling in place of Label.
	Mode RenderMode
}

// Breadcrumb renders a trail of links separated by the theme's separator.
type Breadcrumb struct {
	BaseComponent
	items     []BreadcrumbItem
	separator string
}

func NewBreadcrumb(items ...BreadcrumbItem) *Breadcrumb {
	return &Breadcrumb{
		BaseComponent: NewBaseComponent(),
		items:         items,
	}
}

func (b *Breadcrumb) View() string {
	return b.ViewWithContext(DefaultContext())
}

func (b *Breadcrumb) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.Normalized()
	theme := ctx.Theme

	sep := b.separator
	if sep == "" {
		sep = theme.Glyphs.BreadcrumbSep
	}
	muted := TypographyStyle(theme, TypographyVariantMuted)
	link := Underline()(Foreground(PaletteMuted)(lipgloss.NewStyle(), theme), theme)
	page := TypographyStyle(theme, TypographyVariantLabel)

	parts := make([]string, 0, len(b.items))
	for _, item := range b.items {
		switch {
		case item.Ellipsis:
			parts = append(parts, muted.Render("…"))
		case item.Current:
			parts = append(parts, item.Mode.render(page, ctx, item.Label))
		case item.Href == "" && !item.Mode.IsChild():
			parts = append(parts, muted.Render(item.Label))
		default:
			parts = append(parts, item.Mode.render(link, ctx, item.Label))
		}
	}
	joined := strings.Join(parts, " "+muted.Render(sep)+" ")
	return b.ComputeStyle(theme).Render(joined)
}

// Current returns the item marked as the current page.
func (b *Breadcrumb) Current() (BreadcrumbItem, bool) {
	for _, item := range b.items {
		if item.Current {
			return item, true
		}
	}
	return BreadcrumbItem{}, false
}

func (b *Breadcrumb) Items() []BreadcrumbItem {
	return b.items
}

func (b *Breadcrumb) WithSeparator(sep string) *Breadcrumb {
	b.separator = sep
	return b
}

func (b *Breadcrumb) WithAppliers(appliers ...StyleFunc) *Breadcrumb {
	b.AddAppliers(appliers...)
	return b
}

func (b *Breadcrumb) WithAttr(key, value string) *Breadcrumb {
	b.SetAttr(key, value)
	return b
}
