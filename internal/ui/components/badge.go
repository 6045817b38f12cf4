package components

// Badge is a short inline label.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
	}
}

func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext applies the variant, then consumer overrides.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Normalized().Theme
	style := b.ApplyOverrides(ApplyVariant(b.RawStyle(), theme, b.variant), theme)
	return style.Render(b.text)
}

func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

func (b *Badge) WithAttr(key, value string) *Badge {
	b.SetAttr(key, value)
	return b
}

func (b *Badge) Text() string {
	return b.text
}

func (b *Badge) Variant() BadgeVariant {
	return b.variant
}

func SecondaryBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantSecondary)
}

func DestructiveBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantDestructive)
}

func OutlineBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantOutline)
}
