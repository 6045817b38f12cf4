package components

import (
	"github.com/alexisbeaulieu97/moonui/internal/ui"
)

// Alert is a bordered callout with an icon, optional title and description.
type Alert struct {
	BaseComponent
	title       string
	description string
	icon        string
	variant     AlertVariant
	customIcon  bool
}

// NewAlert creates a default alert.
func NewAlert(description string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		description:   description,
		icon:          alertIcon(AlertVariantDefault),
	}
}

func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert. The role is "alert" for every variant.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.Normalized()

	var rows []ui.Renderable
	lead := a.icon + " "
	if a.title != "" {
		rows = append(rows, EmphasisText(lead+a.title))
		if a.description != "" {
			rows = append(rows, NewText("  "+a.description))
		}
	} else {
		rows = append(rows, NewText(lead+a.description))
	}

	box := NewContainer(rows...).
		WithVariant(a.variant).
		WithBorder(BorderVariantRounded).
		WithPadding(SymmetricSpacing(0, 1))
	box.SetStyle(a.RawStyle())
	box.SetStrategy(a.strategy)
	return box.ViewWithContext(ctx)
}

func alertIcon(variant AlertVariant) string {
	switch variant {
	case AlertVariantDestructive:
		return "✗"
	case AlertVariantSuccess:
		return "✓"
	case AlertVariantWarning:
		return "⚠"
	default:
		return "ℹ"
	}
}

// WithVariant sets the variant and, unless overridden, its icon.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	if !a.customIcon {
		a.icon = alertIcon(variant)
	}
	return a
}

func (a *Alert) WithIcon(icon string) *Alert {
	a.icon = icon
	a.customIcon = true
	return a
}

func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

func (a *Alert) WithAppliers(appliers ...StyleFunc) *Alert {
	a.AddAppliers(appliers...)
	return a
}

func (a *Alert) WithAttr(key, value string) *Alert {
	a.SetAttr(key, value)
	return a
}

// Role is the accessibility role of the alert.
func (a *Alert) Role() string {
	return "alert"
}

func (a *Alert) Title() string         { return a.title }
func (a *Alert) Description() string   { return a.description }
func (a *Alert) Variant() AlertVariant { return a.variant }

func DestructiveAlert(description string) *Alert {
	return NewAlert(description).WithVariant(AlertVariantDestructive)
}

func SuccessAlert(description string) *Alert {
	return NewAlert(description).WithVariant(AlertVariantSuccess)
}

func WarningAlert(description string) *Alert {
	return NewAlert(description).WithVariant(AlertVariantWarning)
}

func InfoAlert(description string) *Alert {
	return NewAlert(description).WithVariant(AlertVariantInfo)
}
