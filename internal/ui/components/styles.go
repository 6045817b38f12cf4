package components

import "github.com/charmbracelet/lipgloss"

// Background paints a slot's base colour with its matching text colour.
//
// Example:
//
//	card := NewCard().WithAppliers(Background(PaletteAccent))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground colours text with a slot's base colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// ForegroundOn colours text with a slot's on-base colour, for text drawn on
// the default surface that should read like it sits on the slot.
func ForegroundOn(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).OnBase)
	}
}

// Border draws a themed border in the palette's border colour.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant)).BorderForeground(theme.Palette.Border)
	}
}

// BorderColour recolours an existing border with a slot's base colour.
func BorderColour(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

// Ring outlines focused controls.
func Ring() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(theme.Palette.Ring).Bold(true)
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(PaddingValue(theme, size))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := PaddingValue(theme, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := PaddingValue(theme, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

func Margin(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Margin(MarginValue(theme, size))
	}
}

func MarginX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := MarginValue(theme, size)
		return base.MarginLeft(value).MarginRight(value)
	}
}

func MarginY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := MarginValue(theme, size)
		return base.MarginTop(value).MarginBottom(value)
	}
}

// Typography inherits a text preset.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

func Bold() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Bold(true)
	}
}

func Underline() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Underline(true)
	}
}

func Faint() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Faint(true)
	}
}

func Reverse() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Reverse(true)
	}
}

// Width fixes the rendered width in cells.
func Width(cells int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Width(cells)
	}
}

// Align sets horizontal alignment inside a fixed width.
func Align(position lipgloss.Position) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Align(position)
	}
}

// CardBaseStyle is the surface used by Card and Popover.
func CardBaseStyle() []StyleFunc {
	return []StyleFunc{
		Background(PaletteSurface),
		Border(BorderVariantRounded),
		PaddingX(SpacingSizeSmall),
	}
}
