package components

import "github.com/charmbracelet/lipgloss"

// VariantRegistry maps typed variants to styling strategies. Keys are
// compared by type and value, so ButtonVariantDefault and
// BadgeVariantDefault never collide.
type VariantRegistry struct {
	strategies map[interface{}]StyleStrategy
}

// NewVariantRegistry creates an empty registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[interface{}]StyleStrategy)}
}

// Register adds or replaces the strategy for variant.
func (vr *VariantRegistry) Register(variant interface{}, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant interface{}) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// ApplyVariant runs the strategy registered for variant on top of base.
// Unknown variants leave base untouched.
func ApplyVariant(base lipgloss.Style, theme Theme, variant interface{}) lipgloss.Style {
	if strategy := theme.Variants.Get(variant); strategy != nil {
		return strategy.Apply(base, theme)
	}
	return base
}

// VariantStyle is ApplyVariant on an empty style.
func VariantStyle(theme Theme, variant interface{}) lipgloss.Style {
	return ApplyVariant(lipgloss.NewStyle(), theme, variant)
}

type ButtonVariant int

const (
	ButtonVariantDefault ButtonVariant = iota
	ButtonVariantDestructive
	ButtonVariantOutline
	ButtonVariantSecondary
	ButtonVariantGhost
	ButtonVariantLink
)

type ButtonSize int

const (
	ButtonSizeDefault ButtonSize = iota
	ButtonSizeSmall
	ButtonSizeLarge
	ButtonSizeIcon
)

type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantSecondary
	BadgeVariantDestructive
	BadgeVariantOutline
	BadgeVariantSuccess
	BadgeVariantWarning
)

type AlertVariant int

const (
	AlertVariantDefault AlertVariant = iota
	AlertVariantDestructive
	AlertVariantSuccess
	AlertVariantWarning
	AlertVariantInfo
)

// SliderPart names the drawn pieces of a slider.
type SliderPart int

const (
	SliderTrack SliderPart = iota
	SliderRange
	SliderThumb
	SliderThumbFocused
	SliderThumbDragging
	SliderDisabled
)

// DayVariant names the visual states of a calendar day cell.
type DayVariant int

const (
	DayDefault DayVariant = iota
	DayOutside
	DayDisabled
	DayToday
	DaySelected
	DayRangeEdge
	DayRangeMiddle
	DayCursor
)

// CalendarPart names the chrome around the day grid.
type CalendarPart int

const (
	CalendarCaption CalendarPart = iota
	CalendarWeekday
	CalendarNav
	CalendarMonthCell
	CalendarMonthCellSelected
)

// ToggleVariant styles checkboxes, radios and switches.
type ToggleVariant int

const (
	ToggleOff ToggleVariant = iota
	ToggleOn
	ToggleDisabled
	ToggleFocused
)

type TabVariant int

const (
	TabInactive TabVariant = iota
	TabActive
	TabList
)

// SurfaceVariant styles floating and framed surfaces.
type SurfaceVariant int

const (
	SurfacePopover SurfaceVariant = iota
	SurfaceTooltip
	SurfaceCard
	SurfaceTrigger
	SurfaceTriggerFocused
)

func registerVariants(registry *VariantRegistry) *VariantRegistry {
	registerButtonVariants(registry)
	registerBadgeVariants(registry)
	registerAlertVariants(registry)
	registerSliderVariants(registry)
	registerCalendarVariants(registry)
	registerToggleVariants(registry)
	registerSurfaceVariants(registry)
	return registry
}

func registerButtonVariants(registry *VariantRegistry) {
	registry.Register(ButtonVariantDefault, NewCompositeStrategy(Background(PalettePrimary)))
	registry.Register(ButtonVariantDestructive, NewCompositeStrategy(Background(PaletteDestructive)))
	registry.Register(ButtonVariantSecondary, NewCompositeStrategy(Background(PaletteSecondary)))
	registry.Register(ButtonVariantOutline, NewCompositeStrategy(
		Border(BorderVariantNormal),
		ForegroundOn(PaletteSurface),
	))
	registry.Register(ButtonVariantGhost, NewCompositeStrategy(ForegroundOn(PaletteAccent)))
	registry.Register(ButtonVariantLink, NewCompositeStrategy(Foreground(PalettePrimary), Underline()))

	registry.Register(ButtonSizeDefault, NewCompositeStrategy(PaddingX(SpacingSizeMedium)))
	registry.Register(ButtonSizeSmall, NewCompositeStrategy(PaddingX(SpacingSizeSmall)))
	registry.Register(ButtonSizeLarge, NewCompositeStrategy(PaddingX(SpacingSizeLarge), PaddingY(SpacingSizeExtraSmall)))
	registry.Register(ButtonSizeIcon, NewCompositeStrategy(PaddingX(SpacingSizeNone)))
}

func registerBadgeVariants(registry *VariantRegistry) {
	registry.Register(BadgeVariantDefault, NewCompositeStrategy(Background(PalettePrimary), PaddingX(SpacingSizeSmall)))
	registry.Register(BadgeVariantSecondary, NewCompositeStrategy(Background(PaletteSecondary), PaddingX(SpacingSizeSmall)))
	registry.Register(BadgeVariantDestructive, NewCompositeStrategy(Background(PaletteDestructive), PaddingX(SpacingSizeSmall)))
	registry.Register(BadgeVariantSuccess, NewCompositeStrategy(Background(PaletteSuccess), PaddingX(SpacingSizeSmall)))
	registry.Register(BadgeVariantWarning, NewCompositeStrategy(Background(PaletteWarning), PaddingX(SpacingSizeSmall)))
	registry.Register(BadgeVariantOutline, NewCompositeStrategy(ForegroundOn(PaletteSurface), Border(BorderVariantRounded)))
}

func registerAlertVariants(registry *VariantRegistry) {
	registry.Register(AlertVariantDefault, NewCompositeStrategy(ForegroundOn(PaletteSurface)))
	registry.Register(AlertVariantDestructive, NewCompositeStrategy(Foreground(PaletteDestructive), BorderColour(PaletteDestructive)))
	registry.Register(AlertVariantSuccess, NewCompositeStrategy(Foreground(PaletteSuccess), BorderColour(PaletteSuccess)))
	registry.Register(AlertVariantWarning, NewCompositeStrategy(Foreground(PaletteWarning), BorderColour(PaletteWarning)))
	registry.Register(AlertVariantInfo, NewCompositeStrategy(Foreground(PaletteInfo), BorderColour(PaletteInfo)))
}

func registerSliderVariants(registry *VariantRegistry) {
	registry.Register(SliderTrack, NewCompositeStrategy(ForegroundOn(PaletteMuted), Faint()))
	registry.Register(SliderRange, NewCompositeStrategy(Foreground(PalettePrimary)))
	registry.Register(SliderThumb, NewCompositeStrategy(Foreground(PalettePrimary)))
	registry.Register(SliderThumbFocused, NewCompositeStrategy(Ring()))
	registry.Register(SliderThumbDragging, NewCompositeStrategy(Foreground(PaletteInfo), Bold()))
	registry.Register(SliderDisabled, NewCompositeStrategy(Faint()))
}

func registerCalendarVariants(registry *VariantRegistry) {
	registry.Register(DayDefault, NewCompositeStrategy(ForegroundOn(PaletteSurface)))
	registry.Register(DayOutside, NewCompositeStrategy(ForegroundOn(PaletteMuted), Faint()))
	registry.Register(DayDisabled, NewCompositeStrategy(ForegroundOn(PaletteMuted), Faint()))
	registry.Register(DayToday, NewCompositeStrategy(Background(PaletteAccent), Bold()))
	registry.Register(DaySelected, NewCompositeStrategy(Background(PalettePrimary)))
	registry.Register(DayRangeEdge, NewCompositeStrategy(Background(PalettePrimary), Bold()))
	registry.Register(DayRangeMiddle, NewCompositeStrategy(Background(PaletteAccent)))
	registry.Register(DayCursor, NewCompositeStrategy(Underline(), Bold()))

	registry.Register(CalendarCaption, NewCompositeStrategy(Typography(TypographyVariantLabel)))
	registry.Register(CalendarWeekday, NewCompositeStrategy(Typography(TypographyVariantMuted)))
	registry.Register(CalendarNav, NewCompositeStrategy(ForegroundOn(PaletteSurface), Bold()))
	registry.Register(CalendarMonthCell, NewCompositeStrategy(ForegroundOn(PaletteSurface)))
	registry.Register(CalendarMonthCellSelected, NewCompositeStrategy(Background(PalettePrimary)))
}

func registerToggleVariants(registry *VariantRegistry) {
	registry.Register(ToggleOff, NewCompositeStrategy(ForegroundOn(PaletteSurface)))
	registry.Register(ToggleOn, NewCompositeStrategy(Foreground(PalettePrimary), Bold()))
	registry.Register(ToggleDisabled, NewCompositeStrategy(Faint()))
	registry.Register(ToggleFocused, NewCompositeStrategy(Ring(), Underline()))

	registry.Register(TabInactive, NewCompositeStrategy(ForegroundOn(PaletteMuted), PaddingX(SpacingSizeSmall)))
	registry.Register(TabActive, NewCompositeStrategy(Background(PaletteSurface), Bold(), PaddingX(SpacingSizeSmall)))
	registry.Register(TabList, NewCompositeStrategy(Background(PaletteMuted)))
}

func registerSurfaceVariants(registry *VariantRegistry) {
	registry.Register(SurfacePopover, NewCompositeStrategy(CardBaseStyle()...))
	registry.Register(SurfaceCard, NewCompositeStrategy(
		Background(PaletteSurface),
		Border(BorderVariantRounded),
		PaddingX(SpacingSizeMedium),
	))
	registry.Register(SurfaceTooltip, NewCompositeStrategy(Background(PalettePrimary), PaddingX(SpacingSizeSmall)))
	registry.Register(SurfaceTrigger, NewCompositeStrategy(
		Border(BorderVariantRounded),
		ForegroundOn(PaletteSurface),
		PaddingX(SpacingSizeSmall),
	))
	registry.Register(SurfaceTriggerFocused, NewCompositeStrategy(
		Border(BorderVariantRounded),
		BorderColour(PalettePrimary),
		ForegroundOn(PaletteSurface),
		PaddingX(SpacingSizeSmall),
	))
}
