package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColourSet is a semantic colour slot: a surface colour, the text colour that
// reads on it, a quieter tint, and an accent that stands out against it.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette holds the design tokens shared by every component.
type Palette struct {
	Primary     ColourSet
	Secondary   ColourSet
	Destructive ColourSet
	Success     ColourSet
	Warning     ColourSet
	Info        ColourSet
	Muted       ColourSet
	Accent      ColourSet
	Surface     ColourSet

	Border lipgloss.AdaptiveColor
	Ring   lipgloss.AdaptiveColor
}

// PaletteSlot selects a ColourSet from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary     PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary   PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteDestructive PaletteSlot = func(p Palette) ColourSet { return p.Destructive }
	PaletteSuccess     PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning     PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteInfo        PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteMuted       PaletteSlot = func(p Palette) ColourSet { return p.Muted }
	PaletteAccent      PaletteSlot = func(p Palette) ColourSet { return p.Accent }
	PaletteSurface     PaletteSlot = func(p Palette) ColourSet { return p.Surface }
)

// BorderSet groups the border shapes a theme offers.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// BorderVariant names a border from the BorderSet.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

// SpacingSize is a spacing token, measured in terminal cells once resolved.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
)

const spacingSizeCount = int(SpacingSizeExtraLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores the padding and margin scales.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

// TypographyVariant names a text preset.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantMuted
	TypographyVariantSmall
	TypographyVariantLabel
	TypographyVariantCode
	TypographyVariantEmphasis
)

// TypographyScale contains the text presets.
type TypographyScale struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Small    lipgloss.Style
	Label    lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
}

// GlyphSet holds the characters used to draw interactive controls.
type GlyphSet struct {
	TrackEmpty     string
	TrackFilled    string
	Thumb          string
	ThumbFocused   string
	CheckboxOn     string
	CheckboxOff    string
	RadioOn        string
	RadioOff       string
	SwitchOn       string
	SwitchOff      string
	ChevronLeft    string
	ChevronRight   string
	ChevronDown    string
	Collapsed      string
	Expanded       string
	BreadcrumbSep  string
	Calendar       string
	Clock          string
	AvatarFallback string
}

// Theme is an immutable set of tokens and variant strategies. Modifying
// helpers return new values.
type Theme struct {
	Name       string
	Palette    Palette
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Glyphs     GlyphSet
	Variants   *VariantRegistry
}

// Theme names accepted by ThemeByName.
const (
	ThemeNameLight = "light"
	ThemeNameDark  = "dark"
)

// Normalize fills the zero-valued parts of a partially specified theme.
func (t Theme) Normalize() Theme {
	if spacingTableIsZero(t.Spacing.Padding) {
		t.Spacing.Padding = defaultSpacingTable()
	}
	if spacingTableIsZero(t.Spacing.Margin) {
		t.Spacing.Margin = defaultSpacingTable()
	}
	if t.Glyphs == (GlyphSet{}) {
		t.Glyphs = defaultGlyphs()
	}
	if t.Variants == nil {
		t.Variants = registerVariants(NewVariantRegistry())
	}
	return t
}

func spacingTableIsZero(table spacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      1,
		SpacingSizeMedium:     2,
		SpacingSizeLarge:      3,
		SpacingSizeExtraLarge: 4,
	}
}

func defaultGlyphs() GlyphSet {
	return GlyphSet{
		TrackEmpty:     "─",
		TrackFilled:    "━",
		Thumb:          "●",
		ThumbFocused:   "◉",
		CheckboxOn:     "[x]",
		CheckboxOff:    "[ ]",
		RadioOn:        "(•)",
		RadioOff:       "( )",
		SwitchOn:       "[ ●]",
		SwitchOff:      "[● ]",
		ChevronLeft:    "‹",
		ChevronRight:   "›",
		ChevronDown:    "▾",
		Collapsed:      "▸",
		Expanded:       "▾",
		BreadcrumbSep:  "›",
		Calendar:       "▦",
		Clock:          "◷",
		AvatarFallback: "?",
	}
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func lightPalette() Palette {
	return Palette{
		Primary: ColourSet{
			Base:     ac("#18181b", "#fafafa"),
			OnBase:   ac("#fafafa", "#18181b"),
			Muted:    ac("#3f3f46", "#d4d4d8"),
			Contrast: ac("#2563eb", "#60a5fa"),
		},
		Secondary: ColourSet{
			Base:     ac("#f4f4f5", "#27272a"),
			OnBase:   ac("#18181b", "#fafafa"),
			Muted:    ac("#e4e4e7", "#3f3f46"),
			Contrast: ac("#18181b", "#fafafa"),
		},
		Destructive: ColourSet{
			Base:     ac("#ef4444", "#dc2626"),
			OnBase:   ac("#fafafa", "#fafafa"),
			Muted:    ac("#fee2e2", "#7f1d1d"),
			Contrast: ac("#b91c1c", "#fca5a5"),
		},
		Success: ColourSet{
			Base:     ac("#16a34a", "#22c55e"),
			OnBase:   ac("#f0fdf4", "#052e16"),
			Muted:    ac("#dcfce7", "#14532d"),
			Contrast: ac("#15803d", "#86efac"),
		},
		Warning: ColourSet{
			Base:     ac("#eab308", "#facc15"),
			OnBase:   ac("#422006", "#422006"),
			Muted:    ac("#fef9c3", "#713f12"),
			Contrast: ac("#a16207", "#fde68a"),
		},
		Info: ColourSet{
			Base:     ac("#0ea5e9", "#38bdf8"),
			OnBase:   ac("#f0f9ff", "#082f49"),
			Muted:    ac("#e0f2fe", "#0c4a6e"),
			Contrast: ac("#0369a1", "#7dd3fc"),
		},
		Muted: ColourSet{
			Base:     ac("#f4f4f5", "#27272a"),
			OnBase:   ac("#71717a", "#a1a1aa"),
			Muted:    ac("#e4e4e7", "#3f3f46"),
			Contrast: ac("#52525b", "#d4d4d8"),
		},
		Accent: ColourSet{
			Base:     ac("#f4f4f5", "#27272a"),
			OnBase:   ac("#18181b", "#fafafa"),
			Muted:    ac("#e4e4e7", "#3f3f46"),
			Contrast: ac("#2563eb", "#60a5fa"),
		},
		Surface: ColourSet{
			Base:     ac("#ffffff", "#09090b"),
			OnBase:   ac("#09090b", "#fafafa"),
			Muted:    ac("#f4f4f5", "#18181b"),
			Contrast: ac("#18181b", "#fafafa"),
		},
		Border: ac("#e4e4e7", "#27272a"),
		Ring:   ac("#18181b", "#d4d4d8"),
	}
}

func defaultTypography(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Body:     body,
		Title:    body.Bold(true),
		Subtitle: body.Foreground(p.Muted.OnBase),
		Muted:    body.Foreground(p.Muted.OnBase).Faint(true),
		Small:    body.Faint(true),
		Label:    body.Bold(true),
		Code:     body.Background(p.Muted.Base).Padding(0, 1),
		Emphasis: body.Bold(true).Italic(true),
	}
}

func buildTheme(name string, palette Palette) Theme {
	theme := Theme{
		Name:    name,
		Palette: palette,
		Borders: BorderSet{
			None:    lipgloss.Border{},
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
			Double:  lipgloss.DoubleBorder(),
		},
		Typography: defaultTypography(palette),
		Variants:   registerVariants(NewVariantRegistry()),
	}
	return theme.Normalize()
}

// DefaultTheme returns the light theme.
func DefaultTheme() Theme {
	return buildTheme(ThemeNameLight, lightPalette())
}

// LightTheme is an alias of DefaultTheme.
func LightTheme() Theme {
	return DefaultTheme()
}

// DarkTheme pins every adaptive colour to its dark value so the theme looks
// the same whatever the terminal background.
func DarkTheme() Theme {
	return buildTheme(ThemeNameDark, pinDark(lightPalette()))
}

// ThemeByName resolves "light" or "dark". Unknown names fall back to the
// default theme and report false.
func ThemeByName(name string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ThemeNameLight, "default":
		return DefaultTheme(), true
	case ThemeNameDark:
		return DarkTheme(), true
	default:
		return DefaultTheme(), false
	}
}

func pinDark(p Palette) Palette {
	pin := func(c lipgloss.AdaptiveColor) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: c.Dark, Dark: c.Dark}
	}
	pinSet := func(cs ColourSet) ColourSet {
		return ColourSet{Base: pin(cs.Base), OnBase: pin(cs.OnBase), Muted: pin(cs.Muted), Contrast: pin(cs.Contrast)}
	}

	return Palette{
		Primary:     pinSet(p.Primary),
		Secondary:   pinSet(p.Secondary),
		Destructive: pinSet(p.Destructive),
		Success:     pinSet(p.Success),
		Warning:     pinSet(p.Warning),
		Info:        pinSet(p.Info),
		Muted:       pinSet(p.Muted),
		Accent:      pinSet(p.Accent),
		Surface:     pinSet(p.Surface),
		Border:      pin(p.Border),
		Ring:        pin(p.Ring),
	}
}

// BorderForVariant returns the border shape for variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	default:
		return theme.Borders.None
	}
}

// PaddingValue resolves a padding token.
func PaddingValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Padding, size)
}

// MarginValue resolves a margin token.
func MarginValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Margin, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// TypographyStyle returns the preset for variant.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantMuted:
		return typo.Muted
	case TypographyVariantSmall:
		return typo.Small
	case TypographyVariantLabel:
		return typo.Label
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	default:
		return typo.Body
	}
}
