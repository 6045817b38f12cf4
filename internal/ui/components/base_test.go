package components

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestOverridesRunAfterVariant(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	b := NewBaseComponent()
	b.AddAppliers(PaddingX(SpacingSizeNone))

	variant := ApplyVariant(lipgloss.NewStyle(), theme, ButtonSizeLarge)
	require.Equal(t, 3, variant.GetPaddingLeft())

	merged := b.ApplyOverrides(variant, theme)
	assert.Equal(t, 0, merged.GetPaddingLeft())
	assert.Equal(t, 1, merged.GetPaddingTop(), "untouched properties survive")
}

func TestAddAppliersKeepsCustomStrategy(t *testing.T) {
	t.Parallel()

	b := NewBaseComponent()
	b.SetStrategy(NewCompositeStrategy(Bold()))
	b.SetStrategy(strategyFunc(func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Italic(true) }))
	b.AddAppliers(Underline())

	style := b.ComputeStyle(DefaultTheme())
	assert.True(t, style.GetItalic())
	assert.True(t, style.GetUnderline())
}

type strategyFunc func(lipgloss.Style, Theme) lipgloss.Style

func (f strategyFunc) Apply(base lipgloss.Style, theme Theme) lipgloss.Style { return f(base, theme) }

func TestAttrs(t *testing.T) {
	t.Parallel()

	b := NewBaseComponent()
	_, ok := b.Attr("id")
	assert.False(t, ok)

	b.SetAttr("id", "save")
	b.SetAttr("data-testid", "btn")

	value, ok := b.Attr("id")
	assert.True(t, ok)
	assert.Equal(t, "save", value)
	assert.Equal(t, []string{"data-testid", "id"}, b.AttrKeys())

	copied := b.Attrs()
	copied["id"] = "changed"
	value, _ = b.Attr("id")
	assert.Equal(t, "save", value)
}

func TestUnknownVariantLeavesStyleAlone(t *testing.T) {
	t.Parallel()

	base := lipgloss.NewStyle().Bold(true)
	out := ApplyVariant(base, DefaultTheme(), "not-registered")
	assert.True(t, out.GetBold())
	assert.Nil(t, (*VariantRegistry)(nil).Get(ButtonVariantDefault))
}

func TestNormalizedContextFillsZeroTheme(t *testing.T) {
	t.Parallel()

	ctx := RenderContext{}.Normalized()
	assert.NotNil(t, ctx.Theme.Variants)
	assert.Equal(t, -1, ctx.Constraints.MaxWidth)
	assert.Equal(t, "(•)", ctx.Theme.Glyphs.RadioOn)
}

func TestThemeByName(t *testing.T) {
	t.Parallel()

	dark, ok := ThemeByName("dark")
	require.True(t, ok)
	assert.Equal(t, ThemeNameDark, dark.Name)
	assert.Equal(t, dark.Palette.Primary.Base.Dark, dark.Palette.Primary.Base.Light)

	_, ok = ThemeByName("neon")
	assert.False(t, ok)
}

func TestConstraints(t *testing.T) {
	t.Parallel()

	w, h := WithMaxWidth(10).Constrain(30, 4)
	assert.Equal(t, 10, w)
	assert.Equal(t, 4, h)

	w, _ = WithWidth(8).Constrain(3, 1)
	assert.Equal(t, 8, w)
	assert.False(t, Constraints{MaxWidth: -1}.HasWidth())
}
