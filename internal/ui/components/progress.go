package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const defaultProgressWidth = 24

// Progress is a determinate progress bar drawn by bubbles/progress.
type Progress struct {
	BaseComponent
	value float64
	max   float64
	width int
	label bool
}

func NewProgress(value float64) *Progress {
	p := &Progress{
		BaseComponent: NewBaseComponent(),
		max:           100,
		width:         defaultProgressWidth,
	}
	return p.SetValue(value)
}

func (p *Progress) View() string {
	return p.ViewWithContext(DefaultContext())
}

func (p *Progress) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.Normalized()
	width := p.width
	if ctx.Constraints.MaxWidth > 0 && width > ctx.Constraints.MaxWidth {
		width = ctx.Constraints.MaxWidth
	}

	bar := progress.New(
		progress.WithSolidFill(pickColour(ctx.Theme, ctx.Theme.Palette.Primary.Base)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.Full = []rune(ctx.Theme.Glyphs.TrackFilled)[0]
	bar.Empty = []rune(ctx.Theme.Glyphs.TrackEmpty)[0]
	bar.EmptyColor = pickColour(ctx.Theme, ctx.Theme.Palette.Muted.Base)

	out := bar.ViewAs(p.Percent())
	if p.label {
		out += fmt.Sprintf(" %.0f%%", p.Percent()*100)
	}
	return p.ComputeStyle(ctx.Theme).Render(out)
}

// pickColour resolves an adaptive colour for bubbles, which takes plain
// colour strings.
func pickColour(theme Theme, colour lipgloss.AdaptiveColor) string {
	if theme.Name == ThemeNameDark || lipgloss.HasDarkBackground() {
		return colour.Dark
	}
	return colour.Light
}

// Percent is the completed fraction in 0..1.
func (p *Progress) Percent() float64 {
	if p.max <= 0 {
		return 0
	}
	return p.value / p.max
}

// SetValue clamps value into 0..max.
func (p *Progress) SetValue(value float64) *Progress {
	p.value = min(max(value, 0), p.max)
	return p
}

// WithMax sets the value that counts as complete. Non-positive maxima are
// ignored.
func (p *Progress) WithMax(maximum float64) *Progress {
	if maximum > 0 {
		p.max = maximum
		p.SetValue(p.value)
	}
	return p
}

func (p *Progress) WithWidth(width int) *Progress {
	if width > 0 {
		p.width = width
	}
	return p
}

// WithLabel appends the percentage after the bar.
func (p *Progress) WithLabel(show bool) *Progress {
	p.label = show
	return p
}

func (p *Progress) WithAppliers(appliers ...StyleFunc) *Progress {
	p.AddAppliers(appliers...)
	return p
}

func (p *Progress) WithAttr(key, value string) *Progress {
	p.SetAttr(key, value)
	return p
}

func (p *Progress) Value() float64 { return p.value }
func (p *Progress) Max() float64   { return p.max }
