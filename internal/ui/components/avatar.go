package components

import (
	"strings"
	"unicode"
)

// Avatar identifies a person. Terminals cannot draw the image, so the
// avatar always renders its fallback: explicit text, else the initials of
// the name, else the theme's fallback glyph.
type Avatar struct {
	BaseComponent
	name     string
	src      string
	fallback string
}

func NewAvatar(name string) *Avatar {
	return &Avatar{
		BaseComponent: NewBaseComponent(),
		name:          name,
	}
}

func (a *Avatar) View() string {
	return a.ViewWithContext(DefaultContext())
}

func (a *Avatar) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Normalized().Theme
	text := a.fallback
	if text == "" {
		text = Initials(a.name)
	}
	if text == "" {
		text = theme.Glyphs.AvatarFallback
	}
	style := Background(PaletteMuted)(a.RawStyle(), theme)
	return a.ApplyOverrides(style, theme).Render("(" + text + ")")
}

// Initials returns up to two upper-case initials from a name.
func Initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				out = append(out, unicode.ToUpper(r))
				break
			}
		}
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}

// WithSrc records the image source for hosts that can display it.
func (a *Avatar) WithSrc(src string) *Avatar {
	a.src = src
	a.SetAttr("src", src)
	return a
}

func (a *Avatar) WithFallback(text string) *Avatar {
	a.fallback = text
	return a
}

func (a *Avatar) WithAppliers(appliers ...StyleFunc) *Avatar {
	a.AddAppliers(appliers...)
	return a
}

func (a *Avatar) WithAttr(key, value string) *Avatar {
	a.SetAttr(key, value)
	return a
}

func (a *Avatar) Name() string { return a.name }
func (a *Avatar) Src() string  { return a.src }
