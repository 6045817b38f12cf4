package components

import (
	"github.com/alexisbeaulieu97/moonui/internal/ui"
)

// Panel is a bordered section with an optional header and footer, each
// set off from the body by a separator.
type Panel struct {
	*Container
	header ui.Renderable
	body   []ui.Renderable
	footer ui.Renderable
}

// NewPanel creates a panel around body.
func NewPanel(body ...ui.Renderable) *Panel {
	return &Panel{
		Container: NewContainer().
			WithBorder(BorderVariantNormal).
			WithPadding(SymmetricSpacing(0, 1)),
		body: body,
	}
}

func (p *Panel) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders header, body and footer. The separators size to
// the widest section.
func (p *Panel) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.Normalized()
	body := VStack(p.body...)

	width := widest(ctx, append([]ui.Renderable{p.header, p.footer}, body)...)
	rows := make([]ui.Renderable, 0, 5)
	if p.header != nil {
		rows = append(rows, p.header, NewSeparator().WithLength(width))
	}
	rows = append(rows, body)
	if p.footer != nil {
		rows = append(rows, NewSeparator().WithLength(width), p.footer)
	}

	p.Container.layout = VStack(rows...)
	return p.Container.ViewWithContext(ctx)
}

func widest(ctx RenderContext, parts ...ui.Renderable) int {
	width := 1
	for _, part := range parts {
		if part == nil {
			continue
		}
		if w := lipglossWidth(RenderChild(part, ctx)); w > width {
			width = w
		}
	}
	return width
}

func (p *Panel) WithHeader(header ui.Renderable) *Panel {
	p.header = header
	return p
}

// WithTitle uses a level 2 heading as the header.
func (p *Panel) WithTitle(title string) *Panel {
	return p.WithHeader(NewHeading(title).WithLevel(2))
}

func (p *Panel) WithFooter(footer ui.Renderable) *Panel {
	p.footer = footer
	return p
}

// SetBody replaces the body.
func (p *Panel) SetBody(body ...ui.Renderable) *Panel {
	p.body = body
	return p
}

func (p *Panel) WithAppliers(appliers ...StyleFunc) *Panel {
	p.AddAppliers(appliers...)
	return p
}

func (p *Panel) WithAttr(key, value string) *Panel {
	p.SetAttr(key, value)
	return p
}
