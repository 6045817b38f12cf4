package components

import (
	"github.com/alexisbeaulieu97/moonui/internal/ui"
)

// Card is a framed surface with an optional heading, body and footer.
type Card struct {
	*Container
	heading *Heading
	body    []ui.Renderable
	footer  []ui.Renderable
}

// NewCard creates a card around body.
func NewCard(body ...ui.Renderable) *Card {
	return &Card{
		Container: NewContainer().WithVariant(SurfaceCard),
		body:      body,
	}
}

func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext lays out heading, body and footer with a blank line
// between sections.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	sections := make([]ui.Renderable, 0, 3)
	if c.heading != nil {
		sections = append(sections, c.heading)
	}
	if len(c.body) > 0 {
		sections = append(sections, VStack(c.body...))
	}
	if len(c.footer) > 0 {
		sections = append(sections, HStack(c.footer...).WithGap(1))
	}
	c.Container.layout = VStack(sections...).WithGap(1)
	return c.Container.ViewWithContext(ctx)
}

// WithTitle adds a heading.
func (c *Card) WithTitle(title string) *Card {
	if c.heading == nil {
		c.heading = NewHeading(title).WithLevel(3)
	} else {
		c.heading.title = title
	}
	return c
}

// WithDescription adds a muted line under the title.
func (c *Card) WithDescription(description string) *Card {
	if c.heading == nil {
		c.heading = NewHeading("").WithLevel(3)
	}
	c.heading.WithDescription(description)
	return c
}

// WithFooter sets the row of footer items, typically buttons.
func (c *Card) WithFooter(items ...ui.Renderable) *Card {
	c.footer = items
	return c
}

// Heading returns the card heading, if any.
func (c *Card) Heading() *Heading {
	return c.heading
}

func (c *Card) WithAppliers(appliers ...StyleFunc) *Card {
	c.AddAppliers(appliers...)
	return c
}

func (c *Card) WithAttr(key, value string) *Card {
	c.SetAttr(key, value)
	return c
}
