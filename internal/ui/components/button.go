package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Button is a pressable label. A loading button shows a spinner in front of
// its label and ignores presses.
type Button struct {
	BaseComponent
	label    string
	variant  ButtonVariant
	size     ButtonSize
	mode     RenderMode
	disabled bool
	focused  bool
	loading  bool
	spinner  spinner.Model
	onPress  func()
}

func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		spinner:       spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
}

func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the label, or the RenderAsChild child, with the
// variant, size and state styles applied before consumer overrides.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.Normalized()
	style := b.style(ctx.Theme)

	label := b.label
	if b.size == ButtonSizeIcon && len([]rune(label)) > 1 {
		label = string([]rune(label)[:1])
	}
	if b.loading {
		label = b.spinner.View() + " " + label
	}
	return b.mode.render(style, ctx, label)
}

func (b *Button) style(theme Theme) lipgloss.Style {
	style := ApplyVariant(b.RawStyle(), theme, b.variant)
	style = ApplyVariant(style, theme, b.size)
	if b.disabled || b.loading {
		style = Faint()(style, theme)
	}
	if b.focused {
		style = ApplyVariant(style, theme, ToggleFocused)
	}
	return b.ApplyOverrides(style, theme)
}

// Update advances the loading spinner and turns enter or space into a press
// while focused.
func (b *Button) Update(msg tea.Msg) (*Button, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !b.loading {
			return b, nil
		}
		var cmd tea.Cmd
		b.spinner, cmd = b.spinner.Update(msg)
		return b, cmd
	case tea.KeyMsg:
		if b.focused && (msg.Type == tea.KeyEnter || msg.String() == " ") {
			b.Press()
		}
	}
	return b, nil
}

// Press invokes the press handler unless the button is disabled or loading.
// It reports whether the handler ran.
func (b *Button) Press() bool {
	if b.disabled || b.loading || b.onPress == nil {
		return false
	}
	b.onPress()
	return true
}

// SetLoading toggles the loading state and returns the command that starts
// the spinner.
func (b *Button) SetLoading(loading bool) tea.Cmd {
	b.loading = loading
	if !loading {
		return nil
	}
	return b.spinner.Tick
}

func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

func (b *Button) WithSize(size ButtonSize) *Button {
	b.size = size
	return b
}

// WithRenderMode renders a consumer child with the button's styling instead
// of the label.
func (b *Button) WithRenderMode(mode RenderMode) *Button {
	b.mode = mode
	return b
}

func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

func (b *Button) WithOnPress(fn func()) *Button {
	b.onPress = fn
	return b
}

func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

func (b *Button) WithAttr(key, value string) *Button {
	b.SetAttr(key, value)
	return b
}

func (b *Button) Focus()        { b.focused = true }
func (b *Button) Blur()         { b.focused = false }
func (b *Button) Focused() bool { return b.focused }

func (b *Button) Label() string {
	return b.label
}

func (b *Button) SetLabel(label string) *Button {
	b.label = label
	return b
}

func (b *Button) Disabled() bool {
	return b.disabled
}

func (b *Button) Loading() bool {
	return b.loading
}

func (b *Button) Variant() ButtonVariant {
	return b.variant
}

func (b *Button) Size() ButtonSize {
	return b.size
}

func OutlineButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantOutline)
}

func SecondaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantSecondary)
}

func GhostButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantGhost)
}

func DestructiveButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantDestructive)
}

func LinkButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantLink)
}
