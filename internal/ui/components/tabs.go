package components

import (
	"github.com/alexisbeaulieu97/moonui/internal/ui"
	"github.com/alexisbeaulieu97/moonui/internal/ui/control"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Tab is one trigger and its panel.
type Tab struct {
	Value    string
	Label    string
	Content  ui.Renderable
	Disabled bool
}

// Tabs shows a row of triggers and the content of the active one.
type Tabs struct {
	BaseComponent
	tabs          []Tab
	active        control.Value[string]
	onValueChange func(string)
	focused       bool
}

// NewTabs creates self-owned tabs with the first tab active.
func NewTabs(tabs ...Tab) *Tabs {
	initial := ""
	if len(tabs) > 0 {
		initial = tabs[0].Value
	}
	return &Tabs{
		BaseComponent: NewBaseComponent(),
		tabs:          tabs,
		active:        control.Uncontrolled(initial),
	}
}

func (t *Tabs) View() string {
	return t.ViewWithContext(DefaultContext())
}

func (t *Tabs) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.Normalized()
	theme := ctx.Theme

	triggers := make([]string, len(t.tabs))
	var content ui.Renderable
	for i, tab := range t.tabs {
		variant := TabInactive
		if tab.Value == t.active.Get() {
			variant = TabActive
			content = tab.Content
		}
		style := VariantStyle(theme, variant)
		if tab.Disabled {
			style = Faint()(style, theme)
		}
		if t.focused && variant == TabActive {
			style = ApplyVariant(style, theme, ToggleFocused)
		}
		triggers[i] = style.Render(tab.Label)
	}

	list := VariantStyle(theme, TabList).Render(lipgloss.JoinHorizontal(lipgloss.Top, triggers...))
	body := list
	if content != nil {
		body = lipgloss.JoinVertical(lipgloss.Left, list, RenderChild(content, ctx))
	}
	return t.ComputeStyle(theme).Render(body)
}

// Update moves between enabled tabs with left and right while focused.
func (t *Tabs) Update(msg tea.Msg) (*Tabs, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !t.focused {
		return t, nil
	}
	switch key.String() {
	case "right", "l":
		t.step(1)
	case "left", "h":
		t.step(-1)
	}
	return t, nil
}

func (t *Tabs) step(delta int) {
	n := len(t.tabs)
	if n == 0 {
		return
	}
	current := t.index(t.active.Get())
	for step := 1; step < n; step++ {
		idx := ((current+delta*step)%n + n) % n
		if !t.tabs[idx].Disabled {
			t.Select(t.tabs[idx].Value)
			return
		}
	}
}

func (t *Tabs) index(value string) int {
	for i, tab := range t.tabs {
		if tab.Value == value {
			return i
		}
	}
	return 0
}

// Select activates a tab by value. Unknown or disabled tabs are ignored.
func (t *Tabs) Select(value string) bool {
	for _, tab := range t.tabs {
		if tab.Value != value {
			continue
		}
		if tab.Disabled || value == t.active.Get() {
			return false
		}
		t.active.Propose(value)
		if t.onValueChange != nil {
			t.onValueChange(value)
		}
		return true
	}
	return false
}

// WithValue makes the active tab parent-owned.
func (t *Tabs) WithValue(value string) *Tabs {
	t.active = control.Controlled(value)
	return t
}

func (t *Tabs) WithDefaultValue(value string) *Tabs {
	t.active = control.Uncontrolled(value)
	return t
}

func (t *Tabs) WithOnValueChange(fn func(string)) *Tabs {
	t.onValueChange = fn
	return t
}

func (t *Tabs) WithAppliers(appliers ...StyleFunc) *Tabs {
	t.AddAppliers(appliers...)
	return t
}

func (t *Tabs) WithAttr(key, value string) *Tabs {
	t.SetAttr(key, value)
	return t
}

func (t *Tabs) Sync(value string) { t.active.Sync(value) }
func (t *Tabs) Value() string     { return t.active.Get() }
func (t *Tabs) Focus()            { t.focused = true }
func (t *Tabs) Blur()             { t.focused = false }
