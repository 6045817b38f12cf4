package components

import (
	"github.com/alexisbeaulieu97/moonui/internal/ui/control"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SelectionState is the single-choice state a radio group shares with its
// items. Items receive it explicitly when they are created.
type SelectionState interface {
	Value() string
	IsSelected(value string) bool
	Select(value string) bool
	Disabled() bool
}

// RadioGroupState is the default SelectionState.
type RadioGroupState struct {
	value         control.Value[string]
	onValueChange func(string)
	disabled      bool
}

// NewRadioGroupState creates a self-owned state starting at initial.
func NewRadioGroupState(initial string) *RadioGroupState {
	return &RadioGroupState{value: control.Uncontrolled(initial)}
}

// NewControlledRadioGroupState creates a state that only shows values passed
// to Sync.
func NewControlledRadioGroupState(value string) *RadioGroupState {
	return &RadioGroupState{value: control.Controlled(value)}
}

func (s *RadioGroupState) Value() string {
	return s.value.Get()
}

func (s *RadioGroupState) IsSelected(value string) bool {
	return s.value.Get() == value
}

// Select proposes value. Selecting the current value or selecting while
// disabled does nothing.
func (s *RadioGroupState) Select(value string) bool {
	if s.disabled || s.value.Get() == value {
		return false
	}
	s.value.Propose(value)
	if s.onValueChange != nil {
		s.onValueChange(value)
	}
	return true
}

func (s *RadioGroupState) Disabled() bool {
	return s.disabled
}

func (s *RadioGroupState) Sync(value string) {
	s.value.Sync(value)
}

func (s *RadioGroupState) SetDisabled(disabled bool) {
	s.disabled = disabled
}

func (s *RadioGroupState) OnValueChange(fn func(string)) {
	s.onValueChange = fn
}

// RadioGroupItem is one option. It reads and writes the state it was given.
type RadioGroupItem struct {
	BaseComponent
	state    SelectionState
	value    string
	label    string
	disabled bool
	focused  bool
}

func NewRadioGroupItem(state SelectionState, value, label string) *RadioGroupItem {
	return &RadioGroupItem{
		BaseComponent: NewBaseComponent(),
		state:         state,
		value:         value,
		label:         label,
	}
}

func (i *RadioGroupItem) View() string {
	return i.ViewWithContext(DefaultContext())
}

func (i *RadioGroupItem) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Normalized().Theme
	glyph, variant := theme.Glyphs.RadioOff, ToggleOff
	if i.Checked() {
		glyph, variant = theme.Glyphs.RadioOn, ToggleOn
	}
	style := ApplyVariant(i.RawStyle(), theme, variant)
	if i.Disabled() {
		style = ApplyVariant(style, theme, ToggleDisabled)
	}
	if i.focused {
		style = ApplyVariant(style, theme, ToggleFocused)
	}
	out := i.ApplyOverrides(style, theme).Render(glyph)
	if i.label != "" {
		out += " " + i.label
	}
	return out
}

// Select chooses this item through the shared state.
func (i *RadioGroupItem) Select() bool {
	if i.Disabled() {
		return false
	}
	return i.state.Select(i.value)
}

func (i *RadioGroupItem) Checked() bool {
	return i.state != nil && i.state.IsSelected(i.value)
}

// Disabled is true when either the item or its group is disabled.
func (i *RadioGroupItem) Disabled() bool {
	return i.disabled || (i.state != nil && i.state.Disabled())
}

func (i *RadioGroupItem) WithDisabled(disabled bool) *RadioGroupItem {
	i.disabled = disabled
	return i
}

func (i *RadioGroupItem) WithAppliers(appliers ...StyleFunc) *RadioGroupItem {
	i.AddAppliers(appliers...)
	return i
}

func (i *RadioGroupItem) WithAttr(key, value string) *RadioGroupItem {
	i.SetAttr(key, value)
	return i
}

func (i *RadioGroupItem) Value() string { return i.value }
func (i *RadioGroupItem) Label() string { return i.label }

// RadioGroup lays out items bound to one SelectionState. Arrow keys move
// focus and select, skipping disabled items.
type RadioGroup struct {
	BaseComponent
	state       SelectionState
	items       []*RadioGroupItem
	orientation Orientation
	cursor      int
	focused     bool
}

// NewRadioGroup creates a group over state. A nil state gets a fresh
// self-owned one.
func NewRadioGroup(state SelectionState) *RadioGroup {
	if state == nil {
		state = NewRadioGroupState("")
	}
	return &RadioGroup{
		BaseComponent: NewBaseComponent(),
		state:         state,
	}
}

// Item creates an item bound to the group's state and adds it.
func (g *RadioGroup) Item(value, label string) *RadioGroupItem {
	item := NewRadioGroupItem(g.state, value, label)
	g.items = append(g.items, item)
	return item
}

// Add appends items created elsewhere. They keep whatever state they hold.
func (g *RadioGroup) Add(items ...*RadioGroupItem) *RadioGroup {
	g.items = append(g.items, items...)
	return g
}

func (g *RadioGroup) View() string {
	return g.ViewWithContext(DefaultContext())
}

func (g *RadioGroup) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.Normalized()
	views := make([]string, len(g.items))
	for idx, item := range g.items {
		item.focused = g.focused && idx == g.cursor
		views[idx] = item.ViewWithContext(ctx)
	}

	var body string
	if g.orientation == OrientationHorizontal {
		body = lipgloss.JoinHorizontal(lipgloss.Top, spaced(views)...)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, views...)
	}
	return g.ComputeStyle(ctx.Theme).Render(body)
}

func spaced(views []string) []string {
	out := make([]string, 0, len(views)*2)
	for i, view := range views {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, view)
	}
	return out
}

// Update handles arrow keys and space while focused.
func (g *RadioGroup) Update(msg tea.Msg) (*RadioGroup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !g.focused || len(g.items) == 0 {
		return g, nil
	}
	switch key.String() {
	case "down", "right", "j", "l":
		g.move(1)
	case "up", "left", "k", "h":
		g.move(-1)
	case " ":
		g.items[g.cursor].Select()
	}
	return g, nil
}

// move steps the cursor to the next enabled item, wrapping, and selects it.
func (g *RadioGroup) move(delta int) {
	n := len(g.items)
	for step := 1; step <= n; step++ {
		idx := ((g.cursor+delta*step)%n + n) % n
		if !g.items[idx].Disabled() {
			g.cursor = idx
			g.items[idx].Select()
			return
		}
	}
}

// Focus puts the cursor on the selected item, or the first enabled one.
func (g *RadioGroup) Focus() {
	g.focused = true
	for idx, item := range g.items {
		if item.Checked() {
			g.cursor = idx
			return
		}
	}
	for idx, item := range g.items {
		if !item.Disabled() {
			g.cursor = idx
			return
		}
	}
}

func (g *RadioGroup) Blur() {
	g.focused = false
}

func (g *RadioGroup) WithOrientation(o Orientation) *RadioGroup {
	g.orientation = o
	return g
}

func (g *RadioGroup) WithAppliers(appliers ...StyleFunc) *RadioGroup {
	g.AddAppliers(appliers...)
	return g
}

func (g *RadioGroup) WithAttr(key, value string) *RadioGroup {
	g.SetAttr(key, value)
	return g
}

func (g *RadioGroup) State() SelectionState    { return g.state }
func (g *RadioGroup) Items() []*RadioGroupItem { return g.items }
func (g *RadioGroup) Value() string            { return g.state.Value() }
