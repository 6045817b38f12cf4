// Package components provides MoonUI's theme-aware terminal primitives.
//
// # Rendering
//
// Every component renders to a string. View uses the default theme;
// ViewWithContext takes the theme and width bounds explicitly so nothing
// reads global state:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	out := components.NewButton("Save").ViewWithContext(ctx)
//
// # Styling
//
// Components look up their variant strategy in the theme's VariantRegistry,
// then run the consumer's appliers on top:
//
//	components.NewBadge("beta").
//		WithVariant(components.BadgeVariantOutline).
//		WithAppliers(components.Bold())
//
// Appliers always run after the variant, so they extend or override it.
// WithAttr stores pass-through attributes that hosts can read back; they are
// never rendered.
//
// # State
//
// Interactive primitives (Checkbox, Switch, Collapsible, Tabs, RadioGroup)
// hold their value in a control.Value. Built with a value they are
// controlled: changes are proposed through the callback and only shown once
// the host calls Sync. Built with a default they keep their own state.
//
// RadioGroup items receive their group's SelectionState explicitly instead
// of discovering it.
//
// # Render modes
//
// Button and breadcrumb links accept a RenderMode. RenderAsChild draws a
// consumer child with the component's styling in place of its own content.
package components
