package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jinzhu/now"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/moonui/internal/ui"
	"github.com/alexisbeaulieu97/moonui/internal/ui/calendar"
	"github.com/alexisbeaulieu97/moonui/internal/ui/components"
	"github.com/alexisbeaulieu97/moonui/internal/ui/datepicker"
	"github.com/alexisbeaulieu97/moonui/internal/ui/slider"
)

const defaultShowcaseWidth = 80

type showcaseFlags struct {
	theme string
	width int
}

func newShowcaseCmd(app *AppContext) *cobra.Command {
	flags := &showcaseFlags{}

	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Print a static gallery of MoonUI components",
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, ok := components.ThemeByName(flags.theme)
			if !ok {
				return fmt.Errorf("unknown theme %q", flags.theme)
			}

			width := flags.width
			if width <= 0 {
				width = terminalWidth()
			}
			app.Logger.Debug("rendering showcase", "theme", theme.Name, "width", width)

			ctx := components.RenderContext{
				Theme:       theme,
				Constraints: components.Unconstrained(),
				ParentWidth: width,
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderShowcase(ctx, time.Now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.theme, "theme", components.ThemeNameLight, "Theme (light or dark)")
	cmd.Flags().IntVar(&flags.width, "width", 0, "Render width (defaults to the terminal width)")

	return cmd
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultShowcaseWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultShowcaseWidth
	}
	return width
}

// renderShowcase draws every component once, with today marked on the
// calendars.
func renderShowcase(ctx components.RenderContext, today time.Time) string {
	clock := func() time.Time { return today }
	barWidth := min(40, max(10, ctx.ParentWidth-8))

	heading := components.NewHeading("MoonUI").
		WithDescription("Terminal components built on lipgloss and Bubble Tea")

	buttons := components.HStack(
		components.NewButton("Default"),
		components.SecondaryButton("Secondary"),
		components.OutlineButton("Outline"),
		components.DestructiveButton("Delete"),
		components.NewButton("Disabled").WithDisabled(true),
	).WithGap(1)

	badges := components.HStack(
		components.NewBadge("new"),
		components.SecondaryBadge("beta"),
		components.NewBadge("stable").WithVariant(components.BadgeVariantSuccess),
		components.DestructiveBadge("deprecated"),
		components.OutlineBadge("v1"),
	).WithGap(1)

	trail := components.NewBreadcrumb(
		components.BreadcrumbItem{Label: "Home"},
		components.BreadcrumbItem{Label: "Components"},
		components.BreadcrumbItem{Label: "Date picker", Current: true},
	)

	controls := components.HStack(
		components.NewCheckbox("Weekends").WithDefaultChecked(true),
		components.NewSwitch("Outside days"),
		components.NewAvatar("Ada Lovelace"),
	).WithGap(2)

	alert := components.InfoAlert("Press tab in the playground to move between sections.").
		WithTitle("Heads up")

	volume := slider.New(
		slider.WithID("volume"),
		slider.WithDefaultValue(40),
		slider.WithTrackWidth(barWidth),
	)
	price := slider.New(
		slider.WithID("price"),
		slider.WithMax(500),
		slider.WithStep(10),
		slider.WithDefaultValue(120, 380),
		slider.WithTrackWidth(barWidth),
	)

	weekStart := time.Monday
	cal := calendar.New(
		calendar.WithToday(clock),
		calendar.WithWeekStart(weekStart),
		calendar.WithDefaultSelected(calendar.SingleSelection(today)),
	)

	monday := now.With(today).BeginningOfWeek()
	triggers := components.VStack(
		datepicker.NewDatePicker(datepicker.WithToday(clock)),
		datepicker.NewDateRangePicker(
			datepicker.WithToday(clock),
			datepicker.WithDefaultDateRange(calendar.DateRange{From: monday, To: monday.AddDate(0, 0, 4)}),
		),
		datepicker.NewDateTimePicker(datepicker.WithToday(clock), datepicker.WithDefaultDate(today)),
		datepicker.NewMonthPicker(datepicker.WithToday(clock), datepicker.WithDefaultDate(today)),
	)

	tabs := components.NewTabs(
		components.Tab{Value: "day", Label: "Day", Content: components.MutedText("One date at a time")},
		components.Tab{Value: "range", Label: "Range", Content: components.MutedText("A start and an end")},
		components.Tab{Value: "month", Label: "Month", Disabled: true},
	)

	card := components.NewCard(
		components.NewProgress(68).WithWidth(barWidth).WithLabel(true),
	).WithTitle("Release").WithDescription("Milestone progress")

	page := components.VStack(
		heading,
		trail,
		components.NewSeparator().WithLength(min(ctx.ParentWidth, 60)),
		section("Buttons", buttons),
		section("Badges", badges),
		section("Controls", controls),
		alert,
		section("Sliders", components.VStack(volume, price)),
		section("Calendar", cal),
		section("Pickers", triggers),
		section("Tabs", tabs),
		card,
	).WithGap(2)

	return components.RenderChild(page, ctx)
}

func section(title string, body ui.Renderable) ui.Renderable {
	return components.VStack(components.LabelText(title), body).WithGap(1)
}
