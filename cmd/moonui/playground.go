package main

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/moonui/internal/config"
	"github.com/alexisbeaulieu97/moonui/internal/logger"
	"github.com/alexisbeaulieu97/moonui/internal/tui/playground"
	"github.com/alexisbeaulieu97/moonui/internal/ui/components"
)

type playgroundFlags struct {
	configPath string
	theme      string
	watch      bool
}

func newPlaygroundCmd(app *AppContext) *cobra.Command {
	flags := &playgroundFlags{}

	cmd := &cobra.Command{
		Use:   "playground",
		Short: "Launch the interactive component playground",
		Long: `Launch a full-screen playground with a slider, a calendar and every
date picker. Tab moves between sections and the mouse works everywhere.
With --watch the playground reloads whenever the config file changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.watch && flags.configPath == "" {
				return errors.New("--watch needs --config")
			}

			model, err := buildPlayground(app, flags)
			if err != nil {
				return err
			}

			if err := runPlayground(cmd.Context(), app, model, flags); err != nil {
				app.Logger.Error(err, "playground exited")
				return fmt.Errorf("failed to run playground: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "Path to a playground YAML config")
	cmd.Flags().StringVar(&flags.theme, "theme", "", "Theme override (light or dark)")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "Reload when the config file changes")

	return cmd
}

// buildPlayground loads the config and creates the model without starting
// the terminal program.
func buildPlayground(app *AppContext, flags *playgroundFlags) (playground.Model, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return playground.Model{}, fmt.Errorf("failed to load config: %w", err)
	}

	opts := []playground.Option{playground.WithLogger(playgroundLogger(app))}
	if flags.theme != "" {
		theme, ok := components.ThemeByName(flags.theme)
		if !ok {
			return playground.Model{}, fmt.Errorf("unknown theme %q", flags.theme)
		}
		opts = append(opts, playground.WithTheme(theme))
	}

	model, err := playground.NewModel(cfg, opts...)
	if err != nil {
		return playground.Model{}, fmt.Errorf("failed to build playground: %w", err)
	}
	return model, nil
}

// playgroundLogger keeps log output off the alt screen: only a log file
// receives entries while the program runs.
func playgroundLogger(app *AppContext) *logger.Logger {
	if app.HasLogFile() {
		return app.Logger
	}
	return logger.Nop()
}

func runPlayground(ctx context.Context, app *AppContext, model playground.Model, flags *playgroundFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := playgroundLogger(app)

	var watcher *config.Watcher
	if flags.watch {
		w, err := config.NewWatcher(flags.configPath, log)
		if err != nil {
			return err
		}
		watcher = w
	}

	g, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	g.Go(func() error {
		defer cancel()
		log.Info("playground started", "config", flags.configPath, "watch", flags.watch)
		_, err := program.Run()
		return err
	})

	if watcher != nil {
		g.Go(func() error {
			return watcher.Run(ctx, func(cfg *config.Config, err error) {
				if err != nil {
					program.Send(playground.ConfigErrorMsg{Source: flags.configPath, Err: err})
					return
				}
				program.Send(playground.ConfigMsg{Config: cfg, Source: flags.configPath})
			})
		})
	}

	return g.Wait()
}
