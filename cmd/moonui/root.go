package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/moonui/internal/logger"
)

const envPrefix = "MOONUI"

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Logger *logger.Logger
	// Settings resolves global flags, falling back to MOONUI_* variables.
	Settings *viper.Viper
}

func newRootCmd() *cobra.Command {
	app := &AppContext{Settings: newSettings()}

	cmd := &cobra.Command{
		Use:           "moonui",
		Short:         "MoonUI renders calendars, date pickers and sliders in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.open(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.Logger.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("log-file", "", "Write logs to this rotating file instead of stderr")
	flags.Bool("no-color", false, "Disable colour output")
	_ = app.Settings.BindPFlags(flags)

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newShowcaseCmd(app))
	cmd.AddCommand(newPlaygroundCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

func newSettings() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// open applies the colour setting and builds the logger.
func (a *AppContext) open(cmd *cobra.Command) error {
	if a.Settings.GetBool("no-color") {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	level := a.Settings.GetString("log-level")
	file := a.Settings.GetString("log-file")
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: file == "",
		Writer:        cmd.ErrOrStderr(),
		File:          file,
	})
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	a.Logger = log.WithFields(map[string]any{"run": uuid.NewString()})
	return nil
}

// HasLogFile reports whether logs go to a file rather than the terminal.
func (a *AppContext) HasLogFile() bool {
	return a.Logger.WritesToFile()
}
