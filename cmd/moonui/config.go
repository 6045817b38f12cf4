package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/moonui/internal/config"
	"github.com/alexisbeaulieu97/moonui/pkg/diff"
)

func newConfigCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create, inspect and compare playground configs",
	}

	cmd.AddCommand(newConfigInitCmd(app))
	cmd.AddCommand(newConfigShowCmd(app))
	cmd.AddCommand(newConfigDiffCmd())

	return cmd
}

func newConfigInitCmd(app *AppContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default config, to stdout or a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Marshal(config.Default())
			if err != nil {
				return err
			}
			if len(args) == 0 {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			path := args[0]
			if !force {
				if _, statErr := os.Stat(path); statErr == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				} else if !errors.Is(statErr, os.ErrNotExist) {
					return fmt.Errorf("check %s: %w", path, statErr)
				}
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			app.Logger.Info("config written", "path", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}

func newConfigShowCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <path>",
		Short: "Print the effective config after defaults are applied",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ParseConfig(args[0])
			if err != nil {
				return err
			}
			data, err := config.Marshal(*cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !colorEnabled(app, out) {
				_, err = out.Write(data)
				return err
			}
			return highlightYAML(out, data, cfg.Theme)
		},
	}
}

// colorEnabled reports whether out is a terminal that accepts colour.
func colorEnabled(app *AppContext, out io.Writer) bool {
	if app.Settings != nil && app.Settings.GetBool("no-color") {
		return false
	}
	file, ok := out.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// highlightYAML writes data with syntax colours picked to suit theme.
func highlightYAML(w io.Writer, data []byte, theme string) error {
	style := "github"
	if theme == "dark" {
		style = "monokai"
	}
	if err := quick.Highlight(w, string(data), "yaml", "terminal256", style); err != nil {
		return fmt.Errorf("highlight config: %w", err)
	}
	return nil
}

func newConfigDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <path>",
		Short: "Show how a config differs from the defaults",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := configDiff(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func configDiff(path string) (string, error) {
	cfg, err := config.ParseConfig(path)
	if err != nil {
		return "", err
	}

	defaults, err := config.Marshal(config.Default())
	if err != nil {
		return "", err
	}
	effective, err := config.Marshal(*cfg)
	if err != nil {
		return "", err
	}

	out, stats := diff.Unified(defaults, effective, "defaults", path)
	if !stats.Changed() {
		return "No differences from the defaults.\n", nil
	}
	return out + fmt.Sprintf("%d added, %d removed\n", stats.Added, stats.Removed), nil
}
