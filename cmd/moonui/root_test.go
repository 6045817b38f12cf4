package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/moonui/internal/ui/components"
	moonerrors "github.com/alexisbeaulieu97/moonui/pkg/errors"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestRootRejectsInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "loud", "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "loud"`)
}

func TestRootWritesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moonui.log")

	_, err := execute(t, "--log-file", path, "--log-level", "debug", "showcase", "--width", "60")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rendering showcase")
}

func TestRootWithoutSubcommandPrintsHelp(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "playground")
	assert.Contains(t, out, "showcase")
}

func TestBuildPlaygroundReportsMissingConfig(t *testing.T) {
	app := &AppContext{}
	flags := &playgroundFlags{configPath: filepath.Join(t.TempDir(), "missing.yaml")}

	_, err := buildPlayground(app, flags)

	var parseErr *moonerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuildPlaygroundAppliesThemeFlag(t *testing.T) {
	app := &AppContext{}

	model, err := buildPlayground(app, &playgroundFlags{theme: "dark"})
	require.NoError(t, err)
	assert.Equal(t, components.ThemeNameDark, model.Theme().Name)

	_, err = buildPlayground(app, &playgroundFlags{theme: "sepia"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown theme "sepia"`)
}

func TestBuildPlaygroundReadsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playground.yaml")
	doc := "version: \"1\"\ntheme: dark\nslider:\n  min: 0\n  max: 10\n  step: 1\n  value: 4\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	model, err := buildPlayground(&AppContext{}, &playgroundFlags{configPath: path})
	require.NoError(t, err)
	assert.Equal(t, []float64{4}, model.Slider().Values())
	assert.Equal(t, components.ThemeNameDark, model.Theme().Name)
}

func TestRootReadsEnvironment(t *testing.T) {
	t.Setenv("MOONUI_LOG_LEVEL", "loud")

	_, err := execute(t, "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "loud"`)

	_, err = execute(t, "--log-level", "warn", "version")
	require.NoError(t, err, "flags win over the environment")
}

func TestRootTagsLogEntriesWithRunID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moonui.log")

	_, err := execute(t, "--log-file", path, "--log-level", "debug", "showcase", "--width", "60")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	first, _, _ := bytes.Cut(data, []byte("\n"))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(first, &entry))
	runID, ok := entry["run"].(string)
	require.True(t, ok)
	_, err = uuid.Parse(runID)
	assert.NoError(t, err)
}
