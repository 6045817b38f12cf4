package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/moonui/internal/config"
	moonerrors "github.com/alexisbeaulieu97/moonui/pkg/errors"
)

func writeConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "playground.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}

func TestConfigInitPrintsDefaults(t *testing.T) {
	out, err := execute(t, "config", "init")
	require.NoError(t, err)

	want, err := config.Marshal(config.Default())
	require.NoError(t, err)
	assert.Equal(t, string(want), out)
}

func TestConfigInitRefusesToOverwrite(t *testing.T) {
	path := writeConfig(t, "theme: dark\n")

	_, err := execute(t, "config", "init", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	out, err := execute(t, "config", "init", "--force", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	cfg, err := config.ParseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), *cfg)
}

func TestConfigShowFillsDefaults(t *testing.T) {
	path := writeConfig(t, "version: \"1\"\ntheme: dark\n")

	out, err := execute(t, "config", "show", path)
	require.NoError(t, err)
	assert.Contains(t, out, "theme: dark")
	assert.Contains(t, out, "step: 1")
}

func TestConfigDiff(t *testing.T) {
	path := writeConfig(t, "version: \"1\"\ntheme: dark\n")

	out, err := configDiff(path)
	require.NoError(t, err)
	assert.Contains(t, out, "--- defaults")
	assert.Contains(t, out, "-theme: light")
	assert.Contains(t, out, "+theme: dark")
	assert.Contains(t, out, "1 added, 1 removed")
}

func TestConfigDiffWithoutChanges(t *testing.T) {
	path := writeConfig(t, "version: \"1\"\n")

	out, err := execute(t, "config", "diff", path)
	require.NoError(t, err)
	assert.Equal(t, "No differences from the defaults.\n", out)
}

func TestConfigDiffReportsInvalidFile(t *testing.T) {
	path := writeConfig(t, "slider:\n  value: 3\n  values: [1, 2]\n")

	_, err := configDiff(path)

	var parseErr *moonerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Source)
}

func TestHighlightYAML(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, highlightYAML(&buf, []byte("theme: dark\n"), "dark"))

	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "theme")
	assert.Contains(t, out, "dark")
}

func TestColorDisabledForBuffers(t *testing.T) {
	assert.False(t, colorEnabled(&AppContext{}, &bytes.Buffer{}))
}
