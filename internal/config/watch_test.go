package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	moonerrors "github.com/alexisbeaulieu97/moonui/pkg/errors"
)

type reload struct {
	cfg *Config
	err error
}

func startWatcher(t *testing.T, path string) <-chan reload {
	t.Helper()

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	reloads := make(chan reload, 8)
	go func() {
		defer close(done)
		_ = w.Run(ctx, func(cfg *Config, err error) {
			reloads <- reload{cfg: cfg, err: err}
		})
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return reloads
}

func waitReload(t *testing.T, reloads <-chan reload) reload {
	t.Helper()
	select {
	case r := <-reloads:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
		return reload{}
	}
}

func TestWatcherReloadsChangedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playground.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"1\"\n"), 0o600))
	reloads := startWatcher(t, path)

	require.NoError(t, os.WriteFile(path, []byte("version: \"1\"\ntheme: dark\n"), 0o600))

	r := waitReload(t, reloads)
	require.NoError(t, r.err)
	assert.Equal(t, "dark", r.cfg.Theme)
}

func TestWatcherSkipsUnchangedContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playground.yaml")
	doc := []byte("version: \"1\"\ntheme: dark\n")
	require.NoError(t, os.WriteFile(path, doc, 0o600))
	reloads := startWatcher(t, path)

	require.NoError(t, os.WriteFile(path, doc, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "other.yaml"), []byte("x"), 0o600))

	select {
	case r := <-reloads:
		t.Fatalf("unexpected reload: %+v", r)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherReportsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playground.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"1\"\n"), 0o600))
	reloads := startWatcher(t, path)

	require.NoError(t, os.WriteFile(path, []byte("version: \"1\"\ncalendar:\n  week_start: someday\n"), 0o600))

	r := waitReload(t, reloads)
	var parseErr *moonerrors.ParseError
	require.ErrorAs(t, r.err, &parseErr)
	assert.Nil(t, r.cfg)
}

func TestNewWatcherRejectsMissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "playground.yaml"), nil)
	require.Error(t, err)
}
