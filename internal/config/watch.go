package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/moonui/internal/logger"
)

const watchedOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename

// Watcher reloads one config file whenever its content changes. Editors
// often replace a file instead of writing it, so the parent directory is
// watched and events are filtered by name.
type Watcher struct {
	path string
	fs   *fsnotify.Watcher
	log  *logger.Logger
	last uint64
}

// NewWatcher starts watching path. The current content is hashed so an
// unchanged save is not reported.
func NewWatcher(path string, log *logger.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{path: abs, fs: fsw, log: log.WithComponent("config-watcher")}
	if data, err := os.ReadFile(abs); err == nil {
		w.last = xxhash.Sum64(data)
	}
	return w, nil
}

// Run blocks until ctx is done, calling onChange with each newly parsed
// config or the error that stopped it from loading. The watcher is closed
// when Run returns.
func (w *Watcher) Run(ctx context.Context, onChange func(*Config, error)) error {
	defer w.fs.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path || event.Op&watchedOps == 0 {
				continue
			}
			w.check(onChange)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", "error", err.Error())
		}
	}
}

func (w *Watcher) check(onChange func(*Config, error)) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		// A rename-based save briefly removes the file; the create follows.
		w.log.Debug("config not readable yet", "path", w.path, "error", err.Error())
		return
	}

	if len(data) == 0 {
		// Truncated ahead of a write.
		return
	}

	sum := xxhash.Sum64(data)
	if sum == w.last {
		return
	}
	w.last = sum

	w.log.Debug("config changed", "path", w.path)
	onChange(parse(w.path, data))
}
