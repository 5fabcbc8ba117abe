package server

import (
	"context"
	"path/filepath"
	"time"

	"github.com/VKCOM/cxxflags/internal/config"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/xerrors"
)

// ConfigWatcher reloads a config file when it changes on disk.
// The directory is watched, not the file: editors often save via rename.
// Events are debounced: a burst of writes leads to one reload.
type ConfigWatcher struct {
	confPath string
	debounce time.Duration
	onReload func(cfg *config.Config)
	onError  func(err error)
}

func MakeConfigWatcher(confPath string, debounce time.Duration, onReload func(cfg *config.Config), onError func(err error)) (*ConfigWatcher, error) {
	absPath, err := filepath.Abs(confPath)
	if err != nil {
		return nil, xerrors.Errorf("failed to resolve config path %s: %w", confPath, err)
	}
	return &ConfigWatcher{
		confPath: absPath,
		debounce: debounce,
		onReload: onReload,
		onError:  onError,
	}, nil
}

func (w *ConfigWatcher) isConfigEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.confPath {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (w *ConfigWatcher) reload() {
	cfg, err := config.LoadConfig(w.confPath)
	if err != nil {
		w.onError(err)
		return
	}
	w.onReload(cfg)
}

// Run blocks until ctx is done.
func (w *ConfigWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return xerrors.Errorf("failed to create fsnotify instance: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(w.confPath)); err != nil {
		return xerrors.Errorf("failed to watch %s: %w", filepath.Dir(w.confPath), err)
	}
	logServer.Info(0, "watching config", w.confPath)

	var reloadAfter <-chan time.Time // nil until a config event arrives

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if w.isConfigEvent(event) {
				logServer.Info(1, "config event", event.Op.String())
				reloadAfter = time.After(w.debounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logServer.Error("config watcher:", err)
		case <-reloadAfter:
			reloadAfter = nil
			w.reload()
		}
	}
}
