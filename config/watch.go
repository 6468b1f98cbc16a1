package config

import (
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the project config file on write and notifies a callback
// with the newly merged configuration.
type Watcher struct {
	loader  *Loader
	watcher *fsnotify.Watcher
	logger  *slog.Logger
}

// WatchProjectConfig starts watching the project config file (if one is
// found) for writes, invoking onReload with a freshly loaded Config each
// time the file changes. Returns nil, nil if no project config exists.
func (l *Loader) WatchProjectConfig(onReload func(*Config)) (*Watcher, error) {
	path := l.findProjectConfig()
	if path == "" {
		return nil, nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(path); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{loader: l, watcher: fsw, logger: l.logger}
	go w.run(onReload)
	return w, nil
}

func (w *Watcher) run(onReload func(*Config)) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := w.loader.Load()
			if err != nil {
				w.logger.Warn("config reload failed", slog.String("error", err.Error()))
				continue
			}
			onReload(cfg)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", slog.String("error", err.Error()))
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
