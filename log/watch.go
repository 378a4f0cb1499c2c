package log

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchConfig reloads the log filter config whenever the file changes and
// installs a fresh default logger built from it. Returns a stop function.
func WatchConfig(path string) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// watch the directory: editors replace files on save
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}
	// the configured filters take effect immediately, not on the first edit
	applyConfig(path)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				applyConfig(path)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				Warn("log config watcher error", ErrorField(err))
			case <-done:
				return
			}
		}
	}()
	return func() {
		close(done)
		watcher.Close()
	}, nil
}

func applyConfig(path string) {
	cfg, err := LoadConfig(path)
	if err != nil {
		Warn("could not reload log config", String("path", path), ErrorField(err))
		return
	}
	logger, err := NewWithFilters(nil, cfg.Rules(), WithCaller(true), AddCallerSkip(1))
	if err != nil {
		Warn("invalid log filter rules", String("rules", cfg.Rules()), ErrorField(err))
		return
	}
	ResetDefault(logger)
	Info("log config reloaded", String("path", path), String("rules", cfg.Rules()))
}
