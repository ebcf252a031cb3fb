package config

import (
	"context"
	"fmt"
	"path/filepath"

	"SolarSystem/internal/logger"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reloads path whenever it is written and passes the new settings to
// onChange. Files that fail to load are logged and skipped. The watcher runs
// until ctx is cancelled.
//
// The parent directory is watched rather than the file itself so editors that
// replace the file on save keep triggering reloads.
func Watch(ctx context.Context, path string, onChange func(Settings)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create settings watcher: %w", err)
	}

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", path, err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				s, err := Load(target)
				if err != nil {
					logger.Log.Warn("Settings reload failed", zap.String("path", target), zap.Error(err))
					continue
				}
				logger.Log.Info("Settings reloaded", zap.String("path", target))
				onChange(s)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Log.Error("Settings watcher error", zap.Error(err))
			}
		}
	}()
	return nil
}
