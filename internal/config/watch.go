package config

import (
	"context"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watch tails the config file and hands every successfully reloaded Config
// to onChange. It blocks until ctx is cancelled. This is how a running
// daemon picks up `cliplog config set` from another terminal.
//
// A reload that fails to parse or validate is logged and skipped; the
// config that was active before the bad write stays active.
func (cm *ConfigManager) Watch(ctx context.Context, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(cm.configPath); err != nil {
		return err
	}

	slog.Info("config: watching for changes", "path", cm.configPath)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Plain writes and atomic saves (write temp, rename over the
			// original) both need to trigger a reload, hence Write|Create.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			cfg, err := cm.Load()
			if err != nil {
				slog.Error("config: reload failed, keeping previous config",
					"path", cm.configPath, "err", err)
				continue
			}

			slog.Info("config: reloaded", "path", cm.configPath)
			onChange(cfg)

			// An atomic save leaves the watch on the old inode; point it
			// back at the path.
			_ = watcher.Add(cm.configPath)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("config: watcher error", "err", err)
		}
	}
}
