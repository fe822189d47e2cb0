package file

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/vetrina/internal/logger"
)

// Watch reloads the registry whenever the configuration file changes and
// calls onChange after each successful reload. A reload failure is
// logged and the previous configuration stays in effect. Watch blocks
// until ctx is cancelled.
//
// The parent directory is watched rather than the file itself so that
// editors which replace the file (rename-over-write) keep triggering
// events.
func (r *Registry) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(r.filePath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(r.filePath) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if err := r.Reload(); err != nil {
				logger.Debug("field configuration reload failed: %v", err)
				continue
			}
			logger.Debug("field configuration reloaded from %s", r.filePath)
			if onChange != nil {
				onChange()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Debug("watch error: %v", err)
		}
	}
}
