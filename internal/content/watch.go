package content

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrNoDir is returned by Watch when the store has no override directory.
var ErrNoDir = errors.New("content has no override directory")

// WatchDebounce is how long the override directory must be quiet before a
// burst of changes triggers a reload.
var WatchDebounce = 300 * time.Millisecond

// Watch reloads the store whenever files in the override directory change,
// records the reload in Changes, then calls changed with the reload result.
// It blocks until ctx is done. One watcher serves every desktop sharing the
// store.
func (s *Store) Watch(ctx context.Context, changed func(error)) error {
	if s.dir == "" {
		return ErrNoDir
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(s.dir); err != nil {
		return fmt.Errorf("watching %s: %w", s.dir, err)
	}
	logger.Info("watching content", "dir", s.dir)

	ticker := time.NewTicker(WatchDebounce / 3)
	defer ticker.Stop()
	var pending time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				pending = time.Now()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "err", err)

		case <-ticker.C:
			if pending.IsZero() || time.Since(pending) < WatchDebounce {
				continue
			}
			pending = time.Time{}
			err := s.Reload()
			if err != nil {
				logger.Error("reloading content", "err", err)
			}
			s.noteChange(err)
			if changed != nil {
				changed(err)
			}
		}
	}
}
