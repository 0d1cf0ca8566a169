package theme

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the theme file at path whenever it changes and hands each
// successfully parsed File to fn. It blocks until ctx is done. fn runs on the
// watcher goroutine; UI code should forward the value to its own thread.
//
// The parent directory is watched rather than the file so that editors which
// save by rename keep triggering reloads.
func Watch(ctx context.Context, path string, fn func(File)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("theme watcher: %w", err)
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("theme watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("theme watcher: %w", err)
	}

	log := slog.Default().With("component", "theme", "path", abs)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			f, err := LoadFile(abs)
			if err != nil {
				log.Warn("theme reload failed", "err", err)
				continue
			}
			log.Debug("theme reloaded")
			fn(f)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("theme watcher error", "err", err)
		}
	}
}
