// Package watch re-runs validation whenever the schema definition or the
// data document changes on disk.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event describes a relevant file change.
type Event struct {
	Path string // the watched file that changed
}

// Watcher monitors a fixed set of files and triggers a callback on change.
type Watcher struct {
	paths  []string
	logger *slog.Logger
	Ready  chan struct{}

	newWatcher func() (*fsnotify.Watcher, error)
}

// New creates a Watcher for the given file paths.
func New(logger *slog.Logger, paths ...string) *Watcher {
	cleaned := make([]string, 0, len(paths))
	for _, p := range paths {
		cleaned = append(cleaned, filepath.Clean(p))
	}
	return &Watcher{
		paths:      cleaned,
		logger:     logger.With("component", "watcher"),
		Ready:      make(chan struct{}),
		newWatcher: fsnotify.NewWatcher,
	}
}

// Watch blocks until the context is cancelled, invoking the callback for
// every debounced change to one of the watched files. The parent
// directories are watched rather than the files themselves, because many
// editors replace files on save.
func (w *Watcher) Watch(ctx context.Context, callback func(Event)) error {
	watcher, err := w.newWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dirs := make(map[string]bool)
	for _, p := range w.paths {
		dirs[filepath.Dir(p)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return err
		}
	}

	w.logger.Info("Watching for changes", "paths", w.paths)
	if w.Ready != nil {
		close(w.Ready)
	}

	var timer *time.Timer
	const debounceDuration = 100 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-watcher.Errors:
			w.logger.Error("Watcher error", "error", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev := w.handleEvent(event); ev != nil {
				if timer != nil {
					timer.Stop()
				}
				pending := *ev
				timer = time.AfterFunc(debounceDuration, func() {
					callback(pending)
				})
			}
		}
	}
}

// handleEvent maps an fsnotify event to a watched file, or nil when the
// change is for something else in the same directory.
func (w *Watcher) handleEvent(event fsnotify.Event) *Event {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return nil
	}
	name := filepath.Clean(event.Name)
	for _, p := range w.paths {
		if name == p {
			w.logger.Debug("Change detected", "path", name, "op", event.Op.String())
			return &Event{Path: p}
		}
	}
	return nil
}
