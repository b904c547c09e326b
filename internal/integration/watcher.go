// Package integration holds adapters to external systems: the fsnotify file
// watcher backing roadmap watch mode.
package integration

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches the roadmap file for changes and invokes a callback
// once per debounced batch of events.
type FileWatcher interface {
	Watch(ctx context.Context, onChange func()) error
	Close() error
}

// roadmapWatcher implements FileWatcher over fsnotify. It watches the file's
// directory rather than the file itself, because editors typically replace
// files via rename, which would drop a direct watch.
type roadmapWatcher struct {
	watcher  *fsnotify.Watcher
	filePath string
	debounce time.Duration
}

// NewFileWatcher creates a FileWatcher for the given roadmap file. Change
// bursts within the debounce window coalesce into one callback.
func NewFileWatcher(filePath string, debounce time.Duration) (FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(filePath)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(filePath), err)
	}
	return &roadmapWatcher{
		watcher:  watcher,
		filePath: filePath,
		debounce: debounce,
	}, nil
}

// Watch blocks processing events until ctx is cancelled, invoking onChange
// after each settled batch of changes to the roadmap file.
func (w *roadmapWatcher) Watch(ctx context.Context, onChange func()) error {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.isRoadmapEvent(event) {
				continue
			}
			// Reset the debounce window on every relevant event.
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			onChange()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching roadmap file: %w", err)
		}
	}
}

// isRoadmapEvent reports whether the event concerns the watched file with an
// operation that changes its content.
func (w *roadmapWatcher) isRoadmapEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(w.filePath) {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename)
}

// Close releases the underlying fsnotify watcher.
func (w *roadmapWatcher) Close() error {
	return w.watcher.Close()
}
