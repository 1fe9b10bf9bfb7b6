package source

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watcher signals when the content directory changes so a caller can
// re-run the pipeline. It carries no cache to invalidate: every scan
// recomputes from scratch, the watcher only says "worth scanning again."
type Watcher struct {
	fsw    *fsnotify.Watcher
	events chan string
	logger *slog.Logger
}

// NewWatcher watches dir for markdown file changes.
func NewWatcher(dir string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}
	return &Watcher{
		fsw:    fsw,
		events: make(chan string, 1),
		logger: logger,
	}, nil
}

// Events emits the path of each changed markdown file.
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Run pumps filesystem events until ctx is canceled.
// Non-markdown files and chmod-only events are ignored.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.events)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !isMarkdown(ev.Name) {
				continue
			}
			select {
			case w.events <- ev.Name:
			case <-ctx.Done():
				return ctx.Err()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)
		}
	}
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
