package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/track/pkg/core"
)

// debounceWindow coalesces bursts of writes (editors, git) into one event.
const debounceWindow = 50 * time.Millisecond

// Watch implements core.Watchable.
//
// The journal's directory is watched rather than the file itself, so that
// editors replacing the file via rename are still observed. The returned
// channel is closed once ctx is cancelled.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(r.Path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(r.Path), err)
	}

	events := make(chan core.Event)
	r.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer r.setWatcherActive(false)
		defer watcher.Close()
		return r.watchLoop(ctx, watcher, events)
	}, lifecycle.WithErrorHandler(func(err error) {
		r.reportWatchError(fmt.Errorf("watcher stopped: %w", err))
	}))

	return events, nil
}

func (r *Repository) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, out chan<- core.Event) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("watcher panic: %v", recovered)
			if r.config.Logger != nil && r.config.Logger.Enabled(ctx, slog.LevelDebug) {
				r.config.Logger.Error("watcher panic", "error", err, "stack", string(debug.Stack()))
			}
		}
	}()

	target := filepath.Clean(r.Path)

	var (
		pending *core.Event
		timer   = time.NewTimer(time.Hour)
	)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			eType := mapEventType(event)
			if eType == "" {
				continue
			}
			r.debug("journal event", "op", event.Op.String(), "path", event.Name)

			pending = &core.Event{Type: eType, Path: r.Path, Timestamp: time.Now().Unix()}
			timer.Reset(debounceWindow)

		case <-timer.C:
			if pending == nil {
				continue
			}
			select {
			case out <- *pending:
			case <-ctx.Done():
				return nil
			}
			pending = nil

		case wErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.reportWatchError(wErr)
		}
	}
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventRemove
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventWrite
	}
	return ""
}

func (r *Repository) reportWatchError(err error) {
	if r.config.ErrorHandler != nil {
		r.config.ErrorHandler(err)
		return
	}
	if r.config.Logger != nil {
		r.config.Logger.Error("fsnotify error", "error", err)
	}
}

func (r *Repository) setWatcherActive(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watcherActive = active
}
