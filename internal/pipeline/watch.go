package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce groups the bursts of events editors produce on save.
const DefaultDebounce = 150 * time.Millisecond

// Watch reloads the session's current document whenever its file changes and
// passes each fresh document to onReload. Failed reloads are logged and the
// previous document stays current. Watch blocks until ctx is done.
func Watch(ctx context.Context, s *Session, debounce time.Duration, onReload func(*Document)) error {
	cur := s.Current()
	if cur == nil || cur.Path == "" {
		return ErrNoDocument
	}
	target, err := filepath.Abs(cur.Path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", cur.Path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory: editors often replace the file instead of writing it.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("watcher error", "error", err)

		case <-timer.C:
			doc, err := s.Reload()
			if err != nil {
				continue
			}
			if onReload != nil {
				onReload(doc)
			}
		}
	}
}
