package knowledge

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchSuppressWindow is how long after our own Save we ignore change
// events, so a session isn't notified about its own writes.
const watchSuppressWindow = 500 * time.Millisecond

// Watch emits an event whenever the knowledge file is modified by
// another process. The in-memory base stays the source of truth for the
// session; the channel only lets the UI surface that the on-disk copy
// has drifted. The channel closes when ctx is done.
func (s *Store) Watch(ctx context.Context) (<-chan struct{}, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: atomic saves rename a temp file
	// over the target, which drops a plain file watch.
	if err := w.Add(filepath.Dir(s.knowledgePath)); err != nil {
		w.Close()
		return nil, err
	}

	changes := make(chan struct{}, 1)

	go func() {
		defer close(changes)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if event.Name != s.knowledgePath {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				s.mu.Lock()
				suppressed := time.Now().Before(s.suppressUntil)
				s.mu.Unlock()
				if suppressed {
					continue
				}
				select {
				case changes <- struct{}{}:
				default:
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				s.logger.WithError(err).Warn("knowledge watcher error")
			}
		}
	}()

	return changes, nil
}
