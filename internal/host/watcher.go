package host

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// persistEchoWindow is how long after our own Persist a write event on the
// file is assumed to be the echo of that write rather than an external edit.
const persistEchoWindow = 250 * time.Millisecond

// Watcher reports external edits of the host's file so the session can resync
// eagerly instead of waiting for the next periodic tick. The parent directory
// is watched, not the file itself, because many editors save via rename.
type Watcher struct {
	host    *FileHost
	watcher *fsnotify.Watcher
	onEdit  func()

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher for the host's file. onEdit runs on the watch
// goroutine after the buffer has been reloaded.
func NewWatcher(h *FileHost, onEdit func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(h.Path())); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(h.Path()), err)
	}
	return &Watcher{host: h, watcher: fsw, onEdit: onEdit}, nil
}

// Start begins delivering edit callbacks.
func (w *Watcher) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.wg.Add(1)
	go w.eventLoop(ctx)
}

// Stop cancels the watch and waits for the event loop to exit.
func (w *Watcher) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	_ = w.watcher.Close()
	w.wg.Wait()
}

func (w *Watcher) eventLoop(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			if err := w.host.reload(); err != nil {
				w.host.Notify("taskmirror: " + err.Error())
				continue
			}
			w.onEdit()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.host.Notify("taskmirror: watch error: " + err.Error())
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(w.host.Path()) {
		return false
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	return !w.host.recentlyPersisted(persistEchoWindow)
}
