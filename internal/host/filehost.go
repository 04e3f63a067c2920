// Package host implements the document-host side of a mirroring session over
// a real file: it owns the in-memory line buffer, persists it through an
// afero filesystem, and can watch the file for edits made by other programs.
package host

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"

	"github.com/taskmirror/taskmirror/internal/document"
	"github.com/taskmirror/taskmirror/models"
)

// RenderFunc receives the fresh content of a derived view after each sync.
type RenderFunc func(view models.View, lines []string)

// FileHost satisfies the controller's Host interface for a markdown file on
// disk. All methods are safe for concurrent use; the controller calls some of
// them from its resync goroutine.
type FileHost struct {
	fs   afero.Fs
	path string

	mu     sync.Mutex
	lines  []string
	dirty  bool
	views  map[models.View][]string
	cursor int

	// lastPersist suppresses watcher echoes of our own writes.
	lastPersist time.Time

	notifyFn func(string)
	renderFn RenderFunc
	cursorFn func(int)
	now      func() time.Time
}

// NewFileHost loads path from fs and returns a host for it. A missing file is
// an error; the session mirrors an existing document, it does not create one.
func NewFileHost(fs afero.Fs, path string) (*FileHost, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &FileHost{
		fs:    fs,
		path:  path,
		lines: splitLines(string(data)),
		views: make(map[models.View][]string),
		notifyFn: func(msg string) {
			fmt.Fprintln(os.Stderr, msg)
		},
		now: time.Now,
	}, nil
}

// OnNotify replaces the default stderr notifier.
func (h *FileHost) OnNotify(fn func(string)) { h.notifyFn = fn }

// OnRender registers a callback invoked whenever a derived view is re-rendered.
func (h *FileHost) OnRender(fn RenderFunc) { h.renderFn = fn }

// OnCursor registers a callback invoked when focus moves in the source.
func (h *FileHost) OnCursor(fn func(int)) { h.cursorFn = fn }

// SetClock overrides the time source (for testing).
func (h *FileHost) SetClock(now func() time.Time) { h.now = now }

// Path returns the source document's file path.
func (h *FileHost) Path() string { return h.path }

// SourceLines returns a copy of the current buffer.
func (h *FileHost) SourceLines() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.lines))
	copy(out, h.lines)
	return out
}

// ReplaceLines replaces the 1-based inclusive range [start, end] with repl.
// Ranges beyond the buffer are clamped, so replacing line 1 of an empty
// document appends.
func (h *FileHost) ReplaceLines(start, end int, repl []string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if start < 1 {
		start = 1
	}
	if end > len(h.lines) {
		end = len(h.lines)
	}
	if start > len(h.lines) {
		h.lines = append(h.lines, repl...)
	} else {
		updated := make([]string, 0, len(h.lines)-(end-start+1)+len(repl))
		updated = append(updated, h.lines[:start-1]...)
		updated = append(updated, repl...)
		updated = append(updated, h.lines[end:]...)
		h.lines = updated
	}
	h.dirty = true
}

// Render stores the latest view content and forwards it to the render hook.
func (h *FileHost) Render(view models.View, lines []string) {
	h.mu.Lock()
	stored := make([]string, len(lines))
	copy(stored, lines)
	h.views[view] = stored
	fn := h.renderFn
	h.mu.Unlock()

	if fn != nil {
		fn(view, stored)
	}
}

// ViewLines returns the most recently rendered content for a view.
func (h *FileHost) ViewLines(view models.View) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.views[view]
}

// Notify reports a user-visible status message.
func (h *FileHost) Notify(message string) {
	h.notifyFn(message)
}

// Timestamp returns the current local time formatted for note headings.
func (h *FileHost) Timestamp() string {
	return h.now().Format(document.TimestampLayout)
}

// MoveCursor records the focus line and forwards it to the cursor hook.
func (h *FileHost) MoveCursor(lineNumber int) {
	h.mu.Lock()
	h.cursor = lineNumber
	fn := h.cursorFn
	h.mu.Unlock()

	if fn != nil {
		fn(lineNumber)
	}
}

// Cursor returns the last focus line set through MoveCursor.
func (h *FileHost) Cursor() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursor
}

// Persist writes the buffer back to the file. A no-op when nothing changed
// since the last write.
func (h *FileHost) Persist() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.dirty {
		return nil
	}
	content := strings.Join(h.lines, "\n") + "\n"
	if err := afero.WriteFile(h.fs, h.path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", h.path, err)
	}
	h.dirty = false
	h.lastPersist = h.now()
	return nil
}

// Dirty reports whether the buffer has unpersisted edits.
func (h *FileHost) Dirty() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dirty
}

// recentlyPersisted reports whether our own Persist ran within window. Judged
// by the host's clock, not the wall clock, so it stays consistent under
// SetClock.
func (h *FileHost) recentlyPersisted(window time.Duration) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.now().Sub(h.lastPersist) < window
}

// reload re-reads the file after an external change. Unpersisted local edits
// lose to the on-disk content, matching the source-of-truth rule that the
// document always wins over derived state.
func (h *FileHost) reload() error {
	data, err := afero.ReadFile(h.fs, h.path)
	if err != nil {
		return fmt.Errorf("reload %s: %w", h.path, err)
	}
	h.mu.Lock()
	h.lines = splitLines(string(data))
	h.dirty = false
	h.mu.Unlock()
	return nil
}

// splitLines splits file content into lines without a trailing phantom line
// for the final newline.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}
