// Package sync orchestrates a per-document mirroring session: it re-parses
// the source on demand and on a periodic tick, keeps the derived views
// rendered, and translates toggle and jump requests between view rows and
// source line numbers.
package sync

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taskmirror/taskmirror/internal/document"
	"github.com/taskmirror/taskmirror/internal/git"
	"github.com/taskmirror/taskmirror/internal/parser"
	"github.com/taskmirror/taskmirror/models"
)

// ErrNotMarkdown is returned when activation is requested for a document that
// is not a markdown file.
var ErrNotMarkdown = errors.New("not a markdown document")

// ErrAlreadyActive is returned when Activate is called on an active session.
var ErrAlreadyActive = errors.New("session already active")

// Host is the surrounding environment the controller talks to. It supplies
// the authoritative source text, applies edits, and presents the derived
// views. Implementations must tolerate being called from the controller's
// resync goroutine.
type Host interface {
	// Path returns the source document's file path.
	Path() string
	// SourceLines returns the full current content, one entry per line.
	SourceLines() []string
	// ReplaceLines replaces the 1-based inclusive line range [start, end]
	// with repl.
	ReplaceLines(start, end int, repl []string)
	// Render pushes new read-only content to a derived view.
	Render(view models.View, lines []string)
	// Notify shows a user-visible status message.
	Notify(message string)
	// Timestamp returns the current local time as "YYYY-MM-DD HH:MM:SS".
	Timestamp() string
	// MoveCursor moves focus to the given 1-based source line.
	MoveCursor(lineNumber int)
	// Persist flushes pending edits to durable storage.
	Persist() error
}

// State is the controller's lifecycle state for one document.
type State int

const (
	StateInactive State = iota
	StateActive
)

// Controller owns one document session. All task/index state is ephemeral and
// rebuilt from the source text on every sync; nothing survives Deactivate.
//
// The periodic tick runs on its own goroutine, so the mutex serializes it
// against host-driven requests; no operation can observe a rebuild in
// progress.
type Controller struct {
	mu    sync.Mutex
	id    string
	host  Host
	opts  models.Options
	index *parser.Index
	state State
	git   *git.Integration

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewController creates an inactive controller for the given host.
// gitIntegration may be nil when the git_integration option is off.
func NewController(host Host, opts models.Options, gitIntegration *git.Integration) *Controller {
	return &Controller{
		id:    uuid.NewString(),
		host:  host,
		opts:  opts,
		index: parser.NewIndex(),
		git:   gitIntegration,
	}
}

// ID returns the session's identifier.
func (c *Controller) ID() string { return c.id }

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Activate transitions Inactive -> Active: it checks the document is
// markdown, performs the initial rebuild and render, and starts the periodic
// resync schedule. A precondition failure is notified and leaves the
// controller untouched.
func (c *Controller) Activate() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateActive {
		return ErrAlreadyActive
	}
	if !IsMarkdownPath(c.host.Path()) {
		c.host.Notify("taskmirror: not a markdown document")
		return ErrNotMarkdown
	}

	c.state = StateActive
	c.rebuildLocked()
	c.host.Notify("taskmirror: session " + shortID(c.id) + " active")

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.wg.Add(1)
	go c.resyncLoop(ctx)
	return nil
}

// Deactivate transitions Active -> Inactive, cancels the periodic schedule,
// and discards the index. Safe to call when already inactive.
func (c *Controller) Deactivate() {
	c.mu.Lock()
	if c.state == StateInactive {
		c.mu.Unlock()
		return
	}
	c.state = StateInactive
	cancel := c.cancel
	c.cancel = nil
	c.index = parser.NewIndex()
	c.mu.Unlock()

	// Cancel outside the lock; the loop goroutine takes the lock per tick.
	cancel()
	c.wg.Wait()
}

// HandleSourceEdit triggers an eager rebuild after the host reports the
// source changed. No-op while Inactive.
func (c *Controller) HandleSourceEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateActive {
		return
	}
	c.rebuildLocked()
}

// HandleToggle flips the checkbox at a position reported by the host. For
// origin ViewSource, pos is a source line number; for the derived views it is
// a 1-based row resolved through the index. Stale positions resolve to
// nothing and are dropped silently.
func (c *Controller) HandleToggle(origin models.View, pos int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateActive {
		return
	}

	lineNumber := pos
	if origin != models.ViewSource {
		var ok bool
		lineNumber, ok = c.index.Resolve(origin, pos)
		if !ok {
			return
		}
	}

	lines := c.host.SourceLines()
	updated, ok := document.Toggle(lines, lineNumber)
	if !ok {
		return
	}
	c.host.ReplaceLines(lineNumber, lineNumber, []string{updated})
	c.rebuildLocked()
}

// HandleJump moves focus in the source to the task shown at the given view
// row. Out-of-range rows are dropped silently.
func (c *Controller) HandleJump(view models.View, row int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateActive {
		return
	}
	lineNumber, ok := c.index.Resolve(view, row)
	if !ok {
		return
	}
	c.host.MoveCursor(lineNumber)
}

// CreateNote inserts a timestamped note section into the document and moves
// the cursor to it. When git integration is enabled, pending edits are
// persisted and committed first; a failed commit only changes the status
// message, never blocks the insertion.
func (c *Controller) CreateNote() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateActive {
		return
	}

	ts := c.host.Timestamp()

	if c.git != nil {
		if err := c.host.Persist(); err != nil {
			c.host.Notify("taskmirror: persist failed: " + err.Error())
		} else {
			c.git.CommitNote(c.host.Path(), ts)
		}
	}

	lines := c.host.SourceLines()
	updated, cursor := document.InsertNote(lines, ts)
	end := len(lines)
	if end == 0 {
		end = 1
	}
	c.host.ReplaceLines(1, end, updated)
	c.host.MoveCursor(cursor)
	c.rebuildLocked()
}

// Resync performs one rebuild+render cycle. No-op while Inactive.
func (c *Controller) Resync() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateActive {
		return
	}
	c.rebuildLocked()
}

// Tasks returns the current sequence for a view, for hosts that present task
// metadata beyond the rendered lines.
func (c *Controller) Tasks(view models.View) []models.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index.Tasks(view)
}

// rebuildLocked re-parses the source and pushes both views. Caller holds mu.
func (c *Controller) rebuildLocked() {
	rm := c.index.Rebuild(c.host.SourceLines())
	c.host.Render(models.ViewIncomplete, rm.IncompleteLines)
	c.host.Render(models.ViewComplete, rm.CompleteLines)
}

func (c *Controller) resyncLoop(ctx context.Context) {
	defer c.wg.Done()
	ticker := time.NewTicker(time.Duration(c.opts.UpdateInterval) * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Resync()
		}
	}
}

// shortID returns the first uuid segment, enough to tell sessions apart in
// status messages.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// IsMarkdownPath reports whether path looks like a markdown document.
func IsMarkdownPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".mdown":
		return true
	}
	return false
}
