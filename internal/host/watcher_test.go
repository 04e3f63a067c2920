package host

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
)

// watcher tests run against the real filesystem; fsnotify cannot observe an
// in-memory afero fs.

func setupWatchedHost(t *testing.T) (*FileHost, string, chan struct{}) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "notes.md")
	if err := os.WriteFile(path, []byte("# Plan\n- [ ] a\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	h, err := NewFileHost(afero.NewOsFs(), path)
	if err != nil {
		t.Fatalf("NewFileHost failed: %v", err)
	}
	h.OnNotify(func(string) {})

	edits := make(chan struct{}, 8)
	w, err := NewWatcher(h, func() { edits <- struct{}{} })
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	w.Start()
	t.Cleanup(w.Stop)

	return h, path, edits
}

func waitEdit(t *testing.T, edits chan struct{}) {
	t.Helper()
	select {
	case <-edits:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for an edit callback")
	}
}

func TestWatcherReportsExternalWrite(t *testing.T) {
	h, path, edits := setupWatchedHost(t)

	if err := os.WriteFile(path, []byte("# Plan\n- [ ] a\n- [ ] b\n"), 0o644); err != nil {
		t.Fatalf("external write: %v", err)
	}

	waitEdit(t, edits)

	// The buffer must be reloaded before the callback fires.
	if got := len(h.SourceLines()); got != 3 {
		t.Errorf("buffer has %d lines after reload, want 3", got)
	}
}

func TestWatcherReportsRenameSave(t *testing.T) {
	h, path, edits := setupWatchedHost(t)

	// Many editors save by writing a temp file and renaming it over the
	// target; the watcher covers the parent directory for exactly this.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte("# Renamed\n"), 0o644); err != nil {
		t.Fatalf("write temp: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("rename: %v", err)
	}

	waitEdit(t, edits)

	if got := h.SourceLines(); len(got) != 1 || got[0] != "# Renamed" {
		t.Errorf("buffer = %v after rename-save", got)
	}
}

func TestWatcherSuppressesPersistEcho(t *testing.T) {
	h, _, edits := setupWatchedHost(t)

	h.ReplaceLines(2, 2, []string{"- [X] a"})
	if err := h.Persist(); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}

	select {
	case <-edits:
		t.Error("our own Persist must not be reported as an external edit")
	case <-time.After(400 * time.Millisecond):
	}
}

func TestRecentlyPersistedUsesHostClock(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/notes.md", []byte("a\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	h, err := NewFileHost(fs, "/notes.md")
	if err != nil {
		t.Fatalf("NewFileHost failed: %v", err)
	}

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local)
	h.SetClock(func() time.Time { return base })

	h.ReplaceLines(1, 1, []string{"b"})
	if err := h.Persist(); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}

	if !h.recentlyPersisted(persistEchoWindow) {
		t.Error("a write at the current clock instant must count as recent")
	}

	h.SetClock(func() time.Time { return base.Add(time.Second) })
	if h.recentlyPersisted(persistEchoWindow) {
		t.Error("a write outside the echo window must not count as recent")
	}
}
