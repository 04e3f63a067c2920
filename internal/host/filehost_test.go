package host

import (
	"reflect"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/taskmirror/taskmirror/models"
)

func setupHost(t *testing.T, content string) (*FileHost, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/notes.md", []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	h, err := NewFileHost(fs, "/notes.md")
	if err != nil {
		t.Fatalf("NewFileHost failed: %v", err)
	}
	return h, fs
}

func TestNewFileHostMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	if _, err := NewFileHost(fs, "/absent.md"); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestSourceLines(t *testing.T) {
	h, _ := setupHost(t, "# Title\n- [ ] a\n")

	got := h.SourceLines()
	want := []string{"# Title", "- [ ] a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SourceLines = %v, want %v", got, want)
	}

	// The returned slice must be a copy.
	got[0] = "mutated"
	if h.SourceLines()[0] != "# Title" {
		t.Error("SourceLines leaked the internal buffer")
	}
}

func TestReplaceLines(t *testing.T) {
	h, _ := setupHost(t, "a\nb\nc\n")

	h.ReplaceLines(2, 2, []string{"B"})
	want := []string{"a", "B", "c"}
	if got := h.SourceLines(); !reflect.DeepEqual(got, want) {
		t.Errorf("after single replace: %v, want %v", got, want)
	}

	h.ReplaceLines(1, 3, []string{"x", "y"})
	want = []string{"x", "y"}
	if got := h.SourceLines(); !reflect.DeepEqual(got, want) {
		t.Errorf("after range replace: %v, want %v", got, want)
	}

	if !h.Dirty() {
		t.Error("edits should mark the buffer dirty")
	}
}

func TestReplaceLinesOnEmptyDocument(t *testing.T) {
	h, _ := setupHost(t, "")

	h.ReplaceLines(1, 1, []string{"# Untitled", ""})
	want := []string{"# Untitled", ""}
	if got := h.SourceLines(); !reflect.DeepEqual(got, want) {
		t.Errorf("SourceLines = %v, want %v", got, want)
	}
}

func TestPersist(t *testing.T) {
	h, fs := setupHost(t, "a\n")

	h.ReplaceLines(1, 1, []string{"b"})
	if err := h.Persist(); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}

	data, err := afero.ReadFile(fs, "/notes.md")
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "b\n" {
		t.Errorf("file content = %q, want %q", data, "b\n")
	}
	if h.Dirty() {
		t.Error("Persist should clear the dirty flag")
	}
}

func TestRenderAndViewLines(t *testing.T) {
	h, _ := setupHost(t, "x\n")

	var hookView models.View
	var hookLines []string
	h.OnRender(func(view models.View, lines []string) {
		hookView = view
		hookLines = lines
	})

	h.Render(models.ViewIncomplete, []string{"- [ ] a"})

	if hookView != models.ViewIncomplete || len(hookLines) != 1 {
		t.Errorf("render hook got %v %v", hookView, hookLines)
	}
	if got := h.ViewLines(models.ViewIncomplete); !reflect.DeepEqual(got, []string{"- [ ] a"}) {
		t.Errorf("ViewLines = %v", got)
	}
	if h.ViewLines(models.ViewComplete) != nil {
		t.Error("unrendered view should have no content")
	}
}

func TestTimestamp(t *testing.T) {
	h, _ := setupHost(t, "x\n")
	h.SetClock(func() time.Time {
		return time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local)
	})

	if got := h.Timestamp(); got != "2024-01-01 12:00:00" {
		t.Errorf("Timestamp = %q", got)
	}
}

func TestMoveCursor(t *testing.T) {
	h, _ := setupHost(t, "x\n")

	var hooked int
	h.OnCursor(func(line int) { hooked = line })
	h.MoveCursor(7)

	if h.Cursor() != 7 || hooked != 7 {
		t.Errorf("cursor = %d, hook = %d, want 7", h.Cursor(), hooked)
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a\n", []string{"a"}},
		{"a\nb", []string{"a", "b"}},
		{"a\n\nb\n", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		if got := splitLines(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitLines(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
