package parser

import (
	"reflect"
	"testing"

	"github.com/taskmirror/taskmirror/models"
)

func TestIndexRebuild(t *testing.T) {
	ix := NewIndex()
	rm := ix.Rebuild([]string{
		"# Plan",
		"- [ ] first",
		"- [X] second",
		"  - [ ] third",
	})

	wantIncomplete := []string{"- [ ] first", "- [ ] third"}
	wantComplete := []string{"- [X] second"}
	if !reflect.DeepEqual(rm.IncompleteLines, wantIncomplete) {
		t.Errorf("incomplete lines = %v, want %v", rm.IncompleteLines, wantIncomplete)
	}
	if !reflect.DeepEqual(rm.CompleteLines, wantComplete) {
		t.Errorf("complete lines = %v, want %v", rm.CompleteLines, wantComplete)
	}
}

func TestIndexResolve(t *testing.T) {
	ix := NewIndex()
	ix.Rebuild([]string{
		"- [ ] a", // line 1
		"- [X] b", // line 2
		"- [ ] c", // line 3
	})

	if line, ok := ix.Resolve(models.ViewIncomplete, 1); !ok || line != 1 {
		t.Errorf("Resolve(incomplete, 1) = %d, %v; want 1, true", line, ok)
	}
	if line, ok := ix.Resolve(models.ViewIncomplete, 2); !ok || line != 3 {
		t.Errorf("Resolve(incomplete, 2) = %d, %v; want 3, true", line, ok)
	}
	if line, ok := ix.Resolve(models.ViewComplete, 1); !ok || line != 2 {
		t.Errorf("Resolve(complete, 1) = %d, %v; want 2, true", line, ok)
	}
}

func TestIndexResolveOutOfRange(t *testing.T) {
	ix := NewIndex()
	ix.Rebuild([]string{"- [ ] only"})

	for _, row := range []int{0, -1, 2, 100} {
		if _, ok := ix.Resolve(models.ViewIncomplete, row); ok {
			t.Errorf("Resolve(incomplete, %d) should report false", row)
		}
	}
	if _, ok := ix.Resolve(models.ViewComplete, 1); ok {
		t.Error("Resolve on an empty view should report false")
	}
}

func TestIndexRebuildReplacesWholesale(t *testing.T) {
	ix := NewIndex()
	ix.Rebuild([]string{"- [ ] a", "- [ ] b"})
	ix.Rebuild([]string{"- [X] only one now"})

	if ix.Len(models.ViewIncomplete) != 0 {
		t.Error("stale incomplete tasks survived the rebuild")
	}
	if _, ok := ix.Resolve(models.ViewIncomplete, 1); ok {
		t.Error("stale row resolved after shrink")
	}
	if line, ok := ix.Resolve(models.ViewComplete, 1); !ok || line != 1 {
		t.Errorf("Resolve(complete, 1) = %d, %v; want 1, true", line, ok)
	}
}
