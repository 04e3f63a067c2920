package parser

import "github.com/taskmirror/taskmirror/models"

// Index owns the most recently parsed task sequences and resolves derived-view
// rows to source line numbers. Both sequences are replaced wholesale on every
// Rebuild; they are never patched in place, because any source edit invalidates
// all previously captured line numbers.
type Index struct {
	incomplete []models.Task
	complete   []models.Task
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{}
}

// Rebuild re-parses the source lines, replaces both stored sequences
// atomically, and returns the render model for the derived views.
func (ix *Index) Rebuild(lines []string) models.RenderModel {
	incomplete, complete := Parse(lines)
	ix.incomplete = incomplete
	ix.complete = complete

	rm := models.RenderModel{
		IncompleteLines: make([]string, 0, len(incomplete)),
		CompleteLines:   make([]string, 0, len(complete)),
	}
	for _, t := range incomplete {
		rm.IncompleteLines = append(rm.IncompleteLines, t.Content)
	}
	for _, t := range complete {
		rm.CompleteLines = append(rm.CompleteLines, t.Content)
	}
	return rm
}

// Resolve maps a 1-based row in the given view to the source line number
// recorded at the last rebuild. It reports false when the row is out of range,
// which is expected when a view briefly shows stale rows after an external
// edit shrinks the task count.
func (ix *Index) Resolve(view models.View, row int) (int, bool) {
	tasks := ix.tasks(view)
	if row < 1 || row > len(tasks) {
		return 0, false
	}
	return tasks[row-1].LineNumber, true
}

// Tasks returns the stored sequence for the given view. Callers must treat
// the returned slice as read-only.
func (ix *Index) Tasks(view models.View) []models.Task {
	return ix.tasks(view)
}

// Len returns the number of tasks currently held for the given view.
func (ix *Index) Len(view models.View) int {
	return len(ix.tasks(view))
}

func (ix *Index) tasks(view models.View) []models.Task {
	if view == models.ViewComplete {
		return ix.complete
	}
	return ix.incomplete
}
