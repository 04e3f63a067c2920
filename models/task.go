package models

import (
	"github.com/go-playground/validator/v10"
)

// View identifies one of the two derived task views.
type View string

const (
	ViewIncomplete View = "incomplete"
	ViewComplete   View = "complete"
	// ViewSource identifies the source document itself, used as the origin of
	// toggle requests made directly in the document rather than in a derived
	// view.
	ViewSource View = "source"
)

// Task is an immutable snapshot of a checkbox line taken at parse time.
// LineNumber is only valid until the source document changes; every edit
// invalidates previously captured tasks, which is why views are rebuilt
// wholesale instead of patched.
type Task struct {
	// LineNumber is the 1-based position of the line in the source document
	// at the moment of parsing.
	LineNumber int `json:"lineNumber"`
	// Content is the task line with leading whitespace stripped. The checkbox
	// marker is retained.
	Content string `json:"content"`
	// Completed reports whether the marker was [X] as opposed to [ ] or [].
	Completed bool `json:"completed"`
}

// RenderModel carries the line content for both derived views after a rebuild.
type RenderModel struct {
	IncompleteLines []string `json:"incompleteLines"`
	CompleteLines   []string `json:"completeLines"`
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
