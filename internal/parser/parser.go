// Package parser implements the checkbox grammar used to extract task lines
// from a markdown document, and the position index that maps derived-view rows
// back to source line numbers.
//
// The grammar is deliberately small: two mutually exclusive checkbox patterns
// and one level-1 heading pattern. Only an uppercase X marks a task complete;
// lowercase x is treated as incomplete.
package parser

import (
	"regexp"
	"strings"

	"github.com/taskmirror/taskmirror/models"
)

var (
	// completePattern matches a finished task: `- [X]` with exactly one
	// uppercase X between the brackets.
	completePattern = regexp.MustCompile(`^\s*- \[X\](.*)$`)

	// incompletePattern matches an open task: `- [ ]` or `- []`.
	incompletePattern = regexp.MustCompile(`^\s*- \[ ?\](.*)$`)

	// headingPattern matches a level-1 heading with non-empty text. A bare
	// `# ` line does not count.
	headingPattern = regexp.MustCompile(`^# +\S`)
)

// Parse scans lines and partitions the task lines into incomplete and complete
// sequences, both in source order. Line numbers are 1-based. Lines matching
// neither pattern are ignored. Parse is pure: identical input always yields
// identical output.
func Parse(lines []string) (incomplete, complete []models.Task) {
	for i, line := range lines {
		// The complete pattern is checked first so a `[X]` line can never
		// also land in the incomplete sequence.
		switch {
		case completePattern.MatchString(line):
			complete = append(complete, models.Task{
				LineNumber: i + 1,
				Content:    strings.TrimLeft(line, " \t"),
				Completed:  true,
			})
		case incompletePattern.MatchString(line):
			incomplete = append(incomplete, models.Task{
				LineNumber: i + 1,
				Content:    strings.TrimLeft(line, " \t"),
				Completed:  false,
			})
		}
	}
	return incomplete, complete
}

// IsTaskLine reports whether line matches either checkbox pattern.
func IsTaskLine(line string) bool {
	return completePattern.MatchString(line) || incompletePattern.MatchString(line)
}

// FirstHeading returns the 1-based line number of the first level-1 heading,
// or 0 if the document has none.
func FirstHeading(lines []string) int {
	for i, line := range lines {
		if headingPattern.MatchString(line) {
			return i + 1
		}
	}
	return 0
}
