// Package document provides pure transforms over a markdown document held as
// a slice of lines: flipping a task's checkbox marker and splicing in
// timestamped note sections. Nothing here performs I/O; callers own writing
// the results back to the source.
package document

import "regexp"

// togglePattern is looser than the parser's grammar on purpose: any single
// character (or none) between the brackets qualifies for toggling, so a user
// can repair markers like [x] or [-] by toggling them. The three groups keep
// everything but the marker byte-for-byte intact.
var togglePattern = regexp.MustCompile(`^(\s*- \[)(.?)(\].*)$`)

// Toggle flips the checkbox marker on the line at lineNumber (1-based) and
// returns the updated line. It reports false, leaving everything untouched,
// when lineNumber is out of range or the line does not carry a checkbox; a
// jump or cursor drift onto a non-task line is expected and must not error.
// The caller is responsible for writing the returned line back into the
// source and re-syncing.
func Toggle(lines []string, lineNumber int) (string, bool) {
	if lineNumber < 1 || lineNumber > len(lines) {
		return "", false
	}
	m := togglePattern.FindStringSubmatch(lines[lineNumber-1])
	if m == nil {
		return "", false
	}
	marker := "X"
	if m[2] == "X" {
		marker = " "
	}
	return m[1] + marker + m[3], true
}
