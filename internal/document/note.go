package document

import (
	"github.com/taskmirror/taskmirror/internal/parser"
)

// TimestampLayout is the time.Format layout for note headings,
// e.g. "2024-01-01 12:00:00".
const TimestampLayout = "2006-01-02 15:04:05"

// untitledHeading is prepended when a document has no level-1 heading yet.
const untitledHeading = "# Untitled"

// InsertNote splices a timestamped level-2 heading block into the document
// and returns the new lines along with the 1-based line the cursor should
// land on for immediate text entry.
//
// When the document already has a level-1 heading at line H, four lines
// (blank, heading, blank, blank) go immediately after H and the cursor target
// is H+4. When it has none, a five-line preamble starting with "# Untitled"
// is prepended and the cursor target is line 6.
//
// The timestamp is supplied by the caller so the transform stays pure.
func InsertNote(lines []string, timestamp string) ([]string, int) {
	note := "## " + timestamp

	h := parser.FirstHeading(lines)
	if h == 0 {
		out := make([]string, 0, len(lines)+5)
		out = append(out, untitledHeading, "", note, "", "")
		out = append(out, lines...)
		return out, 6
	}

	out := make([]string, 0, len(lines)+4)
	out = append(out, lines[:h]...)
	out = append(out, "", note, "", "")
	out = append(out, lines[h:]...)
	return out, h + 4
}
