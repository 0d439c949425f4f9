package xmlpull

import "bytes"

// Position is a 1-based line and column. Columns count bytes.
type Position struct {
	Line   int
	Column int
}

// lineTracker accumulates a Position over consumed bytes. A CR LF pair
// counts as one line break even when it straddles two advance calls.
type lineTracker struct {
	line      int
	column    int
	pendingCR bool
}

func newLineTracker() lineTracker {
	return lineTracker{line: 1, column: 1}
}

func (t *lineTracker) advance(data []byte) {
	if len(data) == 0 {
		return
	}
	if bytes.IndexByte(data, '\n') < 0 && bytes.IndexByte(data, '\r') < 0 {
		t.column += len(data)
		t.pendingCR = false
		return
	}
	t.advanceWithNewlines(data)
}

// advanceWithNewlines handles line tracking when newlines are present (slow path).
func (t *lineTracker) advanceWithNewlines(data []byte) {
	for _, b := range data {
		switch b {
		case '\n':
			if t.pendingCR {
				t.pendingCR = false
				continue
			}
			t.line++
			t.column = 1
		case '\r':
			t.line++
			t.column = 1
			t.pendingCR = true
		default:
			t.column++
			t.pendingCR = false
		}
	}
}

func (t lineTracker) position() Position {
	return Position{Line: t.line, Column: t.column}
}
