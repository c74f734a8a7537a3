package buffer

import "fmt"

// InvariantError reports a buffer whose rows or cursor are out of bounds.
// It is only ever produced by a bug in a previous mutation.
type InvariantError struct {
	// Action is the action that was about to be applied, if any.
	Action  Action
	Cursor  Pos
	Rows    int
	LineLen int
	Reason  string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("buffer: %s (cursor=%s rows=%d linelen=%d action=%s)",
		e.Reason, e.Cursor, e.Rows, e.LineLen, e.Action)
}

// Check verifies the document invariants:
// - there is at least one row
// - 0 <= cursor.Row < rows
// - 0 <= cursor.Col <= len(rows[cursor.Row])
func (b *Buffer) Check() *InvariantError {
	rows := len(b.lines)
	if rows == 0 {
		return &InvariantError{Cursor: b.cursor, Reason: "document has no rows"}
	}
	if b.cursor.Row < 0 || b.cursor.Row >= rows {
		return &InvariantError{Cursor: b.cursor, Rows: rows, Reason: "cursor row out of range"}
	}
	n := len(b.lines[b.cursor.Row])
	if b.cursor.Col < 0 || b.cursor.Col > n {
		return &InvariantError{Cursor: b.cursor, Rows: rows, LineLen: n, Reason: "cursor column out of range"}
	}
	return nil
}
