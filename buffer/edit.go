package buffer

import (
	"slices"
	"unicode"
)

// insertRune types r at the cursor. Control characters other than tab and
// newline are dropped; newline splits the row like Enter.
func (b *Buffer) insertRune(r rune) bool {
	if r == '\n' {
		return b.splitLine()
	}
	if unicode.IsControl(r) && r != '\t' {
		return false
	}

	row, col := b.cursor.Row, b.cursor.Col
	b.lines[row] = slices.Insert(b.lines[row], col, r)
	b.cursor.Col++
	return true
}

// splitLine moves everything after the cursor to a new row below it.
func (b *Buffer) splitLine() bool {
	row, col := b.cursor.Row, b.cursor.Col
	line := b.lines[row]

	tail := append([]rune(nil), line[col:]...)
	b.lines[row] = line[:col:col]
	b.lines = slices.Insert(b.lines, row+1, tail)

	b.cursor = Pos{Row: row + 1, Col: 0}
	return true
}

// deleteBackward applies backspace semantics.
func (b *Buffer) deleteBackward() bool {
	row, col := b.cursor.Row, b.cursor.Col
	if row == 0 && col == 0 {
		return false
	}

	if col > 0 {
		b.lines[row] = slices.Delete(b.lines[row], col-1, col)
		b.cursor.Col--
		return true
	}

	// Join with previous row; the cursor lands on the join point.
	prevRow := row - 1
	joinCol := len(b.lines[prevRow])
	b.joinWithNext(prevRow)
	b.cursor = Pos{Row: prevRow, Col: joinCol}
	return true
}

// deleteForward applies delete-key semantics. The cursor never moves.
func (b *Buffer) deleteForward() bool {
	row, col := b.cursor.Row, b.cursor.Col
	if col < len(b.lines[row]) {
		b.lines[row] = slices.Delete(b.lines[row], col, col+1)
		return true
	}
	if row == b.lastRow() {
		return false
	}

	b.joinWithNext(row)
	return true
}

// joinWithNext appends row+1 to row and removes row+1.
func (b *Buffer) joinWithNext(row int) {
	joined := make([]rune, 0, len(b.lines[row])+len(b.lines[row+1]))
	joined = append(joined, b.lines[row]...)
	joined = append(joined, b.lines[row+1]...)
	b.lines[row] = joined
	b.lines = slices.Delete(b.lines, row+1, row+2)
}
