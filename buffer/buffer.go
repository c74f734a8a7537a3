package buffer

import "strings"

// Buffer is the document state: rows and a cursor.
//
// A Buffer is not safe for concurrent use. Hosts that share one between a
// render pass and an input pass should wrap it in Locked.
type Buffer struct {
	lines   [][]rune
	cursor  Pos
	version uint64
}

// New returns an empty document: one empty row, cursor at (0,0).
func New() *Buffer {
	return &Buffer{lines: [][]rune{nil}}
}

// NewFromText returns a document seeded with text split on '\n'.
// The cursor starts at (0,0).
func NewFromText(text string) *Buffer {
	return &Buffer{lines: splitLines(text)}
}

// Content returns all rows joined with '\n'.
func (b *Buffer) Content() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

func (b *Buffer) Cursor() Pos { return b.cursor }

// CursorPosition returns the cursor as (row, column).
func (b *Buffer) CursorPosition() (row, col int) {
	return b.cursor.Row, b.cursor.Col
}

// Version increases every time an action changes the text or the cursor.
func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) lastRow() int { return len(b.lines) - 1 }

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	return lines
}
