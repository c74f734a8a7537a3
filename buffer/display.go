package buffer

import (
	"strings"

	"github.com/iw2rmb/scribe/internal/grapheme"
)

// DisplayContent returns Content with tabs expanded to spaces at tabWidth
// stops (4 when tabWidth <= 0). The stored text keeps its tabs.
func (b *Buffer) DisplayContent(tabWidth int) string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(grapheme.ExpandTabs(string(line), tabWidth))
	}
	return sb.String()
}

// DisplayCursor returns the cursor as (row, cell column) in the layout
// produced by DisplayContent. It is derived from the current row text on
// every call.
func (b *Buffer) DisplayCursor(tabWidth int) (row, cell int) {
	row, col := b.cursor.Row, b.cursor.Col
	if row < 0 || row >= len(b.lines) {
		return row, col
	}
	line := b.lines[row]
	col = min(max(col, 0), len(line))
	return row, grapheme.Width(string(line[:col]), tabWidth)
}
