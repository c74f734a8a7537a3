package editor

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/scribe/internal/grapheme"
)

func (m *Model) renderContent() string {
	lines := strings.Split(m.buf.DisplayContent(m.cfg.TabWidth), "\n")
	cursorRow, cursorCell := m.buf.DisplayCursor(m.cfg.TabWidth)

	digitCount := 0
	if m.cfg.ShowLineNums {
		digitCount = gutterDigits(len(lines))
	}

	out := make([]string, 0, len(lines))
	for row, line := range lines {
		var sb strings.Builder

		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cursorRow {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digitCount, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		caret := -1
		if m.focused && row == cursorRow {
			caret = cursorCell
		}
		sb.WriteString(renderLine(m.cfg.Style, line, caret))

		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// renderLine styles one display line, drawing the caret over the cluster
// that starts at cell caret (or past the end of the line). caret < 0 means
// no caret on this line.
func renderLine(st Style, line string, caret int) string {
	if caret < 0 {
		return st.Text.Render(line)
	}

	var before, under, after strings.Builder
	cell := 0
	for _, c := range grapheme.Split(line) {
		switch {
		case cell < caret:
			before.WriteString(c)
		case cell == caret && under.Len() == 0:
			under.WriteString(c)
		default:
			after.WriteString(c)
		}
		// Tabs are already expanded, so the tab width is irrelevant here.
		cell += grapheme.CellWidth(c, cell, 0)
	}
	if under.Len() == 0 {
		under.WriteByte(' ')
	}

	var sb strings.Builder
	if before.Len() > 0 {
		sb.WriteString(st.Text.Render(before.String()))
	}
	sb.WriteString(st.Cursor.Render(under.String()))
	if after.Len() > 0 {
		sb.WriteString(st.Text.Render(after.String()))
	}
	return sb.String()
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}
