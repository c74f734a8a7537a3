package buffer

func (b *Buffer) move(kind ActionKind) bool {
	next := b.moveCursor(b.cursor, kind)
	if next == b.cursor {
		return false
	}
	b.cursor = next
	return true
}

func (b *Buffer) moveCursor(p Pos, kind ActionKind) Pos {
	row, col := p.Row, p.Col
	lastRow := b.lastRow()

	switch kind {
	case ActionLeft:
		// Left does not wrap to the previous row.
		if col == 0 {
			return p
		}
		return Pos{Row: row, Col: col - 1}
	case ActionRight:
		if col < b.lineLen(row) {
			return Pos{Row: row, Col: col + 1}
		}
		if row == lastRow {
			return p
		}
		return Pos{Row: row + 1, Col: 0}
	case ActionUp:
		nr := max(row-1, 0)
		return Pos{Row: nr, Col: min(col, b.lineLen(nr))}
	case ActionDown:
		nr := min(row+1, lastRow)
		return Pos{Row: nr, Col: min(col, b.lineLen(nr))}
	case ActionHome:
		return Pos{Row: row, Col: 0}
	case ActionEnd:
		return Pos{Row: row, Col: b.lineLen(row)}
	case ActionPageUp:
		return Pos{Row: 0, Col: 0}
	case ActionPageDown:
		return Pos{Row: lastRow, Col: b.lineLen(lastRow)}
	default:
		return p
	}
}
