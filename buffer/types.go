package buffer

import "fmt"

// Pos points into the document by (row, col).
// Col is a rune offset into the row, so 0 <= Col <= row length.
type Pos struct {
	Row int
	Col int
}

func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Row, p.Col) }
