// Package grapheme measures text in terminal cells.
package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is used whenever a non-positive tab width is supplied.
const DefaultTabWidth = 4

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// TabAdvance returns the number of cells a tab occupies when it starts at
// visualCol.
func TabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	adv := tabWidth - visualCol%tabWidth
	if adv < 1 {
		return 1
	}
	return adv
}

// CellWidth returns the width of one cluster starting at visualCol.
func CellWidth(cluster string, visualCol, tabWidth int) int {
	if cluster == "\t" {
		return TabAdvance(visualCol, tabWidth)
	}

	w := max(runewidth.StringWidth(cluster), 0)
	if w == 0 {
		// runewidth reports 0 for some emoji sequences that terminals draw.
		w = max(w, uniseg.StringWidth(cluster))
	}
	return w
}

// Width returns the cell width of text laid out from column 0.
func Width(text string, tabWidth int) int {
	col := 0
	for _, c := range Split(text) {
		col += CellWidth(c, col, tabWidth)
	}
	return col
}

// ExpandTabs replaces each tab with spaces up to the next tab stop.
func ExpandTabs(text string, tabWidth int) string {
	if !strings.ContainsRune(text, '\t') {
		return text
	}

	var sb strings.Builder
	col := 0
	for _, c := range Split(text) {
		w := CellWidth(c, col, tabWidth)
		if c == "\t" {
			sb.WriteString(strings.Repeat(" ", w))
		} else {
			sb.WriteString(c)
		}
		col += w
	}
	return sb.String()
}
