// Package buffer implements the line/cursor document model for scribe.
//
// A Buffer holds an ordered list of rows and a cursor. The only way to mutate
// it is Apply, which takes one Action from a closed vocabulary (insert,
// delete, navigation). Every action is total: out-of-range moves saturate
// instead of failing.
//
// Coordinates are 0-based (Row, Col); Col is a rune offset into the row.
package buffer
