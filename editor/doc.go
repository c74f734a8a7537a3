// Package editor provides a Bubble Tea text editor component backed by the
// buffer package.
//
// The Model is the single owner of its buffer: key messages are translated
// into buffer actions and applied one at a time, and rendering reads the
// buffer's display content and cursor. The package holds no editing logic of
// its own.
package editor
