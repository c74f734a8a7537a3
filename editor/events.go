package editor

import "github.com/iw2rmb/scribe/buffer"

// ChangeEvent describes the buffer after an input event changed it.
type ChangeEvent struct {
	Version uint64
	Cursor  buffer.Pos

	// Actions are the actions applied for the input event, in order.
	Actions []buffer.Action

	// v0: simplest payload; host can diff if needed.
	Text string
}

func buildChangeEvent(b *buffer.Buffer, applied []buffer.Action) ChangeEvent {
	return ChangeEvent{
		Version: b.Version(),
		Cursor:  b.Cursor(),
		Actions: append([]buffer.Action(nil), applied...),
		Text:    b.Content(),
	}
}
