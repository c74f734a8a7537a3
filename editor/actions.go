package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/scribe/buffer"
)

// EditorState captures buffer state before a batch is applied.
type EditorState struct {
	Version uint64
	Cursor  buffer.Pos
}

// ActionBatch groups the actions produced from one input event.
type ActionBatch struct {
	Before  EditorState
	Actions []buffer.Action
}

// ActionDecision controls whether the editor applies a batch locally.
type ActionDecision struct {
	ApplyLocally bool
}

// ActionsForKey translates one key message into buffer actions.
//
// Named keys map to a single action through km. Typed runes produce one
// Insert per rune, tab produces Insert('\t'), and pasted text has its line
// endings normalized to '\n' first. Keys with no meaning return nil.
func ActionsForKey(km KeyMap, msg tea.KeyMsg) []buffer.Action {
	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste {
		return insertActions(normalizeNewlines(string(msg.Runes)))
	}

	switch {
	case key.Matches(msg, km.Left):
		return []buffer.Action{buffer.Left}
	case key.Matches(msg, km.Right):
		return []buffer.Action{buffer.Right}
	case key.Matches(msg, km.Up):
		return []buffer.Action{buffer.Up}
	case key.Matches(msg, km.Down):
		return []buffer.Action{buffer.Down}
	case key.Matches(msg, km.Home):
		return []buffer.Action{buffer.Home}
	case key.Matches(msg, km.End):
		return []buffer.Action{buffer.End}
	case key.Matches(msg, km.PageUp):
		return []buffer.Action{buffer.PageUp}
	case key.Matches(msg, km.PageDown):
		return []buffer.Action{buffer.PageDown}
	case key.Matches(msg, km.Backspace):
		return []buffer.Action{buffer.Backspace}
	case key.Matches(msg, km.Delete):
		return []buffer.Action{buffer.Delete}
	case key.Matches(msg, km.Enter):
		return []buffer.Action{buffer.Enter}
	case key.Matches(msg, km.Escape):
		return []buffer.Action{buffer.Escape}
	}

	switch msg.Type {
	case tea.KeyTab:
		return []buffer.Action{buffer.Insert('\t')}
	case tea.KeySpace:
		return []buffer.Action{buffer.Insert(' ')}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		return insertActions(string(msg.Runes))
	}
	return nil
}

func insertActions(s string) []buffer.Action {
	if s == "" {
		return nil
	}
	out := make([]buffer.Action, 0, len(s))
	for _, r := range s {
		out = append(out, buffer.Insert(r))
	}
	return out
}

// normalizeNewlines folds \r\n and \r from external sources into \n.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func editorStateFromBuffer(b *buffer.Buffer) EditorState {
	if b == nil {
		return EditorState{}
	}
	return EditorState{Version: b.Version(), Cursor: b.Cursor()}
}
