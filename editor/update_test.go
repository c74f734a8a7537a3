package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/scribe/buffer"
)

func typeKeys(m Model, msgs ...tea.KeyMsg) Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUpdate_TypingMovementAndDelete(t *testing.T) {
	m := New(Config{Text: "ab"})

	m = typeKeys(m, tea.KeyMsg{Type: tea.KeyRight}, runes("X"))
	require.Equal(t, "aXb", m.Content())
	assert.Equal(t, buffer.Pos{Row: 0, Col: 2}, m.buf.Cursor())

	m = typeKeys(m, tea.KeyMsg{Type: tea.KeyBackspace})
	require.Equal(t, "ab", m.Content())
	assert.Equal(t, buffer.Pos{Row: 0, Col: 1}, m.buf.Cursor())

	m = typeKeys(m, tea.KeyMsg{Type: tea.KeyDelete})
	require.Equal(t, "a", m.Content())
}

func TestUpdate_EnterSplitsAndPageKeysJump(t *testing.T) {
	m := New(Config{})
	m = typeKeys(m, runes("abc"), tea.KeyMsg{Type: tea.KeyEnter}, runes("de"))
	require.Equal(t, "abc\nde", m.Content())

	m = typeKeys(m, tea.KeyMsg{Type: tea.KeyPgUp})
	row, col := m.CursorPosition()
	assert.Equal(t, [2]int{0, 0}, [2]int{row, col})

	m = typeKeys(m, tea.KeyMsg{Type: tea.KeyPgDown})
	row, col = m.CursorPosition()
	assert.Equal(t, [2]int{1, 2}, [2]int{row, col})
}

func TestUpdate_EscapeLeavesBufferUntouched(t *testing.T) {
	m := New(Config{Text: "ab"})
	v := m.Version()

	m = typeKeys(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "ab", m.Content())
	assert.Equal(t, v, m.Version())
}

func TestUpdate_ReadOnly_IgnoresMutations(t *testing.T) {
	m := New(Config{Text: "ab", ReadOnly: true})

	m = typeKeys(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, buffer.Pos{Row: 0, Col: 1}, m.buf.Cursor())

	m = typeKeys(m, runes("X"), tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "ab", m.Content())
	assert.Equal(t, buffer.Pos{Row: 0, Col: 1}, m.buf.Cursor())

	m = m.Apply(buffer.Insert('Z'), buffer.End)
	assert.Equal(t, "ab", m.Content())
	assert.Equal(t, buffer.Pos{Row: 0, Col: 2}, m.buf.Cursor())
}

func TestUpdate_BlurredIgnoresKeys(t *testing.T) {
	m := New(Config{Text: "ab"}).Blur()
	m = typeKeys(m, runes("X"))
	assert.Equal(t, "ab", m.Content())

	m = m.Focus()
	m = typeKeys(m, runes("X"))
	assert.Equal(t, "Xab", m.Content())
}

func TestUpdate_OnActionsCanVeto(t *testing.T) {
	var batches []ActionBatch
	allow := false
	m := New(Config{
		Text: "ab",
		OnActions: func(batch ActionBatch) ActionDecision {
			batches = append(batches, batch)
			return ActionDecision{ApplyLocally: allow}
		},
	})

	m = typeKeys(m, runes("XY"))
	require.Len(t, batches, 1)
	assert.Equal(t, []buffer.Action{buffer.Insert('X'), buffer.Insert('Y')}, batches[0].Actions)
	assert.Equal(t, EditorState{Version: 0, Cursor: buffer.Pos{}}, batches[0].Before)
	assert.Equal(t, "ab", m.Content())

	allow = true
	m = typeKeys(m, runes("XY"))
	require.Len(t, batches, 2)
	assert.Equal(t, "XYab", m.Content())
}

func TestUpdate_UnboundKeyDoesNotReachHooks(t *testing.T) {
	calls := 0
	m := New(Config{
		OnActions: func(ActionBatch) ActionDecision {
			calls++
			return ActionDecision{ApplyLocally: true}
		},
	})
	_ = typeKeys(m, tea.KeyMsg{Type: tea.KeyF5})
	assert.Zero(t, calls)
}
