package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/iw2rmb/scribe/buffer"
)

func TestActionsForKey_NamedKeys(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []buffer.Action
	}{
		{name: "left", msg: tea.KeyMsg{Type: tea.KeyLeft}, want: []buffer.Action{buffer.Left}},
		{name: "ctrl+b is left", msg: tea.KeyMsg{Type: tea.KeyCtrlB}, want: []buffer.Action{buffer.Left}},
		{name: "right", msg: tea.KeyMsg{Type: tea.KeyRight}, want: []buffer.Action{buffer.Right}},
		{name: "up", msg: tea.KeyMsg{Type: tea.KeyUp}, want: []buffer.Action{buffer.Up}},
		{name: "down", msg: tea.KeyMsg{Type: tea.KeyDown}, want: []buffer.Action{buffer.Down}},
		{name: "home", msg: tea.KeyMsg{Type: tea.KeyHome}, want: []buffer.Action{buffer.Home}},
		{name: "ctrl+a is home", msg: tea.KeyMsg{Type: tea.KeyCtrlA}, want: []buffer.Action{buffer.Home}},
		{name: "end", msg: tea.KeyMsg{Type: tea.KeyEnd}, want: []buffer.Action{buffer.End}},
		{name: "pgup", msg: tea.KeyMsg{Type: tea.KeyPgUp}, want: []buffer.Action{buffer.PageUp}},
		{name: "pgdown", msg: tea.KeyMsg{Type: tea.KeyPgDown}, want: []buffer.Action{buffer.PageDown}},
		{name: "backspace", msg: tea.KeyMsg{Type: tea.KeyBackspace}, want: []buffer.Action{buffer.Backspace}},
		{name: "delete", msg: tea.KeyMsg{Type: tea.KeyDelete}, want: []buffer.Action{buffer.Delete}},
		{name: "enter", msg: tea.KeyMsg{Type: tea.KeyEnter}, want: []buffer.Action{buffer.Enter}},
		{name: "esc", msg: tea.KeyMsg{Type: tea.KeyEsc}, want: []buffer.Action{buffer.Escape}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ActionsForKey(km, tt.msg))
		})
	}
}

func TestActionsForKey_TextInput(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []buffer.Action
	}{
		{
			name: "runes insert one by one",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hé")},
			want: []buffer.Action{buffer.Insert('h'), buffer.Insert('é')},
		},
		{
			name: "tab",
			msg:  tea.KeyMsg{Type: tea.KeyTab},
			want: []buffer.Action{buffer.Insert('\t')},
		},
		{
			name: "space",
			msg:  tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}},
			want: []buffer.Action{buffer.Insert(' ')},
		},
		{
			name: "paste normalizes line endings",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\r\nb\rc"), Paste: true},
			want: []buffer.Action{
				buffer.Insert('a'), buffer.Insert('\n'),
				buffer.Insert('b'), buffer.Insert('\n'),
				buffer.Insert('c'),
			},
		},
		{
			name: "alt runes are ignored",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b"), Alt: true},
			want: nil,
		},
		{
			name: "unbound key",
			msg:  tea.KeyMsg{Type: tea.KeyF5},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ActionsForKey(km, tt.msg))
		})
	}
}

func TestKeyMap_ZeroFallsBackToDefault(t *testing.T) {
	assert.True(t, KeyMap{}.isZero())
	assert.False(t, DefaultKeyMap().isZero())

	m := New(Config{})
	assert.Equal(t, DefaultKeyMap().Left.Keys(), m.KeyMap().Left.Keys())
	assert.Len(t, m.KeyMap().FullHelp(), 3)
}
