package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl fallbacks).
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	Home, End             key.Binding
	PageUp, PageDown      key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding
	Escape            key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "doc start")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "doc end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "escape")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Home, km.End, km.PageUp, km.PageDown}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Up, km.Down},
		{km.Home, km.End, km.PageUp, km.PageDown},
		{km.Backspace, km.Delete, km.Enter, km.Escape},
	}
}

func (km KeyMap) bindings() []key.Binding {
	return []key.Binding{
		km.Left, km.Right, km.Up, km.Down,
		km.Home, km.End, km.PageUp, km.PageDown,
		km.Backspace, km.Delete, km.Enter, km.Escape,
	}
}

func (km KeyMap) isZero() bool {
	for _, b := range km.bindings() {
		if len(b.Keys()) > 0 {
			return false
		}
	}
	return true
}
