package buffer

import "fmt"

// ActionKind identifies one variant of the editing vocabulary.
type ActionKind uint8

const (
	ActionInsert ActionKind = iota
	ActionDelete
	ActionBackspace
	ActionEnter
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionHome
	ActionEnd
	ActionPageUp
	ActionPageDown
	// ActionEscape is reserved. Applying it leaves the buffer untouched until
	// a behavior is decided for it.
	ActionEscape
)

var actionKindNames = [...]string{
	ActionInsert:    "insert",
	ActionDelete:    "delete",
	ActionBackspace: "backspace",
	ActionEnter:     "enter",
	ActionLeft:      "left",
	ActionRight:     "right",
	ActionUp:        "up",
	ActionDown:      "down",
	ActionHome:      "home",
	ActionEnd:       "end",
	ActionPageUp:    "pageup",
	ActionPageDown:  "pagedown",
	ActionEscape:    "escape",
}

func (k ActionKind) String() string {
	if int(k) < len(actionKindNames) {
		return actionKindNames[k]
	}
	return fmt.Sprintf("ActionKind(%d)", uint8(k))
}

// Action is one unit of user intent. Rune is only meaningful for
// ActionInsert.
type Action struct {
	Kind ActionKind
	Rune rune
}

// Insert returns the action that types r at the cursor.
func Insert(r rune) Action {
	return Action{Kind: ActionInsert, Rune: r}
}

var (
	Delete    = Action{Kind: ActionDelete}
	Backspace = Action{Kind: ActionBackspace}
	Enter     = Action{Kind: ActionEnter}
	Left      = Action{Kind: ActionLeft}
	Right     = Action{Kind: ActionRight}
	Up        = Action{Kind: ActionUp}
	Down      = Action{Kind: ActionDown}
	Home      = Action{Kind: ActionHome}
	End       = Action{Kind: ActionEnd}
	PageUp    = Action{Kind: ActionPageUp}
	PageDown  = Action{Kind: ActionPageDown}
	Escape    = Action{Kind: ActionEscape}
)

func (a Action) String() string {
	if a.Kind == ActionInsert {
		return fmt.Sprintf("insert(%q)", a.Rune)
	}
	return a.Kind.String()
}

// Mutates reports whether actions of this kind can change the text.
func (k ActionKind) Mutates() bool {
	switch k {
	case ActionInsert, ActionDelete, ActionBackspace, ActionEnter:
		return true
	default:
		return false
	}
}
