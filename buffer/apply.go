package buffer

// Apply performs a single action against the buffer.
//
// Apply never fails: edits at document boundaries are no-ops and moves
// saturate. The version is bumped only when text or cursor changed.
// Apply panics with *InvariantError if the buffer was already inconsistent
// on entry, since every later edit would build on the corruption.
func (b *Buffer) Apply(a Action) {
	if err := b.Check(); err != nil {
		err.Action = a
		panic(err)
	}

	var changed bool
	switch a.Kind {
	case ActionInsert:
		changed = b.insertRune(a.Rune)
	case ActionEnter:
		changed = b.splitLine()
	case ActionBackspace:
		changed = b.deleteBackward()
	case ActionDelete:
		changed = b.deleteForward()
	case ActionEscape:
		// Reserved.
	default:
		changed = b.move(a.Kind)
	}

	if changed {
		b.version++
	}
}

// ApplyAll applies actions in order, one at a time.
func (b *Buffer) ApplyAll(actions ...Action) {
	for _, a := range actions {
		b.Apply(a)
	}
}
