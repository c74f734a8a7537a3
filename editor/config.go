package editor

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// TabWidth is the tab stop distance used for rendering (default 4).
	TabWidth int

	// Rendering options.
	ShowLineNums bool
	Style        Style

	// KeyMap overrides DefaultKeyMap when any of its bindings has keys.
	KeyMap KeyMap

	// ReadOnly drops text-changing actions and keeps navigation.
	ReadOnly bool

	// OnActions, when set, sees the actions produced by each key message
	// before they are applied and decides whether the editor applies them.
	OnActions func(ActionBatch) ActionDecision

	// OnChange fires once per key message that changed text or cursor.
	OnChange func(ChangeEvent)
}
