package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/scribe/buffer"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		// Wheel scrolling only; the cursor stays where it is.
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	actions := ActionsForKey(m.cfg.KeyMap, msg)
	if m.cfg.ReadOnly {
		actions = navigationOnly(actions)
	}
	if len(actions) == 0 {
		return m, nil
	}

	if m.cfg.OnActions != nil {
		decision := m.cfg.OnActions(ActionBatch{
			Before:  editorStateFromBuffer(m.buf),
			Actions: append([]buffer.Action(nil), actions...),
		})
		if !decision.ApplyLocally {
			return m, nil
		}
	}

	for _, a := range actions {
		m.buf.Apply(a)
	}

	if m.syncFromBuffer() && m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf, actions))
	}
	return m, nil
}

func navigationOnly(actions []buffer.Action) []buffer.Action {
	out := actions[:0:0]
	for _, a := range actions {
		if !a.Kind.Mutates() {
			out = append(out, a)
		}
	}
	return out
}
