package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/scribe/buffer"
)

// Model is a Bubble Tea component that renders and edits a buffer.
//
// The buffer is owned by the Model: all mutations go through Update or
// Apply, and both run synchronously on the Bubble Tea loop, so no locking
// is involved.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model

	lastBufVersion uint64
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		cfg:      cfg,
		buf:      buffer.NewFromText(cfg.Text),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.rebuildContent()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Content returns the raw document text.
func (m Model) Content() string { return m.buf.Content() }

// CursorPosition returns the logical cursor as (row, column).
func (m Model) CursorPosition() (row, col int) { return m.buf.CursorPosition() }

// Version returns the buffer version.
func (m Model) Version() uint64 { return m.buf.Version() }

// KeyMap returns the effective key bindings.
func (m Model) KeyMap() KeyMap { return m.cfg.KeyMap }

// Apply applies actions directly, bypassing key translation, OnActions and
// OnChange. ReadOnly still drops text-changing actions.
func (m Model) Apply(actions ...buffer.Action) Model {
	for _, a := range actions {
		if m.cfg.ReadOnly && a.Kind.Mutates() {
			continue
		}
		m.buf.Apply(a)
	}
	m.syncFromBuffer()
	return m
}

func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) View() string { return m.viewport.View() }

// syncFromBuffer rebuilds the view when the buffer version moved.
func (m *Model) syncFromBuffer() (changed bool) {
	ver := m.buf.Version()
	if ver == m.lastBufVersion {
		return false
	}
	m.lastBufVersion = ver
	m.rebuildContent()
	m.followCursor()
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	row := m.buf.Cursor().Row
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
