package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quickpad/buffer"
)

// Model is a Bubble Tea component that renders and edits a buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model
	xOffset  int // horizontal scroll, in cells

	lastBufVersion uint64
	lastCursor     buffer.Pos
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) KeyMap() KeyMap { return m.cfg.KeyMap }

// SetKeyMap replaces the bindings, e.g. to disable clipboard actions.
func (m Model) SetKeyMap(km KeyMap) Model {
	m.cfg.KeyMap = km
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Width() int  { return m.viewport.Width }
func (m Model) Height() int { return m.viewport.Height }

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

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		before := snapshotOf(m.buf)
		m = m.updateKey(msg)
		if m.syncFromBuffer() {
			m.followCursor()
		}
		m.emitChange(before)
		return m, nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		// Don't follow the cursor here; the wheel scrolls freely.
		m.syncFromBuffer()
		return m, cmd
	default:
		// Hosts may have mutated the buffer outside of input handling.
		if m.syncFromBuffer() {
			m.followCursor()
		}
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

// Text returns the whole document.
func (m Model) Text() string { return m.buf.Text() }

// HasSelection reports whether a non-empty selection is active.
func (m Model) HasSelection() bool { return m.buf.HasSelection() }

// SetText replaces the document and moves the cursor to the start.
func (m *Model) SetText(s string) {
	m.buf.SetText(s)
	m.xOffset = 0
	m.viewport.SetYOffset(0)
	m.sync()
}

// Clear empties the document.
func (m *Model) Clear() { m.SetText("") }

func (m *Model) SelectAll() {
	m.buf.SelectAll()
	m.sync()
}

func (m *Model) Copy() {
	m.copySelection()
}

func (m *Model) Cut() {
	m.cutSelection()
	m.sync()
}

func (m *Model) Paste() {
	m.pasteClipboard()
	m.sync()
}

func (m *Model) sync() {
	if m.syncFromBuffer() {
		m.followCursor()
	}
}

func (m *Model) emitChange(before changeSnapshot) {
	if m.cfg.OnChange == nil {
		return
	}
	if ev, ok := buildChangeEvent(m.buf, before); ok {
		m.cfg.OnChange(ev)
	}
}

// syncFromBuffer rebuilds the rendered content when the buffer moved on. It
// reports whether anything changed.
func (m *Model) syncFromBuffer() (changed bool) {
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return false
	}
	m.lastBufVersion = ver
	m.lastCursor = cur
	m.rebuildContent()
	return true
}

func (m *Model) rebuildContent() {
	m.followCursorX()
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	cur := m.buf.Cursor()
	y := m.viewport.YOffset
	switch {
	case cur.Row < y:
		m.viewport.SetYOffset(cur.Row)
	case cur.Row >= y+h:
		m.viewport.SetYOffset(cur.Row - h + 1)
	}
}

func (m *Model) followCursorX() {
	w := m.contentWidth()
	if w <= 0 {
		m.xOffset = 0
		return
	}
	x := m.cursorCell()
	switch {
	case x < m.xOffset:
		m.xOffset = x
	case x >= m.xOffset+w:
		m.xOffset = x - w + 1
	}
}
