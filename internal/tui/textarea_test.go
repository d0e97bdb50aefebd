package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/quickpad/editor"
	"github.com/iw2rmb/quickpad/internal/clipboard"
	"github.com/iw2rmb/quickpad/shell"
)

// queue collects dispatched handlers so tests decide when they run.
type queue struct{ fns []func() }

func (q *queue) dispatch(fn func()) { q.fns = append(q.fns, fn) }

func (q *queue) drain() {
	for len(q.fns) > 0 {
		fn := q.fns[0]
		q.fns = q.fns[1:]
		fn()
	}
}

func newTestArea(t *testing.T, text string) (*TextArea, *queue, *clipboard.Clipboard) {
	t.Helper()
	q := &queue{}
	clip := clipboard.New(&clipboard.Memory{}, q.dispatch)
	a := NewTextArea(editor.Config{Text: text, Clipboard: clip}, q.dispatch)
	a.SetSize(40, 10)
	return a, q, clip
}

func keyMsg(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestTextArea_SetTextEmitsInline(t *testing.T) {
	a, q, _ := newTestArea(t, "")
	var texts int
	var repaints []tea.Msg
	a.OnTextChanged(func() { texts++ })
	a.Attach(func(msg tea.Msg) { repaints = append(repaints, msg) })

	a.SetText("hello")
	require.Equal(t, 1, texts)
	require.Equal(t, "hello", a.Text())
	require.Empty(t, q.fns)
	require.Equal(t, []tea.Msg{repaintMsg{}}, repaints)

	a.SetText("hello")
	require.Equal(t, 2, texts, "identical SetText still counts as a change")

	a.Clear()
	require.Equal(t, 3, texts)
	require.Equal(t, "", a.Text())
}

func TestTextArea_TypingDispatches(t *testing.T) {
	a, q, _ := newTestArea(t, "")
	var texts, sels int
	a.OnTextChanged(func() { texts++ })
	a.OnSelectionChanged(func() { sels++ })

	a.Update(runes("x"))
	require.Equal(t, 0, texts, "handlers wait for the dispatcher")
	q.drain()
	require.Equal(t, 1, texts)
	require.Equal(t, "x", a.Text())

	a.Update(keyMsg(tea.KeyCtrlA))
	q.drain()
	require.Equal(t, 1, texts)
	require.Equal(t, 1, sels)
	require.True(t, a.HasSelection())
}

func TestTextArea_ActionGating(t *testing.T) {
	a, q, clip := newTestArea(t, "abc")
	a.Update(keyMsg(tea.KeyCtrlA))

	a.SetActionEnabled(shell.ActionCut, false)
	require.False(t, a.KeyMap().Cut.Enabled())
	a.Update(keyMsg(tea.KeyCtrlX))
	q.drain()
	require.Equal(t, "abc", a.Text())

	a.SetActionEnabled(shell.ActionCut, true)
	a.Update(keyMsg(tea.KeyCtrlX))
	q.drain()
	require.Equal(t, "", a.Text())
	got, err := clip.ReadText()
	require.NoError(t, err)
	require.Equal(t, "abc", got)
}

func TestTextArea_ProgrammaticClipboard(t *testing.T) {
	a, _, clip := newTestArea(t, "one two")
	var texts int
	a.OnTextChanged(func() { texts++ })

	a.SelectAll()
	require.True(t, a.HasSelection())
	a.Copy()
	got, err := clip.ReadText()
	require.NoError(t, err)
	require.Equal(t, "one two", got)
	require.Equal(t, 0, texts)

	a.Cut()
	require.Equal(t, 1, texts)
	require.Equal(t, "", a.Text())

	a.Paste()
	require.Equal(t, 2, texts)
	require.Equal(t, "one two", a.Text())
}
