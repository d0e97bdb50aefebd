package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quickpad/editor"
	"github.com/iw2rmb/quickpad/shell"
)

// TextArea is the shell's TextWidget backed by an editor.Model.
//
// Edits made through its methods (SetText, Clear, Cut...) come from the
// shell goroutine and fire signals inline. Edits made by typing arrive
// through Update on the terminal goroutine and are delivered with dispatch.
type TextArea struct {
	mu sync.Mutex
	ed editor.Model

	dispatch func(func())
	notify   func(tea.Msg)

	// Set by the editor's OnChange while mu is held, drained after unlock.
	pendingText, pendingSel bool

	textChanged shell.Signal
	selChanged  shell.Signal
}

// NewTextArea builds the widget. A nil dispatch runs input-driven handlers
// inline on the terminal goroutine.
func NewTextArea(cfg editor.Config, dispatch func(func())) *TextArea {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	a := &TextArea{dispatch: dispatch, notify: func(tea.Msg) {}}
	cfg.OnChange = a.onEditorChange
	a.ed = editor.New(cfg)
	return a
}

// Attach sets where repaint requests go, normally tea.Program.Send.
func (a *TextArea) Attach(notify func(tea.Msg)) {
	if notify == nil {
		return
	}
	a.mu.Lock()
	a.notify = notify
	a.mu.Unlock()
}

func (a *TextArea) onEditorChange(ev editor.ChangeEvent) {
	a.pendingText = a.pendingText || ev.TextChanged
	a.pendingSel = a.pendingSel || ev.SelectionChanged
}

// Update feeds terminal input to the editor.
func (a *TextArea) Update(msg tea.Msg) tea.Cmd {
	a.mu.Lock()
	var cmd tea.Cmd
	a.ed, cmd = a.ed.Update(msg)
	text, sel := a.pendingText, a.pendingSel
	a.pendingText, a.pendingSel = false, false
	a.mu.Unlock()

	if text {
		a.dispatch(a.textChanged.Emit)
	}
	if sel {
		a.dispatch(a.selChanged.Emit)
	}
	return cmd
}

func (a *TextArea) View() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ed.View()
}

func (a *TextArea) SetSize(width, height int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ed = a.ed.SetSize(width, height)
}

// Focus shows the cursor and accepts keys again.
func (a *TextArea) Focus() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ed = a.ed.Focus()
}

// Blur hides the cursor and ignores keys, e.g. under a dialog.
func (a *TextArea) Blur() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ed = a.ed.Blur()
}

func (a *TextArea) Focused() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ed.Focused()
}

// SetActionEnabled gates the editor's clipboard bindings.
func (a *TextArea) SetActionEnabled(action shell.Action, enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	km := a.ed.KeyMap()
	switch action {
	case shell.ActionCut:
		km.Cut.SetEnabled(enabled)
	case shell.ActionCopy:
		km.Copy.SetEnabled(enabled)
	case shell.ActionPaste:
		km.Paste.SetEnabled(enabled)
	}
	a.ed = a.ed.SetKeyMap(km)
}

// KeyMap returns a copy of the editor bindings.
func (a *TextArea) KeyMap() editor.KeyMap {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ed.KeyMap()
}

func (a *TextArea) Text() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ed.Text()
}

func (a *TextArea) HasSelection() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ed.HasSelection()
}

func (a *TextArea) SetText(s string) {
	a.edit(func(ed *editor.Model) { ed.SetText(s) })
}

func (a *TextArea) Clear() {
	a.edit(func(ed *editor.Model) { ed.Clear() })
}

func (a *TextArea) Cut() {
	a.edit(func(ed *editor.Model) { ed.Cut() })
}

func (a *TextArea) Copy() {
	a.mu.Lock()
	a.ed.Copy()
	a.mu.Unlock()
}

func (a *TextArea) Paste() {
	a.edit(func(ed *editor.Model) { ed.Paste() })
}

func (a *TextArea) SelectAll() {
	a.edit(func(ed *editor.Model) { ed.SelectAll() })
}

func (a *TextArea) OnTextChanged(fn func())      { a.textChanged.Connect(fn) }
func (a *TextArea) OnSelectionChanged(fn func()) { a.selChanged.Connect(fn) }

// edit applies a programmatic change and fires the matching signals inline.
// SetText always counts as a text change, even with identical content.
func (a *TextArea) edit(fn func(ed *editor.Model)) {
	a.mu.Lock()
	buf := a.ed.Buffer()
	textBefore := buf.TextVersion()
	selBefore, selOKBefore := buf.Selection()
	fn(&a.ed)
	selAfter, selOKAfter := buf.Selection()
	textChanged := buf.TextVersion() != textBefore
	selChanged := selOKBefore != selOKAfter || selBefore != selAfter
	notify := a.notify
	a.mu.Unlock()

	if textChanged {
		a.textChanged.Emit()
	}
	if selChanged {
		a.selChanged.Emit()
	}
	notify(repaintMsg{})
}

var _ shell.TextWidget = (*TextArea)(nil)
