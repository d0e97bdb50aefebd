package shell

import (
	"context"
	"time"
)

type fakeWidget struct {
	text      string
	selection bool

	textChanged Signal
	selChanged  Signal

	cuts, copies, pastes, selectAlls int
}

func (w *fakeWidget) Text() string { return w.text }

func (w *fakeWidget) SetText(s string) {
	w.text = s
	w.selection = false
	w.textChanged.Emit()
}

func (w *fakeWidget) Clear() { w.SetText("") }

func (w *fakeWidget) HasSelection() bool { return w.selection }

func (w *fakeWidget) Cut()       { w.cuts++ }
func (w *fakeWidget) Copy()      { w.copies++ }
func (w *fakeWidget) Paste()     { w.pastes++ }
func (w *fakeWidget) SelectAll() { w.selectAlls++ }

func (w *fakeWidget) OnTextChanged(fn func())      { w.textChanged.Connect(fn) }
func (w *fakeWidget) OnSelectionChanged(fn func()) { w.selChanged.Connect(fn) }

// typeText simulates user input: the content changes and the signal fires.
func (w *fakeWidget) typeText(s string) {
	w.text += s
	w.textChanged.Emit()
}

func (w *fakeWidget) setSelection(on bool) {
	w.selection = on
	w.selChanged.Emit()
}

type fakePicker struct {
	openPaths, savePaths []string
	openCalls, saveCalls int
	lastTitle            string
	lastFilters          []FileFilter
}

func (p *fakePicker) ChooseOpenPath(_ context.Context, title string, filters []FileFilter) string {
	p.openCalls++
	p.lastTitle, p.lastFilters = title, filters
	return pop(&p.openPaths)
}

func (p *fakePicker) ChooseSavePath(_ context.Context, title string, filters []FileFilter) string {
	p.saveCalls++
	p.lastTitle, p.lastFilters = title, filters
	return pop(&p.savePaths)
}

func pop(q *[]string) string {
	if len(*q) == 0 {
		return ""
	}
	s := (*q)[0]
	*q = (*q)[1:]
	return s
}

type warning struct{ title, message string }

type fakePrompter struct {
	choices  []Choice
	confirms int
	warnings []warning
}

func (p *fakePrompter) Warn(_ context.Context, title, message string) {
	p.warnings = append(p.warnings, warning{title: title, message: message})
}

func (p *fakePrompter) Confirm3Way(context.Context, string, string) Choice {
	p.confirms++
	if len(p.choices) == 0 {
		return ChoiceCancel
	}
	c := p.choices[0]
	p.choices = p.choices[1:]
	return c
}

type fakeClipboard struct {
	text    string
	changed Signal
}

func (c *fakeClipboard) HasText() bool       { return c.text != "" }
func (c *fakeClipboard) OnChanged(fn func()) { c.changed.Connect(fn) }

func (c *fakeClipboard) set(s string) {
	c.text = s
	c.changed.Emit()
}

type fakeWindow struct {
	title  string
	closed bool
}

func (w *fakeWindow) SetTitle(title string) { w.title = title }
func (w *fakeWindow) Close()                { w.closed = true }

type statusMessage struct {
	text string
	d    time.Duration
}

type fakeStatus struct {
	messages []statusMessage
}

func (s *fakeStatus) ShowTransientMessage(text string, d time.Duration) {
	s.messages = append(s.messages, statusMessage{text: text, d: d})
}

type fakeActions struct {
	enabled map[Action]bool
}

func (a *fakeActions) SetEnabled(action Action, enabled bool) {
	if a.enabled == nil {
		a.enabled = map[Action]bool{}
	}
	a.enabled[action] = enabled
}
