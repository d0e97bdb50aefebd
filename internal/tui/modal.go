package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/quickpad/shell"
)

// modal is a dialog composited over the editor. Update reports done once the
// dialog has answered its request.
type modal interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (modal, tea.Cmd, bool)
	View(width, height int) string
	// cancel answers the request as if the user dismissed the dialog.
	cancel()
}

type dialogKeys struct {
	Accept, Cancel, Next key.Binding
	Save, Discard        key.Binding
}

var keys = dialogKeys{
	Accept:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "ok")),
	Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "filter")),
	Save:    key.NewBinding(key.WithKeys("y", "s"), key.WithHelp("y", "save")),
	Discard: key.NewBinding(key.WithKeys("n", "d"), key.WithHelp("n", "discard")),
}

// warnModal is a one-button message box.
type warnModal struct {
	title, message string
	done           chan<- struct{}
	styles         Styles
}

func newWarnModal(req warnRequest, st Styles) *warnModal {
	return &warnModal{title: req.title, message: req.message, done: req.done, styles: st}
}

func (m *warnModal) Init() tea.Cmd { return nil }

func (m *warnModal) Update(msg tea.Msg) (modal, tea.Cmd, bool) {
	if k, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(k, keys.Accept, keys.Cancel) || k.String() == " " {
			m.cancel()
			return m, nil, true
		}
	}
	return m, nil, false
}

func (m *warnModal) View(width, height int) string {
	body := m.message + "\n\n" + m.styles.Hint.Render("[enter] OK")
	return m.styles.box(m.title, body, width, height)
}

func (m *warnModal) cancel() {
	if m.done != nil {
		m.done <- struct{}{}
		m.done = nil
	}
}

// confirmModal asks Save / Discard / Cancel.
type confirmModal struct {
	title, message string
	reply          chan<- shell.Choice
	styles         Styles
}

func newConfirmModal(req confirmRequest, st Styles) *confirmModal {
	return &confirmModal{title: req.title, message: req.message, reply: req.reply, styles: st}
}

func (m *confirmModal) Init() tea.Cmd { return nil }

func (m *confirmModal) Update(msg tea.Msg) (modal, tea.Cmd, bool) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}
	switch {
	case key.Matches(k, keys.Save):
		m.answer(shell.ChoiceSave)
	case key.Matches(k, keys.Discard):
		m.answer(shell.ChoiceDiscard)
	case key.Matches(k, keys.Cancel), k.String() == "c":
		m.answer(shell.ChoiceCancel)
	default:
		return m, nil, false
	}
	return m, nil, true
}

func (m *confirmModal) View(width, height int) string {
	body := m.message + "\n\n" + m.styles.Hint.Render("[y] Save  [n] Discard  [esc] Cancel")
	return m.styles.box(m.title, body, width, height)
}

func (m *confirmModal) cancel() { m.answer(shell.ChoiceCancel) }

func (m *confirmModal) answer(c shell.Choice) {
	if m.reply != nil {
		m.reply <- c
		m.reply = nil
	}
}

// openModal browses the filesystem with a bubbles file picker. Tab cycles
// through the offered filters.
type openModal struct {
	title   string
	filters []shell.FileFilter
	filter  int
	picker  filepicker.Model
	reply   chan<- string
	styles  Styles

	width, height int
}

func newOpenModal(req openPathRequest, st Styles, width, height int) *openModal {
	fp := filepicker.New()
	fp.CurrentDirectory = req.dir
	fp.ShowPermissions = false
	fp.AutoHeight = true
	m := &openModal{
		title:   req.title,
		filters: req.filters,
		picker:  fp,
		reply:   req.reply,
		styles:  st,
		width:   width,
		height:  height,
	}
	m.applyFilter()
	return m
}

func (m *openModal) Init() tea.Cmd {
	var cmd tea.Cmd
	// Size the list before the first directory read lands.
	m.picker, cmd = m.picker.Update(tea.WindowSizeMsg{Width: m.width, Height: m.pickerHeight()})
	return tea.Batch(cmd, m.picker.Init())
}

func (m *openModal) Update(msg tea.Msg) (modal, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(tea.WindowSizeMsg{Width: msg.Width, Height: m.pickerHeight()})
		return m, cmd, false
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Cancel):
			m.answer("")
			return m, nil, true
		case key.Matches(msg, keys.Next) && len(m.filters) > 1:
			m.filter = (m.filter + 1) % len(m.filters)
			m.applyFilter()
			return m, m.picker.Init(), false
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.answer(path)
		return m, nil, true
	}
	return m, cmd, false
}

func (m *openModal) View(width, height int) string {
	var b strings.Builder
	b.WriteString(m.styles.Hint.Render(m.picker.CurrentDirectory))
	b.WriteString("\n")
	b.WriteString(m.picker.View())
	b.WriteString("\n")
	hint := "[enter] open  [backspace] up  [esc] cancel"
	if len(m.filters) > 0 {
		hint = "[tab] " + m.filters[m.filter].String() + "  " + hint
	}
	b.WriteString(m.styles.Hint.Render(hint))
	return m.styles.box(m.title, b.String(), width, height)
}

func (m *openModal) cancel() { m.answer("") }

func (m *openModal) answer(path string) {
	if m.reply != nil {
		m.reply <- path
		m.reply = nil
	}
}

func (m *openModal) applyFilter() {
	if len(m.filters) == 0 {
		m.picker.AllowedTypes = nil
		return
	}
	m.picker.AllowedTypes = allowedTypes(m.filters[m.filter])
}

// pickerHeight is the height handed to the file picker, which keeps its own
// bottom margin. The rest covers the box frame and the two extra lines.
func (m *openModal) pickerHeight() int {
	return max(m.height-3, 8)
}

// allowedTypes turns "*.txt" style patterns into the suffixes the file
// picker matches. A bare "*" admits everything.
func allowedTypes(f shell.FileFilter) []string {
	var out []string
	for _, p := range f.Patterns {
		if p == "*" || p == "*.*" {
			return nil
		}
		out = append(out, strings.TrimPrefix(p, "*"))
	}
	return out
}

// saveModal asks for a destination path in a text input.
type saveModal struct {
	title  string
	dir    string
	input  textinput.Model
	reply  chan<- string
	styles Styles
}

func newSaveModal(req savePathRequest, st Styles, width int) *saveModal {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "file name"
	if len(req.filters) > 0 {
		in.Placeholder = "file name, " + req.filters[0].String()
	}
	in.Width = max(width-10, 10)
	in.Focus()
	return &saveModal{
		title:  req.title,
		dir:    req.dir,
		input:  in,
		reply:  req.reply,
		styles: st,
	}
}

func (m *saveModal) Init() tea.Cmd { return textinput.Blink }

func (m *saveModal) Update(msg tea.Msg) (modal, tea.Cmd, bool) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.Cancel):
			m.answer("")
			return m, nil, true
		case key.Matches(k, keys.Accept):
			name := strings.TrimSpace(m.input.Value())
			if name == "" {
				return m, nil, false
			}
			m.answer(resolvePath(m.dir, name))
			return m, nil, true
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd, false
}

func (m *saveModal) View(width, height int) string {
	body := m.styles.Hint.Render("in "+m.dir) + "\n" + m.input.View() + "\n\n" +
		m.styles.Hint.Render("[enter] save  [esc] cancel")
	return m.styles.box(m.title, body, width, height)
}

func (m *saveModal) cancel() { m.answer("") }

func (m *saveModal) answer(path string) {
	if m.reply != nil {
		m.reply <- path
		m.reply = nil
	}
}

// box renders a titled, bordered dialog no larger than width x height.
func (s Styles) box(title, body string, width, height int) string {
	inner := lipgloss.JoinVertical(lipgloss.Left, s.DialogTitle.Render(title), "", body)
	st := s.Dialog
	if width > 0 {
		st = st.MaxWidth(width)
	}
	if height > 0 {
		st = st.MaxHeight(height)
	}
	return st.Render(inner)
}
