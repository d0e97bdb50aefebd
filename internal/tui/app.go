package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/quickpad/shell"
)

// KeyMap holds the file menu shortcuts. Edit shortcuts live on the editor.
type KeyMap struct {
	New, Open, Save, SaveAs, Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		New:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new")),
		Open:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open")),
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		SaveAs: key.NewBinding(key.WithKeys("alt+s", "f12"), key.WithHelp("alt+s", "save as")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}

// Options configures the root Model.
type Options struct {
	Area *TextArea
	// Exec receives file menu commands on the terminal goroutine. It must
	// not block; main posts them onto the shell loop.
	Exec   func(shell.Command)
	Title  string
	KeyMap KeyMap // default: DefaultKeyMap
	Styles *Styles // default: DefaultStyles
}

// chromeRows is the title line, the status line and the help line.
const chromeRows = 3

// Model is the Bubble Tea root: a title line, the editor, a status line and
// a help line, with at most one modal dialog over the editor.
type Model struct {
	area   *TextArea
	exec   func(shell.Command)
	keys   KeyMap
	styles Styles
	help   help.Model

	title     string
	status    string
	statusSeq int
	modal     modal

	width, height int
}

func New(opts Options) Model {
	if opts.Exec == nil {
		opts.Exec = func(shell.Command) {}
	}
	if len(opts.KeyMap.Quit.Keys()) == 0 {
		opts.KeyMap = DefaultKeyMap()
	}
	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}
	return Model{
		area:   opts.Area,
		exec:   opts.Exec,
		keys:   opts.KeyMap,
		styles: styles,
		help:   help.New(),
		title:  opts.Title,
	}
}

func (m Model) Init() tea.Cmd {
	if m.title == "" {
		return nil
	}
	return tea.SetWindowTitle(m.title)
}

// Title is the text last set through SetTitle.
func (m Model) Title() string { return m.title }

// Status is the transient message on screen, if any.
func (m Model) Status() string { return m.status }

// Dialog reports whether a modal dialog is open.
func (m Model) Dialog() bool { return m.modal != nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.area.SetSize(msg.Width, m.bodyHeight())
		if m.modal != nil {
			var cmd tea.Cmd
			m.modal, cmd, _ = m.modal.Update(tea.WindowSizeMsg{Width: msg.Width, Height: m.bodyHeight()})
			return m, cmd
		}
		return m, nil

	case titleMsg:
		m.title = msg.title
		return m, tea.SetWindowTitle(msg.title)

	case statusMsg:
		m.statusSeq++
		m.status = msg.text
		if msg.d <= 0 {
			return m, nil
		}
		seq := m.statusSeq
		return m, tea.Tick(msg.d, func(time.Time) tea.Msg { return statusExpiredMsg{seq: seq} })

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case actionMsg:
		m.area.SetActionEnabled(msg.action, msg.enabled)
		return m, nil

	case repaintMsg:
		return m, m.area.Update(msg)

	case closeMsg:
		m.dismiss()
		return m, tea.Quit

	case openPathRequest:
		return m.show(newOpenModal(msg, m.styles, m.width, m.bodyHeight()))
	case savePathRequest:
		return m.show(newSaveModal(msg, m.styles, m.width))
	case warnRequest:
		return m.show(newWarnModal(msg, m.styles))
	case confirmRequest:
		return m.show(newConfirmModal(msg, m.styles))
	}

	if m.modal != nil {
		var (
			cmd  tea.Cmd
			done bool
		)
		m.modal, cmd, done = m.modal.Update(msg)
		if done {
			m.modal = nil
			m.area.Focus()
		}
		return m, cmd
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.New):
			m.exec(shell.CommandNew)
			return m, nil
		case key.Matches(k, m.keys.Open):
			m.exec(shell.CommandOpen)
			return m, nil
		case key.Matches(k, m.keys.Save):
			m.exec(shell.CommandSave)
			return m, nil
		case key.Matches(k, m.keys.SaveAs):
			m.exec(shell.CommandSaveAs)
			return m, nil
		case key.Matches(k, m.keys.Quit):
			m.exec(shell.CommandClose)
			return m, nil
		}
	}
	return m, m.area.Update(msg)
}

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	title := m.styles.Title.Width(m.width).MaxWidth(m.width).MaxHeight(1).Render(m.title)

	body := m.area.View()
	if m.modal != nil {
		body = overlay.Composite(m.modal.View(m.width, m.bodyHeight()), body, overlay.Center, overlay.Center, 0, 0)
	}

	status := m.styles.Status.Render(ansi.Truncate(m.status, m.width, "…"))
	return strings.Join([]string{title, body, status, m.help.ShortHelpView(m.helpBindings())}, "\n")
}

// show opens d, dismissing any dialog left open. The editor stays blurred
// until the dialog closes.
func (m Model) show(d modal) (tea.Model, tea.Cmd) {
	m.dismiss()
	m.modal = d
	m.area.Blur()
	return m, d.Init()
}

func (m *Model) dismiss() {
	if m.modal != nil {
		m.modal.cancel()
		m.modal = nil
		m.area.Focus()
	}
}

func (m Model) bodyHeight() int {
	return max(m.height-chromeRows, 1)
}

// helpBindings lists the shortcuts for the help line. Disabled edit
// bindings are skipped by the help renderer.
func (m Model) helpBindings() []key.Binding {
	km := m.area.KeyMap()
	return []key.Binding{
		m.keys.New, m.keys.Open, m.keys.Save, m.keys.SaveAs,
		km.Cut, km.Copy, km.Paste,
		m.keys.Quit,
	}
}
