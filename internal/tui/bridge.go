package tui

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quickpad/shell"
)

// Bridge implements the shell's window-side collaborators on top of a
// running Bubble Tea program.
//
// Methods are called on the shell goroutine. Dialog methods block until the
// dialog answers or ctx is done; the rest only queue a message.
type Bridge struct {
	send func(tea.Msg)

	mu   sync.Mutex
	last string // last path chosen in any dialog
}

// NewBridge wraps send, normally tea.Program.Send.
func NewBridge(send func(tea.Msg)) *Bridge {
	return &Bridge{send: send}
}

func (b *Bridge) ChooseOpenPath(ctx context.Context, title string, filters []shell.FileFilter) string {
	reply := make(chan string, 1)
	b.send(openPathRequest{title: title, filters: filters, dir: b.dir(), reply: reply})
	return b.awaitPath(ctx, reply)
}

func (b *Bridge) ChooseSavePath(ctx context.Context, title string, filters []shell.FileFilter) string {
	reply := make(chan string, 1)
	b.send(savePathRequest{title: title, filters: filters, dir: b.dir(), reply: reply})
	return b.awaitPath(ctx, reply)
}

func (b *Bridge) Warn(ctx context.Context, title, message string) {
	done := make(chan struct{}, 1)
	b.send(warnRequest{title: title, message: message, done: done})
	select {
	case <-done:
	case <-ctx.Done():
	}
}

func (b *Bridge) Confirm3Way(ctx context.Context, title, message string) shell.Choice {
	reply := make(chan shell.Choice, 1)
	b.send(confirmRequest{title: title, message: message, reply: reply})
	select {
	case c := <-reply:
		return c
	case <-ctx.Done():
		return shell.ChoiceCancel
	}
}

func (b *Bridge) ShowTransientMessage(text string, d time.Duration) {
	b.send(statusMsg{text: text, d: d})
}

func (b *Bridge) SetTitle(title string) { b.send(titleMsg{title: title}) }

func (b *Bridge) Close() { b.send(closeMsg{}) }

func (b *Bridge) SetEnabled(a shell.Action, enabled bool) {
	b.send(actionMsg{action: a, enabled: enabled})
}

func (b *Bridge) awaitPath(ctx context.Context, reply <-chan string) string {
	select {
	case p := <-reply:
		if p != "" {
			b.mu.Lock()
			b.last = p
			b.mu.Unlock()
		}
		return p
	case <-ctx.Done():
		return ""
	}
}

func (b *Bridge) dir() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return startDir(b.last)
}

var (
	_ shell.FilePicker    = (*Bridge)(nil)
	_ shell.Prompter      = (*Bridge)(nil)
	_ shell.StatusBar     = (*Bridge)(nil)
	_ shell.Window        = (*Bridge)(nil)
	_ shell.ActionSurface = (*Bridge)(nil)
)
