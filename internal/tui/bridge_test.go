package tui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/quickpad/shell"
)

// answering stands in for the program: it answers dialog requests as they
// are sent.
func answering(path string, choice shell.Choice) (func(tea.Msg), *[]tea.Msg) {
	var sent []tea.Msg
	return func(msg tea.Msg) {
		sent = append(sent, msg)
		switch r := msg.(type) {
		case openPathRequest:
			r.reply <- path
		case savePathRequest:
			r.reply <- path
		case confirmRequest:
			r.reply <- choice
		case warnRequest:
			r.done <- struct{}{}
		}
	}, &sent
}

func TestBridge_DialogsAnswer(t *testing.T) {
	ctx := context.Background()
	send, sent := answering("/docs/a.txt", shell.ChoiceDiscard)
	b := NewBridge(send)

	require.Equal(t, "/docs/a.txt", b.ChooseOpenPath(ctx, "Open File", shell.DefaultFilters))
	require.Equal(t, shell.ChoiceDiscard, b.Confirm3Way(ctx, "Warning", "?"))
	b.Warn(ctx, "Error", "Cannot save file")

	// The next dialog starts where the last path was chosen.
	b.ChooseSavePath(ctx, "Save File As", shell.DefaultFilters)
	last := (*sent)[len(*sent)-1].(savePathRequest)
	require.Equal(t, filepath.Dir("/docs/a.txt"), last.dir)
	require.Equal(t, "Save File As", last.title)
}

func TestBridge_ContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b := NewBridge(func(tea.Msg) {})

	require.Equal(t, "", b.ChooseOpenPath(ctx, "Open File", nil))
	require.Equal(t, shell.ChoiceCancel, b.Confirm3Way(ctx, "Warning", "?"))
	b.Warn(ctx, "Error", "x")
}

func TestBridge_Chrome(t *testing.T) {
	var sent []tea.Msg
	b := NewBridge(func(msg tea.Msg) { sent = append(sent, msg) })

	b.SetTitle("QuickPad")
	b.ShowTransientMessage("Saved", 2*time.Second)
	b.SetEnabled(shell.ActionCopy, true)
	b.Close()

	require.Equal(t, []tea.Msg{
		titleMsg{title: "QuickPad"},
		statusMsg{text: "Saved", d: 2 * time.Second},
		actionMsg{action: shell.ActionCopy, enabled: true},
		closeMsg{},
	}, sent)
}
