package tui

import (
	"time"

	"github.com/iw2rmb/quickpad/shell"
)

type titleMsg struct{ title string }

type statusMsg struct {
	text string
	d    time.Duration
}

type statusExpiredMsg struct{ seq int }

type actionMsg struct {
	action  shell.Action
	enabled bool
}

// repaintMsg asks the program to re-render after the document changed off
// the terminal goroutine.
type repaintMsg struct{}

type closeMsg struct{}

type openPathRequest struct {
	title   string
	filters []shell.FileFilter
	dir     string
	reply   chan<- string
}

type savePathRequest struct {
	title   string
	filters []shell.FileFilter
	dir     string
	reply   chan<- string
}

type warnRequest struct {
	title, message string
	done           chan<- struct{}
}

type confirmRequest struct {
	title, message string
	reply          chan<- shell.Choice
}
