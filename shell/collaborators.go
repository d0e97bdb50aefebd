package shell

import (
	"context"
	"strings"
	"time"
)

// FileFilter names a set of glob patterns offered by a file picker.
type FileFilter struct {
	Name     string
	Patterns []string
}

func (f FileFilter) String() string {
	return f.Name + " (" + strings.Join(f.Patterns, " ") + ")"
}

// DefaultFilters are offered by the open and save pickers.
var DefaultFilters = []FileFilter{
	{Name: "Text files", Patterns: []string{"*.txt"}},
	{Name: "All files", Patterns: []string{"*"}},
}

// FilePicker chooses paths. An empty result means the user cancelled.
type FilePicker interface {
	ChooseOpenPath(ctx context.Context, title string, filters []FileFilter) string
	ChooseSavePath(ctx context.Context, title string, filters []FileFilter) string
}

// Choice is the answer to a three-way confirmation.
type Choice int

const (
	ChoiceCancel Choice = iota
	ChoiceSave
	ChoiceDiscard
)

func (c Choice) String() string {
	switch c {
	case ChoiceSave:
		return "save"
	case ChoiceDiscard:
		return "discard"
	default:
		return "cancel"
	}
}

// Prompter shows blocking message boxes. A cancelled or abandoned
// confirmation must report ChoiceCancel.
type Prompter interface {
	Warn(ctx context.Context, title, message string)
	Confirm3Way(ctx context.Context, title, message string) Choice
}

// TextWidget owns the buffer contents.
//
// OnTextChanged handlers fire for every content change, including SetText
// and Clear. All handlers must be invoked on the shell's goroutine.
type TextWidget interface {
	Text() string
	SetText(s string)
	Clear()
	HasSelection() bool

	Cut()
	Copy()
	Paste()
	SelectAll()

	OnTextChanged(fn func())
	OnSelectionChanged(fn func())
}

// Clipboard is the system-wide cut/copy/paste buffer as seen by the shell.
// OnChanged handlers must be invoked on the shell's goroutine.
type Clipboard interface {
	HasText() bool
	OnChanged(fn func())
}

// StatusBar shows transient, auto-dismissing messages. Best-effort.
type StatusBar interface {
	ShowTransientMessage(text string, d time.Duration)
}

// Window is the hosting window chrome.
type Window interface {
	SetTitle(title string)
	Close()
}

// Action identifies an edit action whose availability the shell tracks.
type Action int

const (
	ActionCut Action = iota
	ActionCopy
	ActionPaste
)

func (a Action) String() string {
	switch a {
	case ActionCut:
		return "cut"
	case ActionCopy:
		return "copy"
	case ActionPaste:
		return "paste"
	}
	return "unknown"
}

// ActionSurface enables and disables edit actions in menus and shortcuts.
type ActionSurface interface {
	SetEnabled(a Action, enabled bool)
}

type nopStatus struct{}

func (nopStatus) ShowTransientMessage(string, time.Duration) {}

type nopActions struct{}

func (nopActions) SetEnabled(Action, bool) {}
