package shell

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/afero"
)

const (
	DefaultTitle          = "QuickPad"
	DefaultStatusDuration = 2 * time.Second

	titleOpen    = "Open File"
	titleSaveAs  = "Save File As"
	titleError   = "Error"
	titleWarning = "Warning"

	msgCannotOpen = "Cannot open file"
	msgCannotSave = "Cannot save file"
	msgUnsaved    = "Document has unsaved changes. Save now?"
	msgOpened     = "Opened"
	msgSaved      = "Saved"
)

// Options wires a Shell to its collaborators. Widget, Picker, Prompter,
// Clipboard and Window are required.
type Options struct {
	Widget    TextWidget
	Picker    FilePicker
	Prompter  Prompter
	Clipboard Clipboard
	Window    Window
	Status    StatusBar     // optional
	Actions   ActionSurface // optional

	FS     afero.Fs     // default: the OS filesystem
	Logger *slog.Logger // default: discard

	UntitledTitle  string        // default: DefaultTitle
	StatusDuration time.Duration // default: DefaultStatusDuration
}

// EditActions is the availability last pushed to the ActionSurface.
type EditActions struct {
	Cut, Copy, Paste bool
}

// Shell holds the document path and modified flag and implements the menu
// commands.
type Shell struct {
	widget   TextWidget
	picker   FilePicker
	prompter Prompter
	clip     Clipboard
	window   Window
	status   StatusBar
	actions  ActionSurface

	fs  afero.Fs
	log *slog.Logger

	untitled       string
	statusDuration time.Duration

	path     string
	modified bool
	edit     EditActions
}

// New builds a Shell, connects it to the widget and clipboard signals, sets
// the placeholder title, and publishes the initial edit action state.
func New(opts Options) (*Shell, error) {
	switch {
	case opts.Widget == nil:
		return nil, errors.New("shell: text widget is required")
	case opts.Picker == nil:
		return nil, errors.New("shell: file picker is required")
	case opts.Prompter == nil:
		return nil, errors.New("shell: prompter is required")
	case opts.Clipboard == nil:
		return nil, errors.New("shell: clipboard is required")
	case opts.Window == nil:
		return nil, errors.New("shell: window is required")
	}
	if opts.Status == nil {
		opts.Status = nopStatus{}
	}
	if opts.Actions == nil {
		opts.Actions = nopActions{}
	}
	if opts.FS == nil {
		opts.FS = afero.NewOsFs()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.UntitledTitle == "" {
		opts.UntitledTitle = DefaultTitle
	}
	if opts.StatusDuration <= 0 {
		opts.StatusDuration = DefaultStatusDuration
	}

	s := &Shell{
		widget:         opts.Widget,
		picker:         opts.Picker,
		prompter:       opts.Prompter,
		clip:           opts.Clipboard,
		window:         opts.Window,
		status:         opts.Status,
		actions:        opts.Actions,
		fs:             opts.FS,
		log:            opts.Logger,
		untitled:       opts.UntitledTitle,
		statusDuration: opts.StatusDuration,
	}

	s.widget.OnTextChanged(s.OnTextChanged)
	s.widget.OnSelectionChanged(s.RefreshEditActionState)
	s.clip.OnChanged(s.RefreshEditActionState)

	s.SetDocumentPath("")
	s.RefreshEditActionState()
	return s, nil
}

// Path returns the backing file, or "" for an untitled document.
func (s *Shell) Path() string { return s.path }

func (s *Shell) Modified() bool { return s.modified }

func (s *Shell) EditActions() EditActions { return s.edit }

// NewDocument empties the buffer and forgets the path, unless the user
// cancels the unsaved-changes prompt.
func (s *Shell) NewDocument(ctx context.Context) {
	if !s.MaybeSave(ctx) {
		return
	}
	s.widget.Clear()
	s.SetDocumentPath("")
	s.modified = false
	s.log.Info("new document")
}

// OpenDocument asks for a file and loads it. Cancellation or a read failure
// leaves the current document untouched.
func (s *Shell) OpenDocument(ctx context.Context) {
	if !s.MaybeSave(ctx) {
		return
	}

	path := s.picker.ChooseOpenPath(ctx, titleOpen, DefaultFilters)
	if path == "" {
		return
	}

	text, err := readDocument(s.fs, path)
	if err != nil {
		s.log.Warn("open failed", slog.String("path", path), slog.Any("err", err))
		s.prompter.Warn(ctx, titleError, msgCannotOpen)
		return
	}

	// SetText fires OnTextChanged, which marks the document modified; the
	// flag is cleared only once the load is complete.
	s.widget.SetText(text)
	s.SetDocumentPath(path)
	s.modified = false
	s.status.ShowTransientMessage(msgOpened, s.statusDuration)
	s.log.Info("document opened", slog.String("path", path), slog.Int("bytes", len(text)))
}

// SaveDocument writes the buffer to the current path, asking for one first
// when the document is untitled. It reports whether the buffer was saved.
func (s *Shell) SaveDocument(ctx context.Context) bool {
	if s.path == "" {
		return s.SaveAsDocument(ctx)
	}

	text := s.widget.Text()
	if err := writeDocument(s.fs, s.path, text); err != nil {
		s.log.Warn("save failed", slog.String("path", s.path), slog.Any("err", err))
		s.prompter.Warn(ctx, titleError, msgCannotSave)
		return false
	}

	s.modified = false
	s.status.ShowTransientMessage(msgSaved, s.statusDuration)
	s.log.Info("document saved", slog.String("path", s.path), slog.Int("bytes", len(text)))
	return true
}

// SaveAsDocument asks for a destination and saves there. The chosen path is
// kept even if the write then fails.
func (s *Shell) SaveAsDocument(ctx context.Context) bool {
	path := s.picker.ChooseSavePath(ctx, titleSaveAs, DefaultFilters)
	if path == "" {
		return false
	}
	s.SetDocumentPath(path)
	return s.SaveDocument(ctx)
}

// OnTextChanged handles the widget's content-changed signal.
func (s *Shell) OnTextChanged() {
	s.modified = true
	s.RefreshEditActionState()
}

// RefreshEditActionState enables Cut and Copy iff there is a selection and
// Paste iff the clipboard holds text.
func (s *Shell) RefreshEditActionState() {
	hasSelection := s.widget.HasSelection()
	s.edit = EditActions{
		Cut:   hasSelection,
		Copy:  hasSelection,
		Paste: s.clip.HasText(),
	}
	s.actions.SetEnabled(ActionCut, s.edit.Cut)
	s.actions.SetEnabled(ActionCopy, s.edit.Copy)
	s.actions.SetEnabled(ActionPaste, s.edit.Paste)
}

// MaybeSave guards destructive operations. It reports whether the caller may
// proceed: true when there is nothing to save, the user discarded, or the
// save succeeded.
func (s *Shell) MaybeSave(ctx context.Context) bool {
	if !s.modified {
		return true
	}
	switch s.prompter.Confirm3Way(ctx, titleWarning, msgUnsaved) {
	case ChoiceSave:
		return s.SaveDocument(ctx)
	case ChoiceDiscard:
		s.log.Info("changes discarded", slog.String("path", s.path))
		return true
	default:
		return false
	}
}

// RequestClose closes the window unless the user cancels the unsaved-changes
// prompt. It reports whether the close went ahead.
func (s *Shell) RequestClose(ctx context.Context) bool {
	if !s.MaybeSave(ctx) {
		s.log.Debug("close vetoed")
		return false
	}
	s.log.Info("closing", slog.String("path", s.path))
	s.window.Close()
	return true
}

// SetDocumentPath records path and retitles the window.
func (s *Shell) SetDocumentPath(path string) {
	s.path = path
	if path == "" {
		s.window.SetTitle(s.untitled)
		return
	}
	s.window.SetTitle(path)
}
