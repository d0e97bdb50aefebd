package shell

import (
	"context"
	"log/slog"
)

// Command is a user-triggered menu action handled by the shell.
type Command int

const (
	CommandNew Command = iota
	CommandOpen
	CommandSave
	CommandSaveAs
	CommandClose
)

var commandNames = map[Command]string{
	CommandNew:    "new",
	CommandOpen:   "open",
	CommandSave:   "save",
	CommandSaveAs: "save-as",
	CommandClose:  "close",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// Exec runs c. Unknown commands are ignored.
func (s *Shell) Exec(ctx context.Context, c Command) {
	s.log.Debug("command", slog.String("command", c.String()))
	switch c {
	case CommandNew:
		s.NewDocument(ctx)
	case CommandOpen:
		s.OpenDocument(ctx)
	case CommandSave:
		s.SaveDocument(ctx)
	case CommandSaveAs:
		s.SaveAsDocument(ctx)
	case CommandClose:
		s.RequestClose(ctx)
	}
}
