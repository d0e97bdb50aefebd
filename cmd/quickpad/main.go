package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/iw2rmb/quickpad"
	"github.com/iw2rmb/quickpad/editor"
	"github.com/iw2rmb/quickpad/internal/clipboard"
	"github.com/iw2rmb/quickpad/internal/config"
	"github.com/iw2rmb/quickpad/internal/logging"
	"github.com/iw2rmb/quickpad/internal/tui"
	"github.com/iw2rmb/quickpad/shell"
)

func main() {
	if err := run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()
	if *showVersion {
		fmt.Println(quickpad.UserAgent())
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()
	logger.Info("starting", slog.String("version", quickpad.Version()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop := shell.NewLoop()
	clip := clipboard.New(nil, loop.Dispatch)
	if !clipboard.Supported() {
		logger.Warn("system clipboard unavailable, using in-process clipboard")
	}

	area := tui.NewTextArea(editor.Config{
		ShowLineNums: cfg.UI.ShowLineNumbers,
		TabWidth:     cfg.UI.TabWidth,
		Style:        editor.DefaultStyle(),
		Clipboard:    clip,
	}, loop.Dispatch)

	var sh *shell.Shell
	ui := tui.New(tui.Options{
		Area:  area,
		Title: cfg.UI.Title,
		Exec: func(c shell.Command) {
			loop.Post(func(ctx context.Context) {
				if sh != nil {
					sh.Exec(ctx, c)
				}
			})
		},
	})
	p := tea.NewProgram(ui, tea.WithAltScreen(), tea.WithMouseCellMotion())
	area.Attach(p.Send)
	bridge := tui.NewBridge(p.Send)

	// The shell publishes its title and edit actions while it is built, so
	// it is built on the loop once the program is reading messages.
	loop.Post(func(context.Context) {
		var err error
		sh, err = shell.New(shell.Options{
			Widget:         area,
			Picker:         bridge,
			Prompter:       bridge,
			Clipboard:      clip,
			Window:         bridge,
			Status:         bridge,
			Actions:        bridge,
			FS:             afero.NewOsFs(),
			Logger:         logger,
			UntitledTitle:  cfg.UI.Title,
			StatusDuration: cfg.UI.StatusDuration,
		})
		if err != nil {
			logger.Error("init shell", slog.Any("err", err))
			p.Quit()
		}
	})

	go func() { _ = loop.Run(ctx) }()
	go clip.Watch(ctx, cfg.Clipboard.PollInterval)

	_, err = p.Run()
	cancel()
	loop.Stop()
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("exiting")
	return nil
}
