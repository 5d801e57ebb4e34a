// Package tui implements the interactive multi-repository dashboard. The
// dashboard is a thin consumer of the engine: every keystroke submits an
// operation request, and all progress and results arrive as messages on the
// single bubbletea loop.
package tui

import (
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/natefinch/lumberjack.v2"

	"repodeck.dev/repodeck/internal/config"
	"repodeck.dev/repodeck/internal/engine"
)

// Run starts the dashboard over the registered repository roster. Every
// notification is mirrored to a rotating operation log so a session's history
// survives the alt-screen.
func Run(cfg *config.Config) error {
	logFile := &lumberjack.Logger{
		Filename:   logPath(),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
	}
	defer logFile.Close()
	opLog := log.New(logFile, "", log.LstdFlags)

	updates := make(chan engine.Notification, 100)
	dispatcher := engine.New(engine.Options{
		Workers:          cfg.Workers(),
		ProgressInterval: cfg.ProgressInterval(),
		Observer: func(n engine.Notification) {
			opLog.Println(formatNotification(n))
			updates <- n
		},
	})

	model := newModel(cfg, dispatcher, updates)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()

	shutdown(dispatcher, updates)
	return err
}

// shutdown drains the notification channel while the dispatcher finishes
// in-flight work. Nothing reads updates once the program has exited, and an
// observer blocked on a full channel would keep Close from returning.
func shutdown(dispatcher *engine.Dispatcher, updates chan engine.Notification) {
	drained := make(chan struct{})
	go func() {
		for range updates {
		}
		close(drained)
	}()
	dispatcher.Close()
	close(updates)
	<-drained
}

// logPath returns the rotating operation log location, next to the config file.
func logPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "repodeck.log")
	}
	return filepath.Join(dir, "repodeck", "repodeck.log")
}
