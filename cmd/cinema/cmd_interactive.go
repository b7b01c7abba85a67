package main

import (
	"context"
	"fmt"

	"isitcinema/cmd/cinema/app"
	"isitcinema/internal/config"
	"isitcinema/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// runInteractive starts the TUI and live-reloads the config file while it runs.
func runInteractive() error {
	model, err := app.New(app.Options{
		Config:  cfg,
		Backend: newClient(cfg),
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher, err := config.NewWatcher(resolvedConfigPath(),
		func(c *config.Config) { p.Send(app.ConfigReloadedMsg{Config: c}) },
		nil,
	)
	if err == nil {
		if err := watcher.Start(ctx); err != nil {
			// A missing config directory is normal; run without live reload.
			logging.ConfigError("Config watcher disabled: %v", err)
		}
		defer watcher.Stop()
	} else {
		logging.ConfigError("Config watcher unavailable: %v", err)
	}

	final, err := p.Run()
	if m, ok := final.(app.Model); ok {
		m.Shutdown()
	}
	if err != nil {
		return fmt.Errorf("interactive session: %w", err)
	}
	return nil
}
