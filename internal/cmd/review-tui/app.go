package main

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/review-tui/internal/config"
)

type UI interface {
	Send(msg tea.Msg)
	Run() error
}

// App routes messages from background systems into the ui. All dashboard data loading happens from
// within the ui itself.
type App struct {
	ui            UI
	configUpdates <-chan config.Config
}

func NewApp(userInterface UI, configUpdates <-chan config.Config) *App {
	return &App{
		ui:            userInterface,
		configUpdates: configUpdates,
	}
}

// Start forwards config reloads to the ui until the context is cancelled.
func (app *App) Start(ctx context.Context) {
	for {
		select {
		case conf := <-app.configUpdates:
			slog.Info("Config reloaded", slog.String("api_base_url", conf.APIBaseURL))
			app.ui.Send(conf)
		case <-ctx.Done():
			return
		}
	}
}
