package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/review-tui/internal/config"
	"github.com/leighmacdonald/review-tui/internal/metrics"
	"github.com/leighmacdonald/review-tui/internal/ui/pages"
	zone "github.com/lrstanley/bubblezone"
)

var (
	ErrUIExit = errors.New("ui error returned")
	ErrSource = errors.New("failed to create review api client")
)

type UI struct {
	program *tea.Program
}

func New(ctx context.Context, conf config.Config, factory SourceFactory, loader pages.ConfigWriter,
	collector *metrics.Collector, build pages.BuildInfo, logPath string,
) (*UI, error) {
	source, errSource := factory(conf)
	if errSource != nil {
		return nil, errors.Join(errSource, ErrSource)
	}

	zone.NewGlobal()

	return &UI{
		program: tea.NewProgram(
			newRootModel(ctx, conf, source, factory, loader, collector, build, logPath),
			tea.WithMouseCellMotion(),
			tea.WithAltScreen(),
			tea.WithContext(ctx),
			tea.WithFPS(30)),
	}, nil
}

func (t UI) Run() error {
	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}
