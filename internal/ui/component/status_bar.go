package component

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/review-tui/internal/config"
	"github.com/leighmacdonald/review-tui/internal/ui/command"
	"github.com/leighmacdonald/review-tui/internal/ui/input"
	"github.com/leighmacdonald/review-tui/internal/ui/model"
	"github.com/leighmacdonald/review-tui/internal/ui/styles"
)

type StatusBarModel struct {
	viewState   model.ViewState
	statusMsg   string
	statusError bool
	version     string
	server      string
}

func NewStatusBarModel(version string, server string) *StatusBarModel {
	return &StatusBarModel{version: version, server: server}
}

func (m *StatusBarModel) Init() tea.Cmd {
	return nil
}

func (m *StatusBarModel) Update(msg tea.Msg) (*StatusBarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case command.StatusMsg:
		m.statusMsg = msg.Message
		m.statusError = msg.Err

		return m, command.ClearErrorAfter(command.ClearMessageTimeout)
	case command.ClearStatusMessageMsg:
		m.statusError = false
		m.statusMsg = ""
	case config.Config:
		m.server = msg.APIBaseURL
	case model.ViewState:
		m.viewState = msg
	}

	return m, nil
}

// Status returns the current transient message, if any.
func (m *StatusBarModel) Status() (string, bool) {
	return m.statusMsg, m.statusError
}

func (m *StatusBarModel) View() string {
	args := []string{
		styles.StatusVersion.Render(m.version),
		styles.StatusHelp.Render(fmt.Sprintf(" %s %s ", input.Default.Help.Help().Key, input.Default.Help.Help().Desc)),
		styles.StatusServer.Render(m.server),
		m.status(),
	}

	return lipgloss.NewStyle().Width(m.viewState.Width).Render(lipgloss.JoinHorizontal(lipgloss.Top, args...))
}

func (m *StatusBarModel) status() string {
	if m.statusMsg == "" {
		return ""
	}

	if m.statusError {
		return styles.StatusError.Render(m.statusMsg)
	}

	return styles.StatusMessage.Render(m.statusMsg)
}
