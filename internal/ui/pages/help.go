package pages

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/review-tui/internal/config"
	"github.com/leighmacdonald/review-tui/internal/ui/command"
	"github.com/leighmacdonald/review-tui/internal/ui/input"
	"github.com/leighmacdonald/review-tui/internal/ui/model"
	"github.com/leighmacdonald/review-tui/internal/ui/styles"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

func NewHelp(build BuildInfo, conf config.Config, configPath string, logPath string) *Help {
	return &Help{
		helpView:   help.New(),
		build:      build,
		config:     conf,
		configPath: configPath,
		logPath:    logPath,
	}
}

type Help struct {
	helpView   help.Model
	viewState  model.ViewState
	build      BuildInfo
	config     config.Config
	configPath string
	logPath    string
}

func (m *Help) Init() tea.Cmd {
	return nil
}

func (m *Help) Update(msg tea.Msg) (*Help, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.viewState.Page == model.PageHelp && key.Matches(msg, input.Default.Back) {
			viewState := m.viewState
			viewState.Page = model.PageMain

			return m, command.SetViewState(viewState)
		}
	case model.ViewState:
		m.viewState = msg
	case config.Config:
		m.config = msg
	}

	return m, nil
}

func (m *Help) View() string {
	left := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Config,
			input.Default.Refresh,
			input.Default.Quit,
			input.Default.Help,
			input.Default.Accept,
			input.Default.Back,
		},
	})

	middle := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.NextTab,
			input.Default.Good,
			input.Default.Bad,
			input.Default.Filters,
			input.Default.Search,
			input.Default.NextZone,
		},
	})

	right := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.PrevPage,
			input.Default.NextPage,
			input.Default.FirstPage,
			input.Default.LastPage,
			input.Default.PageSize,
			input.Default.Up,
			input.Default.Down,
			input.Default.Left,
			input.Default.Right,
		},
	})

	helpContent := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.HelpBox.Render(left), styles.HelpBox.Render(middle), styles.HelpBox.Render(right))

	commit := m.build.Commit
	if len(commit) > 8 {
		commit = commit[0:8]
	}

	content := lipgloss.JoinVertical(lipgloss.Center, helpContent,
		styles.DetailRow("Version", m.build.Version),
		styles.DetailRow("Commit", commit),
		styles.DetailRow("Date", m.build.Date),
		styles.DetailRow("API", m.config.APIBaseURL),
		styles.DetailRow("Config Path", m.configPath),
		styles.DetailRow("Log Path", m.logPath),
	)

	return lipgloss.Place(max(m.viewState.Width, lipgloss.Width(content)), lipgloss.Height(content),
		lipgloss.Center, lipgloss.Center, content)
}
