package pages

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/review-tui/internal/config"
	"github.com/leighmacdonald/review-tui/internal/dashboard"
	"github.com/leighmacdonald/review-tui/internal/ui/command"
	"github.com/leighmacdonald/review-tui/internal/ui/component"
	"github.com/leighmacdonald/review-tui/internal/ui/input"
	"github.com/leighmacdonald/review-tui/internal/ui/model"
	"github.com/leighmacdonald/review-tui/internal/ui/styles"
)

// ConfigWriter persists config changes made from the ui.
type ConfigWriter interface {
	Write(config config.Config) error
	Path() string
}

type configIdx int

const (
	fieldAPIBaseURL configIdx = iota
	fieldPageSize
	fieldHTTPTimeout
	fieldMetricsAddress
	fieldSave
)

type Config struct {
	fields     []*component.ValidatingTextInputModel
	focusIndex configIdx
	config     config.Config
	viewState  model.ViewState
	loader     ConfigWriter
}

func NewConfig(conf config.Config, loader ConfigWriter) *Config {
	page := &Config{loader: loader, focusIndex: fieldAPIBaseURL}
	page.setFields(conf)

	return page
}

func (m *Config) setFields(conf config.Config) {
	m.config = conf
	m.fields = []*component.ValidatingTextInputModel{
		component.NewValidatingTextInputModel("Review API Base URL", conf.APIBaseURL, config.DefaultAPIBaseURL,
			component.URLValidator{}),
		component.NewValidatingTextInputModel("Default Page Size", strconv.Itoa(conf.PageSize), "20",
			component.IntValidator{Min: 1, Allowed: dashboard.PageSizes}),
		component.NewValidatingTextInputModel("HTTP Timeout (sec)", strconv.Itoa(conf.HTTPTimeout), "0",
			component.IntValidator{Min: 0}),
		component.NewValidatingTextInputModel("Metrics Address", conf.MetricsAddress, "127.0.0.1:9091",
			component.AddressValidator{EmptyOk: true}),
	}
}

func (m *Config) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Config) Update(msg tea.Msg) (*Config, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		entering := msg.Page == model.PageConfig && m.viewState.Page != model.PageConfig
		m.viewState = msg
		if entering {
			return m, m.focus()
		}

		return m, nil
	case config.Config:
		// Reloaded externally, only take it when nothing is being edited.
		if m.viewState.Page != model.PageConfig {
			m.setFields(msg)
		}

		return m, nil
	case tea.KeyMsg:
		if m.viewState.Page != model.PageConfig {
			return m, nil
		}

		return m, m.onKey(msg)
	}

	if m.viewState.Page != model.PageConfig || m.focusIndex >= fieldSave {
		return m, nil
	}

	var cmd tea.Cmd
	m.fields[m.focusIndex], cmd = m.fields[m.focusIndex].Update(msg)

	return m, cmd
}

func (m *Config) onKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, input.Default.Back):
		viewState := m.viewState
		viewState.Page = model.PageMain

		return command.SetViewState(viewState)
	case msg.Type == tea.KeyUp:
		if m.focusIndex > 0 {
			return m.changeInput(input.Up)
		}

		return nil
	case msg.Type == tea.KeyDown:
		if m.focusIndex < fieldSave {
			return m.changeInput(input.Down)
		}

		return nil
	case key.Matches(msg, input.Default.Accept):
		if m.focusIndex < fieldSave {
			return m.changeInput(input.Down)
		}

		return m.save()
	}

	if m.focusIndex >= fieldSave {
		return nil
	}

	var cmd tea.Cmd
	m.fields[m.focusIndex], cmd = m.fields[m.focusIndex].Update(msg)

	return cmd
}

func (m *Config) save() tea.Cmd {
	for _, field := range m.fields {
		if field.Input.Err != nil {
			return command.SetStatusMessage("Config is not valid, cannot save", true)
		}
	}

	cfg := m.config
	cfg.APIBaseURL = m.fields[fieldAPIBaseURL].Input.Value()
	cfg.PageSize, _ = strconv.Atoi(m.fields[fieldPageSize].Input.Value())
	cfg.HTTPTimeout, _ = strconv.Atoi(m.fields[fieldHTTPTimeout].Input.Value())
	cfg.MetricsAddress = m.fields[fieldMetricsAddress].Input.Value()

	if err := m.loader.Write(cfg); err != nil {
		return command.SetStatusMessage(err.Error(), true)
	}

	m.config = cfg
	viewState := m.viewState
	viewState.Page = model.PageMain

	return tea.Batch(
		command.SetConfig(cfg),
		command.SetStatusMessage("Saved config", false),
		command.SetViewState(viewState))
}

func (m *Config) focus() tea.Cmd {
	var cmd tea.Cmd
	for i := range m.fields {
		if configIdx(i) == m.focusIndex {
			cmd = m.fields[i].Focus()
		} else {
			m.fields[i].Blur()
		}
	}

	return cmd
}

func (m *Config) changeInput(dir input.Direction) tea.Cmd {
	m.focusIndex += configIdx(dir.Delta())

	return m.focus()
}

func (m *Config) View() string {
	fields := make([]string, 0, len(m.fields)+2)
	for _, field := range m.fields {
		fields = append(fields, field.View())
	}

	if m.focusIndex == fieldSave {
		fields = append(fields, styles.FocusedSubmitButton)
	} else {
		fields = append(fields, styles.BlurredSubmitButton)
	}

	fields = append(fields, "", styles.DetailRow("Config Path", m.loader.Path()))

	return lipgloss.NewStyle().Width(m.viewState.Width).Align(lipgloss.Left).
		Render(lipgloss.JoinVertical(lipgloss.Top, fields...))
}
