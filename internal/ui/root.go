package ui

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/review-tui/internal/config"
	"github.com/leighmacdonald/review-tui/internal/dashboard"
	"github.com/leighmacdonald/review-tui/internal/metrics"
	"github.com/leighmacdonald/review-tui/internal/ui/command"
	"github.com/leighmacdonald/review-tui/internal/ui/component"
	"github.com/leighmacdonald/review-tui/internal/ui/input"
	"github.com/leighmacdonald/review-tui/internal/ui/model"
	"github.com/leighmacdonald/review-tui/internal/ui/pages"
	"github.com/leighmacdonald/review-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

// SourceFactory builds the review api used by the dashboard. It is called again whenever the
// config changes.
type SourceFactory func(conf config.Config) (dashboard.DataSource, error)

// rootModel is the top level model for the ui side of the app.
type rootModel struct {
	viewState    model.ViewState
	previousPage model.Page
	config       config.Config
	factory      SourceFactory
	ctrl         *dashboard.Controller
	tabs         *component.TabsModel
	summary      *component.SummaryModel
	filters      *component.FiltersModel
	good         *component.TableGoodModel
	bad          *component.TableBadModel
	pagination   *component.PaginationModel
	detail       *component.DetailPanelModel
	status       *component.StatusBarModel
	configPage   *pages.Config
	helpPage     *pages.Help
}

func newRootModel(ctx context.Context, conf config.Config, source dashboard.DataSource, factory SourceFactory,
	loader pages.ConfigWriter, collector *metrics.Collector, build pages.BuildInfo, logPath string,
) *rootModel {
	root := &rootModel{
		viewState:  model.ViewState{Page: model.PageMain, Section: model.SectionGood, KeyZone: model.KZgoodTable},
		config:     conf,
		factory:    factory,
		tabs:       component.NewTabsModel(),
		summary:    component.NewSummaryModel(),
		filters:    component.NewFiltersModel(conf.PageSize),
		good:       component.NewTableGoodModel(),
		bad:        component.NewTableBadModel(),
		pagination: component.NewPaginationModel(),
		detail:     component.NewDetailPanelModel(),
		status:     component.NewStatusBarModel(build.Version, conf.APIBaseURL),
		configPage: pages.NewConfig(conf, loader),
		helpPage:   pages.NewHelp(build, conf, loader.Path(), logPath),
	}

	renderer := panelRenderer{
		summary:    root.summary,
		filters:    root.filters,
		good:       root.good,
		bad:        root.bad,
		pagination: root.pagination,
	}

	root.ctrl = dashboard.NewController(ctx, source, renderer, dashboard.NewViewState(conf.PageSize),
		dashboard.WithMetrics(collector))

	return root
}

func (m *rootModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("review-tui"),
		m.configPage.Init(),
		m.tabs.Init(),
		m.summary.Init(),
		m.filters.Init(),
		m.good.Init(),
		m.bad.Init(),
		m.pagination.Init(),
		m.detail.Init(),
		m.status.Init(),
		m.ctrl.Init(),
		command.SetViewState(m.viewState),
	)
}

func (m *rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		viewState := m.viewState
		viewState.Width = msg.Width
		viewState.Height = msg.Height
		viewState.Upper = lipgloss.Height(m.header())
		viewState.Lower = max(msg.Height-viewState.Upper-lipgloss.Height(m.footer()), 0)

		return m, command.SetViewState(viewState)
	case model.ViewState:
		var cmds []tea.Cmd
		if msg.Section != m.viewState.Section {
			cmds = append(cmds, m.ctrl.OnTabSwitched(msg.Section.Tab()), m.selectionCmd(msg.Section))
		}

		if msg.Page != m.viewState.Page {
			m.previousPage = m.viewState.Page
		}

		m.viewState = msg

		return m.propagate(msg, cmds...)
	case model.KeyZone:
		viewState := m.viewState
		viewState.KeyZone = msg

		return m, command.SetViewState(viewState)
	case dashboard.Msg:
		m.ctrl.Update(msg)

		return m, m.selectionCmd(m.viewState.Section)
	case command.ApplyFiltersMsg:
		return m, m.applyFilters(msg)
	case command.PageSizeMsg:
		cmd, err := m.ctrl.OnPageSizeChanged(msg.Size)
		if err != nil {
			return m, command.SetStatusMessage(err.Error(), true)
		}

		return m, cmd
	case command.PageRequestMsg:
		return m, m.ctrl.OnPageRequested(msg.Request)
	case command.RefreshMsg:
		return m, tea.Batch(m.ctrl.OnRefresh(), command.SetStatusMessage("Refreshing", false))
	case config.Config:
		return m.propagate(msg, m.onConfig(msg))
	case tea.KeyMsg:
		if cmd, handled := m.onKey(msg); handled {
			return m, cmd
		}

		if m.filters.Editing() {
			var cmd tea.Cmd
			m.filters, cmd = m.filters.Update(msg)

			return m, cmd
		}
	}

	return m.propagate(inMsg)
}

// onKey handles the global key bindings. Unhandled keys are propagated to the children.
func (m *rootModel) onKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit, true
	}

	// Text entry owns the keyboard.
	if m.viewState.Page == model.PageConfig || m.filters.Editing() {
		return nil, false
	}

	switch {
	case key.Matches(msg, input.Default.Quit):
		if m.viewState.Page != model.PageMain {
			return nil, true
		}

		return tea.Quit, true
	case key.Matches(msg, input.Default.Help):
		return m.togglePage(model.PageHelp), true
	case key.Matches(msg, input.Default.Config):
		return m.togglePage(model.PageConfig), true
	}

	if m.viewState.Page != model.PageMain {
		return nil, false
	}

	switch {
	case key.Matches(msg, input.Default.Refresh):
		return command.Refresh(), true
	case key.Matches(msg, input.Default.Filters):
		return command.SetKeyZone(model.KZfilters), true
	case key.Matches(msg, input.Default.Search):
		return tea.Batch(m.filters.FocusSearch(), command.SetKeyZone(model.KZfilters)), true
	case key.Matches(msg, input.Default.PageSize):
		return command.SetPageSize(nextPageSize(m.ctrl.State().PageSize())), true
	case key.Matches(msg, input.Default.NextZone):
		return command.SetNextZone(m.viewState.Section, m.viewState.KeyZone, input.Right), true
	}

	return nil, false
}

func (m *rootModel) togglePage(page model.Page) tea.Cmd {
	viewState := m.viewState
	if viewState.Page == page {
		viewState.Page = m.previousPage
		if viewState.Page == page {
			viewState.Page = model.PageMain
		}
	} else {
		viewState.Page = page
	}

	return command.SetViewState(viewState)
}

func nextPageSize(current int) int {
	idx := slices.Index(dashboard.PageSizes, current)

	return dashboard.PageSizes[(idx+1)%len(dashboard.PageSizes)]
}

// applyFilters validates every value before touching the state so a bad rating range leaves the
// previous filters in place.
func (m *rootModel) applyFilters(msg command.ApplyFiltersMsg) tea.Cmd {
	if msg.Rating != "" {
		if _, err := dashboard.ParseRatingRange(msg.Rating); err != nil {
			return command.SetStatusMessage(err.Error(), true)
		}
	}

	state := m.ctrl.State()
	err := errors.Join(
		state.SetFilter(dashboard.FilterPlatform, msg.Platform),
		state.SetFilter(dashboard.FilterRating, msg.Rating),
		state.SetFilter(dashboard.FilterSearch, msg.Search),
	)
	if err != nil {
		return command.SetStatusMessage(err.Error(), true)
	}

	return m.ctrl.OnFilterChanged()
}

// onConfig rebuilds the api client for the new config and reloads everything.
func (m *rootModel) onConfig(conf config.Config) tea.Cmd {
	previous := m.config
	m.config = conf

	source, err := m.factory(conf)
	if err != nil {
		slog.Error("Failed to create api client", slog.String("error", err.Error()))

		return command.SetStatusMessage(err.Error(), true)
	}

	m.ctrl.SetSource(source)

	if conf.PageSize != previous.PageSize {
		if errSize := m.ctrl.State().SetPageSize(conf.PageSize); errSize != nil {
			return command.SetStatusMessage(errSize.Error(), true)
		}
	}

	return tea.Batch(m.ctrl.OnRefresh(), command.SetStatusMessage("Config reloaded", false))
}

// selectionCmd republishes the highlighted row of the section so the detail panel follows along.
func (m *rootModel) selectionCmd(section model.Section) tea.Cmd {
	if section == model.SectionBad {
		return m.bad.SelectionCmd()
	}

	return m.good.SelectionCmd()
}

func (m *rootModel) header() string {
	return styles.HeaderContainerStyle.Width(m.viewState.Width).Render(
		lipgloss.JoinVertical(lipgloss.Left, m.tabs.View(), m.summary.View()))
}

func (m *rootModel) footer() string {
	return styles.FooterContainerStyle.Width(m.viewState.Width).Render(m.status.View())
}

func (m *rootModel) View() string {
	if m.viewState.Width == 0 || m.viewState.Height == 0 {
		return ""
	}

	hdr := m.header()
	ftr := m.footer()
	contentHeight := max(m.viewState.Height-lipgloss.Height(hdr)-lipgloss.Height(ftr), 0)

	var content string
	switch m.viewState.Page {
	case model.PageConfig:
		content = m.configPage.View()
	case model.PageHelp:
		content = m.helpPage.View()
	case model.PageMain:
		content = m.mainView(contentHeight)
	}

	ctr := styles.ContentContainerStyle.Height(contentHeight).Render(content)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, hdr, ctr, ftr))
}

// mainView stacks the filters, the active table, its pagination and the detail panel. The table
// gets 3/5 of whatever height remains.
func (m *rootModel) mainView(height int) string {
	filters := m.filters.View()
	parts := []string{filters}

	remaining := height - lipgloss.Height(filters)

	var paging string
	if m.viewState.Section == model.SectionGood && m.pagination.Visible() {
		paging = m.pagination.View()
		remaining -= lipgloss.Height(paging)
	}

	// Both panels carry a 2 line border.
	tableHeight := max(remaining*3/5-2, 1)
	detailHeight := max(remaining-tableHeight-4, 1)

	if m.viewState.Section == model.SectionBad {
		parts = append(parts, m.bad.Render(tableHeight))
	} else {
		parts = append(parts, m.good.Render(tableHeight))
		if paging != "" {
			parts = append(parts, paging)
		}
	}

	parts = append(parts, m.detail.Render(detailHeight))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *rootModel) propagate(msg tea.Msg, cmds ...tea.Cmd) (tea.Model, tea.Cmd) {
	childCmds := make([]tea.Cmd, 10)

	m.tabs, childCmds[0] = m.tabs.Update(msg)
	m.summary, childCmds[1] = m.summary.Update(msg)
	m.filters, childCmds[2] = m.filters.Update(msg)
	m.good, childCmds[3] = m.good.Update(msg)
	m.bad, childCmds[4] = m.bad.Update(msg)
	m.pagination, childCmds[5] = m.pagination.Update(msg)
	m.detail, childCmds[6] = m.detail.Update(msg)
	m.status, childCmds[7] = m.status.Update(msg)
	m.configPage, childCmds[8] = m.configPage.Update(msg)
	m.helpPage, childCmds[9] = m.helpPage.Update(msg)

	return m, tea.Batch(append(cmds, childCmds...)...)
}

// logMsg is useful for debugging events. Tail the log file ~/.config/review-tui/review-tui.log
func logMsg(inMsg tea.Msg) {
	// Filter out very noisy stuff
	switch inMsg.(type) {
	case tea.MouseMsg:
	case command.ClearStatusMessageMsg:
	case dashboard.Msg:
		break
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
