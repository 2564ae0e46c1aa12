package component

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/review-tui/internal/ui/command"
	"github.com/leighmacdonald/review-tui/internal/ui/input"
	"github.com/leighmacdonald/review-tui/internal/ui/model"
	"github.com/leighmacdonald/review-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

type TabLabel struct {
	label   string
	icon    string
	section model.Section
}

func NewTabsModel() *TabsModel {
	return &TabsModel{
		id: zone.NewPrefix(),
		tabs: []TabLabel{
			{label: "Good Reviews", icon: styles.IconGood, section: model.SectionGood},
			{label: "Bad Reviews", icon: styles.IconBad, section: model.SectionBad},
		},
		viewState: model.ViewState{Section: model.SectionGood},
	}
}

type TabsModel struct {
	id        string
	tabs      []TabLabel
	viewState model.ViewState
}

func (m *TabsModel) Init() tea.Cmd {
	return nil
}

func (m *TabsModel) Update(msg tea.Msg) (*TabsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		for _, item := range m.tabs {
			if zone.Get(m.id + item.label).InBounds(msg) {
				return m, m.selectSection(item.section)
			}
		}
	case model.ViewState:
		m.viewState = msg
	case tea.KeyMsg:
		if m.viewState.Page != model.PageMain {
			break
		}

		switch {
		case key.Matches(msg, input.Default.NextTab), key.Matches(msg, input.Default.PrevTab):
			// Only two tabs so both directions toggle.
			if m.viewState.Section == model.SectionGood {
				return m, m.selectSection(model.SectionBad)
			}

			return m, m.selectSection(model.SectionGood)
		case key.Matches(msg, input.Default.Good):
			return m, m.selectSection(model.SectionGood)
		case key.Matches(msg, input.Default.Bad):
			return m, m.selectSection(model.SectionBad)
		}
	}

	return m, nil
}

func (m *TabsModel) selectSection(section model.Section) tea.Cmd {
	if section == m.viewState.Section {
		return nil
	}

	viewState := m.viewState
	viewState.Section = section
	if !model.Zones(section).Contains(viewState.KeyZone) {
		viewState.KeyZone = model.Zones(section)[0]
	}

	return command.SetViewState(viewState)
}

func (m *TabsModel) View() string {
	if m.viewState.Width == 0 {
		return ""
	}

	tabs := make([]string, 0, len(m.tabs))
	for _, tab := range m.tabs {
		label := tab.icon + " " + tab.label
		if tab.section == m.viewState.Section {
			tabs = append(tabs, zone.Mark(m.id+tab.label, styles.TabsActive.Render(label)))
		} else {
			tabs = append(tabs, zone.Mark(m.id+tab.label, styles.TabsInactive.Render(label)))
		}
	}

	return styles.TabContainer.Width(m.viewState.Width).Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}
