package component

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/review-tui/internal/dashboard"
	"github.com/leighmacdonald/review-tui/internal/ui/command"
	"github.com/leighmacdonald/review-tui/internal/ui/input"
	"github.com/leighmacdonald/review-tui/internal/ui/model"
	"github.com/leighmacdonald/review-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

const (
	zonePrev = "prev"
	zoneNext = "next"
)

// PaginationModel is the button bar below the good reviews table.
type PaginationModel struct {
	id         string
	visible    bool
	pagination dashboard.Pagination
	viewState  model.ViewState
}

func NewPaginationModel() *PaginationModel {
	return &PaginationModel{id: zone.NewPrefix()}
}

func (m *PaginationModel) Init() tea.Cmd {
	return nil
}

func (m *PaginationModel) Show(pagination dashboard.Pagination) {
	m.pagination = pagination
	m.visible = true
}

func (m *PaginationModel) Hide() {
	m.visible = false
}

func (m *PaginationModel) Visible() bool {
	return m.visible
}

func (m *PaginationModel) Update(msg tea.Msg) (*PaginationModel, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
	case tea.MouseMsg:
		if !m.enabled() || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			break
		}

		if m.pagination.HasPrevious && zone.Get(m.id+zonePrev).InBounds(msg) {
			return m, command.RequestPage(dashboard.RelativePage(-1))
		}

		if m.pagination.HasNext && zone.Get(m.id+zoneNext).InBounds(msg) {
			return m, command.RequestPage(dashboard.RelativePage(1))
		}

		for _, page := range m.pagination.Window.Pages() {
			if zone.Get(m.id + strconv.Itoa(page)).InBounds(msg) {
				return m, command.RequestPage(dashboard.AbsolutePage(page))
			}
		}
	case tea.KeyMsg:
		if !m.enabled() {
			break
		}

		switch {
		// The backend flags decide whether there is anywhere to go.
		case key.Matches(msg, input.Default.PrevPage) && m.pagination.HasPrevious:
			return m, command.RequestPage(dashboard.RelativePage(-1))
		case key.Matches(msg, input.Default.NextPage) && m.pagination.HasNext:
			return m, command.RequestPage(dashboard.RelativePage(1))
		case key.Matches(msg, input.Default.FirstPage) && m.pagination.HasPrevious:
			return m, command.RequestPage(dashboard.AbsolutePage(0))
		case key.Matches(msg, input.Default.LastPage) && m.pagination.HasNext:
			return m, command.RequestPage(dashboard.LastPage())
		}
	}

	return m, nil
}

func (m *PaginationModel) enabled() bool {
	return m.visible && m.viewState.Page == model.PageMain && m.viewState.Section == model.SectionGood
}

func (m *PaginationModel) View() string {
	if !m.visible {
		return ""
	}

	buttons := []string{m.button(zonePrev, "Previous", m.pagination.HasPrevious, false)}
	for _, page := range m.pagination.Window.Pages() {
		buttons = append(buttons, m.button(strconv.Itoa(page), strconv.Itoa(page+1), true,
			page == m.pagination.CurrentPage))
	}

	buttons = append(buttons,
		m.button(zoneNext, "Next", m.pagination.HasNext, false),
		styles.PageInfo.Render(fmt.Sprintf("Page Size: %d", m.pagination.PageSize)),
		styles.PageInfo.Render(PageInfo(m.pagination)))

	return lipgloss.NewStyle().Width(m.viewState.Width).Align(lipgloss.Center).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
}

func (m *PaginationModel) button(id string, label string, enabled bool, current bool) string {
	switch {
	case current:
		return zone.Mark(m.id+id, styles.PageButtonCurrent.Render(label))
	case !enabled:
		return styles.PageButtonDisabled.Render(label)
	default:
		return zone.Mark(m.id+id, styles.PageButton.Render(label))
	}
}

// PageInfo is the one line position summary, eg: "Page 3 of 5 | Total: 93".
func PageInfo(pagination dashboard.Pagination) string {
	return fmt.Sprintf("Page %d of %d | Total: %d", pagination.CurrentPage+1, pagination.TotalPages,
		pagination.TotalItems)
}
