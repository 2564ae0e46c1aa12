package component

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/review-tui/internal/dashboard"
	"github.com/leighmacdonald/review-tui/internal/ui/model"
	"github.com/leighmacdonald/review-tui/internal/ui/styles"
)

// SummaryModel is the totals bar shown above the tables.
type SummaryModel struct {
	viewState model.ViewState
	loaded    bool
	good      int64
	bad       int64
	average   string
}

func NewSummaryModel() *SummaryModel {
	return &SummaryModel{average: notAvailable}
}

func (m *SummaryModel) Init() tea.Cmd {
	return nil
}

func (m *SummaryModel) Update(msg tea.Msg) (*SummaryModel, tea.Cmd) {
	if viewState, ok := msg.(model.ViewState); ok {
		m.viewState = viewState
	}

	return m, nil
}

// SetOverview updates the totals. A failed summary keeps the previous totals, a failed statistics
// load shows the average as N/A.
func (m *SummaryModel) SetOverview(overview dashboard.Overview) {
	if overview.Summary != nil {
		m.loaded = true
		m.good = overview.Summary.TotalGoodReviews
		m.bad = overview.Summary.TotalBadReviews
	}

	if overview.Statistics != nil {
		m.average = FormatAverage(overview.Statistics.AverageRating)
	} else {
		m.average = notAvailable
	}
}

func (m *SummaryModel) View() string {
	total := func(value int64) string {
		if !m.loaded {
			return "-"
		}

		return FormatCount(value)
	}

	return lipgloss.NewStyle().Width(m.viewState.Width).Align(lipgloss.Center).Render(
		lipgloss.JoinHorizontal(lipgloss.Top,
			styles.SummaryLabel.Render("Good Reviews"), styles.SummaryValue.Render(total(m.good)),
			styles.SummaryLabel.Render("Bad Reviews"), styles.SummaryValue.Render(total(m.bad)),
			styles.SummaryLabel.Render("Total"), styles.SummaryValue.Render(total(m.good+m.bad)),
			styles.SummaryLabel.Render("Avg Rating"), styles.SummaryValue.Render(m.average),
		))
}
