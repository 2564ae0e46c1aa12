package component

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/leighmacdonald/review-tui/internal/reviewapi"
	"github.com/leighmacdonald/review-tui/internal/ui/command"
	"github.com/leighmacdonald/review-tui/internal/ui/input"
	"github.com/leighmacdonald/review-tui/internal/ui/model"
	"github.com/leighmacdonald/review-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

type badTableCol int

const (
	colBadID badTableCol = iota
	colBadPlatform
	colBadReason
	colBadData
	colBadCreated
)

type badTableColSize = int

const (
	colBadIDSize       badTableColSize = 12
	colBadPlatformSize badTableColSize = 14
	colBadReasonSize   badTableColSize = 30
	colBadCreatedSize  badTableColSize = 16
)

func NewTableBadModel() *TableBadModel {
	return &TableBadModel{
		id:    zone.NewPrefix(),
		table: NewUnstyledTable("ID", "Platform", "Reason", "Data", "Created"),
	}
}

// TableBadModel lists every rejected review. The dataset is unpaginated.
type TableBadModel struct {
	panel

	id        string
	table     *table.Table
	records   []reviewapi.BadReviewRecord
	selected  int
	ready     bool
	viewport  viewport.Model
	viewState model.ViewState
}

func (m *TableBadModel) Init() tea.Cmd {
	return nil
}

func (m *TableBadModel) SetLoading() {
	m.setLoading()
}

func (m *TableBadModel) SetEmpty(message string) {
	m.records = nil
	m.setEmpty(message)
}

func (m *TableBadModel) SetError(message string) {
	m.setError(message)
}

func (m *TableBadModel) SetRows(records []reviewapi.BadReviewRecord) {
	m.status = statusRows
	m.records = records
	m.selected = 0
	m.viewport.GotoTop()
}

func (m *TableBadModel) Selected() (reviewapi.BadReviewRecord, bool) {
	if m.status != statusRows || m.selected < 0 || m.selected >= len(m.records) {
		return reviewapi.BadReviewRecord{}, false
	}

	return m.records[m.selected], true
}

func (m *TableBadModel) SelectionCmd() tea.Cmd {
	record, ok := m.Selected()
	if !ok {
		return nil
	}

	return command.SelectBadReview(record)
}

func (m *TableBadModel) Update(msg tea.Msg) (*TableBadModel, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, msg.Lower)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
		}

		return m, nil
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft ||
			m.viewState.Section != model.SectionBad {
			break
		}

		for idx := range m.records {
			if zone.Get(m.id + strconv.Itoa(idx)).InBounds(msg) {
				m.selected = idx

				return m, m.SelectionCmd()
			}
		}
	case tea.KeyMsg:
		if m.viewState.Page != model.PageMain || m.viewState.KeyZone != model.KZbadTable {
			break
		}

		switch {
		case key.Matches(msg, input.Default.Up):
			return m, m.moveSelection(input.Up)
		case key.Matches(msg, input.Default.Down):
			return m, m.moveSelection(input.Down)
		case key.Matches(msg, input.Default.Accept):
			viewState := m.viewState
			viewState.KeyZone = model.KZdetail

			return m, tea.Batch(m.SelectionCmd(), command.SetViewState(viewState))
		}

		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

func (m *TableBadModel) moveSelection(dir input.Direction) tea.Cmd {
	if len(m.records) == 0 {
		return nil
	}

	next := clampIndex(m.selected+dir.Delta(), len(m.records))
	if next == m.selected {
		return nil
	}

	m.selected = next
	keepVisible(&m.viewport, m.selected)

	return m.SelectionCmd()
}

func (m *TableBadModel) dataWidth() int {
	return max(m.viewState.Width-colBadIDSize-colBadPlatformSize-colBadReasonSize-colBadCreatedSize-4, 10)
}

func (m *TableBadModel) Render(height int) string {
	m.viewport.Height = max(height, 1)
	content, isPlaceholder := m.placeholder(m.viewState.Width - 2)
	if !isPlaceholder {
		content = m.renderTable()
	}

	m.viewport.SetContent(content)

	return Container("Bad Reviews", m.viewState.Width-2, height, m.viewport.View(),
		m.viewState.KeyZone == model.KZbadTable)
}

func (m *TableBadModel) renderTable() string {
	dataWidth := m.dataWidth()
	rows := make([][]string, 0, len(m.records))
	for idx, record := range m.records {
		rows = append(rows, []string{
			zone.Mark(m.id+strconv.Itoa(idx), strconv.FormatInt(record.ID.ReviewID, 10)),
			Truncate(orNA(record.Platform), colBadPlatformSize-1),
			Truncate(orNA(record.Reason), colBadReasonSize-1),
			Truncate(TruncateJSON(record.JSONData), dataWidth-1),
			FormatDate(record.CreatedAt),
		})
	}

	m.table.ClearRows()
	m.table.Rows(rows...)

	return m.table.StyleFunc(func(row, col int) lipgloss.Style {
		var width int
		switch badTableCol(col) {
		case colBadID:
			width = colBadIDSize
		case colBadPlatform:
			width = colBadPlatformSize
		case colBadReason:
			width = colBadReasonSize
		case colBadData:
			width = dataWidth
		case colBadCreated:
			width = colBadCreatedSize
		}

		switch {
		case row == table.HeaderRow:
			return styles.TableHeading.Width(width)
		case row == m.selected:
			return styles.TableRowSelected.Width(width)
		case badTableCol(col) == colBadReason:
			return rowStyle(row).Inherit(styles.ReasonBadge).Width(width)
		case badTableCol(col) == colBadPlatform:
			return rowStyle(row).Inherit(styles.PlatformBadge).Width(width)
		default:
			return rowStyle(row).Width(width)
		}
	}).Render()
}
