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

type goodTableCol int

const (
	colGoodID goodTableCol = iota
	colGoodEntity
	colGoodPlatform
	colGoodRating
	colGoodTitle
	colGoodComment
	colGoodDate
)

type goodTableColSize = int

const (
	colGoodIDSize       goodTableColSize = 12
	colGoodEntitySize   goodTableColSize = 9
	colGoodPlatformSize goodTableColSize = 14
	colGoodRatingSize   goodTableColSize = 7
	colGoodTitleSize    goodTableColSize = 28
	colGoodDateSize     goodTableColSize = 11
)

func NewTableGoodModel() *TableGoodModel {
	return &TableGoodModel{
		id:    zone.NewPrefix(),
		table: NewUnstyledTable("ID", "Entity", "Platform", "Rating", "Title", "Comment", "Date"),
	}
}

// TableGoodModel shows the current page of good reviews.
type TableGoodModel struct {
	panel

	id        string
	table     *table.Table
	reviews   []reviewapi.Review
	selected  int
	ready     bool
	viewport  viewport.Model
	viewState model.ViewState
}

func (m *TableGoodModel) Init() tea.Cmd {
	return nil
}

func (m *TableGoodModel) SetLoading() {
	m.setLoading()
}

func (m *TableGoodModel) SetEmpty(message string) {
	m.reviews = nil
	m.setEmpty(message)
}

func (m *TableGoodModel) SetError(message string) {
	m.setError(message)
}

func (m *TableGoodModel) SetRows(reviews []reviewapi.Review) {
	m.status = statusRows
	m.reviews = reviews
	m.selected = 0
	m.viewport.GotoTop()
}

// Selected returns the highlighted review, if any rows are shown.
func (m *TableGoodModel) Selected() (reviewapi.Review, bool) {
	if m.status != statusRows || m.selected < 0 || m.selected >= len(m.reviews) {
		return reviewapi.Review{}, false
	}

	return m.reviews[m.selected], true
}

// SelectionCmd broadcasts the highlighted review so the detail panel can follow it.
func (m *TableGoodModel) SelectionCmd() tea.Cmd {
	review, ok := m.Selected()
	if !ok {
		return nil
	}

	return command.SelectReview(review)
}

func (m *TableGoodModel) Update(msg tea.Msg) (*TableGoodModel, tea.Cmd) {
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
			m.viewState.Section != model.SectionGood {
			break
		}

		for idx := range m.reviews {
			if zone.Get(m.id + strconv.Itoa(idx)).InBounds(msg) {
				m.selected = idx

				return m, m.SelectionCmd()
			}
		}
	case tea.KeyMsg:
		if m.viewState.Page != model.PageMain || m.viewState.KeyZone != model.KZgoodTable {
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

func (m *TableGoodModel) moveSelection(dir input.Direction) tea.Cmd {
	if len(m.reviews) == 0 {
		return nil
	}

	next := clampIndex(m.selected+dir.Delta(), len(m.reviews))
	if next == m.selected {
		return nil
	}

	m.selected = next
	keepVisible(&m.viewport, m.selected)

	return m.SelectionCmd()
}

func (m *TableGoodModel) commentWidth() int {
	return max(m.viewState.Width-colGoodIDSize-colGoodEntitySize-colGoodPlatformSize-colGoodRatingSize-
		colGoodTitleSize-colGoodDateSize-4, 10)
}

func (m *TableGoodModel) Render(height int) string {
	m.viewport.Height = max(height, 1)
	content, isPlaceholder := m.placeholder(m.viewState.Width - 2)
	if !isPlaceholder {
		content = m.renderTable()
	}

	m.viewport.SetContent(content)

	return Container("Good Reviews", m.viewState.Width-2, height, m.viewport.View(),
		m.viewState.KeyZone == model.KZgoodTable)
}

func (m *TableGoodModel) renderTable() string {
	commentWidth := m.commentWidth()
	rows := make([][]string, 0, len(m.reviews))
	for idx, review := range m.reviews {
		rows = append(rows, []string{
			zone.Mark(m.id+strconv.Itoa(idx), strconv.FormatInt(review.ReviewID, 10)),
			strconv.FormatInt(review.EntityID, 10),
			Truncate(orNA(review.Platform), colGoodPlatformSize-1),
			FormatRating(review.Rating),
			Truncate(orNA(review.ReviewTitle), colGoodTitleSize-1),
			Truncate(commentOrDefault(review.ReviewComments), commentWidth-1),
			FormatDate(review.ReviewDate),
		})
	}

	m.table.ClearRows()
	m.table.Rows(rows...)

	return m.table.StyleFunc(func(row, col int) lipgloss.Style {
		var width int
		switch goodTableCol(col) {
		case colGoodID:
			width = colGoodIDSize
		case colGoodEntity:
			width = colGoodEntitySize
		case colGoodPlatform:
			width = colGoodPlatformSize
		case colGoodRating:
			width = colGoodRatingSize
		case colGoodTitle:
			width = colGoodTitleSize
		case colGoodComment:
			width = commentWidth
		case colGoodDate:
			width = colGoodDateSize
		}

		switch {
		case row == table.HeaderRow:
			return styles.TableHeading.Width(width)
		case row == m.selected:
			return styles.TableRowSelected.Width(width)
		case goodTableCol(col) == colGoodRating && row < len(m.reviews):
			return rowStyle(row).Inherit(ClassifyRating(m.reviews[row].Rating).Style()).Width(width)
		case goodTableCol(col) == colGoodPlatform:
			return rowStyle(row).Inherit(styles.PlatformBadge).Width(width)
		default:
			return rowStyle(row).Width(width)
		}
	}).Render()
}

func rowStyle(row int) lipgloss.Style {
	if row%2 == 0 {
		return styles.TableRowValuesEven
	}

	return styles.TableRowValuesOdd
}

func commentOrDefault(comment string) string {
	if comment == "" {
		return "No comment"
	}

	return comment
}
