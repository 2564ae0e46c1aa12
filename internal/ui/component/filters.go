package component

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/review-tui/internal/dashboard"
	"github.com/leighmacdonald/review-tui/internal/ui/command"
	"github.com/leighmacdonald/review-tui/internal/ui/input"
	"github.com/leighmacdonald/review-tui/internal/ui/model"
	"github.com/leighmacdonald/review-tui/internal/ui/styles"
)

type filterField int

const (
	fieldPlatform filterField = iota
	fieldRating
	fieldSearch
	fieldPageSize
	fieldApply
)

type RatingOption struct {
	Label string
	Value string
}

// RatingOptions are the selectable rating ranges. The empty value means any rating.
var RatingOptions = []RatingOption{ //nolint:gochecknoglobals
	{Label: "All Ratings", Value: ""},
	{Label: "9-10", Value: "9-10"},
	{Label: "7-8", Value: "7-8"},
	{Label: "5-6", Value: "5-6"},
	{Label: "0-4", Value: "0-4"},
}

const allPlatforms = "All Platforms"

// FiltersModel holds the filter and page size selectors. Selections are only sent to the controller
// when applied, except for the page size which applies immediately.
type FiltersModel struct {
	viewState   model.ViewState
	platforms   []string
	platformIdx int
	ratingIdx   int
	search      textinput.Model
	pageSizeIdx int
	focus       filterField
}

func NewFiltersModel(pageSize int) *FiltersModel {
	filters := &FiltersModel{
		platforms: []string{""},
		search:    NewTextInputModel("", "title or comment"),
		focus:     fieldPlatform,
	}
	filters.search.Width = 24
	filters.SetPageSize(pageSize)

	return filters
}

func (m *FiltersModel) Init() tea.Cmd {
	return nil
}

// Editing reports whether keystrokes are currently being typed into the search input.
func (m *FiltersModel) Editing() bool {
	return m.active() && m.focus == fieldSearch
}

func (m *FiltersModel) active() bool {
	return m.viewState.Page == model.PageMain && m.viewState.KeyZone == model.KZfilters
}

// SetPlatforms replaces the platform options, keeping the current selection when it still exists.
func (m *FiltersModel) SetPlatforms(platforms []string) {
	current := m.platforms[m.platformIdx]
	m.platforms = append([]string{""}, platforms...)
	m.platformIdx = max(slices.Index(m.platforms, current), 0)
}

func (m *FiltersModel) SetPageSize(size int) {
	m.pageSizeIdx = max(slices.Index(dashboard.PageSizes, size), 0)
}

func (m *FiltersModel) PageSize() int {
	return dashboard.PageSizes[m.pageSizeIdx]
}

// FocusSearch jumps straight to the search input.
func (m *FiltersModel) FocusSearch() tea.Cmd {
	m.focus = fieldSearch
	m.search.PromptStyle = styles.FocusedStyle
	m.search.TextStyle = styles.FocusedStyle

	return m.search.Focus()
}

func (m *FiltersModel) Update(msg tea.Msg) (*FiltersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
		if !m.active() {
			m.blurSearch()
		} else if m.focus == fieldSearch && !m.search.Focused() {
			return m, m.FocusSearch()
		}

		return m, nil
	case tea.KeyMsg:
		if !m.active() {
			return m, nil
		}

		return m, m.onKey(msg)
	}

	if m.Editing() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m *FiltersModel) onKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, input.Default.Back):
		m.blurSearch()
		viewState := m.viewState
		viewState.KeyZone = model.Zones(viewState.Section)[0]

		return command.SetViewState(viewState)
	case key.Matches(msg, input.Default.Accept):
		return m.apply()
	case msg.Type == tea.KeyUp:
		return m.changeField(input.Up)
	case msg.Type == tea.KeyDown:
		return m.changeField(input.Down)
	case m.focus == fieldSearch:
		// Letters bound elsewhere, eg: j/k, must reach the input while typing.
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)

		return cmd
	case key.Matches(msg, input.Default.Up):
		return m.changeField(input.Up)
	case key.Matches(msg, input.Default.Down):
		return m.changeField(input.Down)
	case key.Matches(msg, input.Default.Left):
		return m.changeOption(input.Left)
	case key.Matches(msg, input.Default.Right):
		return m.changeOption(input.Right)
	}

	return nil
}

func (m *FiltersModel) apply() tea.Cmd {
	return command.ApplyFilters(
		m.platforms[m.platformIdx],
		RatingOptions[m.ratingIdx].Value,
		m.search.Value())
}

func (m *FiltersModel) changeField(dir input.Direction) tea.Cmd {
	next := filterField(clampIndex(int(m.focus)+dir.Delta(), int(fieldApply)+1))
	if next == m.focus {
		return nil
	}

	m.focus = next
	if m.focus == fieldSearch {
		return m.FocusSearch()
	}

	m.blurSearch()

	return nil
}

func (m *FiltersModel) changeOption(dir input.Direction) tea.Cmd {
	switch m.focus { //nolint:exhaustive
	case fieldPlatform:
		m.platformIdx = wrapIndex(m.platformIdx+dir.Delta(), len(m.platforms))
	case fieldRating:
		m.ratingIdx = wrapIndex(m.ratingIdx+dir.Delta(), len(RatingOptions))
	case fieldPageSize:
		m.pageSizeIdx = wrapIndex(m.pageSizeIdx+dir.Delta(), len(dashboard.PageSizes))

		return command.SetPageSize(m.PageSize())
	}

	return nil
}

func (m *FiltersModel) blurSearch() {
	m.search.PromptStyle = styles.NoStyle
	m.search.TextStyle = styles.NoStyle
	m.search.Blur()
}

func (m *FiltersModel) View() string {
	platform := m.platforms[m.platformIdx]
	if platform == "" {
		platform = allPlatforms
	}

	apply := styles.BlurredApplyButton
	if m.active() && m.focus == fieldApply {
		apply = styles.FocusedApplyButton
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.FilterLabel.Render("Platform"), m.option(fieldPlatform, platform),
		styles.FilterLabel.Render("Rating"), m.option(fieldRating, RatingOptions[m.ratingIdx].Label),
		styles.FilterLabel.Render("Search"), m.search.View(), "  ",
		styles.FilterLabel.Render("Page Size"), m.option(fieldPageSize, strconv.Itoa(m.PageSize())),
		apply)

	return Container("Filters", m.viewState.Width-2, 1, content, m.active())
}

func (m *FiltersModel) option(field filterField, value string) string {
	if m.active() && m.focus == field {
		return styles.FilterValueFocused.Render(fmt.Sprintf("< %s >", value))
	}

	return styles.FilterValue.Render(fmt.Sprintf("  %s  ", value))
}

func wrapIndex(index int, length int) int {
	if length <= 0 {
		return 0
	}

	return ((index % length) + length) % length
}

func clampIndex(index int, length int) int {
	return min(max(index, 0), max(length-1, 0))
}
