package command

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/review-tui/internal/config"
	"github.com/leighmacdonald/review-tui/internal/dashboard"
	"github.com/leighmacdonald/review-tui/internal/reviewapi"
	"github.com/leighmacdonald/review-tui/internal/ui/input"
	"github.com/leighmacdonald/review-tui/internal/ui/model"
)

func SetViewState(state model.ViewState) tea.Cmd {
	return func() tea.Msg { return state }
}

func SetNextZone(section model.Section, currentZone model.KeyZone, dir input.Direction) tea.Cmd {
	return SetKeyZone(model.Zones(section).Next(currentZone, dir))
}

func SetKeyZone(zone model.KeyZone) tea.Cmd {
	return func() tea.Msg { return zone }
}

const ClearMessageTimeout = time.Second * 10

type ClearStatusMessageMsg struct{}

func ClearErrorAfter(t time.Duration) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return ClearStatusMessageMsg{}
	})
}

type StatusMsg struct {
	Message string
	Err     bool
}

func SetStatusMessage(msg string, err bool) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Message: msg, Err: err}
	}
}

func SetConfig(config config.Config) tea.Cmd {
	return func() tea.Msg { return config }
}

// ApplyFiltersMsg carries the raw values of the filter inputs. Empty values unset the filter.
type ApplyFiltersMsg struct {
	Platform string
	Rating   string
	Search   string
}

func ApplyFilters(platform string, rating string, search string) tea.Cmd {
	return func() tea.Msg {
		return ApplyFiltersMsg{Platform: platform, Rating: rating, Search: search}
	}
}

type PageSizeMsg struct {
	Size int
}

func SetPageSize(size int) tea.Cmd {
	return func() tea.Msg { return PageSizeMsg{Size: size} }
}

type PageRequestMsg struct {
	Request dashboard.PageRequest
}

func RequestPage(req dashboard.PageRequest) tea.Cmd {
	return func() tea.Msg { return PageRequestMsg{Request: req} }
}

type RefreshMsg struct{}

func Refresh() tea.Cmd {
	return func() tea.Msg { return RefreshMsg{} }
}

type SelectedReviewMsg struct {
	Review reviewapi.Review
}

func SelectReview(review reviewapi.Review) tea.Cmd {
	return func() tea.Msg { return SelectedReviewMsg{Review: review} }
}

type SelectedBadReviewMsg struct {
	Record reviewapi.BadReviewRecord
}

func SelectBadReview(record reviewapi.BadReviewRecord) tea.Cmd {
	return func() tea.Msg { return SelectedBadReviewMsg{Record: record} }
}
