package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/review-tui/internal/config"
	"github.com/leighmacdonald/review-tui/internal/dashboard"
	"github.com/leighmacdonald/review-tui/internal/metrics"
	"github.com/leighmacdonald/review-tui/internal/reviewapi"
	"github.com/leighmacdonald/review-tui/internal/ui/command"
	"github.com/leighmacdonald/review-tui/internal/ui/model"
	"github.com/leighmacdonald/review-tui/internal/ui/pages"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	reviewCalls []reviewapi.ListReviewsParams
	badCalls    int
}

func (s *stubSource) Reviews(_ context.Context, params reviewapi.ListReviewsParams) (*reviewapi.ReviewPage, error) {
	s.reviewCalls = append(s.reviewCalls, params)

	return &reviewapi.ReviewPage{
		Reviews:     []reviewapi.Review{{ReviewID: 10, Platform: "AGODA"}, {ReviewID: 11, Platform: "BOOKING"}},
		CurrentPage: params.Page,
		TotalPages:  3,
		TotalItems:  42,
		HasNext:     params.Page < 2,
		HasPrevious: params.Page > 0,
	}, nil
}

func (s *stubSource) BadReviewRecords(_ context.Context) ([]reviewapi.BadReviewRecord, error) {
	s.badCalls++

	return []reviewapi.BadReviewRecord{{ID: reviewapi.BadReviewID{ReviewID: 7, ProviderID: 1}, Reason: "Duplicate"}}, nil
}

func (s *stubSource) Summary(_ context.Context) (*reviewapi.Summary, error) {
	return &reviewapi.Summary{TotalGoodReviews: 42, TotalBadReviews: 1}, nil
}

func (s *stubSource) Statistics(_ context.Context) (*reviewapi.Statistics, error) {
	return &reviewapi.Statistics{Platforms: []string{"AGODA", "BOOKING"}}, nil
}

type stubWriter struct{}

func (stubWriter) Write(_ config.Config) error {
	return nil
}

func (stubWriter) Path() string {
	return "review-tui.yaml"
}

func newTestRoot(t *testing.T, source *stubSource, factoryCalls *int) *rootModel {
	t.Helper()

	factory := func(_ config.Config) (dashboard.DataSource, error) {
		*factoryCalls++

		return source, nil
	}

	conf := config.Config{APIBaseURL: config.DefaultAPIBaseURL, PageSize: config.DefaultPageSize}

	return newRootModel(t.Context(), conf, source, factory, stubWriter{}, metrics.New(),
		pages.BuildInfo{Version: "test"}, "review-tui.log")
}

// deliver runs the command and feeds any dashboard results back through the root model. Other
// messages are dropped so timers are never waited on.
func deliver(m *rootModel, cmd tea.Cmd) {
	if cmd == nil {
		return
	}

	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, inner := range msg {
			deliver(m, inner)
		}
	case dashboard.Msg:
		m.Update(msg)
	}
}

func TestRootInitLoadsDashboard(t *testing.T) {
	source := &stubSource{}
	var factoryCalls int
	root := newTestRoot(t, source, &factoryCalls)

	deliver(root, root.ctrl.Init())

	require.Len(t, source.reviewCalls, 1)
	require.Equal(t, 1, source.badCalls)
	require.Equal(t, 3, root.ctrl.State().TotalPages())
	require.True(t, root.pagination.Visible())

	selected, ok := root.good.Selected()
	require.True(t, ok)
	require.Equal(t, int64(10), selected.ReviewID)

	record, okBad := root.bad.Selected()
	require.True(t, okBad)
	require.Equal(t, "Duplicate", record.Reason)
}

func TestRootApplyFilters(t *testing.T) {
	source := &stubSource{}
	var factoryCalls int
	root := newTestRoot(t, source, &factoryCalls)
	deliver(root, root.ctrl.Init())

	_, cmd := root.Update(command.ApplyFiltersMsg{Platform: "AGODA", Rating: "9-10", Search: " great "})
	deliver(root, cmd)

	require.Len(t, source.reviewCalls, 2)
	params := source.reviewCalls[1]
	require.Equal(t, 0, params.Page)
	require.Equal(t, "AGODA", *params.Platform)
	require.Equal(t, 9, *params.MinRating)
	require.Equal(t, 10, *params.MaxRating)
	require.Equal(t, "great", *params.Search)
}

func TestRootApplyFiltersInvalidRating(t *testing.T) {
	source := &stubSource{}
	var factoryCalls int
	root := newTestRoot(t, source, &factoryCalls)
	deliver(root, root.ctrl.Init())

	_, cmd := root.Update(command.ApplyFiltersMsg{Platform: "AGODA", Rating: "10-1"})
	require.NotNil(t, cmd)

	status, ok := cmd().(command.StatusMsg)
	require.True(t, ok)
	require.True(t, status.Err)
	require.True(t, root.ctrl.State().Filters().Empty())
	require.Len(t, source.reviewCalls, 1)
}

func TestRootTabSwitchUsesLoadedData(t *testing.T) {
	source := &stubSource{}
	var factoryCalls int
	root := newTestRoot(t, source, &factoryCalls)
	deliver(root, root.ctrl.Init())

	viewState := root.viewState
	viewState.Section = model.SectionBad
	_, cmd := root.Update(viewState)
	deliver(root, cmd)

	require.Equal(t, dashboard.TabBad, root.ctrl.State().ActiveTab())
	require.Equal(t, 1, source.badCalls)
}

func TestRootPageSizeKey(t *testing.T) {
	source := &stubSource{}
	var factoryCalls int
	root := newTestRoot(t, source, &factoryCalls)
	deliver(root, root.ctrl.Init())

	_, cmd := root.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	require.NotNil(t, cmd)

	msg, ok := cmd().(command.PageSizeMsg)
	require.True(t, ok)
	require.Equal(t, 50, msg.Size)

	_, cmd = root.Update(msg)
	deliver(root, cmd)
	require.Equal(t, 50, root.ctrl.State().PageSize())
	require.Equal(t, 50, source.reviewCalls[len(source.reviewCalls)-1].Size)
}

func TestRootConfigReload(t *testing.T) {
	source := &stubSource{}
	var factoryCalls int
	root := newTestRoot(t, source, &factoryCalls)
	deliver(root, root.ctrl.Init())

	_, cmd := root.Update(config.Config{APIBaseURL: "http://127.0.0.1:9000", PageSize: 100})
	deliver(root, cmd)

	require.Equal(t, 1, factoryCalls)
	require.Equal(t, 100, root.ctrl.State().PageSize())
	require.Equal(t, 100, source.reviewCalls[len(source.reviewCalls)-1].Size)
}

func TestRootQuit(t *testing.T) {
	var factoryCalls int
	root := newTestRoot(t, &stubSource{}, &factoryCalls)

	_, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}
