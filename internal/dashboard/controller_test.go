package dashboard_test

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/review-tui/internal/dashboard"
	"github.com/leighmacdonald/review-tui/internal/metrics"
	"github.com/leighmacdonald/review-tui/internal/reviewapi"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	ReviewsFunc          func(ctx context.Context, params reviewapi.ListReviewsParams) (*reviewapi.ReviewPage, error)
	BadReviewRecordsFunc func(ctx context.Context) ([]reviewapi.BadReviewRecord, error)
	SummaryFunc          func(ctx context.Context) (*reviewapi.Summary, error)
	StatisticsFunc       func(ctx context.Context) (*reviewapi.Statistics, error)

	reviewCalls []reviewapi.ListReviewsParams
	badCalls    int
}

func (f *fakeSource) Reviews(ctx context.Context, params reviewapi.ListReviewsParams) (*reviewapi.ReviewPage, error) {
	f.reviewCalls = append(f.reviewCalls, params)
	if f.ReviewsFunc != nil {
		return f.ReviewsFunc(ctx, params)
	}

	return pageOf(params.Page, 5, 93), nil
}

func (f *fakeSource) BadReviewRecords(ctx context.Context) ([]reviewapi.BadReviewRecord, error) {
	f.badCalls++
	if f.BadReviewRecordsFunc != nil {
		return f.BadReviewRecordsFunc(ctx)
	}

	return []reviewapi.BadReviewRecord{{ID: reviewapi.BadReviewID{ReviewID: 1, ProviderID: 2}, Reason: "Missing rating"}}, nil
}

func (f *fakeSource) Summary(ctx context.Context) (*reviewapi.Summary, error) {
	if f.SummaryFunc != nil {
		return f.SummaryFunc(ctx)
	}

	return &reviewapi.Summary{TotalGoodReviews: 93, TotalBadReviews: 1}, nil
}

func (f *fakeSource) Statistics(ctx context.Context) (*reviewapi.Statistics, error) {
	if f.StatisticsFunc != nil {
		return f.StatisticsFunc(ctx)
	}

	average := 8.4

	return &reviewapi.Statistics{Platforms: []string{"AGODA", "BOOKING"}, AverageRating: &average}, nil
}

func pageOf(current int, totalPages int, totalItems int64) *reviewapi.ReviewPage {
	return &reviewapi.ReviewPage{
		Reviews:     []reviewapi.Review{{ReviewID: int64(current*100 + 1)}},
		CurrentPage: current,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasNext:     current < totalPages-1,
		HasPrevious: current > 0,
	}
}

type recordingRenderer struct {
	calls      []string
	rows       []dashboard.Dataset
	pagination *dashboard.Pagination
	empty      map[dashboard.Tab]string
	errors     map[dashboard.Tab]string
	overview   *dashboard.Overview
	platforms  []string
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{empty: map[dashboard.Tab]string{}, errors: map[dashboard.Tab]string{}}
}

func (r *recordingRenderer) RenderLoading(tab dashboard.Tab) {
	r.calls = append(r.calls, "loading:"+tab.String())
}

func (r *recordingRenderer) RenderRows(dataset dashboard.Dataset) {
	r.calls = append(r.calls, "rows:"+dataset.Tab.String())
	r.rows = append(r.rows, dataset)
}

func (r *recordingRenderer) RenderPagination(pagination dashboard.Pagination) {
	r.calls = append(r.calls, "pagination")
	r.pagination = &pagination
}

func (r *recordingRenderer) HidePagination() {
	r.calls = append(r.calls, "hide_pagination")
	r.pagination = nil
}

func (r *recordingRenderer) RenderEmptyState(tab dashboard.Tab, message string) {
	r.calls = append(r.calls, "empty:"+tab.String())
	r.empty[tab] = message
}

func (r *recordingRenderer) RenderError(tab dashboard.Tab, message string) {
	r.calls = append(r.calls, "error:"+tab.String())
	r.errors[tab] = message
}

func (r *recordingRenderer) RenderOverview(overview dashboard.Overview) {
	r.calls = append(r.calls, "overview")
	r.overview = &overview
}

func (r *recordingRenderer) RenderPlatforms(platforms []string) {
	r.calls = append(r.calls, "platforms")
	r.platforms = platforms
}

// drain runs cmd and any nested batches, returning the resulting messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, inner := range batch {
			msgs = append(msgs, drain(inner)...)
		}

		return msgs
	}

	if msg == nil {
		return nil
	}

	return []tea.Msg{msg}
}

func run(ctrl *dashboard.Controller, cmd tea.Cmd) {
	for _, msg := range drain(cmd) {
		ctrl.Update(msg)
	}
}

func newController(t *testing.T) (*dashboard.Controller, *fakeSource, *recordingRenderer) {
	t.Helper()

	source := &fakeSource{}
	renderer := newRecordingRenderer()
	ctrl := dashboard.NewController(context.Background(), source, renderer, dashboard.NewViewState(20),
		dashboard.WithMetrics(metrics.New()))

	return ctrl, source, renderer
}

func TestInit(t *testing.T) {
	ctrl, source, renderer := newController(t)
	run(ctrl, ctrl.Init())

	require.Len(t, source.reviewCalls, 1)
	require.Equal(t, 1, source.badCalls)
	require.Contains(t, renderer.calls, "loading:good")
	require.Contains(t, renderer.calls, "loading:bad")
	require.Len(t, renderer.rows, 2)
	require.NotNil(t, renderer.pagination)
	require.Equal(t, 5, renderer.pagination.TotalPages)
	require.Equal(t, int64(93), ctrl.State().TotalItems())
	require.NotNil(t, renderer.overview)
	require.Equal(t, []string{"AGODA", "BOOKING"}, renderer.platforms)
}

func TestTabSwitchNoRequest(t *testing.T) {
	ctrl, source, _ := newController(t)
	run(ctrl, ctrl.Init())

	require.Nil(t, ctrl.OnTabSwitched(dashboard.TabBad))
	require.Equal(t, dashboard.TabBad, ctrl.State().ActiveTab())
	require.Nil(t, ctrl.OnTabSwitched(dashboard.TabGood))
	require.Len(t, source.reviewCalls, 1)
	require.Equal(t, 1, source.badCalls)
}

func TestTabSwitchAfterRefresh(t *testing.T) {
	ctrl, source, _ := newController(t)
	run(ctrl, ctrl.Init())

	run(ctrl, ctrl.OnRefresh())
	require.Len(t, source.reviewCalls, 2)
	require.Equal(t, 1, source.badCalls)

	run(ctrl, ctrl.OnTabSwitched(dashboard.TabBad))
	require.Equal(t, 2, source.badCalls)

	require.Nil(t, ctrl.OnTabSwitched(dashboard.TabGood))
	require.Nil(t, ctrl.OnTabSwitched(dashboard.TabBad))
}

func TestFilterChanged(t *testing.T) {
	ctrl, source, _ := newController(t)
	run(ctrl, ctrl.Init())
	run(ctrl, ctrl.OnPageRequested(dashboard.AbsolutePage(3)))
	require.Equal(t, 3, ctrl.State().CurrentPage())

	require.NoError(t, ctrl.State().SetFilter(dashboard.FilterPlatform, "AGODA"))
	cmd := ctrl.OnFilterChanged()
	require.Equal(t, 0, ctrl.State().CurrentPage())
	run(ctrl, cmd)

	last := source.reviewCalls[len(source.reviewCalls)-1]
	require.Equal(t, 0, last.Page)
	require.Equal(t, "AGODA", *last.Platform)
	require.Nil(t, last.MinRating)
	require.Nil(t, last.Search)
}

func TestFilterChangedOnBadTab(t *testing.T) {
	ctrl, source, _ := newController(t)
	run(ctrl, ctrl.Init())
	require.Nil(t, ctrl.OnTabSwitched(dashboard.TabBad))

	require.NoError(t, ctrl.State().SetFilter(dashboard.FilterSearch, "noise"))
	run(ctrl, ctrl.OnFilterChanged())
	require.Equal(t, 2, source.badCalls)
	require.Len(t, source.reviewCalls, 1)

	run(ctrl, ctrl.OnTabSwitched(dashboard.TabGood))
	require.Len(t, source.reviewCalls, 2)
	require.Equal(t, "noise", *source.reviewCalls[1].Search)
}

func TestPageRequestedBounds(t *testing.T) {
	type tc struct {
		name    string
		start   int
		request dashboard.PageRequest
		want    int
		loads   bool
	}

	cases := []tc{
		{name: "next", start: 0, request: dashboard.RelativePage(1), want: 1, loads: true},
		{name: "previous at start", start: 0, request: dashboard.RelativePage(-1), want: 0},
		{name: "next at end", start: 4, request: dashboard.RelativePage(1), want: 4},
		{name: "far past end", start: 2, request: dashboard.RelativePage(100), want: 4, loads: true},
		{name: "absolute", start: 0, request: dashboard.AbsolutePage(2), want: 2, loads: true},
		{name: "absolute negative", start: 3, request: dashboard.AbsolutePage(-5), want: 0, loads: true},
		{name: "last", start: 1, request: dashboard.LastPage(), want: 4, loads: true},
		{name: "same page", start: 2, request: dashboard.AbsolutePage(2), want: 2},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			ctrl, source, _ := newController(t)
			source.ReviewsFunc = func(_ context.Context, params reviewapi.ListReviewsParams) (*reviewapi.ReviewPage, error) {
				return pageOf(params.Page, 5, 93), nil
			}
			run(ctrl, ctrl.Init())
			if testCase.start != 0 {
				run(ctrl, ctrl.OnPageRequested(dashboard.AbsolutePage(testCase.start)))
			}
			calls := len(source.reviewCalls)

			cmd := ctrl.OnPageRequested(testCase.request)
			require.Equal(t, testCase.loads, cmd != nil)
			run(ctrl, cmd)

			require.Equal(t, testCase.want, ctrl.State().CurrentPage())
			require.GreaterOrEqual(t, ctrl.State().CurrentPage(), 0)
			require.Less(t, ctrl.State().CurrentPage(), ctrl.State().TotalPages())
			if !testCase.loads {
				require.Len(t, source.reviewCalls, calls)
			}
		})
	}
}

func TestPageRequestedNoPages(t *testing.T) {
	ctrl, source, renderer := newController(t)
	source.ReviewsFunc = func(_ context.Context, _ reviewapi.ListReviewsParams) (*reviewapi.ReviewPage, error) {
		return &reviewapi.ReviewPage{Reviews: []reviewapi.Review{}}, nil
	}
	run(ctrl, ctrl.Init())

	require.Equal(t, "No good reviews found", renderer.empty[dashboard.TabGood])
	require.Nil(t, renderer.pagination)
	require.Nil(t, ctrl.OnPageRequested(dashboard.RelativePage(1)))
	require.Nil(t, ctrl.OnPageRequested(dashboard.LastPage()))
}

func TestPageRequestedBadTab(t *testing.T) {
	ctrl, _, _ := newController(t)
	run(ctrl, ctrl.Init())
	require.Nil(t, ctrl.OnTabSwitched(dashboard.TabBad))
	require.Nil(t, ctrl.OnPageRequested(dashboard.RelativePage(1)))
	require.Equal(t, 0, ctrl.State().CurrentPage())
}

func TestPageSizeChanged(t *testing.T) {
	ctrl, source, _ := newController(t)
	run(ctrl, ctrl.Init())
	run(ctrl, ctrl.OnPageRequested(dashboard.AbsolutePage(2)))

	cmd, err := ctrl.OnPageSizeChanged(50)
	require.NoError(t, err)
	require.Equal(t, 0, ctrl.State().CurrentPage())
	run(ctrl, cmd)

	last := source.reviewCalls[len(source.reviewCalls)-1]
	require.Equal(t, 50, last.Size)
	require.Equal(t, 0, last.Page)

	calls := len(source.reviewCalls)
	cmd, err = ctrl.OnPageSizeChanged(15)
	require.ErrorIs(t, err, dashboard.ErrInvalidConfig)
	require.Nil(t, cmd)
	require.Equal(t, 50, ctrl.State().PageSize())
	require.Len(t, source.reviewCalls, calls)
}

func TestLoadFailedKeepsState(t *testing.T) {
	ctrl, source, renderer := newController(t)
	run(ctrl, ctrl.Init())
	before := ctrl.State().PageMetadata()

	source.ReviewsFunc = func(_ context.Context, _ reviewapi.ListReviewsParams) (*reviewapi.ReviewPage, error) {
		return nil, fmt.Errorf("%w: HTTP error! status: 503", reviewapi.ErrNetworkFailure)
	}
	run(ctrl, ctrl.OnPageRequested(dashboard.RelativePage(1)))

	require.Equal(t, "Error loading good reviews: HTTP error! status: 503", renderer.errors[dashboard.TabGood])
	require.Nil(t, renderer.pagination)
	require.Equal(t, before.TotalItems, ctrl.State().TotalItems())
	require.Equal(t, before.TotalPages, ctrl.State().TotalPages())
}

func TestBadLoadFailed(t *testing.T) {
	ctrl, source, renderer := newController(t)
	source.BadReviewRecordsFunc = func(_ context.Context) ([]reviewapi.BadReviewRecord, error) {
		return nil, fmt.Errorf("%w: HTTP error! status: 404", reviewapi.ErrNetworkFailure)
	}
	run(ctrl, ctrl.Init())

	require.Equal(t, "Error loading bad reviews: HTTP error! status: 404", renderer.errors[dashboard.TabBad])
	require.NotNil(t, renderer.pagination)
}

func TestBadEmpty(t *testing.T) {
	ctrl, source, renderer := newController(t)
	source.BadReviewRecordsFunc = func(_ context.Context) ([]reviewapi.BadReviewRecord, error) {
		return []reviewapi.BadReviewRecord{}, nil
	}
	run(ctrl, ctrl.Init())

	require.Equal(t, "No bad reviews found", renderer.empty[dashboard.TabBad])
}

func TestOverviewPartialFailure(t *testing.T) {
	ctrl, source, renderer := newController(t)
	source.StatisticsFunc = func(_ context.Context) (*reviewapi.Statistics, error) {
		return nil, reviewapi.ErrNetworkFailure
	}
	run(ctrl, ctrl.Init())

	require.NotNil(t, renderer.overview)
	require.NotNil(t, renderer.overview.Summary)
	require.ErrorIs(t, renderer.overview.StatisticsErr, reviewapi.ErrNetworkFailure)
	require.NotContains(t, renderer.calls, "platforms")
}

func TestStaleResponseDiscarded(t *testing.T) {
	ctrl, source, renderer := newController(t)
	run(ctrl, ctrl.Init())

	source.ReviewsFunc = func(_ context.Context, params reviewapi.ListReviewsParams) (*reviewapi.ReviewPage, error) {
		return pageOf(params.Page, 5, 93), nil
	}

	older := drain(ctrl.OnPageRequested(dashboard.AbsolutePage(1)))
	newer := drain(ctrl.OnPageRequested(dashboard.AbsolutePage(3)))
	require.Len(t, older, 1)
	require.Len(t, newer, 1)

	ctrl.Update(newer[0])
	ctrl.Update(older[0])

	require.Equal(t, 3, ctrl.State().CurrentPage())
	last := renderer.rows[len(renderer.rows)-1]
	require.Equal(t, int64(301), last.Reviews[0].ReviewID)
}

func TestOutOfRangePageReset(t *testing.T) {
	ctrl, source, _ := newController(t)
	run(ctrl, ctrl.Init())
	require.NoError(t, ctrl.State().SetPage(12))

	run(ctrl, ctrl.OnRefresh())
	last := source.reviewCalls[len(source.reviewCalls)-1]
	require.Equal(t, 0, last.Page)
}

func TestUpdateIgnoresForeignMessages(t *testing.T) {
	ctrl, _, renderer := newController(t)
	ctrl.Update(tea.KeyMsg{})
	require.Empty(t, renderer.calls)
}
