package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/review-tui/internal/metrics"
	"github.com/leighmacdonald/review-tui/internal/reviewapi"
	"golang.org/x/sync/errgroup"
)

// DataSource is the review api. *reviewapi.Client satisfies it.
type DataSource interface {
	Reviews(ctx context.Context, params reviewapi.ListReviewsParams) (*reviewapi.ReviewPage, error)
	BadReviewRecords(ctx context.Context) ([]reviewapi.BadReviewRecord, error)
	Summary(ctx context.Context) (*reviewapi.Summary, error)
	Statistics(ctx context.Context) (*reviewapi.Statistics, error)
}

// Renderer draws the results the controller decides to show. Implementations must not call back into
// the controller.
type Renderer interface {
	RenderLoading(tab Tab)
	RenderRows(dataset Dataset)
	RenderPagination(pagination Pagination)
	HidePagination()
	RenderEmptyState(tab Tab, message string)
	RenderError(tab Tab, message string)
	RenderOverview(overview Overview)
	RenderPlatforms(platforms []string)
}

// Dataset is a non-empty set of rows for a single tab. Only the slice matching Tab is populated.
type Dataset struct {
	Tab        Tab
	Reviews    []reviewapi.Review
	BadReviews []reviewapi.BadReviewRecord
}

// Overview is the summary bar content. Each half is loaded independently so either may have failed.
type Overview struct {
	Summary       *reviewapi.Summary
	Statistics    *reviewapi.Statistics
	SummaryErr    error
	StatisticsErr error
}

// LoadResult is a successful response for a tab.
type LoadResult struct {
	Page       *reviewapi.ReviewPage
	BadReviews []reviewapi.BadReviewRecord
}

type Option func(*Controller)

func WithMetrics(collector *metrics.Collector) Option {
	return func(c *Controller) {
		c.metrics = collector
	}
}

// Controller keeps ViewState consistent with what is requested and displayed. All methods must be
// called from the bubbletea update loop, the returned commands are the only part run concurrently.
type Controller struct {
	ctx      context.Context //nolint:containedctx
	source   DataSource
	renderer Renderer
	state    *ViewState
	metrics  *metrics.Collector
	// seq holds the latest issued request number per panel.
	seq [3]uint64
	// requested tracks which tabs have had a load issued since the last refresh or filter change.
	requested [2]bool
}

func NewController(ctx context.Context, source DataSource, renderer Renderer, state *ViewState, opts ...Option) *Controller {
	controller := &Controller{
		ctx:      ctx,
		source:   source,
		renderer: renderer,
		state:    state,
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

func (c *Controller) State() *ViewState {
	return c.state
}

// SetSource swaps the api used for subsequent requests. In-flight responses from the previous source
// are still accepted unless a newer request supersedes them.
func (c *Controller) SetSource(source DataSource) {
	c.source = source
}

// Init issues the startup loads, the overview and both tabs.
func (c *Controller) Init() tea.Cmd {
	return tea.Batch(c.loadOverview(), c.load(TabGood), c.load(TabBad))
}

// Update routes the controllers own result messages. Any other message is ignored.
func (c *Controller) Update(msg tea.Msg) {
	switch msg := msg.(type) {
	case reviewsLoadedMsg:
		if c.stale(panelGood, msg.seq) {
			return
		}

		if msg.err != nil {
			c.OnLoadFailed(TabGood, msg.err)

			return
		}

		c.OnLoadSucceeded(TabGood, LoadResult{Page: msg.page})
	case badReviewsLoadedMsg:
		if c.stale(panelBad, msg.seq) {
			return
		}

		if msg.err != nil {
			c.OnLoadFailed(TabBad, msg.err)

			return
		}

		c.OnLoadSucceeded(TabBad, LoadResult{BadReviews: msg.records})
	case overviewLoadedMsg:
		if c.stale(panelOverview, msg.seq) {
			return
		}

		c.onOverviewLoaded(msg.overview)
	}
}

// OnFilterChanged returns to the first page and reloads the active tab. The good reviews tab is
// marked stale since its query changed.
func (c *Controller) OnFilterChanged() tea.Cmd {
	c.state.currentPage = 0
	c.requested[TabGood] = false

	return c.load(c.state.activeTab)
}

// OnTabSwitched activates tab, loading it only if it has not been requested since the last refresh
// or filter change.
func (c *Controller) OnTabSwitched(tab Tab) tea.Cmd {
	c.state.setActiveTab(tab)
	if c.requested[tab] {
		return nil
	}

	return c.load(tab)
}

// OnPageRequested navigates the good reviews table. Requests past either boundary, or with no
// pages at all, do nothing.
func (c *Controller) OnPageRequested(req PageRequest) tea.Cmd {
	if c.state.activeTab != TabGood || c.state.totalPages <= 0 {
		return nil
	}

	target := clamp(req.target(c.state.currentPage), 0, c.state.totalPages-1)
	if target == c.state.currentPage {
		return nil
	}

	if err := c.state.SetPage(target); err != nil {
		return nil
	}

	return c.load(TabGood)
}

// OnPageSizeChanged applies a new page size and reloads the good reviews from the first page.
func (c *Controller) OnPageSizeChanged(size int) (tea.Cmd, error) {
	if err := c.state.SetPageSize(size); err != nil {
		return nil, err
	}

	return c.load(TabGood), nil
}

// OnRefresh reloads the active tab and the overview. The inactive tab is reloaded lazily when it is
// next shown.
func (c *Controller) OnRefresh() tea.Cmd {
	c.requested = [2]bool{}

	return tea.Batch(c.loadOverview(), c.load(c.state.activeTab))
}

func (c *Controller) BuildRequestParameters() reviewapi.ListReviewsParams {
	return c.state.RequestParameters()
}

func (c *Controller) OnLoadSucceeded(tab Tab, result LoadResult) {
	switch tab {
	case TabGood:
		if result.Page == nil {
			c.OnLoadFailed(tab, fmt.Errorf("%w: empty response", reviewapi.ErrNetworkFailure))

			return
		}

		c.state.ApplyPageMetadata(PageMetadata{
			CurrentPage: result.Page.CurrentPage,
			TotalPages:  result.Page.TotalPages,
			TotalItems:  result.Page.TotalItems,
			HasNext:     result.Page.HasNext,
			HasPrevious: result.Page.HasPrevious,
		})

		if len(result.Page.Reviews) == 0 {
			c.renderer.HidePagination()
			c.renderer.RenderEmptyState(tab, emptyMessage(tab))

			return
		}

		c.renderer.RenderRows(Dataset{Tab: tab, Reviews: result.Page.Reviews})
		c.renderer.RenderPagination(Pagination{
			PageMetadata: c.state.PageMetadata(),
			PageSize:     c.state.pageSize,
			Window:       Window(c.state.currentPage, c.state.totalPages),
		})
	case TabBad:
		if len(result.BadReviews) == 0 {
			c.renderer.RenderEmptyState(tab, emptyMessage(tab))

			return
		}

		c.renderer.RenderRows(Dataset{Tab: tab, BadReviews: result.BadReviews})
	}
}

// OnLoadFailed reports err on the tabs panel. State is left as it was.
func (c *Controller) OnLoadFailed(tab Tab, err error) {
	slog.Error("Failed to load reviews", slog.String("tab", tab.String()), slog.String("error", err.Error()))

	c.renderer.RenderError(tab, fmt.Sprintf("Error loading %s reviews: %s", tab, reviewapi.Reason(err)))
	if tab == TabGood {
		c.renderer.HidePagination()
	}
}

func (c *Controller) onOverviewLoaded(overview Overview) {
	if overview.SummaryErr != nil {
		slog.Error("Error loading summary", slog.String("error", overview.SummaryErr.Error()))
	}

	if overview.StatisticsErr != nil {
		slog.Error("Error loading statistics", slog.String("error", overview.StatisticsErr.Error()))
	}

	c.renderer.RenderOverview(overview)
	if overview.Statistics != nil {
		c.renderer.RenderPlatforms(overview.Statistics.Platforms)
	}
}

func (c *Controller) stale(p panel, seq uint64) bool {
	if seq == c.seq[p] {
		return false
	}

	slog.Debug("Discarding stale response", slog.String("panel", p.String()),
		slog.Uint64("seq", seq), slog.Uint64("latest", c.seq[p]))
	c.metrics.ObserveStale(p.String())

	return true
}

func (c *Controller) load(tab Tab) tea.Cmd {
	c.requested[tab] = true
	p := panelOf(tab)
	c.seq[p]++
	seq := c.seq[p]
	ctx := c.ctx
	source := c.source

	c.renderer.RenderLoading(tab)

	if tab == TabBad {
		return func() tea.Msg {
			records, err := source.BadReviewRecords(ctx)

			return badReviewsLoadedMsg{seq: seq, records: records, err: err}
		}
	}

	if c.state.totalPages > 0 && c.state.currentPage >= c.state.totalPages {
		c.state.currentPage = 0
	}

	params := c.state.RequestParameters()

	return func() tea.Msg {
		page, err := source.Reviews(ctx, params)

		return reviewsLoadedMsg{seq: seq, page: page, err: err}
	}
}

func (c *Controller) loadOverview() tea.Cmd {
	c.seq[panelOverview]++
	seq := c.seq[panelOverview]
	ctx := c.ctx
	source := c.source

	return func() tea.Msg {
		var (
			overview Overview
			group    errgroup.Group
		)

		group.Go(func() error {
			overview.Summary, overview.SummaryErr = source.Summary(ctx)

			return nil
		})

		group.Go(func() error {
			overview.Statistics, overview.StatisticsErr = source.Statistics(ctx)

			return nil
		})

		_ = group.Wait()

		return overviewLoadedMsg{seq: seq, overview: overview}
	}
}

func emptyMessage(tab Tab) string {
	return fmt.Sprintf("No %s reviews found", tab)
}
