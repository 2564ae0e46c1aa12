package ui

import (
	"github.com/leighmacdonald/review-tui/internal/dashboard"
	"github.com/leighmacdonald/review-tui/internal/ui/component"
)

// panelRenderer draws controller results directly into the panels owned by the root model. It is
// only ever called from within the root model's Update.
type panelRenderer struct {
	summary    *component.SummaryModel
	filters    *component.FiltersModel
	good       *component.TableGoodModel
	bad        *component.TableBadModel
	pagination *component.PaginationModel
}

func (r panelRenderer) RenderLoading(tab dashboard.Tab) {
	switch tab {
	case dashboard.TabGood:
		r.good.SetLoading()
	case dashboard.TabBad:
		r.bad.SetLoading()
	}
}

func (r panelRenderer) RenderRows(dataset dashboard.Dataset) {
	switch dataset.Tab {
	case dashboard.TabGood:
		r.good.SetRows(dataset.Reviews)
	case dashboard.TabBad:
		r.bad.SetRows(dataset.BadReviews)
	}
}

func (r panelRenderer) RenderPagination(pagination dashboard.Pagination) {
	r.pagination.Show(pagination)
	r.filters.SetPageSize(pagination.PageSize)
}

func (r panelRenderer) HidePagination() {
	r.pagination.Hide()
}

func (r panelRenderer) RenderEmptyState(tab dashboard.Tab, message string) {
	switch tab {
	case dashboard.TabGood:
		r.good.SetEmpty(message)
	case dashboard.TabBad:
		r.bad.SetEmpty(message)
	}
}

func (r panelRenderer) RenderError(tab dashboard.Tab, message string) {
	switch tab {
	case dashboard.TabGood:
		r.good.SetError(message)
	case dashboard.TabBad:
		r.bad.SetError(message)
	}
}

func (r panelRenderer) RenderOverview(overview dashboard.Overview) {
	r.summary.SetOverview(overview)
}

func (r panelRenderer) RenderPlatforms(platforms []string) {
	r.filters.SetPlatforms(platforms)
}
