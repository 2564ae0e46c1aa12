package dashboard

import "github.com/leighmacdonald/review-tui/internal/reviewapi"

// Msg is implemented by every result message produced by the controller's commands. They must be
// routed back into Controller.Update.
type Msg interface {
	dashboardMsg()
}

type panel int

const (
	panelGood panel = iota
	panelBad
	panelOverview
)

func (p panel) String() string {
	switch p {
	case panelGood:
		return "good"
	case panelBad:
		return "bad"
	default:
		return "overview"
	}
}

func panelOf(tab Tab) panel {
	if tab == TabBad {
		return panelBad
	}

	return panelGood
}

type reviewsLoadedMsg struct {
	seq  uint64
	page *reviewapi.ReviewPage
	err  error
}

type badReviewsLoadedMsg struct {
	seq     uint64
	records []reviewapi.BadReviewRecord
	err     error
}

type overviewLoadedMsg struct {
	seq      uint64
	overview Overview
}

func (reviewsLoadedMsg) dashboardMsg() {}
func (badReviewsLoadedMsg) dashboardMsg() {}
func (overviewLoadedMsg) dashboardMsg() {}
