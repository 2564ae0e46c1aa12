package dashboard

import "golang.org/x/exp/constraints"

// windowRadius is how many page buttons are shown either side of the current page.
const windowRadius = 2

// PageWindow is the inclusive, zero-indexed range of page buttons to show.
type PageWindow struct {
	Start int
	End   int
}

// Window computes the buttons shown around current. It is empty (End < Start) when there are no pages.
func Window(current int, totalPages int) PageWindow {
	return PageWindow{
		Start: max(0, current-windowRadius),
		End:   min(totalPages-1, current+windowRadius),
	}
}

func (w PageWindow) Empty() bool {
	return w.End < w.Start
}

func (w PageWindow) Pages() []int {
	if w.Empty() {
		return nil
	}

	pages := make([]int, 0, w.End-w.Start+1)
	for page := w.Start; page <= w.End; page++ {
		pages = append(pages, page)
	}

	return pages
}

// Pagination is everything needed to draw the pagination bar.
type Pagination struct {
	PageMetadata
	PageSize int
	Window   PageWindow
}

// PageRequest is a navigation request, either relative to the current page or an absolute index.
type PageRequest struct {
	Delta    int
	Index    int
	Absolute bool
}

func RelativePage(delta int) PageRequest {
	return PageRequest{Delta: delta}
}

func AbsolutePage(index int) PageRequest {
	return PageRequest{Index: index, Absolute: true}
}

// LastPage requests whatever the final page currently is.
func LastPage() PageRequest {
	return PageRequest{Index: int(^uint(0) >> 1), Absolute: true}
}

func (r PageRequest) target(current int) int {
	if r.Absolute {
		return r.Index
	}

	return current + r.Delta
}

func clamp[T constraints.Ordered](value T, lower T, upper T) T {
	return min(max(value, lower), upper)
}
