// Package dashboard owns the pagination and filter state of the reviews dashboard and decides which
// requests are issued to the review api as the user navigates.
package dashboard

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	ErrUnknownFilter = errors.New("unknown filter")
	ErrInvalidFilter = errors.New("invalid filter value")
	ErrInvalidConfig = errors.New("invalid page size")
	ErrOutOfRange    = errors.New("page index out of range")
)

const DefaultPageSize = 20

// PageSizes are the page sizes the reviews endpoint is queried with.
var PageSizes = []int{10, 20, 50, 100} //nolint:gochecknoglobals

type Tab int

const (
	TabGood Tab = iota
	TabBad
)

func (t Tab) String() string {
	switch t {
	case TabBad:
		return "bad"
	default:
		return "good"
	}
}

type FilterName string

const (
	FilterPlatform FilterName = "platform"
	FilterRating   FilterName = "rating"
	FilterSearch   FilterName = "search"
)

// RatingRange is an inclusive rating bound pair, eg: 7-8.
type RatingRange struct {
	Min int
	Max int
}

func (r RatingRange) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// ParseRatingRange parses a "min-max" token.
func ParseRatingRange(value string) (RatingRange, error) {
	minText, maxText, found := strings.Cut(strings.TrimSpace(value), "-")
	if !found {
		return RatingRange{}, fmt.Errorf("%w: rating must be in min-max form, got %q", ErrInvalidFilter, value)
	}

	minRating, errMin := strconv.Atoi(strings.TrimSpace(minText))
	if errMin != nil {
		return RatingRange{}, errors.Join(errMin, ErrInvalidFilter)
	}

	maxRating, errMax := strconv.Atoi(strings.TrimSpace(maxText))
	if errMax != nil {
		return RatingRange{}, errors.Join(errMax, ErrInvalidFilter)
	}

	if minRating > maxRating {
		return RatingRange{}, fmt.Errorf("%w: rating min %d exceeds max %d", ErrInvalidFilter, minRating, maxRating)
	}

	return RatingRange{Min: minRating, Max: maxRating}, nil
}

// Filters are the active good review filters. Zero values mean unset.
type Filters struct {
	Platform string
	Rating   *RatingRange
	Search   string
}

func (f Filters) Empty() bool {
	return f.Platform == "" && f.Rating == nil && f.Search == ""
}

// PageMetadata is the pagination envelope of the last successful good reviews response.
type PageMetadata struct {
	CurrentPage int
	TotalPages  int
	TotalItems  int64
	HasNext     bool
	HasPrevious bool
}

// ViewState is the single source of truth for what the dashboard shows and requests. It is only
// mutated from the bubbletea update loop.
type ViewState struct {
	activeTab   Tab
	currentPage int
	pageSize    int
	totalPages  int
	totalItems  int64
	hasNext     bool
	hasPrevious bool
	filters     Filters
}

// NewViewState creates the startup state. An unsupported page size falls back to DefaultPageSize.
func NewViewState(pageSize int) *ViewState {
	if !slices.Contains(PageSizes, pageSize) {
		pageSize = DefaultPageSize
	}

	return &ViewState{activeTab: TabGood, pageSize: pageSize}
}

func (s *ViewState) ActiveTab() Tab {
	return s.activeTab
}

func (s *ViewState) CurrentPage() int {
	return s.currentPage
}

func (s *ViewState) PageSize() int {
	return s.pageSize
}

func (s *ViewState) TotalPages() int {
	return s.totalPages
}

func (s *ViewState) TotalItems() int64 {
	return s.totalItems
}

func (s *ViewState) HasNext() bool {
	return s.hasNext
}

func (s *ViewState) HasPrevious() bool {
	return s.hasPrevious
}

func (s *ViewState) Filters() Filters {
	return s.filters
}

func (s *ViewState) setActiveTab(tab Tab) {
	s.activeTab = tab
}

// SetFilter updates a single filter. An empty value unsets it. No data is reloaded.
func (s *ViewState) SetFilter(name FilterName, value string) error {
	value = strings.TrimSpace(value)

	switch name {
	case FilterPlatform:
		s.filters.Platform = value
	case FilterSearch:
		s.filters.Search = value
	case FilterRating:
		if value == "" {
			s.filters.Rating = nil

			return nil
		}

		ratingRange, err := ParseRatingRange(value)
		if err != nil {
			return err
		}

		s.filters.Rating = &ratingRange
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}

	return nil
}

// SetPageSize changes the page size and returns to the first page.
func (s *ViewState) SetPageSize(size int) error {
	if !slices.Contains(PageSizes, size) {
		return fmt.Errorf("%w: %d is not one of %v", ErrInvalidConfig, size, PageSizes)
	}

	s.pageSize = size
	s.currentPage = 0

	return nil
}

// SetPage sets the page index without clamping it to the known page count.
func (s *ViewState) SetPage(index int) error {
	if index < 0 {
		return fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}

	s.currentPage = index

	return nil
}

func (s *ViewState) ApplyPageMetadata(meta PageMetadata) {
	s.currentPage = max(meta.CurrentPage, 0)
	s.totalPages = max(meta.TotalPages, 0)
	s.totalItems = max(meta.TotalItems, 0)
	s.hasNext = meta.HasNext
	s.hasPrevious = meta.HasPrevious
}

func (s *ViewState) PageMetadata() PageMetadata {
	return PageMetadata{
		CurrentPage: s.currentPage,
		TotalPages:  s.totalPages,
		TotalItems:  s.totalItems,
		HasNext:     s.hasNext,
		HasPrevious: s.hasPrevious,
	}
}
