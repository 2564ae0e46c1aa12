package dashboard

import "github.com/leighmacdonald/review-tui/internal/reviewapi"

// RequestParameters derives the good reviews query from the current state. Unset filters are nil so
// they are never sent as empty values.
func (s *ViewState) RequestParameters() reviewapi.ListReviewsParams {
	params := reviewapi.ListReviewsParams{
		Page: s.currentPage,
		Size: s.pageSize,
	}

	if s.filters.Platform != "" {
		platform := s.filters.Platform
		params.Platform = &platform
	}

	if s.filters.Rating != nil {
		minRating, maxRating := s.filters.Rating.Min, s.filters.Rating.Max
		params.MinRating = &minRating
		params.MaxRating = &maxRating
	}

	if s.filters.Search != "" {
		search := s.filters.Search
		params.Search = &search
	}

	return params
}
