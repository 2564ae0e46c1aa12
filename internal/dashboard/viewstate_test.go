package dashboard_test

import (
	"testing"

	"github.com/leighmacdonald/review-tui/internal/dashboard"
	"github.com/stretchr/testify/require"
)

func TestNewViewState(t *testing.T) {
	state := dashboard.NewViewState(50)
	require.Equal(t, dashboard.TabGood, state.ActiveTab())
	require.Equal(t, 0, state.CurrentPage())
	require.Equal(t, 50, state.PageSize())
	require.True(t, state.Filters().Empty())

	require.Equal(t, dashboard.DefaultPageSize, dashboard.NewViewState(33).PageSize())
}

func TestSetFilter(t *testing.T) {
	type tc struct {
		name    dashboard.FilterName
		value   string
		wantErr error
		check   func(t *testing.T, filters dashboard.Filters)
	}

	cases := []tc{
		{name: dashboard.FilterPlatform, value: " AGODA ", check: func(t *testing.T, f dashboard.Filters) {
			t.Helper()
			require.Equal(t, "AGODA", f.Platform)
		}},
		{name: dashboard.FilterSearch, value: "pool", check: func(t *testing.T, f dashboard.Filters) {
			t.Helper()
			require.Equal(t, "pool", f.Search)
		}},
		{name: dashboard.FilterRating, value: "7-8", check: func(t *testing.T, f dashboard.Filters) {
			t.Helper()
			require.Equal(t, &dashboard.RatingRange{Min: 7, Max: 8}, f.Rating)
		}},
		{name: dashboard.FilterRating, value: "", check: func(t *testing.T, f dashboard.Filters) {
			t.Helper()
			require.Nil(t, f.Rating)
		}},
		{name: dashboard.FilterRating, value: "seven", wantErr: dashboard.ErrInvalidFilter},
		{name: dashboard.FilterRating, value: "9-3", wantErr: dashboard.ErrInvalidFilter},
		{name: dashboard.FilterRating, value: "a-3", wantErr: dashboard.ErrInvalidFilter},
		{name: "language", value: "en", wantErr: dashboard.ErrUnknownFilter},
	}

	for _, testCase := range cases {
		state := dashboard.NewViewState(20)
		require.NoError(t, state.SetFilter(dashboard.FilterRating, "0-4"))
		err := state.SetFilter(testCase.name, testCase.value)
		if testCase.wantErr != nil {
			require.ErrorIs(t, err, testCase.wantErr)
			require.Equal(t, &dashboard.RatingRange{Min: 0, Max: 4}, state.Filters().Rating)

			continue
		}

		require.NoError(t, err)
		testCase.check(t, state.Filters())
	}
}

func TestSetPageSizeResetsPage(t *testing.T) {
	for _, size := range dashboard.PageSizes {
		state := dashboard.NewViewState(20)
		require.NoError(t, state.SetPage(3))
		require.NoError(t, state.SetPageSize(size))
		require.Equal(t, 0, state.CurrentPage())
		require.Equal(t, size, state.PageSize())
	}
}

func TestSetPageSizeInvalid(t *testing.T) {
	state := dashboard.NewViewState(20)
	require.NoError(t, state.SetPage(2))
	require.ErrorIs(t, state.SetPageSize(25), dashboard.ErrInvalidConfig)
	require.Equal(t, 20, state.PageSize())
	require.Equal(t, 2, state.CurrentPage())
}

func TestSetPage(t *testing.T) {
	state := dashboard.NewViewState(20)
	require.ErrorIs(t, state.SetPage(-1), dashboard.ErrOutOfRange)
	require.NoError(t, state.SetPage(99))
	require.Equal(t, 99, state.CurrentPage())
}

func TestApplyPageMetadata(t *testing.T) {
	state := dashboard.NewViewState(20)
	meta := dashboard.PageMetadata{CurrentPage: 2, TotalPages: 5, TotalItems: 93, HasNext: true, HasPrevious: true}
	state.ApplyPageMetadata(meta)
	require.Equal(t, meta, state.PageMetadata())
}

func TestRequestParameters(t *testing.T) {
	state := dashboard.NewViewState(10)
	params := state.RequestParameters()
	require.Equal(t, 0, params.Page)
	require.Equal(t, 10, params.Size)
	require.Nil(t, params.Platform)
	require.Nil(t, params.MinRating)
	require.Nil(t, params.MaxRating)
	require.Nil(t, params.Search)

	require.NoError(t, state.SetFilter(dashboard.FilterPlatform, "BOOKING"))
	require.NoError(t, state.SetFilter(dashboard.FilterRating, "5-6"))
	require.NoError(t, state.SetFilter(dashboard.FilterSearch, "   "))
	params = state.RequestParameters()
	require.Equal(t, "BOOKING", *params.Platform)
	require.Equal(t, 5, *params.MinRating)
	require.Equal(t, 6, *params.MaxRating)
	require.Nil(t, params.Search)
}

func TestWindow(t *testing.T) {
	type tc struct {
		current int
		total   int
		want    []int
	}

	cases := []tc{
		{current: 2, total: 5, want: []int{0, 1, 2, 3, 4}},
		{current: 0, total: 5, want: []int{0, 1, 2}},
		{current: 9, total: 10, want: []int{7, 8, 9}},
		{current: 0, total: 1, want: []int{0}},
		{current: 0, total: 0, want: nil},
	}

	for _, testCase := range cases {
		require.Equal(t, testCase.want, dashboard.Window(testCase.current, testCase.total).Pages())
	}

	require.Equal(t, dashboard.PageWindow{Start: 0, End: 4}, dashboard.Window(2, 5))
	require.True(t, dashboard.Window(0, 0).Empty())
}
