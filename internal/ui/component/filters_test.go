package component_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/review-tui/internal/ui/command"
	"github.com/leighmacdonald/review-tui/internal/ui/component"
	"github.com/leighmacdonald/review-tui/internal/ui/model"
	"github.com/stretchr/testify/require"
)

func activeFilters(t *testing.T) *component.FiltersModel {
	t.Helper()

	filters := component.NewFiltersModel(20)
	filters.SetPlatforms([]string{"AGODA", "BOOKING"})
	filters, _ = filters.Update(model.ViewState{Page: model.PageMain, KeyZone: model.KZfilters, Width: 120})

	return filters
}

func press(filters *component.FiltersModel, keyType tea.KeyType) (*component.FiltersModel, tea.Cmd) {
	return filters.Update(tea.KeyMsg{Type: keyType})
}

func TestFiltersApply(t *testing.T) {
	filters := activeFilters(t)

	filters, _ = press(filters, tea.KeyRight)
	filters, _ = press(filters, tea.KeyDown)
	filters, _ = press(filters, tea.KeyRight)
	filters, _ = press(filters, tea.KeyRight)
	_, cmd := press(filters, tea.KeyEnter)
	require.NotNil(t, cmd)

	msg, ok := cmd().(command.ApplyFiltersMsg)
	require.True(t, ok)
	require.Equal(t, command.ApplyFiltersMsg{Platform: "AGODA", Rating: "7-8"}, msg)
}

func TestFiltersSearchTyping(t *testing.T) {
	filters := activeFilters(t)
	_ = filters.FocusSearch()
	require.True(t, filters.Editing())

	for _, r := range "jk pool" {
		filters, _ = filters.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	_, cmd := press(filters, tea.KeyEnter)
	msg, ok := cmd().(command.ApplyFiltersMsg)
	require.True(t, ok)
	require.Equal(t, "jk pool", msg.Search)
	require.Empty(t, msg.Platform)
}

func TestFiltersPageSizeImmediate(t *testing.T) {
	filters := activeFilters(t)
	for range 3 {
		filters, _ = press(filters, tea.KeyDown)
	}

	_, cmd := press(filters, tea.KeyRight)
	require.NotNil(t, cmd)
	require.Equal(t, command.PageSizeMsg{Size: 50}, cmd())
	require.Equal(t, 50, filters.PageSize())
}

func TestFiltersInactive(t *testing.T) {
	filters := component.NewFiltersModel(20)
	filters, _ = filters.Update(model.ViewState{Page: model.PageMain, KeyZone: model.KZgoodTable})
	_, cmd := press(filters, tea.KeyEnter)
	require.Nil(t, cmd)
	require.False(t, filters.Editing())
}

func TestFiltersPlatformsKeepSelection(t *testing.T) {
	filters := activeFilters(t)
	filters, _ = press(filters, tea.KeyRight)
	filters, _ = press(filters, tea.KeyRight)
	filters.SetPlatforms([]string{"EXPEDIA", "BOOKING"})

	_, cmd := press(filters, tea.KeyEnter)
	msg, ok := cmd().(command.ApplyFiltersMsg)
	require.True(t, ok)
	require.Equal(t, "BOOKING", msg.Platform)
}
