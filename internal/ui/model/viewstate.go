package model

import "github.com/leighmacdonald/review-tui/internal/dashboard"

// Page is a complete standalone screen that occupies everything except the footer.
type Page int

const (
	PageMain Page = iota
	PageConfig
	PageHelp
)

// Section is the active tab within the main page.
type Section int

const (
	SectionGood Section = iota
	SectionBad
)

// Tab maps the section to the dashboard tab it displays.
func (s Section) Tab() dashboard.Tab {
	if s == SectionBad {
		return dashboard.TabBad
	}

	return dashboard.TabGood
}

// ViewState tracks the common ui states that are shared between many models.
type ViewState struct {
	// Page is the active highest level page model.
	Page Page
	// Section defines which "section" or "tab" within the page is active.
	Section Section
	// KeyZone defines which area, usually drawn with a component.Container, is active and accepting
	// user keyboard inputs.
	KeyZone KeyZone

	// --------- h
	// | Upper | e
	// |-------- i
	// | Lower | g
	// --------- h
	// W i d t h t
	Upper  int
	Lower  int
	Height int
	Width  int
}
