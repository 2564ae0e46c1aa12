package component

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/leighmacdonald/review-tui/internal/ui/styles"
)

func NewTextInputModel(value string, placeholder string) textinput.Model {
	input := textinput.New()
	input.Cursor.Style = styles.CursorStyle
	input.SetValue(value)
	input.CharLimit = 127
	input.Placeholder = placeholder
	input.PromptStyle = styles.NoStyle
	input.TextStyle = styles.NoStyle

	return input
}

func NewUnstyledTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderColumn(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderTop(false).
		BorderHeader(false).
		Headers(headers...)
}

// Container draws content inside a titled border. Active containers are the ones receiving keyboard input.
func Container(title string, width int, height int, content string, active bool) string {
	if height <= 0 || width <= 0 {
		return ""
	}

	base := styles.ContainerStyle
	if active {
		base = styles.ContainerStyleActive
	}

	return base.
		Border(styles.TitleBorder(styles.ContainerBorder, width, title)).
		Width(width).
		Height(height).
		Render(content)
}

// panelStatus is what a data panel currently shows in place of, or along with, its rows.
type panelStatus int

const (
	statusLoading panelStatus = iota
	statusRows
	statusEmpty
	statusError
)

// panel holds the status shared by the review tables.
type panel struct {
	status  panelStatus
	message string
}

func (p *panel) setLoading() {
	p.status = statusLoading
	p.message = ""
}

func (p *panel) setEmpty(message string) {
	p.status = statusEmpty
	p.message = message
}

func (p *panel) setError(message string) {
	p.status = statusError
	p.message = message
}

// placeholder renders the non-row states, returning false when rows should be drawn instead.
func (p *panel) placeholder(width int) (string, bool) {
	switch p.status {
	case statusLoading:
		return styles.InfoMessage.Width(width).Render("Loading... " + styles.IconLoading), true
	case statusEmpty:
		return styles.InfoMessage.Width(width).Render(p.message + " " + styles.IconEmpty), true
	case statusError:
		return styles.ErrorMessage.Width(width).Render(p.message + " " + styles.IconError), true
	default:
		return "", false
	}
}

// keepVisible scrolls a table viewport so the selected row is shown. The header occupies the first line.
func keepVisible(view *viewport.Model, selected int) {
	switch {
	case selected+1 >= view.YOffset+view.Height:
		view.SetYOffset(selected + 2 - view.Height)
	case selected < view.YOffset:
		view.SetYOffset(selected)
	}
}
