package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Accent = lipgloss.Color("#f4722b")

	Black       = lipgloss.Color("#111111")
	Gray        = lipgloss.Color("#3e3e3e")
	GrayDark    = lipgloss.Color("#2f3030")
	GrayDarkAlt = lipgloss.Color("#0f0f0f")
	White       = lipgloss.Color("#cccccc")
	Whiter      = lipgloss.Color("#aaaaaa")
	Red         = lipgloss.Color("#B8383B")
	Blue        = lipgloss.Color("#5885A2")
	Green       = lipgloss.Color("#4d7455")
	Gold        = lipgloss.Color("#ffd700")
	Orange      = lipgloss.Color("#cf6a32")
	Purple      = lipgloss.Color("#8650ac")
	Slate       = lipgloss.Color("#476291")

	ContainerTitle       = lipgloss.NewStyle().Bold(true)
	ContainerBorder      = lipgloss.DoubleBorder()
	ContainerStyle       = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Gray)
	ContainerStyleActive = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Blue)

	HeaderContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)
	ContentContainerStyle = lipgloss.NewStyle().Align(lipgloss.Center)
	FooterContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)

	FocusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	BlurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(Black)
	CursorStyle  = FocusedStyle
	NoStyle      = lipgloss.NewStyle()
	HelpStyle    = BlurredStyle

	FocusedSubmitButton = lipgloss.NewStyle().Foreground(Accent).Render("[ Submit ]")
	BlurredSubmitButton = fmt.Sprintf("[ %s ]", BlurredStyle.Render("Submit"))
	FocusedApplyButton  = lipgloss.NewStyle().Foreground(Accent).Render("[ Apply ]")
	BlurredApplyButton  = fmt.Sprintf("[ %s ]", BlurredStyle.Render("Apply"))

	// Rating classes.
	RatingExcellent = lipgloss.NewStyle().Foreground(Green).Bold(true)
	RatingGood      = lipgloss.NewStyle().Foreground(Blue).Bold(true)
	RatingFair      = lipgloss.NewStyle().Foreground(Gold)
	RatingPoor      = lipgloss.NewStyle().Foreground(Red).Bold(true)

	PlatformBadge = lipgloss.NewStyle().Foreground(Purple)
	ReasonBadge   = lipgloss.NewStyle().Foreground(Red)

	TableHeading       = lipgloss.NewStyle().Background(Black).Foreground(Accent).Bold(true)
	TableRowValuesEven = lipgloss.NewStyle().Background(GrayDark)
	TableRowValuesOdd  = lipgloss.NewStyle().Background(GrayDarkAlt)
	TableRowSelected   = lipgloss.NewStyle().Background(Blue).Foreground(Black).Bold(true)

	PageButton         = lipgloss.NewStyle().Foreground(White).PaddingLeft(1).PaddingRight(1)
	PageButtonCurrent  = lipgloss.NewStyle().Foreground(Black).Background(Accent).Bold(true).PaddingLeft(1).PaddingRight(1)
	PageButtonDisabled = lipgloss.NewStyle().Foreground(Gray).PaddingLeft(1).PaddingRight(1)
	PageInfo           = lipgloss.NewStyle().Foreground(Whiter).PaddingLeft(2)

	SummaryLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).PaddingLeft(2)
	SummaryValue = lipgloss.NewStyle().Foreground(Accent).Bold(true).PaddingLeft(1).PaddingRight(2)

	FilterLabel        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).PaddingRight(1)
	FilterValue        = lipgloss.NewStyle().Foreground(White).PaddingRight(3)
	FilterValueFocused = lipgloss.NewStyle().Foreground(Accent).Bold(true).PaddingRight(3)

	PanelLabel   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right).Width(16)
	PanelValue   = lipgloss.NewStyle().Width(60)
	TabContainer = lipgloss.NewStyle().Align(lipgloss.Center)
	TabsInactive = lipgloss.NewStyle().Bold(true).
			Foreground(Slate).PaddingLeft(2).PaddingRight(2)
	TabsActive = lipgloss.NewStyle().
			Foreground(Purple).PaddingLeft(2).PaddingRight(2)

	StatusError   = lipgloss.NewStyle().Foreground(Red).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusMessage = lipgloss.NewStyle().Foreground(Green).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusServer  = lipgloss.NewStyle().Foreground(Orange).PaddingRight(2).PaddingLeft(1).Bold(true)
	StatusHelp    = lipgloss.NewStyle().Foreground(Gray).Bold(true).Align(lipgloss.Center)
	StatusVersion = lipgloss.NewStyle().Foreground(Green).Bold(true).Align(lipgloss.Center)

	InfoMessage  = lipgloss.NewStyle().Align(lipgloss.Center).Padding(1)
	ErrorMessage = lipgloss.NewStyle().Align(lipgloss.Center).Padding(1).Foreground(Red)

	HelpBox = lipgloss.NewStyle().Padding(3)

	IconGood    = "👍"
	IconBad     = "🛑"
	IconEmpty   = "🍕"
	IconLoading = "⏳"
	IconError   = "💀"
)

func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}

// WrapX will wrap a centered string with the supplied character up to the length specified.
func WrapX(width int, value string, character string) string {
	all := max(width-lipgloss.Width(value), 0)

	return strings.Repeat(character, all/2) + value + strings.Repeat(character, all/2)
}

func TitleBorder(border lipgloss.Border, width int, title string) lipgloss.Border {
	border.Top = WrapX(width, "║"+title+"║", border.Top)

	return border
}
