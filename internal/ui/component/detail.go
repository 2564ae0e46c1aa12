package component

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/review-tui/internal/reviewapi"
	"github.com/leighmacdonald/review-tui/internal/ui/command"
	"github.com/leighmacdonald/review-tui/internal/ui/input"
	"github.com/leighmacdonald/review-tui/internal/ui/model"
	"github.com/leighmacdonald/review-tui/internal/ui/styles"
	"github.com/muesli/reflow/wordwrap"
)

// DetailPanelModel shows the selected row of the active table in full.
type DetailPanelModel struct {
	viewport  viewport.Model
	ready     bool
	viewState model.ViewState
	review    *reviewapi.Review
	record    *reviewapi.BadReviewRecord
}

func NewDetailPanelModel() *DetailPanelModel {
	return &DetailPanelModel{}
}

func (m *DetailPanelModel) Init() tea.Cmd {
	return nil
}

func (m *DetailPanelModel) Update(msg tea.Msg) (*DetailPanelModel, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, msg.Lower)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
		}

		return m, nil
	case command.SelectedReviewMsg:
		m.review = &msg.Review
		m.viewport.GotoTop()

		return m, nil
	case command.SelectedBadReviewMsg:
		m.record = &msg.Record
		m.viewport.GotoTop()

		return m, nil
	case tea.KeyMsg:
		if m.viewState.Page != model.PageMain || m.viewState.KeyZone != model.KZdetail {
			return m, nil
		}

		if key.Matches(msg, input.Default.Back) {
			viewState := m.viewState
			viewState.KeyZone = model.Zones(viewState.Section)[0]

			return m, command.SetViewState(viewState)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

func (m *DetailPanelModel) Render(height int) string {
	m.viewport.Height = max(height, 1)
	width := max(m.viewState.Width-6, 20)

	var content string
	switch m.viewState.Section {
	case model.SectionGood:
		content = m.reviewContent(width)
	case model.SectionBad:
		content = m.recordContent(width)
	}

	m.viewport.SetContent(content)

	return Container("Detail", m.viewState.Width-2, height, m.viewport.View(), m.viewState.KeyZone == model.KZdetail)
}

func (m *DetailPanelModel) reviewContent(width int) string {
	if m.review == nil {
		return styles.InfoMessage.Width(width).Render("No review selected")
	}

	review := m.review
	rating := ClassifyRating(review.Rating)
	rows := []string{
		styles.DetailRow("Review ID", strconv.FormatInt(review.ReviewID, 10)),
		styles.DetailRow("Entity", strconv.FormatInt(review.EntityID, 10)),
		styles.DetailRow("Platform", orNA(review.Platform)),
		styles.DetailRow("Provider", strconv.Itoa(review.ProviderID)),
		styles.DetailRow("Rating", rating.Style().Render(FormatRating(review.Rating))+" "+orNA(review.RatingText)),
		styles.DetailRow("Reviewed", FormatDate(review.ReviewDate)+" ("+FormatRelative(review.ReviewDate)+")"),
		styles.DetailRow("Check In", orNA(review.CheckInDate)),
		styles.DetailRow("Title", orNA(review.ReviewTitle)),
		"",
		section("Comment", commentOrDefault(review.ReviewComments), width),
	}

	if review.ReviewPositives != "" {
		rows = append(rows, section("Positives", review.ReviewPositives, width))
	}

	if review.ReviewNegatives != "" {
		rows = append(rows, section("Negatives", review.ReviewNegatives, width))
	}

	if review.ResponseText != "" {
		rows = append(rows, section("Response from "+orNA(review.ResponderName), review.ResponseText, width))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *DetailPanelModel) recordContent(width int) string {
	if m.record == nil {
		return styles.InfoMessage.Width(width).Render("No bad review selected")
	}

	record := m.record

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.DetailRow("Review ID", strconv.FormatInt(record.ID.ReviewID, 10)),
		styles.DetailRow("Provider", strconv.Itoa(record.ID.ProviderID)),
		styles.DetailRow("Platform", orNA(record.Platform)),
		styles.DetailRow("Reason", styles.ReasonBadge.Render(orNA(record.Reason))),
		styles.DetailRow("Created", FormatDate(record.CreatedAt)+" ("+FormatRelative(record.CreatedAt)+")"),
		"",
		section("Payload", PrettyJSON(record.JSONData), width))
}

func section(title string, body string, width int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.ContainerTitle.Render(title),
		wordwrap.String(body, width),
		"")
}

// PrettyJSON indents a raw payload. Payloads that are not valid JSON are returned unchanged.
func PrettyJSON(payload string) string {
	if strings.TrimSpace(payload) == "" {
		return notAvailable
	}

	var out bytes.Buffer
	if err := json.Indent(&out, []byte(payload), "", "  "); err != nil {
		return payload
	}

	return out.String()
}
