package component

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/review-tui/internal/reviewapi"
	"github.com/leighmacdonald/review-tui/internal/ui/styles"
	"github.com/muesli/reflow/truncate"
)

const (
	// truncateLength is how many characters of comments and payloads are shown inline.
	truncateLength = 100
	notAvailable   = "N/A"
)

type RatingClass int

const (
	RatingPoor RatingClass = iota
	RatingFair
	RatingGood
	RatingExcellent
)

func (c RatingClass) String() string {
	switch c {
	case RatingExcellent:
		return "excellent"
	case RatingGood:
		return "good"
	case RatingFair:
		return "fair"
	default:
		return "poor"
	}
}

func (c RatingClass) Style() lipgloss.Style {
	switch c {
	case RatingExcellent:
		return styles.RatingExcellent
	case RatingGood:
		return styles.RatingGood
	case RatingFair:
		return styles.RatingFair
	default:
		return styles.RatingPoor
	}
}

// ClassifyRating buckets a 0-10 rating. Missing and zero ratings are treated as fair.
func ClassifyRating(rating *float64) RatingClass {
	switch {
	case rating == nil || *rating == 0:
		return RatingFair
	case *rating >= 9:
		return RatingExcellent
	case *rating >= 7:
		return RatingGood
	case *rating >= 5:
		return RatingFair
	default:
		return RatingPoor
	}
}

func FormatRating(rating *float64) string {
	if rating == nil || *rating == 0 {
		return notAvailable
	}

	return strconv.FormatFloat(*rating, 'f', -1, 64)
}

// FormatAverage renders an average rating with a single decimal.
func FormatAverage(rating *float64) string {
	if rating == nil {
		return strconv.FormatFloat(0, 'f', 1, 64)
	}

	return strconv.FormatFloat(*rating, 'f', 1, 64)
}

func FormatDate(timestamp reviewapi.Timestamp) string {
	if timestamp.IsZero() {
		return notAvailable
	}

	return timestamp.Format(time.DateOnly)
}

// FormatRelative renders how long ago a timestamp was, eg: "3 days ago".
func FormatRelative(timestamp reviewapi.Timestamp) string {
	if timestamp.IsZero() {
		return notAvailable
	}

	return humanize.Time(timestamp.Time)
}

func FormatCount(value int64) string {
	return humanize.Comma(value)
}

// Truncate shortens value to at most length cells, appending "..." when anything was cut.
// Newlines are collapsed so the result stays on one table row.
func Truncate(value string, length int) string {
	value = strings.Join(strings.Fields(value), " ")
	if lipgloss.Width(value) <= length {
		return value
	}

	return truncate.StringWithTail(value, uint(length), "...") //nolint:gosec
}

// TruncateJSON shortens a raw payload for inline display, keeping the first 100 characters.
func TruncateJSON(payload string) string {
	if payload == "" {
		return notAvailable
	}

	payload = strings.Join(strings.Fields(payload), " ")
	if lipgloss.Width(payload) <= truncateLength {
		return payload
	}

	return truncate.String(payload, truncateLength) + "..."
}

func orNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return notAvailable
	}

	return value
}
