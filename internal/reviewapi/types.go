package reviewapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrTimestamp = errors.New("invalid timestamp")

// localLayouts are the zone-less ISO date-times the backend serializes LocalDateTime values as.
var localLayouts = []string{ //nolint:gochecknoglobals
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// Timestamp accepts RFC3339, zone-less ISO local date-times or the [y,m,d,h,m,s,ns] array form
// some serializers emit. Zone-less values are interpreted as local time.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}

		return nil
	}

	if data[0] == '[' {
		return t.unmarshalArray(data)
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Join(err, ErrTimestamp)
	}

	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}

	t.Time = parsed

	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(t.Format(localLayouts[1]))
}

func (t *Timestamp) unmarshalArray(data []byte) error {
	var parts []int
	if err := json.Unmarshal(data, &parts); err != nil {
		return errors.Join(err, ErrTimestamp)
	}

	if len(parts) < 3 {
		return fmt.Errorf("%w: expected at least 3 fields, got %d", ErrTimestamp, len(parts))
	}

	fields := make([]int, 7)
	copy(fields, parts)
	t.Time = time.Date(fields[0], time.Month(fields[1]), fields[2], fields[3], fields[4], fields[5], fields[6], time.Local)

	return nil
}

func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}

	if parsed, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return parsed, nil
	}

	for _, layout := range localLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrTimestamp, value)
}

// Review is a single accepted review, the rows of the good reviews table.
type Review struct {
	ReviewID        int64     `json:"reviewId"`
	EntityID        int64     `json:"entityId"`
	Platform        string    `json:"platform"`
	ProviderID      int       `json:"providerId"`
	Rating          *float64  `json:"rating"`
	RatingText      string    `json:"ratingText"`
	ReviewTitle     string    `json:"reviewTitle"`
	ReviewComments  string    `json:"reviewComments"`
	ReviewPositives string    `json:"reviewPositives"`
	ReviewNegatives string    `json:"reviewNegatives"`
	CheckInDate     string    `json:"checkInDate"`
	ReviewDate      Timestamp `json:"reviewDate"`
	ResponderName   string    `json:"responderName"`
	ResponseDate    string    `json:"responseDate"`
	ResponseText    string    `json:"responseText"`
}

// ReviewPage is one page of the good reviews listing along with its pagination metadata.
type ReviewPage struct {
	Reviews     []Review `json:"reviews"`
	CurrentPage int      `json:"currentPage"`
	TotalPages  int      `json:"totalPages"`
	TotalItems  int64    `json:"totalItems"`
	HasNext     bool     `json:"hasNext"`
	HasPrevious bool     `json:"hasPrevious"`
}

type BadReviewID struct {
	ReviewID   int64 `json:"reviewId"`
	ProviderID int   `json:"providerId"`
}

func (id BadReviewID) String() string {
	return fmt.Sprintf("%d/%d", id.ReviewID, id.ProviderID)
}

// BadReviewRecord is a review the ingestion pipeline rejected, along with the raw payload.
type BadReviewRecord struct {
	ID        BadReviewID `json:"id"`
	JSONData  string      `json:"jsonData"`
	Platform  string      `json:"platform"`
	Reason    string      `json:"reason"`
	CreatedAt Timestamp   `json:"createdAt"`
}

type Summary struct {
	TotalGoodReviews      int64            `json:"totalGoodReviews"`
	TotalBadReviews       int64            `json:"totalBadReviews"`
	GoodReviewsByPlatform map[string]int64 `json:"goodReviewsByPlatform"`
	BadReviewsByPlatform  map[string]int64 `json:"badReviewsByPlatform"`
	BadReviewsByReason    map[string]int64 `json:"badReviewsByReason"`
}

type Statistics struct {
	TotalReviews       int64            `json:"totalReviews"`
	Platforms          []string         `json:"platforms"`
	AverageRating      *float64         `json:"averageRating"`
	RatingDistribution map[string]int64 `json:"ratingDistribution"`
}

// ListReviewsParams are the query parameters of the reviews listing. Nil fields are omitted.
type ListReviewsParams struct {
	Page      int
	Size      int
	Platform  *string
	MinRating *int
	MaxRating *int
	Search    *string
}
