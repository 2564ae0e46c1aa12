// Package reviewapi is a small client for the review service REST api consumed by the dashboard.
package reviewapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/leighmacdonald/review-tui/internal/encoding"
	"github.com/leighmacdonald/review-tui/internal/metrics"
	"github.com/oapi-codegen/runtime"
)

var (
	ErrNetworkFailure = errors.New("network failure")
	ErrInvalidServer  = errors.New("invalid server url")
	ErrEncodeParams   = errors.New("failed to encode query parameters")
)

const (
	EndpointReviews    = "reviews"
	EndpointBadReviews = "bad_review_records"
	EndpointSummary    = "summary"
	EndpointStatistics = "statistics"

	requestIDHeader = "X-Request-ID"
)

// HTTPDoer performs HTTP requests. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type ClientOption func(*Client)

func WithHTTPClient(doer HTTPDoer) ClientOption {
	return func(c *Client) {
		c.client = doer
	}
}

func WithMetrics(collector *metrics.Collector) ClientOption {
	return func(c *Client) {
		c.metrics = collector
	}
}

type Client struct {
	server  *url.URL
	client  HTTPDoer
	metrics *metrics.Collector
}

// NewClient creates a client for the service rooted at server, eg: http://localhost:7070
func NewClient(server string, opts ...ClientOption) (*Client, error) {
	serverURL, errURL := url.Parse(strings.TrimSuffix(server, "/") + "/")
	if errURL != nil {
		return nil, errors.Join(errURL, ErrInvalidServer)
	}

	if serverURL.Scheme == "" || serverURL.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidServer, server)
	}

	client := &Client{server: serverURL, client: &http.Client{}}
	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Reviews fetches a single page of good reviews matching the params.
func (c *Client) Reviews(ctx context.Context, params ListReviewsParams) (*ReviewPage, error) {
	queryURL := c.server.JoinPath("api", "reviews")

	query, errQuery := encodeListReviewsParams(params)
	if errQuery != nil {
		return nil, errQuery
	}
	queryURL.RawQuery = query.Encode()

	page, err := fetch[ReviewPage](ctx, c, EndpointReviews, queryURL)
	if err != nil {
		return nil, err
	}

	if page.Reviews == nil {
		page.Reviews = []Review{}
	}

	return &page, nil
}

// BadReviewRecords fetches every rejected review. The endpoint supports neither paging nor filtering.
func (c *Client) BadReviewRecords(ctx context.Context) ([]BadReviewRecord, error) {
	records, err := fetch[[]BadReviewRecord](ctx, c, EndpointBadReviews, c.server.JoinPath("api", "bad-review-records"))
	if err != nil {
		return nil, err
	}

	if records == nil {
		records = []BadReviewRecord{}
	}

	return records, nil
}

func (c *Client) Summary(ctx context.Context) (*Summary, error) {
	summary, err := fetch[Summary](ctx, c, EndpointSummary, c.server.JoinPath("api", "reviews", "summary"))
	if err != nil {
		return nil, err
	}

	return &summary, nil
}

func (c *Client) Statistics(ctx context.Context) (*Statistics, error) {
	stats, err := fetch[Statistics](ctx, c, EndpointStatistics, c.server.JoinPath("api", "reviews", "statistics"))
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// encodeListReviewsParams builds the query string the same way generated openapi clients do, form
// style with explode. Nil parameters are left out entirely.
func encodeListReviewsParams(params ListReviewsParams) (url.Values, error) {
	queryValues := url.Values{}

	add := func(name string, value any) error {
		queryFrag, err := runtime.StyleParamWithLocation("form", true, name, runtime.ParamLocationQuery, value)
		if err != nil {
			return errors.Join(err, ErrEncodeParams)
		}

		parsed, err := url.ParseQuery(queryFrag)
		if err != nil {
			return errors.Join(err, ErrEncodeParams)
		}

		for key, values := range parsed {
			for _, value := range values {
				queryValues.Add(key, value)
			}
		}

		return nil
	}

	if err := add("page", params.Page); err != nil {
		return nil, err
	}

	if err := add("size", params.Size); err != nil {
		return nil, err
	}

	if params.Platform != nil {
		if err := add("platform", *params.Platform); err != nil {
			return nil, err
		}
	}

	if params.MinRating != nil {
		if err := add("minRating", *params.MinRating); err != nil {
			return nil, err
		}
	}

	if params.MaxRating != nil {
		if err := add("maxRating", *params.MaxRating); err != nil {
			return nil, err
		}
	}

	if params.Search != nil {
		if err := add("search", *params.Search); err != nil {
			return nil, err
		}
	}

	return queryValues, nil
}

func fetch[T any](ctx context.Context, c *Client, endpoint string, target *url.URL) (T, error) {
	var empty T

	req, errReq := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if errReq != nil {
		return empty, errors.Join(errReq, ErrNetworkFailure)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	start := time.Now()
	resp, errResp := c.client.Do(req)
	if errResp != nil {
		c.metrics.ObserveRequest(endpoint, 0, time.Since(start))

		return empty, fmt.Errorf("%w: %w", ErrNetworkFailure, errResp)
	}

	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Error("failed to close response body", slog.String("error", err.Error()))
		}
	}()

	c.metrics.ObserveRequest(endpoint, resp.StatusCode, time.Since(start))
	slog.Debug("API request complete", slog.String("endpoint", endpoint),
		slog.String("request_id", requestID), slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return empty, fmt.Errorf("%w: HTTP error! status: %d", ErrNetworkFailure, resp.StatusCode)
	}

	value, errDecode := encoding.UnmarshalJSON[T](resp.Body)
	if errDecode != nil {
		return empty, fmt.Errorf("%w: %w", ErrNetworkFailure, errDecode)
	}

	return value, nil
}

// Reason strips the package sentinel from err, leaving the message shown to users,
// eg: "HTTP error! status: 500".
func Reason(err error) string {
	if err == nil {
		return ""
	}

	return strings.TrimPrefix(err.Error(), ErrNetworkFailure.Error()+": ")
}
