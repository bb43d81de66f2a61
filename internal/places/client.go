package places

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"github.com/swishapp/court-scraper/internal/logger"
)

const (
	defaultBaseURL = "https://places.googleapis.com/v1"
	Timeout        = 30 * time.Second

	// PageSize is the fixed text search page size.
	PageSize = 20

	// searchFieldMask keeps text search on the cheaper billing tier.
	searchFieldMask = "nextPageToken,places.id,places.displayName,places.location,places.formattedAddress,places.types"
	// detailsFieldMask covers only the enrichment fields the pipeline uses.
	detailsFieldMask = "rating,userRatingCount,regularOpeningHours,internationalPhoneNumber,websiteUri,photos"

	photoMaxWidthPx  = 800
	photoMaxHeightPx = 800

	// maxPhotoBytes caps a single photo download.
	maxPhotoBytes = 8 << 20
)

// Client is a client for the Places API (New).
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	retry      RetryPolicy
	pacer      *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRetryPolicy overrides the 429 retry policy.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(c *Client) { c.retry = p }
}

// WithPacer overrides the request pacer.
func WithPacer(l *rate.Limiter) Option {
	return func(c *Client) { c.pacer = l }
}

// NewClient creates a Places API client. The default pacer spaces requests
// 500ms apart, which is the pause the API docs suggest between pages of
// one query; it applies to all endpoints since they share a quota.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: Timeout,
		},
		retry: DefaultRetryPolicy(),
		pacer: rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TextSearch runs one page of a text search. Pass an empty pageToken for
// the first page; subsequent pages use the NextPageToken from the previous
// response.
func (c *Client) TextSearch(ctx context.Context, query, pageToken string) (*SearchResponse, error) {
	body := searchRequest{
		TextQuery: query,
		PageSize:  PageSize,
		PageToken: pageToken,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding search request: %w", err)
	}

	logger.IncrCounter("places.search.requests")
	resp, err := c.do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/places:searchText", bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Goog-Api-Key", c.apiKey)
		req.Header.Set("X-Goog-FieldMask", searchFieldMask)
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("text search %q: %w", query, err)
	}
	defer resp.Body.Close()

	var result SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	return &result, nil
}

// Details fetches the enrichment fields for a place.
func (c *Client) Details(ctx context.Context, placeID string) (*Details, error) {
	logger.IncrCounter("places.details.requests")
	resp, err := c.do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/places/"+placeID, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("X-Goog-Api-Key", c.apiKey)
		req.Header.Set("X-Goog-FieldMask", detailsFieldMask)
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("place details %s: %w", placeID, err)
	}
	defer resp.Body.Close()

	var result Details
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding details response: %w", err)
	}
	return &result, nil
}

// Photo downloads the media bytes for a photo reference name, bounded to
// the standard display size.
func (c *Client) Photo(ctx context.Context, name string) ([]byte, error) {
	logger.IncrCounter("places.photo.requests")
	resp, err := c.do(ctx, func() (*http.Request, error) {
		url := fmt.Sprintf("%s/%s/media?maxWidthPx=%d&maxHeightPx=%d", c.baseURL, name, photoMaxWidthPx, photoMaxHeightPx)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("X-Goog-Api-Key", c.apiKey)
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("photo media %s: %w", name, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPhotoBytes))
	if err != nil {
		return nil, fmt.Errorf("reading photo bytes: %w", err)
	}
	return data, nil
}

// do paces, performs, and retries one request. The request is rebuilt per
// attempt so a consumed body can't leak into a retry. A 429 is retried per
// the client's policy; any other failure is permanent.
func (c *Client) do(ctx context.Context, build func() (*http.Request, error)) (*http.Response, error) {
	if err := c.pacer.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for pacer: %w", err)
	}

	var resp *http.Response
	operation := func() error {
		req, err := build()
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}

		r, err := c.httpClient.Do(req)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("making request: %w", err))
		}

		if r.StatusCode == http.StatusTooManyRequests {
			r.Body.Close()
			logger.IncrCounter("places.rate_limited")
			return &StatusError{StatusCode: r.StatusCode}
		}
		if r.StatusCode < 200 || r.StatusCode >= 300 {
			r.Body.Close()
			return backoff.Permanent(&StatusError{StatusCode: r.StatusCode})
		}

		resp = r
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(c.retry.backOff(), ctx)); err != nil {
		return nil, err
	}
	return resp, nil
}
