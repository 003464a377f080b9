// Package ratesource fetches the daily exchange-rate feed published by the
// Export-Import Bank of Korea and resolves per-unit rates from it.
package ratesource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fjacquet/accountbook/internal/dateutils"
	"fjacquet/accountbook/internal/ledgererror"
	"fjacquet/accountbook/internal/models"
)

const (
	// DefaultBaseURL is the public JSON endpoint of the bank feed.
	DefaultBaseURL = "https://www.koreaexim.go.kr/site/program/financial/exchangeJSON"
	// DefaultDataCode selects the exchange-rate data set.
	DefaultDataCode = "AP01"
	defaultTimeout  = 10 * time.Second
	maxBodyBytes    = 1 << 20
)

// Result codes carried by every feed row.
const (
	ResultOK          = 1
	ResultBadDataCode = 2
	ResultBadAuthKey  = 3
	ResultQuotaUsed   = 4
)

// Fetcher is the contract the rate cache consumes.
type Fetcher interface {
	Fetch(ctx context.Context, date time.Time) ([]models.RateQuote, error)
}

// Client handles communication with the bank feed.
type Client struct {
	httpClient *http.Client
	baseURL    string
	authKey    string
	dataCode   string
}

// Ensure Client implements Fetcher
var _ Fetcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the feed endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithAuthKey sets the API key sent as the authkey parameter.
func WithAuthKey(key string) Option {
	return func(c *Client) { c.authKey = key }
}

// WithDataCode overrides the data-set selector.
func WithDataCode(code string) Option {
	return func(c *Client) {
		if code != "" {
			c.dataCode = code
		}
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient replaces the HTTP client entirely.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a new feed client
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    DefaultBaseURL,
		dataCode:   DefaultDataCode,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch downloads the feed for date in a single attempt. An empty response
// is a success with no quotes; the bank publishes nothing on non-business days.
func (c *Client) Fetch(ctx context.Context, date time.Time) ([]models.RateQuote, error) {
	searchDate := dateutils.FormatSearchDate(date)
	fail := func(reason string, err error) error {
		return &ledgererror.RateFetchError{SearchDate: searchDate, Reason: reason, Err: err}
	}

	if c.authKey == "" {
		return nil, fail("missing API key", &ledgererror.NotConfiguredError{Setting: "rates.auth_key"})
	}

	reqURL, err := c.buildURL(searchDate)
	if err != nil {
		return nil, fail("invalid base URL", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fail("failed to create request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fail("failed to execute request", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fail("failed to read response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fail(fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	return decodeQuotes(body, searchDate)
}

func (c *Client) buildURL(searchDate string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("authkey", c.authKey)
	q.Set("searchdate", searchDate)
	q.Set("data", c.dataCode)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func decodeQuotes(body []byte, searchDate string) ([]models.RateQuote, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}

	var quotes []models.RateQuote
	if err := json.Unmarshal([]byte(trimmed), &quotes); err != nil {
		return nil, &ledgererror.RateFetchError{SearchDate: searchDate, Reason: "failed to decode response", Err: err}
	}

	for _, q := range quotes {
		if q.Result != ResultOK {
			return nil, &ledgererror.RateFetchError{SearchDate: searchDate, Reason: resultReason(q.Result)}
		}
	}
	return quotes, nil
}

func resultReason(code int) string {
	switch code {
	case ResultBadDataCode:
		return "feed rejected the data code"
	case ResultBadAuthKey:
		return "feed rejected the API key"
	case ResultQuotaUsed:
		return "daily request quota exhausted"
	default:
		return fmt.Sprintf("unexpected result code %d", code)
	}
}
