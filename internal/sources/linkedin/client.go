// Package linkedin implements sources.HiringSource by scraping the public
// jobs-guest search endpoint and counting job-card markers in the response.
package linkedin

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"market-pulse/internal/domain"
	"market-pulse/internal/sources"
)

// Default configuration values.
const (
	DefaultBaseURL = "https://www.linkedin.com/jobs-guest/jobs/api/seeMoreJobPostings/search"
	DefaultTimeout = 30 * time.Second

	// defaultUserAgent is a browser UA; the guest endpoint rejects obvious
	// non-browser clients.
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	// jobCardMarker appears once per job listing in the rendered response.
	jobCardMarker = "job-card-container"
)

// Client fetches open-position counts from the LinkedIn guest search page.
type Client struct {
	baseURL   string
	client    *http.Client
	userAgent string
}

// ClientOption configures Client.
type ClientOption func(*Client)

// WithBaseURL overrides the search endpoint, used by tests.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient creates a LinkedIn hiring source.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		client:    &http.Client{Timeout: DefaultTimeout},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OpenPositions returns the number of job listings the guest search reports
// for the company display name. Any transport error or non-200 status maps to
// an error the caller treats as "no observation this run".
func (c *Client) OpenPositions(ctx context.Context, company string) (domain.HiringObservation, error) {
	params := url.Values{}
	params.Set("keywords", "")
	params.Set("location", "Worldwide")
	params.Set("f_C", company)
	params.Set("trk", "public_jobs_jobs-search-bar_search-submit")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return domain.HiringObservation{}, fmt.Errorf("build jobs request for %s: %w", company, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.HiringObservation{}, fmt.Errorf("fetch jobs for %s: %w", company, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.HiringObservation{}, fmt.Errorf("fetch jobs for %s: status %d: %w", company, resp.StatusCode, sources.ErrUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.HiringObservation{}, fmt.Errorf("read jobs response for %s: %w", company, err)
	}

	return domain.HiringObservation{
		OpenPositions: strings.Count(string(body), jobCardMarker),
	}, nil
}

var _ sources.HiringSource = (*Client)(nil)
