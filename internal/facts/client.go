package facts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/notebare/notebare-facts/internal/logging"
)

const (
	// DefaultBaseURL is the public notebare API.
	DefaultBaseURL = "https://api.notebare.com"

	// fetchTimeout bounds each GET /facts/ call.
	fetchTimeout = 30 * time.Second
)

// Client reads facts from the notebare API. It holds only immutable
// configuration and is safe for concurrent use.
type Client struct {
	baseURL   string
	token     string
	userAgent string
	http      *http.Client
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient creates a Client for the API at baseURL authenticating with
// the bearer token.
func NewClient(baseURL, token string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		token:     token,
		userAgent: "notebare-facts",
		http:      newHTTPClient(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// newHTTPClient returns the default client. Redirects are not followed:
// a 3xx is returned as-is and rejected by the status check, so a fetch is
// always exactly one GET.
func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: fetchTimeout,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// Fetch returns the facts stored under domain, or every fact when domain
// is empty, in the order the API returns them.
//
// Fetch never fails: a transport error, timeout, non-2xx status or
// malformed body all yield an empty slice, indistinguishable from an
// empty store. The cause is logged at warn level.
func (c *Client) Fetch(ctx context.Context, domain string) []Fact {
	facts, err := c.fetch(ctx, domain)
	if err != nil {
		logging.FromCtx(ctx).Warn().
			Err(err).
			Str("domain", domain).
			Msg("fetching facts failed, treating as empty")
		return []Fact{}
	}
	logging.FromCtx(ctx).Debug().
		Str("domain", domain).
		Int("count", len(facts)).
		Msg("fetched facts")
	return facts
}

// fetch performs the request and reports why it failed.
func (c *Client) fetch(ctx context.Context, domain string) ([]Fact, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.factsURL(domain), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting facts: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("facts API returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	return decodeFacts(body)
}

func (c *Client) factsURL(domain string) string {
	u := c.baseURL + "/facts/"
	if domain == "" {
		return u
	}
	q := url.Values{}
	q.Set("domain", domain)
	return u + "?" + q.Encode()
}
