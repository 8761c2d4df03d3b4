// Package googlemaps implements the provider boundaries (nearby search,
// geocoding, place details, directions) against the Google Maps web-service
// JSON endpoints.
package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/petdex"
	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout is the default timeout for provider requests.
	DefaultTimeout = 10 * time.Second

	// DefaultPageTokenDelay is how long a next-page token takes to activate
	// on the provider's side. NextPage waits this long before using one.
	DefaultPageTokenDelay = 2 * time.Second

	// DefaultCacheTTL is how long geocode and details responses are reused.
	DefaultCacheTTL = 10 * time.Minute

	// DefaultRequestsPerSec bounds the request rate against the provider.
	DefaultRequestsPerSec = 10

	defaultBaseURL = "https://maps.googleapis.com/maps/api"
)

// Ensure Client implements every provider boundary at compile time.
var (
	_ petdex.NearbySearcher = (*Client)(nil)
	_ petdex.Geocoder       = (*Client)(nil)
	_ petdex.DetailsService = (*Client)(nil)
	_ petdex.RoutePlanner   = (*Client)(nil)
)

// Client is a Google Maps web-service client. A single Client serves all
// four provider boundaries; it is safe for concurrent use.
type Client struct {
	apiKey    string
	baseURL   string
	timeout   time.Duration
	pageDelay time.Duration
	client    *http.Client
	limiter   *rate.Limiter
	cache     *responseCache
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout for provider requests.
// Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithBaseURL overrides the provider base URL. Used by tests to point the
// client at a local server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithPageTokenDelay sets how long NextPage waits before using a token.
// Defaults to DefaultPageTokenDelay.
func WithPageTokenDelay(d time.Duration) Option {
	return func(c *Client) {
		c.pageDelay = d
	}
}

// WithRateLimit sets the request rate limit in requests per second.
// Defaults to DefaultRequestsPerSec with a burst of 1.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithCacheTTL sets the reuse window for geocode and details responses.
// Zero disables caching. Defaults to DefaultCacheTTL.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = newResponseCache(ttl)
	}
}

// NewClient creates a new Client authenticating with the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:    apiKey,
		baseURL:   defaultBaseURL,
		timeout:   DefaultTimeout,
		pageDelay: DefaultPageTokenDelay,
		limiter:   rate.NewLimiter(rate.Limit(DefaultRequestsPerSec), 1),
		cache:     newResponseCache(DefaultCacheTTL),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{
		Timeout: c.timeout,
	}

	return c
}

// get issues a rate-limited GET against the given endpoint and returns the
// raw response body. The API key is appended here so callers never handle it.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params.Set("key", c.apiKey)
	u := c.baseURL + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, petdex.Errorf(petdex.EUNAVAILABLE, "provider request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, petdex.Errorf(petdex.EUNAVAILABLE, "provider returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, petdex.Errorf(petdex.EUNAVAILABLE, "provider response unreadable")
	}

	return body, nil
}

// statusError maps a non-OK provider status to an application error.
// ZERO_RESULTS is not passed here; endpoints that can legitimately return
// it handle it before calling. Endpoints where INVALID_REQUEST means a bad
// identifier rather than a bad request remap it to ENOTFOUND themselves.
func statusError(status, message string) error {
	code := petdex.EUNAVAILABLE
	if status == "NOT_FOUND" {
		code = petdex.ENOTFOUND
	}
	if message != "" {
		return petdex.Errorf(code, "%s: %s", status, message)
	}
	return petdex.Errorf(code, "%s", status)
}

// formatLatLng renders a coordinate pair the way the provider expects.
func formatLatLng(p petdex.LatLng) string {
	return fmt.Sprintf("%f,%f", p.Lat, p.Lng)
}

// latLng is the provider's coordinate payload.
type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// geometry is the provider's location payload.
type geometry struct {
	Location latLng `json:"location"`
}

// decode unmarshals a provider response body, converting parse failures to
// EUNAVAILABLE so transport details never leak past this package.
func decode(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return petdex.Errorf(petdex.EUNAVAILABLE, "provider response malformed")
	}
	return nil
}
