package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/marquee/internal/domain"
)

const defaultTimeout = 15 * time.Second

// Params are query parameters for BuildURL. A nil value removes the key.
type Params map[string]any

// GatewayConfig holds the values every request is built from
type GatewayConfig struct {
	BaseURL      string
	APIKey       string
	Language     string
	Region       string
	IncludeAdult bool
}

// Gateway builds authenticated request URLs and fetches JSON through a
// process-lifetime response cache keyed by the full URL.
type Gateway struct {
	cfg        GatewayConfig
	httpClient *http.Client
	logger     *slog.Logger

	mu    sync.RWMutex
	cache map[string]json.RawMessage
}

// NewGateway creates a gateway. A nil httpClient gets the default timeout.
func NewGateway(cfg GatewayConfig, httpClient *http.Client, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Gateway{
		cfg:        cfg,
		httpClient: httpClient,
		logger:     logger,
		cache:      make(map[string]json.RawMessage),
	}
}

// BuildURL returns base+endpoint with the default parameters, then params,
// then the API key applied. The query string is sorted by key.
func (g *Gateway) BuildURL(endpoint string, params Params) (string, error) {
	if g.cfg.APIKey == "" {
		return "", domain.ErrAPIKeyMissing
	}
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}

	u, err := url.Parse(g.cfg.BaseURL + endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}

	merged := Params{
		"language":      g.cfg.Language,
		"region":        g.cfg.Region,
		"include_adult": g.cfg.IncludeAdult,
	}
	for k, v := range params {
		merged[k] = v
	}
	merged["api_key"] = g.cfg.APIKey

	q := url.Values{}
	for k, v := range merged {
		if v == nil {
			continue
		}
		q.Set(k, fmt.Sprint(v))
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// FetchOption configures a single FetchJSON call
type FetchOption func(*fetchOptions)

type fetchOptions struct {
	useCache bool
}

// WithCache toggles the response cache for one call. The default is true.
func WithCache(enabled bool) FetchOption {
	return func(o *fetchOptions) { o.useCache = enabled }
}

// FetchJSON GETs rawURL and returns its JSON body. Cached responses are
// returned without a network call. Uncached calls never replace an existing entry.
func (g *Gateway) FetchJSON(ctx context.Context, rawURL string, opts ...FetchOption) (json.RawMessage, error) {
	o := fetchOptions{useCache: true}
	for _, opt := range opts {
		opt(&o)
	}

	if o.useCache {
		if body, ok := g.lookup(rawURL); ok {
			g.logger.Debug("tmdb request", "url", redact(rawURL), "cached", true)
			return body, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	g.logger.Debug("tmdb request", "url", redact(rawURL), "cached", false)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		g.logger.Error("tmdb request failed", "url", redact(rawURL), "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrServiceUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		g.logger.Warn("tmdb request error", "status", resp.StatusCode, "url", redact(rawURL))
		return nil, &domain.RemoteServiceError{StatusCode: resp.StatusCode, URL: redact(rawURL)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if !json.Valid(body) {
		g.logger.Error("JSON parse error", "url", redact(rawURL), "bodyLen", len(body))
		return nil, fmt.Errorf("invalid JSON from %s", redact(rawURL))
	}

	if o.useCache {
		g.mu.Lock()
		g.cache[rawURL] = body
		g.mu.Unlock()
	}
	return body, nil
}

// Get builds the URL for endpoint and decodes the cached-or-fetched body into dest
func (g *Gateway) Get(ctx context.Context, endpoint string, params Params, dest any) error {
	reqURL, err := g.BuildURL(endpoint, params)
	if err != nil {
		return err
	}
	body, err := g.FetchJSON(ctx, reqURL)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func (g *Gateway) lookup(rawURL string) (json.RawMessage, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	body, ok := g.cache[rawURL]
	return body, ok
}

// Cached reports whether rawURL has a cached response
func (g *Gateway) Cached(rawURL string) bool {
	_, ok := g.lookup(rawURL)
	return ok
}

// CacheLen returns the number of cached responses
func (g *Gateway) CacheLen() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.cache)
}

// redact hides the API key in logged URLs
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	if q.Has("api_key") {
		q.Set("api_key", "***")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
