package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultTimeout bounds every individual fetch. Call sites used to
	// range from 8 to 15 seconds; 10s is the standardized value.
	DefaultTimeout = 10 * time.Second

	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	maxBodyBytes = 10 * 1024 * 1024
)

// Page is the outcome of one completed HTTP exchange. A non-200 status
// is not an error at this level; callers decide what it means.
type Page struct {
	URL        string
	StatusCode int
	Body       []byte
	FetchedAt  time.Time
}

// Fetcher retrieves a page. Implementations must return an error only
// for transport-level failures (timeout, DNS, connection refused).
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Page, error)
}

// HTTPFetcher fetches pages with a realistic browser profile.
type HTTPFetcher struct {
	Client *http.Client
}

func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &HTTPFetcher{
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*Page, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9,en-US;q=0.8,en;q=0.7")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Page{
		URL:        url,
		StatusCode: resp.StatusCode,
		Body:       body,
		FetchedAt:  time.Now(),
	}, nil
}

// Prober classifies a URL as reachable or not. It never returns an
// error: malformed URLs, timeouts and connection failures all count as
// unavailable.
type Prober struct {
	Fetcher Fetcher
}

func NewProber(f Fetcher) *Prober {
	return &Prober{Fetcher: f}
}

// IsAvailable reports whether a GET on url answers with status 200.
func (p *Prober) IsAvailable(ctx context.Context, url string) bool {
	if url == "" {
		return false
	}
	page, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return false
	}
	return page.StatusCode == http.StatusOK
}
