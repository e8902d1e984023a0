package scrape

import (
	"context"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

// Searcher runs a web search and returns result URLs in rank order.
// Implementations degrade to an empty slice on failure.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) []string
}

// WebSearcher scrapes search engines that tolerate plain HTTP clients.
// DuckDuckGo's HTML endpoint is tried first, Bing second.
type WebSearcher struct {
	UserAgent string
	Timeout   time.Duration
}

func NewWebSearcher() *WebSearcher {
	return &WebSearcher{
		UserAgent: browserUserAgent,
		Timeout:   DefaultTimeout,
	}
}

func (s *WebSearcher) collector() *colly.Collector {
	c := colly.NewCollector(
		colly.UserAgent(s.UserAgent),
		colly.DetectCharset(),
		colly.AllowURLRevisit(),
		colly.IgnoreRobotsTxt(),
	)
	c.SetRequestTimeout(s.Timeout)
	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept-Language", "pt-BR,pt;q=0.9,en-US;q=0.8,en;q=0.7")
	})
	return c
}

func (s *WebSearcher) Search(ctx context.Context, query string, maxResults int) []string {
	if ctx.Err() != nil || query == "" {
		return nil
	}
	if maxResults <= 0 {
		maxResults = 5
	}

	results := s.searchDuckDuckGo(query, maxResults)
	if len(results) == 0 && ctx.Err() == nil {
		results = s.searchBing(query, maxResults)
	}
	return results
}

func (s *WebSearcher) searchDuckDuckGo(query string, maxResults int) []string {
	var results []string
	c := s.collector()

	c.OnHTML("a.result__a", func(e *colly.HTMLElement) {
		if len(results) >= maxResults {
			return
		}
		if target := unwrapDuckDuckGoRedirect(e.Attr("href")); target != "" {
			results = append(results, target)
		}
	})

	endpoint := "https://html.duckduckgo.com/html/?q=" + url.QueryEscape(query)
	if err := c.Visit(endpoint); err != nil {
		log.Printf("duckduckgo search failed for %q: %v", query, err)
		return nil
	}
	c.Wait()
	return results
}

func (s *WebSearcher) searchBing(query string, maxResults int) []string {
	var results []string
	c := s.collector()

	c.OnHTML("#b_results h2 a", func(e *colly.HTMLElement) {
		if len(results) >= maxResults {
			return
		}
		href := e.Attr("href")
		if href == "" || strings.Contains(href, "bing.com") || strings.Contains(href, "microsoft.com") {
			return
		}
		results = append(results, href)
	})

	endpoint := "https://www.bing.com/search?q=" + url.QueryEscape(query)
	if err := c.Visit(endpoint); err != nil {
		log.Printf("bing search failed for %q: %v", query, err)
		return nil
	}
	c.Wait()
	return results
}

// unwrapDuckDuckGoRedirect extracts the destination URL from the
// /l/?uddg=... redirect links DuckDuckGo wraps results in. Plain hrefs
// pass through untouched.
func unwrapDuckDuckGoRedirect(href string) string {
	if href == "" {
		return ""
	}
	if !strings.Contains(href, "uddg=") {
		if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
			return href
		}
		return ""
	}
	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return parsed.Query().Get("uddg")
}

// CachedSearcher consults a SearchCache before the wrapped searcher and
// records fresh results back into it.
type CachedSearcher struct {
	Cache *SearchCache
	Inner Searcher
}

func NewCachedSearcher(cache *SearchCache, inner Searcher) *CachedSearcher {
	return &CachedSearcher{Cache: cache, Inner: inner}
}

func (c *CachedSearcher) Search(ctx context.Context, query string, maxResults int) []string {
	if cached, ok := c.Cache.Get(query); ok {
		if len(cached) > maxResults {
			return cached[:maxResults]
		}
		return cached
	}
	results := c.Inner.Search(ctx, query, maxResults)
	if len(results) > 0 {
		c.Cache.Put(query, results)
	}
	return results
}
