package resolve

import (
	"bytes"
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/sapt/auditor/internal/scrape"
)

// transparencyKeywords flag anchors that lead to a transparency portal.
// Matching happens on normalized text, so accented variants collapse
// onto these forms.
var transparencyKeywords = []string{
	"portal da transparencia",
	"acesso a informacao",
	"transparencia",
}

// Anchor is a link found on a page, with its visible text.
type Anchor struct {
	Text string `json:"texto"`
	URL  string `json:"url"`
}

// FindTransparencyAnchors fetches pageURL and returns every anchor
// whose visible text or href mentions a transparency keyword. Relative
// hrefs are resolved against the page. Fetch or parse failures return
// an empty slice.
func FindTransparencyAnchors(ctx context.Context, fetcher scrape.Fetcher, pageURL string) []Anchor {
	page, err := fetcher.Fetch(ctx, pageURL)
	if err != nil || page.StatusCode != 200 {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page.Body))
	if err != nil {
		return nil
	}

	base, err := url.Parse(page.URL)
	if err != nil {
		return nil
	}

	var matches []Anchor
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		text := strings.TrimSpace(sel.Text())

		textNorm := scrape.Normalize(text)
		hrefNorm := scrape.Normalize(href)
		for _, kw := range transparencyKeywords {
			if strings.Contains(textNorm, kw) || strings.Contains(hrefNorm, kw) {
				if resolved := resolveHref(base, href); resolved != "" {
					matches = append(matches, Anchor{Text: text, URL: resolved})
				}
				break
			}
		}
	})
	return matches
}

func resolveHref(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "javascript:") || strings.HasPrefix(href, "#") {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
