package verify

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"

	"github.com/sapt/auditor/internal/models"
	"github.com/sapt/auditor/internal/resolve"
	"github.com/sapt/auditor/internal/scrape"
)

const (
	// Share of question keywords that must appear on the page for the
	// generic availability verdict.
	keywordThreshold = 0.5

	maxSnippetLen = 160
)

// Verifier runs the content checks of a criterion against one page.
// The page is fetched once and shared across all checks.
type Verifier struct {
	Fetcher scrape.Fetcher
	Prober  resolve.AvailabilityProber
	Now     func() time.Time

	sanitizer *bluemonday.Policy
}

func NewVerifier(fetcher scrape.Fetcher, prober resolve.AvailabilityProber) *Verifier {
	return &Verifier{
		Fetcher:   fetcher,
		Prober:    prober,
		Now:       time.Now,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (v *Verifier) now() time.Time {
	if v.Now != nil {
		return v.Now()
	}
	return time.Now()
}

// Verify evaluates one criterion against pageURL, running exactly the
// given checks. Fetch failures turn into negative verdicts, never
// errors.
func (v *Verifier) Verify(ctx context.Context, pageURL string, criterion models.Criterion, checks []models.Check) models.Result {
	result := models.Result{
		ID:             criterion.ID,
		Question:       criterion.Question,
		Dimension:      criterion.Dimension,
		Classification: criterion.Classification,
		LegalBasis:     criterion.LegalBasis,
		Checks:         map[models.Check]bool{},
	}
	for _, c := range checks {
		result.Checks[c] = false
	}
	if pageURL == "" {
		return result
	}

	available := false
	if v.Prober != nil {
		available = v.Prober.IsAvailable(ctx, resolve.AvailabilityTarget(pageURL))
	}

	var doc *goquery.Document
	if page, err := v.Fetcher.Fetch(ctx, pageURL); err == nil && page.StatusCode == 200 {
		if parsed, err := goquery.NewDocumentFromReader(bytes.NewReader(page.Body)); err == nil {
			doc = parsed
		}
	}

	now := v.now()
	for _, check := range checks {
		switch check {
		case models.CheckAvailability:
			result.Checks[check] = available && v.contentSatisfied(ctx, doc, criterion)
		case models.CheckRecency:
			if doc == nil {
				break
			}
			if isFiscalReportCriterion(criterion) {
				_, quad := LastDueQuadrimester(now)
				result.Checks[check] = v.checkFiscalReportRecency(ctx, doc, pageURL, quad)
			} else {
				result.Checks[check] = checkRecency(doc, now)
			}
		case models.CheckHistoricalSeries:
			if doc != nil {
				result.Checks[check] = checkHistoricalSeries(doc, now)
			}
		case models.CheckReportDownload:
			if doc != nil {
				result.Checks[check] = checkReportDownload(doc)
			}
		case models.CheckSearchFilter:
			if doc != nil {
				result.Checks[check] = checkSearchFilter(doc)
			}
		}
	}

	result.Satisfied = len(checks) > 0
	for _, check := range checks {
		if !result.Checks[check] {
			result.Satisfied = false
			break
		}
	}
	if result.Satisfied {
		result.EvidenceURL = pageURL
		if doc != nil {
			result.Note = v.evidenceSnippet(doc, criterion.Question)
		}
	}
	return result
}

// contentSatisfied decides the availability verdict beyond the bare
// HTTP 200: the page must actually speak about the criterion. Site and
// portal existence questions have their own rules; everything else uses
// keyword density over the question's terms.
func (v *Verifier) contentSatisfied(ctx context.Context, doc *goquery.Document, criterion models.Criterion) bool {
	q := scrape.Normalize(criterion.Question)
	switch {
	case strings.Contains(q, "sitio oficial"):
		return true
	case strings.Contains(q, "portal da transparencia"):
		if doc == nil {
			return false
		}
		return documentHasTransparencyAnchor(doc)
	default:
		if doc == nil {
			return false
		}
		return keywordDensity(doc, criterion.Question) >= keywordThreshold
	}
}

func documentHasTransparencyAnchor(doc *goquery.Document) bool {
	found := false
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		text := scrape.Normalize(sel.Text())
		hrefNorm := scrape.Normalize(href)
		for _, kw := range []string{"portal da transparencia", "acesso a informacao", "transparencia"} {
			if strings.Contains(text, kw) || strings.Contains(hrefNorm, kw) {
				found = true
				return false
			}
		}
		return true
	})
	return found
}

// evidenceSnippet picks the first text node mentioning a question
// keyword, strips any markup and truncates it.
func (v *Verifier) evidenceSnippet(doc *goquery.Document, question string) string {
	var keywords []string
	for _, w := range strings.Fields(scrape.Normalize(question)) {
		if len(w) > 3 {
			keywords = append(keywords, w)
		}
	}
	if len(keywords) == 0 {
		return ""
	}
	for _, text := range visibleStrings(doc) {
		norm := scrape.Normalize(text)
		for _, kw := range keywords {
			if strings.Contains(norm, kw) {
				snippet := text
				if v.sanitizer != nil {
					snippet = v.sanitizer.Sanitize(snippet)
				}
				snippet = strings.TrimSpace(snippet)
				if runes := []rune(snippet); len(runes) > maxSnippetLen {
					snippet = string(runes[:maxSnippetLen])
				}
				return snippet
			}
		}
	}
	return ""
}
