package verify

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	rpdf "rsc.io/pdf"

	"github.com/sapt/auditor/internal/models"
	"github.com/sapt/auditor/internal/scrape"
)

// isFiscalReportCriterion matches the RGF questions, which get a
// quadrimester-specific recency check instead of the generic one.
func isFiscalReportCriterion(c models.Criterion) bool {
	q := scrape.Normalize(c.Question)
	return strings.Contains(q, "gestao fiscal") || strings.Contains(q, "rgf")
}

// hasCurrentQuadrimester reports whether text mentions the RGF together
// with the ordinal phrase of the given quadrimester ("2º quadrimestre"
// or "2o quadrimestre" for quadrimester 2).
func hasCurrentQuadrimester(text string, quadrimester int) bool {
	norm := scrape.Normalize(text)
	if !strings.Contains(norm, "rgf") && !strings.Contains(norm, "relatorio de gestao fiscal") && !strings.Contains(norm, "relatorios de gestao fiscal") {
		return false
	}
	accented := fmt.Sprintf("%dº quadrimestre", quadrimester)
	plain := fmt.Sprintf("%do quadrimestre", quadrimester)
	return strings.Contains(norm, scrape.Normalize(accented)) || strings.Contains(norm, plain)
}

// checkFiscalReportRecency verifies the page (or, failing that, the
// first PDF it links to) mentions the last legally due quadrimester.
func (v *Verifier) checkFiscalReportRecency(ctx context.Context, doc *goquery.Document, pageURL string, quadrimester int) bool {
	if hasCurrentQuadrimester(doc.Text(), quadrimester) {
		return true
	}

	pdfURL := firstPDFLink(doc, pageURL)
	if pdfURL == "" || v.Fetcher == nil {
		return false
	}
	page, err := v.Fetcher.Fetch(ctx, pdfURL)
	if err != nil || page.StatusCode != 200 {
		return false
	}
	text, err := extractPDFText(page.Body)
	if err != nil {
		return false
	}
	return hasCurrentQuadrimester(text, quadrimester)
}

func firstPDFLink(doc *goquery.Document, pageURL string) string {
	var found string
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		if strings.Contains(strings.ToLower(href), ".pdf") {
			found = href
			return false
		}
		return true
	})
	if found == "" {
		return ""
	}
	if base, err := url.Parse(pageURL); err == nil {
		if ref, err := base.Parse(found); err == nil {
			return ref.String()
		}
	}
	return found
}

// extractPDFText pulls the text fragments out of a PDF. The parser
// panics on malformed files, so the panic is converted to an error.
func extractPDFText(content []byte) (text string, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("pdf parser panic: %v", recovered)
			text = ""
		}
	}()

	reader, err := rpdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	for pageIndex := 1; pageIndex <= reader.NumPage(); pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		for _, fragment := range page.Content().Text {
			builder.WriteString(fragment.S)
			builder.WriteString(" ")
		}
		builder.WriteString("\n")
	}
	return builder.String(), nil
}
