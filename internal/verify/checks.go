package verify

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/sapt/auditor/internal/scrape"
)

// recencySynonyms flag a "last updated" label near a date. Matching is
// on normalized text.
var recencySynonyms = []string{
	"dados atualizados em",
	"ultima atualizacao",
	"atualizado em",
	"atualizacao",
	"atualizado",
}

const maxDataAge = 30 * 24 * time.Hour

var (
	recencyDateRe   = regexp.MustCompile(`(\d{2}/\d{2}/\d{4})(?:\s+(\d{2}:\d{2}:\d{2}))?`)
	yearPickerRe    = regexp.MustCompile(`(?i)ano|exercicio`)
	yearTokenRe     = regexp.MustCompile(`\b(20\d{2})\b`)
	searchFieldRe   = regexp.MustCompile(`(?i)pesquisa|search|filtro|busca`)
	filterActionRe  = regexp.MustCompile(`(?i)filtrar|pesquisar|buscar`)
	downloadKeyword = []string{"download", "exportar", "baixar", "salvar", "gerar"}
)

var downloadExtensions = []string{
	".xls", ".xlsx", ".csv", ".txt", ".odt", ".ods", ".rtf", ".json", ".pdf",
}

// checkRecency scans visible text in document order for the first
// recency synonym. A parseable DD/MM/YYYY (optionally HH:MM:SS) date
// must follow in the same text node and be at most 30 days old; a
// synonym without a parseable date is a negative verdict, not a skip.
func checkRecency(doc *goquery.Document, now time.Time) bool {
	for _, text := range visibleStrings(doc) {
		norm := scrape.Normalize(text)
		matched := false
		for _, syn := range recencySynonyms {
			if strings.Contains(norm, syn) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		m := recencyDateRe.FindStringSubmatch(text)
		if m == nil {
			return false
		}
		value, layout := m[1], "02/01/2006"
		if m[2] != "" {
			value += " " + m[2]
			layout = "02/01/2006 15:04:05"
		}
		parsed, err := time.ParseInLocation(layout, value, now.Location())
		if err != nil {
			return false
		}
		return now.Sub(parsed) <= maxDataAge
	}
	return false
}

// checkHistoricalSeries wants the three full years before the current
// one to be selectable. A year picker (<select> named ano/exercicio)
// is consulted first; without one, every 20xx token in the page text
// counts.
func checkHistoricalSeries(doc *goquery.Document, now time.Time) bool {
	currentYear := now.Year()
	want := []int{currentYear - 1, currentYear - 2, currentYear - 3}

	years := map[int]bool{}
	picker := doc.Find("select").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		name, _ := sel.Attr("name")
		id, _ := sel.Attr("id")
		return yearPickerRe.MatchString(name) || yearPickerRe.MatchString(id)
	})
	if picker.Length() > 0 {
		picker.First().Find("option").Each(func(_ int, opt *goquery.Selection) {
			if v, ok := opt.Attr("value"); ok {
				if y, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
					years[y] = true
				}
			}
		})
	} else {
		for _, tok := range yearTokenRe.FindAllString(doc.Text(), -1) {
			if y, err := strconv.Atoi(tok); err == nil {
				years[y] = true
			}
		}
	}

	for _, y := range want {
		if !years[y] {
			return false
		}
	}
	return true
}

// checkReportDownload looks for export capability: anchors to known
// file formats, or download-intent wording on links and buttons.
func checkReportDownload(doc *goquery.Document) bool {
	found := false
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		href = strings.ToLower(href)
		for _, ext := range downloadExtensions {
			if strings.Contains(href, ext) {
				found = true
				return false
			}
		}
		return true
	})
	if found {
		return true
	}

	doc.Find("a, button").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := scrape.Normalize(sel.Text())
		for _, kw := range downloadKeyword {
			if strings.Contains(text, kw) {
				found = true
				return false
			}
		}
		return true
	})
	return found
}

// checkSearchFilter accepts any of: a search input, an input labeled
// for searching or filtering, any <select>, or a button/link with a
// filter verb. The bare-<select> clause is deliberately broad and
// mirrors how auditors read these pages.
func checkSearchFilter(doc *goquery.Document) bool {
	if doc.Find(`input[type="search"]`).Length() > 0 {
		return true
	}

	labeled := false
	doc.Find("input").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		placeholder, _ := sel.Attr("placeholder")
		ariaLabel, _ := sel.Attr("aria-label")
		if searchFieldRe.MatchString(placeholder) || searchFieldRe.MatchString(ariaLabel) {
			labeled = true
			return false
		}
		return true
	})
	if labeled {
		return true
	}

	if doc.Find("select").Length() > 0 {
		return true
	}

	action := false
	doc.Find("button, a").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if filterActionRe.MatchString(sel.Text()) {
			action = true
			return false
		}
		return true
	})
	return action
}

// keywordDensity reports the share of question keywords (longer than
// three characters, normalized) present in the page text.
func keywordDensity(doc *goquery.Document, question string) float64 {
	text := scrape.Normalize(doc.Text())
	var keywords []string
	for _, w := range strings.Fields(scrape.Normalize(question)) {
		if len(w) > 3 {
			keywords = append(keywords, w)
		}
	}
	if len(keywords) == 0 {
		return 0
	}
	matches := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			matches++
		}
	}
	return float64(matches) / float64(len(keywords))
}

// visibleStrings returns the page's non-empty text nodes in document
// order, skipping script and style content.
func visibleStrings(doc *goquery.Document) []string {
	var out []string
	for _, root := range doc.Nodes {
		collectText(root, &out)
	}
	return out
}

func collectText(n *html.Node, out *[]string) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript":
			return
		}
	}
	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			*out = append(*out, text)
		}
		return
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, out)
	}
}
