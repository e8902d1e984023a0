package resolve

import (
	"context"
	"log"
	"net/url"
	"strings"

	"github.com/sapt/auditor/internal/models"
	"github.com/sapt/auditor/internal/scrape"
)

// courtOfAccountsHost is served by infrastructure that intermittently
// drops plain GET probes. Availability checks against it go to the
// transparency portal instead, which stays reachable.
const (
	courtOfAccountsHost     = "tce.am.gov.br"
	courtOfAccountsFallback = "https://transparencia.tce.am.gov.br/"
)

// AvailabilityProber answers whether a URL responds with HTTP 200.
type AvailabilityProber interface {
	IsAvailable(ctx context.Context, rawURL string) bool
}

// LinkStore persists resolved entity→URL mappings. A database-backed
// implementation lives in internal/db; the resolver treats it as
// optional.
type LinkStore interface {
	LookupLink(ctx context.Context, entityName string, linkType models.LinkType) (string, bool)
	SaveLink(ctx context.Context, link models.Link) error
}

// Resolver walks the fallback ladder for one (entity, link type) pair:
// static registry, stored links, reference dataset, direct-domain
// probing, transparency anchors on the official site, then web search.
type Resolver struct {
	Dataset  *Dataset
	Prober   AvailabilityProber
	Fetcher  scrape.Fetcher
	Searcher scrape.Searcher
	Store    LinkStore // optional
}

// Resolve returns the URL for an entity's link type, or ok=false when
// every tier comes up empty. officialSite, when already known, enables
// the anchor-scan tier for transparency portals; pass "" otherwise.
func (r *Resolver) Resolve(ctx context.Context, entityName string, linkType models.LinkType, officialSite string) (string, bool) {
	if strings.TrimSpace(entityName) == "" {
		return "", false
	}

	if u, ok := LookupKnown(entityName, linkType); ok {
		return u, true
	}

	if r.Store != nil {
		if u, ok := r.Store.LookupLink(ctx, entityName, linkType); ok {
			return u, true
		}
	}

	if r.Dataset != nil {
		if u, ok := r.Dataset.Lookup(entityName, linkType); ok {
			return u, true
		}
		// Council names sometimes only have the council column filled
		// under the bare municipality row.
		if linkType != models.LinkCouncilSite && strings.Contains(scrape.Normalize(entityName), "camara") {
			if u, ok := r.Dataset.Lookup(entityName, models.LinkCouncilSite); ok {
				return u, true
			}
		}
	}

	if u, ok := r.probeDirectDomains(ctx, entityName, linkType); ok {
		return u, true
	}

	if linkType == models.LinkTransparency && officialSite != "" && r.Fetcher != nil {
		if anchors := FindTransparencyAnchors(ctx, r.Fetcher, officialSite); len(anchors) > 0 {
			return anchors[0].URL, true
		}
	}

	if r.Searcher != nil {
		query := searchQuery(entityName, linkType)
		if results := r.Searcher.Search(ctx, query, 3); len(results) > 0 {
			u := results[0]
			r.persist(ctx, entityName, linkType, u)
			return u, true
		}
	}

	return "", false
}

// probeDirectDomains guesses state-domain URLs from the simplified
// entity name and takes the first reachable one.
func (r *Resolver) probeDirectDomains(ctx context.Context, entityName string, linkType models.LinkType) (string, bool) {
	if r.Prober == nil {
		return "", false
	}
	name := strings.ReplaceAll(scrape.StripKnownPrefix(entityName), " ", "")
	if name == "" {
		return "", false
	}

	var candidates []string
	switch linkType {
	case models.LinkOfficialSite:
		candidates = []string{
			"https://www." + name + ".am.gov.br",
			"https://" + name + ".am.gov.br",
			"https://www.prefeitura" + name + ".am.gov.br",
			"https://prefeitura" + name + ".am.gov.br",
		}
	case models.LinkTransparency:
		candidates = []string{
			"https://transparencia." + name + ".am.gov.br",
			"https://" + name + ".am.gov.br/transparencia",
			"https://www." + name + ".am.gov.br/transparencia",
			"https://transparencia." + name + ".leg.br",
		}
	default:
		return "", false
	}

	for _, candidate := range candidates {
		if r.Prober.IsAvailable(ctx, candidate) {
			return candidate, true
		}
		if ctx.Err() != nil {
			return "", false
		}
	}
	return "", false
}

func (r *Resolver) persist(ctx context.Context, entityName string, linkType models.LinkType, u string) {
	if r.Store == nil {
		return
	}
	err := r.Store.SaveLink(ctx, models.Link{
		EntityName: entityName,
		Type:       linkType,
		URL:        u,
		Active:     true,
	})
	if err != nil {
		log.Printf("failed to persist resolved link for %s: %v", entityName, err)
	}
}

func searchQuery(entityName string, linkType models.LinkType) string {
	switch linkType {
	case models.LinkTransparency:
		return entityName + " portal transparência"
	case models.LinkCouncilSite:
		return entityName + " câmara municipal site oficial"
	default:
		return entityName + " site oficial"
	}
}

// AvailabilityTarget maps a resolved URL to the one availability checks
// should actually probe. Only the court-of-accounts host is remapped.
func AvailabilityTarget(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	host := strings.ToLower(parsed.Hostname())
	if host == courtOfAccountsHost || strings.HasSuffix(host, "."+courtOfAccountsHost) {
		return courtOfAccountsFallback
	}
	return rawURL
}
