package resolve

import (
	"context"
	"testing"
	"time"

	"github.com/sapt/auditor/internal/models"
	"github.com/sapt/auditor/internal/scrape"
)

func TestLookupKnown(t *testing.T) {
	tests := []struct {
		name     string
		entity   string
		linkType models.LinkType
		want     string
		wantOK   bool
	}{
		{"exact match", "Prefeitura de Manaus", models.LinkOfficialSite, "https://www.manaus.am.gov.br/", true},
		{"exact case and accent insensitive", "prefeitura de manaus", models.LinkTransparency, "https://transparencia.manaus.am.gov.br/", true},
		{"partial match short form", "TCE-AM", models.LinkTransparency, "https://transparencia.tce.am.gov.br/", true},
		{"partial match substring", "Ministério Público do Estado do Amazonas - Sede", models.LinkOfficialSite, "https://www.mpam.mp.br/", true},
		{"unknown entity", "Prefeitura de Parintins", models.LinkOfficialSite, "", false},
		{"empty name", "", models.LinkOfficialSite, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LookupKnown(tt.entity, tt.linkType)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("LookupKnown(%q, %s) = (%q, %v), want (%q, %v)",
					tt.entity, tt.linkType, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDatasetLookup(t *testing.T) {
	ds, err := LoadDataset("")
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	if len(ds.Municipalities()) < 10 {
		t.Fatalf("dataset has %d municipalities", len(ds.Municipalities()))
	}

	tests := []struct {
		name     string
		entity   string
		linkType models.LinkType
		want     string
		wantOK   bool
	}{
		{"plain municipality", "Manaus", models.LinkTransparency, "https://transparencia.manaus.am.gov.br", true},
		{"prefix stripped", "Prefeitura de Itacoatiara", models.LinkOfficialSite, "https://www.itacoatiara.am.gov.br", true},
		{"accented name", "Prefeitura de Tefé", models.LinkOfficialSite, "https://tefe.am.gov.br", true},
		{"parenthesized portal unwrapped", "Parintins", models.LinkTransparency, "https://transparencia.parintins.am.gov.br", true},
		{"scheme added", "Parintins", models.LinkOfficialSite, "https://parintins.am.gov.br", true},
		{"placeholder treated absent", "Tabatinga", models.LinkTransparency, "", false},
		{"secondary column fallback", "Borba", models.LinkOfficialSite, "https://borba.am.gov.br", true},
		{"council site", "Câmara Municipal de Manaus", models.LinkCouncilSite, "https://www.cmm.am.gov.br", true},
		{"unknown municipality", "Prefeitura de Vila Nova", models.LinkOfficialSite, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ds.Lookup(tt.entity, tt.linkType)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Lookup(%q, %s) = (%q, %v), want (%q, %v)",
					tt.entity, tt.linkType, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

type fakeProber struct {
	available map[string]bool
	probed    []string
}

func (p *fakeProber) IsAvailable(_ context.Context, rawURL string) bool {
	p.probed = append(p.probed, rawURL)
	return p.available[rawURL]
}

type fakeSearcher struct {
	results map[string][]string
	calls   int
}

func (s *fakeSearcher) Search(_ context.Context, query string, _ int) []string {
	s.calls++
	return s.results[query]
}

type fakeFetcher struct {
	pages map[string]string
}

func (f *fakeFetcher) Fetch(_ context.Context, rawURL string) (*scrape.Page, error) {
	body, ok := f.pages[rawURL]
	if !ok {
		return &scrape.Page{URL: rawURL, StatusCode: 404, FetchedAt: time.Now()}, nil
	}
	return &scrape.Page{URL: rawURL, StatusCode: 200, Body: []byte(body), FetchedAt: time.Now()}, nil
}

type fakeStore struct {
	links map[string]string
	saved []models.Link
}

func (s *fakeStore) LookupLink(_ context.Context, entityName string, linkType models.LinkType) (string, bool) {
	u, ok := s.links[entityName+"|"+string(linkType)]
	return u, ok
}

func (s *fakeStore) SaveLink(_ context.Context, link models.Link) error {
	s.saved = append(s.saved, link)
	return nil
}

func newTestResolver(t *testing.T) (*Resolver, *fakeProber, *fakeSearcher, *fakeStore) {
	t.Helper()
	ds, err := LoadDataset("")
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	prober := &fakeProber{available: map[string]bool{}}
	searcher := &fakeSearcher{results: map[string][]string{}}
	store := &fakeStore{links: map[string]string{}}
	r := &Resolver{
		Dataset:  ds,
		Prober:   prober,
		Fetcher:  &fakeFetcher{},
		Searcher: searcher,
		Store:    store,
	}
	return r, prober, searcher, store
}

func TestResolverRegistryShortCircuits(t *testing.T) {
	r, prober, searcher, _ := newTestResolver(t)

	got, ok := r.Resolve(context.Background(), "Prefeitura de Manaus", models.LinkOfficialSite, "")
	if !ok || got != "https://www.manaus.am.gov.br/" {
		t.Fatalf("Resolve = (%q, %v)", got, ok)
	}
	if len(prober.probed) != 0 {
		t.Errorf("prober called %d times on a registry hit", len(prober.probed))
	}
	if searcher.calls != 0 {
		t.Errorf("searcher called %d times on a registry hit", searcher.calls)
	}
}

func TestResolverStoreTier(t *testing.T) {
	r, _, searcher, store := newTestResolver(t)
	store.links["Instituto Alfa|site_oficial"] = "https://institutoalfa.am.gov.br/"

	got, ok := r.Resolve(context.Background(), "Instituto Alfa", models.LinkOfficialSite, "")
	if !ok || got != "https://institutoalfa.am.gov.br/" {
		t.Fatalf("Resolve = (%q, %v)", got, ok)
	}
	if searcher.calls != 0 {
		t.Error("searcher must not run when the store has the link")
	}
}

func TestResolverDirectDomainTier(t *testing.T) {
	r, prober, searcher, _ := newTestResolver(t)
	prober.available["https://novoairao.am.gov.br"] = true

	got, ok := r.Resolve(context.Background(), "Prefeitura de Novo Airão", models.LinkOfficialSite, "")
	if !ok || got != "https://novoairao.am.gov.br" {
		t.Fatalf("Resolve = (%q, %v)", got, ok)
	}
	// First pattern tried and rejected before the bare-domain hit.
	if len(prober.probed) == 0 || prober.probed[0] != "https://www.novoairao.am.gov.br" {
		t.Errorf("probe order wrong: %v", prober.probed)
	}
	if searcher.calls != 0 {
		t.Error("searcher must not run when direct probing succeeds")
	}
}

func TestResolverAnchorTierForPortal(t *testing.T) {
	r, _, searcher, _ := newTestResolver(t)
	r.Fetcher = &fakeFetcher{pages: map[string]string{
		"https://novoairao.am.gov.br": `<html><body>
			<a href="/noticias">Notícias</a>
			<a href="/portal-da-transparencia">Portal da Transparência</a>
		</body></html>`,
	}}

	got, ok := r.Resolve(context.Background(), "Prefeitura de Novo Airão", models.LinkTransparency, "https://novoairao.am.gov.br")
	if !ok || got != "https://novoairao.am.gov.br/portal-da-transparencia" {
		t.Fatalf("Resolve = (%q, %v)", got, ok)
	}
	if searcher.calls != 0 {
		t.Error("searcher must not run when an anchor matches")
	}
}

func TestResolverSearchTierPersists(t *testing.T) {
	r, _, searcher, store := newTestResolver(t)
	searcher.results["Prefeitura de Vila Nova site oficial"] = []string{
		"https://vilanova.am.gov.br/",
		"https://outra.coisa.example/",
	}

	got, ok := r.Resolve(context.Background(), "Prefeitura de Vila Nova", models.LinkOfficialSite, "")
	if !ok || got != "https://vilanova.am.gov.br/" {
		t.Fatalf("Resolve = (%q, %v)", got, ok)
	}
	if searcher.calls != 1 {
		t.Errorf("searcher called %d times, want 1", searcher.calls)
	}
	if len(store.saved) != 1 || store.saved[0].URL != "https://vilanova.am.gov.br/" || !store.saved[0].Active {
		t.Errorf("saved links: %+v", store.saved)
	}
}

func TestResolverAllTiersMiss(t *testing.T) {
	r, _, _, _ := newTestResolver(t)
	if got, ok := r.Resolve(context.Background(), "Entidade Inexistente XYZ", models.LinkTransparency, ""); ok {
		t.Errorf("expected miss, got %q", got)
	}
}

func TestFindTransparencyAnchors(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{
		"https://example.am.gov.br/inicio": `<html><body>
			<a href="https://transparencia.example.am.gov.br">Acesso à Informação</a>
			<a href="sobre/equipe">Equipe</a>
			<a href="/transparencia/relatorios">Relatórios</a>
			<a href="#">Topo</a>
		</body></html>`,
	}}

	anchors := FindTransparencyAnchors(context.Background(), fetcher, "https://example.am.gov.br/inicio")
	if len(anchors) != 2 {
		t.Fatalf("got %d anchors: %+v", len(anchors), anchors)
	}
	if anchors[0].URL != "https://transparencia.example.am.gov.br" {
		t.Errorf("first anchor = %q", anchors[0].URL)
	}
	if anchors[1].URL != "https://example.am.gov.br/transparencia/relatorios" {
		t.Errorf("relative href resolved to %q", anchors[1].URL)
	}
}

func TestAvailabilityTarget(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://www.tce.am.gov.br/", "https://transparencia.tce.am.gov.br/"},
		{"https://www2.tce.am.gov.br/contas", "https://transparencia.tce.am.gov.br/"},
		{"https://www.manaus.am.gov.br/", "https://www.manaus.am.gov.br/"},
		{"not a url", "not a url"},
	}
	for _, tt := range tests {
		if got := AvailabilityTarget(tt.in); got != tt.want {
			t.Errorf("AvailabilityTarget(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
