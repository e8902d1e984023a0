package verify

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/sapt/auditor/internal/models"
	"github.com/sapt/auditor/internal/scrape"
)

func mustDoc(t *testing.T, body string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestLastDueQuadrimester(t *testing.T) {
	tests := []struct {
		date     string
		wantYear int
		wantQuad int
	}{
		// Q1 2024 is due 30 May; on 15 May only 2023 Q3 is due.
		{"2024-05-15", 2023, 3},
		{"2024-06-01", 2024, 1},
		{"2024-05-30", 2024, 1},
		{"2024-10-01", 2024, 2},
		{"2025-01-30", 2024, 3},
		{"2025-01-29", 2024, 2},
		{"2024-01-15", 2023, 3},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			d, err := time.Parse("2006-01-02", tt.date)
			if err != nil {
				t.Fatal(err)
			}
			y, q := LastDueQuadrimester(d)
			if y != tt.wantYear || q != tt.wantQuad {
				t.Errorf("LastDueQuadrimester(%s) = (%d, %d), want (%d, %d)",
					tt.date, y, q, tt.wantYear, tt.wantQuad)
			}
		})
	}
}

func TestHasCurrentQuadrimester(t *testing.T) {
	tests := []struct {
		name string
		text string
		quad int
		want bool
	}{
		{"accented ordinal", "Relatórios RGF — 2º Quadrimestre de 2024", 2, true},
		{"plain ordinal", "rgf 2o quadrimestre", 2, true},
		{"rgf alone is not enough", "Publicações do RGF disponíveis", 2, false},
		{"ordinal alone is not enough", "2º quadrimestre de 2024", 2, false},
		{"wrong quadrimester", "RGF 1º quadrimestre", 2, false},
		{"long form report name", "Relatório de Gestão Fiscal - 3º quadrimestre", 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasCurrentQuadrimester(tt.text, tt.quad); got != tt.want {
				t.Errorf("hasCurrentQuadrimester(%q, %d) = %v, want %v", tt.text, tt.quad, got, tt.want)
			}
		})
	}
}

func TestCheckRecency(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		body string
		want bool
	}{
		{
			name: "fresh date",
			body: `<html><body><p>Dados atualizados em 10/06/2024</p></body></html>`,
			want: true,
		},
		{
			name: "fresh date with time",
			body: `<html><body><span>Última atualização: 01/06/2024 08:30:00</span></body></html>`,
			want: true,
		},
		{
			name: "stale date",
			body: `<html><body><p>Atualizado em 10/01/2024</p></body></html>`,
			want: false,
		},
		{
			name: "synonym without date fails hard",
			body: `<html><body><p>Última atualização indisponível</p><p>Atualizado em 14/06/2024</p></body></html>`,
			want: false,
		},
		{
			name: "no synonym",
			body: `<html><body><p>Receitas de 10/06/2024</p></body></html>`,
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checkRecency(mustDoc(t, tt.body), now); got != tt.want {
				t.Errorf("checkRecency = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckHistoricalSeries(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		body string
		want bool
	}{
		{
			name: "year picker with full series",
			body: `<select name="exercicio">
				<option value="2024">2024</option>
				<option value="2023">2023</option>
				<option value="2022">2022</option>
				<option value="2021">2021</option>
			</select>`,
			want: true,
		},
		{
			name: "year picker missing a year",
			body: `<select name="ano">
				<option value="2023">2023</option>
				<option value="2022">2022</option>
			</select>`,
			want: false,
		},
		{
			name: "text scan with full series",
			body: `<p>Exercícios disponíveis: 2021, 2022, 2023</p>`,
			want: true,
		},
		{
			name: "text scan incomplete",
			body: `<p>Exercícios: 2023</p>`,
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checkHistoricalSeries(mustDoc(t, tt.body), now); got != tt.want {
				t.Errorf("checkHistoricalSeries = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckReportDownload(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{"csv link", `<a href="/relatorio.csv">Relatório</a>`, true},
		{"pdf with query string", `<a href="/download?file=contas.pdf&x=1">Contas</a>`, true},
		{"intent keyword on button", `<button>Exportar dados</button>`, true},
		{"intent keyword on link", `<a href="/x">Baixar planilha</a>`, true},
		{"nothing", `<a href="/sobre">Sobre</a>`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checkReportDownload(mustDoc(t, tt.body)); got != tt.want {
				t.Errorf("checkReportDownload = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckSearchFilter(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{"search input", `<input type="search">`, true},
		{"placeholder", `<input type="text" placeholder="Pesquisar no portal">`, true},
		{"aria label", `<input type="text" aria-label="Filtro de despesas">`, true},
		{"bare select counts", `<select><option>2024</option></select>`, true},
		{"filter button", `<button>Filtrar</button>`, true},
		{"nothing", `<p>Conteúdo estático</p>`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checkSearchFilter(mustDoc(t, tt.body)); got != tt.want {
				t.Errorf("checkSearchFilter = %v, want %v", got, tt.want)
			}
		})
	}
}

type pageFetcher struct {
	pages map[string]string
}

func (f *pageFetcher) Fetch(_ context.Context, rawURL string) (*scrape.Page, error) {
	body, ok := f.pages[rawURL]
	if !ok {
		return nil, fmt.Errorf("connection refused: %s", rawURL)
	}
	return &scrape.Page{URL: rawURL, StatusCode: 200, Body: []byte(body), FetchedAt: time.Now()}, nil
}

type alwaysProber struct{ up bool }

func (p alwaysProber) IsAvailable(context.Context, string) bool { return p.up }

func TestVerifyFiscalDataCriterion(t *testing.T) {
	body := `<html><body>
		<h1>Receita pública — previsão e arrecadação</h1>
		<p>Dados atualizados em 10/06/2024</p>
		<select name="exercicio">
			<option value="2023">2023</option>
			<option value="2022">2022</option>
			<option value="2021">2021</option>
		</select>
		<a href="/receitas.csv">Exportar CSV</a>
	</body></html>`

	v := NewVerifier(&pageFetcher{pages: map[string]string{"https://portal.example/receitas": body}}, alwaysProber{up: true})
	v.Now = func() time.Time { return time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC) }

	criterion := models.Criterion{ID: "3.1", Question: "Divulga informações sobre a receita pública?", Classification: models.ClassEssential}
	checks := []models.Check{
		models.CheckAvailability,
		models.CheckRecency,
		models.CheckHistoricalSeries,
		models.CheckReportDownload,
		models.CheckSearchFilter,
	}

	result := v.Verify(context.Background(), "https://portal.example/receitas", criterion, checks)
	for _, c := range checks {
		if !result.Checks[c] {
			t.Errorf("check %s = false, want true", c)
		}
	}
	if !result.Satisfied {
		t.Error("expected criterion satisfied")
	}
	if result.EvidenceURL != "https://portal.example/receitas" {
		t.Errorf("evidence URL = %q", result.EvidenceURL)
	}
	if result.Note == "" {
		t.Error("expected an evidence snippet on the note")
	}
}

func TestVerifyFetchFailureIsNegative(t *testing.T) {
	v := NewVerifier(&pageFetcher{}, alwaysProber{up: false})
	criterion := models.Criterion{ID: "3.1", Question: "Divulga informações sobre a receita pública?"}

	result := v.Verify(context.Background(), "https://unreachable.example/", criterion, []models.Check{models.CheckAvailability, models.CheckRecency})
	if result.Satisfied {
		t.Error("unreachable page must not satisfy")
	}
	for check, verdict := range result.Checks {
		if verdict {
			t.Errorf("check %s = true on unreachable page", check)
		}
	}
}

func TestVerifyFiscalReportUsesQuadrimesterCheck(t *testing.T) {
	body := `<html><body>
		<h1>Relatório de Gestão Fiscal</h1>
		<p>RGF — 1º quadrimestre de 2024 publicado.</p>
	</body></html>`
	v := NewVerifier(&pageFetcher{pages: map[string]string{"https://portal.example/rgf": body}}, alwaysProber{up: true})
	v.Now = func() time.Time { return time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC) }

	criterion := models.Criterion{ID: "11.7", Question: "Divulga Relatório de Gestão Fiscal (RGF) dos últimos 6 meses?"}
	result := v.Verify(context.Background(), "https://portal.example/rgf", criterion, []models.Check{models.CheckAvailability, models.CheckRecency})

	if !result.Checks[models.CheckRecency] {
		t.Error("expected the due quadrimester (2024 Q1) to be found")
	}
}

func TestVerifyFiscalReportWrongQuadrimester(t *testing.T) {
	body := `<html><body><p>RGF — 3º quadrimestre de 2022.</p></body></html>`
	v := NewVerifier(&pageFetcher{pages: map[string]string{"https://portal.example/rgf": body}}, alwaysProber{up: true})
	v.Now = func() time.Time { return time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC) }

	criterion := models.Criterion{ID: "11.7", Question: "Divulga Relatório de Gestão Fiscal (RGF) dos últimos 6 meses?"}
	result := v.Verify(context.Background(), "https://portal.example/rgf", criterion, []models.Check{models.CheckRecency})

	if result.Checks[models.CheckRecency] {
		t.Error("an old quadrimester must not pass the recency check")
	}
}

func TestVerifySiteQuestionNeedsOnlyAvailability(t *testing.T) {
	v := NewVerifier(&pageFetcher{pages: map[string]string{"https://www.example.am.gov.br/": "<html><body>ok</body></html>"}}, alwaysProber{up: true})
	criterion := models.Criterion{ID: "1.1", Question: "Possui sítio oficial próprio na internet?"}

	result := v.Verify(context.Background(), "https://www.example.am.gov.br/", criterion, []models.Check{models.CheckAvailability})
	if !result.Satisfied {
		t.Error("reachable site must satisfy the official-site criterion")
	}
}

func TestVerifyPortalQuestionNeedsAnchor(t *testing.T) {
	pages := map[string]string{
		"https://with.example/":    `<html><body><a href="/transparencia">Portal da Transparência</a></body></html>`,
		"https://without.example/": `<html><body><a href="/noticias">Notícias</a></body></html>`,
	}
	v := NewVerifier(&pageFetcher{pages: pages}, alwaysProber{up: true})
	criterion := models.Criterion{ID: "1.2", Question: "Possui portal da transparência próprio ou compartilhado na internet?"}

	if r := v.Verify(context.Background(), "https://with.example/", criterion, []models.Check{models.CheckAvailability}); !r.Satisfied {
		t.Error("page with transparency anchor must satisfy")
	}
	if r := v.Verify(context.Background(), "https://without.example/", criterion, []models.Check{models.CheckAvailability}); r.Satisfied {
		t.Error("page without transparency anchor must not satisfy")
	}
}

func TestKeywordDensity(t *testing.T) {
	doc := mustDoc(t, `<html><body><p>Informações sobre diárias e passagens pagas aos servidores</p></body></html>`)
	if d := keywordDensity(doc, "Divulga informações sobre diárias?"); d < 0.5 {
		t.Errorf("density = %f, want >= 0.5", d)
	}
	if d := keywordDensity(doc, "Divulga jurisprudência atualizada dos tribunais superiores?"); d >= 0.5 {
		t.Errorf("density = %f for unrelated question, want < 0.5", d)
	}
}
