package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sapt/auditor/internal/eval"
	"github.com/sapt/auditor/internal/report"
	"github.com/sapt/auditor/internal/resolve"
	"github.com/sapt/auditor/internal/scrape"
	"github.com/sapt/auditor/internal/verify"
)

func main() {
	entity := flag.String("orgao", "", "Nome do órgão a avaliar")
	entityType := flag.String("tipo", "", "Tipo de órgão (matriz específica), opcional")
	dataDir := flag.String("dados", "data", "Diretório de dados (cache de busca)")
	reportDir := flag.String("relatorios", "relatorios", "Diretório de saída dos relatórios")
	formatsCSV := flag.String("formatos", "", "Formatos de relatório (csv,json,txt,xml,ods); vazio gera todos")
	flag.Parse()

	if strings.TrimSpace(*entity) == "" {
		fmt.Fprintln(os.Stderr, "uso: evaluate -orgao \"Prefeitura de Manaus\" [-tipo tribunal-contas]")
		os.Exit(2)
	}

	var formats []report.Format
	if *formatsCSV != "" {
		for _, name := range strings.Split(*formatsCSV, ",") {
			f, err := report.ParseFormat(name)
			if err != nil {
				log.Fatal(err)
			}
			formats = append(formats, f)
		}
	}

	fetcher := scrape.NewHTTPFetcher(scrape.DefaultTimeout)
	prober := scrape.NewProber(fetcher)
	searcher := scrape.NewCachedSearcher(
		scrape.NewSearchCache(filepath.Join(*dataDir, "search_cache.json"), 0),
		scrape.NewWebSearcher(),
	)

	dataset, err := resolve.LoadDataset(os.Getenv("MUNICIPIOS_PATH"))
	if err != nil {
		log.Printf("Reference dataset unavailable: %v", err)
	}

	resolver := &resolve.Resolver{
		Dataset:  dataset,
		Prober:   prober,
		Fetcher:  fetcher,
		Searcher: searcher,
	}
	orc := eval.NewOrchestrator(resolver, verify.NewVerifier(fetcher, prober), searcher)

	run, err := orc.Start(context.Background(), *entity, *entityType)
	if err != nil {
		log.Fatal(err)
	}

	for ev := range run.Events {
		switch ev.Kind {
		case eval.EventStatus:
			fmt.Printf("[%3.0f%%] %s\n", ev.Progress, ev.Message)
		case eval.EventResult:
			verdict := "NÃO"
			if ev.Result.Satisfied {
				verdict = "SIM"
			}
			fmt.Printf("       %-5s %s  %s\n", ev.Result.ID, verdict, ev.Result.Question)
		case eval.EventError:
			fmt.Fprintf(os.Stderr, "erro: %s\n", ev.Message)
		}
	}

	results := run.Results()
	summary := run.Summary()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Classificação", "Atende", "Evidência"})
	for _, r := range results {
		evidence := r.EvidenceURL
		if evidence == "" {
			evidence = "-"
		}
		t.AppendRow(table.Row{r.ID, string(r.Classification), simNao(r.Satisfied), evidence})
	}
	if summary != nil {
		t.AppendFooter(table.Row{"", "Atendidos", fmt.Sprintf("%d/%d", summary.Satisfied, summary.Total), ""})
	}
	t.Render()

	paths, err := report.NewWriter(*reportDir).WriteAll(results, *entity, formats...)
	if err != nil {
		log.Printf("report generation: %v", err)
	}
	for f, path := range paths {
		fmt.Printf("relatório %s: %s\n", f, path)
	}
}

func simNao(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}
