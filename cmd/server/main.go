package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/sapt/auditor/internal/api"
	"github.com/sapt/auditor/internal/db"
	"github.com/sapt/auditor/internal/eval"
	"github.com/sapt/auditor/internal/report"
	"github.com/sapt/auditor/internal/resolve"
	"github.com/sapt/auditor/internal/scrape"
	"github.com/sapt/auditor/internal/verify"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	ctx := context.Background()

	// The database is optional: without DATABASE_URL the resolver
	// simply skips its stored-link tier.
	var store *db.Store
	if os.Getenv("DATABASE_URL") != "" {
		pool, err := db.Connect(ctx)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()
		if err := db.ApplyMigrations(ctx, pool); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		store = db.NewStore(pool)
	} else {
		log.Print("DATABASE_URL not set; running without a link store")
	}

	fetcher := scrape.NewHTTPFetcher(scrape.DefaultTimeout)
	prober := scrape.NewProber(fetcher)
	searcher := scrape.NewCachedSearcher(
		scrape.NewSearchCache(filepath.Join(dataDir, "search_cache.json"), 0),
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
	if store != nil {
		resolver.Store = store
	}

	orc := eval.NewOrchestrator(resolver, verify.NewVerifier(fetcher, prober), searcher)
	if store != nil {
		orc.Store = store
	}

	srv := api.NewServer(orc, report.NewWriter(filepath.Join(dataDir, "relatorios")), store)
	log.Printf("Server starting on port %s...", port)
	if err := srv.Start(port); err != nil {
		log.Fatal(err)
	}
}
