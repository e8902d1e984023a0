// importlinks seeds the link store from a YAML file of entities and
// their known URLs. Placeholder and parenthesized cells are cleaned
// the same way the reference dataset is.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sapt/auditor/internal/db"
	"github.com/sapt/auditor/internal/models"
	"github.com/sapt/auditor/internal/resolve"
)

type seedEntry struct {
	EntityName   string `yaml:"orgao"`
	OfficialSite string `yaml:"site_oficial"`
	CouncilSite  string `yaml:"site_camara"`
	Transparency string `yaml:"portal_transparencia"`
}

type seedFile struct {
	Links []seedEntry `yaml:"links"`
}

func main() {
	path := flag.String("arquivo", "data/links.yaml", "Arquivo YAML com os links a importar")
	flag.Parse()

	data, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *path, err)
	}
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		log.Fatalf("Failed to parse %s: %v", *path, err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()
	if err := db.ApplyMigrations(ctx, pool); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	store := db.NewStore(pool)

	imported := 0
	for _, entry := range seed.Links {
		if strings.TrimSpace(entry.EntityName) == "" {
			continue
		}
		for linkType, raw := range map[models.LinkType]string{
			models.LinkOfficialSite: entry.OfficialSite,
			models.LinkCouncilSite:  entry.CouncilSite,
			models.LinkTransparency: entry.Transparency,
		} {
			u, ok := resolve.CleanURL(raw)
			if !ok {
				continue
			}
			err := store.SaveLink(ctx, models.Link{
				EntityName: entry.EntityName,
				Type:       linkType,
				URL:        u,
				Active:     true,
			})
			if err != nil {
				log.Printf("Skipping %s/%s: %v", entry.EntityName, linkType, err)
				continue
			}
			imported++
		}
	}

	fmt.Printf("Importação concluída: %d links\n", imported)
}
