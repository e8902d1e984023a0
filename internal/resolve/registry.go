// Package resolve turns public entity names into authoritative URLs.
// It layers a static registry of well-known state bodies, a reference
// dataset of municipal portals, direct-domain probing, transparency
// anchor scanning and web search into a single fallback ladder.
package resolve

import (
	"strings"

	"github.com/sapt/auditor/internal/models"
	"github.com/sapt/auditor/internal/scrape"
)

type registryEntry struct {
	name string
	urls map[models.LinkType]string
}

// knownEntities lists state bodies whose URLs never need discovery.
// Iteration order matters: partial matching takes the first hit.
var knownEntities = []registryEntry{
	{
		name: "Tribunal de Contas do Estado do Amazonas",
		urls: map[models.LinkType]string{
			models.LinkOfficialSite: "https://www.tce.am.gov.br/",
			models.LinkTransparency: "https://transparencia.tce.am.gov.br/",
		},
	},
	{
		name: "TCE-AM",
		urls: map[models.LinkType]string{
			models.LinkOfficialSite: "https://www.tce.am.gov.br/",
			models.LinkTransparency: "https://transparencia.tce.am.gov.br/",
		},
	},
	{
		name: "Governo do Estado do Amazonas",
		urls: map[models.LinkType]string{
			models.LinkOfficialSite: "https://www.am.gov.br/",
			models.LinkTransparency: "http://www.transparencia.am.gov.br/",
		},
	},
	{
		name: "Assembleia Legislativa do Estado do Amazonas",
		urls: map[models.LinkType]string{
			models.LinkOfficialSite: "https://www.aleam.gov.br/",
			models.LinkTransparency: "https://www.aleam.gov.br/transparencia/",
		},
	},
	{
		name: "Tribunal de Justiça do Amazonas",
		urls: map[models.LinkType]string{
			models.LinkOfficialSite: "https://www.tjam.jus.br/",
			models.LinkTransparency: "https://www.tjam.jus.br/index.php/transparencia",
		},
	},
	{
		name: "Ministério Público do Estado do Amazonas",
		urls: map[models.LinkType]string{
			models.LinkOfficialSite: "https://www.mpam.mp.br/",
			models.LinkTransparency: "https://www.mpam.mp.br/transparencia",
		},
	},
	{
		name: "Defensoria Pública do Estado do Amazonas",
		urls: map[models.LinkType]string{
			models.LinkOfficialSite: "https://defensoria.am.def.br/",
			models.LinkTransparency: "https://defensoria.am.def.br/portal-da-transparencia/",
		},
	},
	{
		name: "Prefeitura de Manaus",
		urls: map[models.LinkType]string{
			models.LinkOfficialSite: "https://www.manaus.am.gov.br/",
			models.LinkTransparency: "https://transparencia.manaus.am.gov.br/",
		},
	},
	{
		name: "Secretaria de Estado da Fazenda do Amazonas",
		urls: map[models.LinkType]string{
			models.LinkOfficialSite: "https://www.sefaz.am.gov.br/",
			models.LinkTransparency: "http://sistemas.sefaz.am.gov.br/transparencia/",
		},
	},
}

// LookupKnown finds a URL for a well-known entity. Exact normalized
// matches win over partial ones; within each pass the first entry in
// declaration order is taken.
func LookupKnown(entityName string, linkType models.LinkType) (string, bool) {
	norm := scrape.Normalize(entityName)
	if norm == "" {
		return "", false
	}

	for _, e := range knownEntities {
		if scrape.Normalize(e.name) == norm {
			url, ok := e.urls[linkType]
			return url, ok && url != ""
		}
	}
	for _, e := range knownEntities {
		en := scrape.Normalize(e.name)
		if strings.Contains(en, norm) || strings.Contains(norm, en) {
			url, ok := e.urls[linkType]
			return url, ok && url != ""
		}
	}
	return "", false
}
