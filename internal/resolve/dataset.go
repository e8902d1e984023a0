package resolve

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sapt/auditor/internal/models"
	"github.com/sapt/auditor/internal/scrape"
)

//go:embed data/municipios.yaml
var municipiosYAML embed.FS

const placeholderValue = "a ser determinado"

// DatasetRow mirrors one row of the municipal portal reference sheet.
type DatasetRow struct {
	Name            string `yaml:"nome"`
	OfficialSite    string `yaml:"site_oficial"`
	CouncilSite     string `yaml:"site_camara"`
	ExecutivePower  string `yaml:"poder_executivo"`
	OfficialSiteURL string `yaml:"url_site_oficial"`
	Transparency    string `yaml:"portal_transparencia"`
}

type datasetFile struct {
	Municipalities []DatasetRow `yaml:"municipios"`
}

// Dataset wraps the municipal reference rows with normalized-name
// lookup.
type Dataset struct {
	rows []DatasetRow
}

// LoadDataset reads the embedded municipality sheet. When path is
// non-empty and readable it overrides the embedded copy, which keeps
// local corrections possible without a rebuild.
func LoadDataset(path string) (*Dataset, error) {
	data, err := municipiosYAML.ReadFile("data/municipios.yaml")
	if path != "" {
		if fsData, fsErr := os.ReadFile(path); fsErr == nil {
			data, err = fsData, nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read municipality dataset: %w", err)
	}

	var file datasetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse municipality dataset: %w", err)
	}
	return &Dataset{rows: file.Municipalities}, nil
}

// Rows returns every row in sheet order.
func (d *Dataset) Rows() []DatasetRow {
	out := make([]DatasetRow, len(d.rows))
	copy(out, d.rows)
	return out
}

// Municipalities returns the names of all rows in sheet order.
func (d *Dataset) Municipalities() []string {
	names := make([]string, 0, len(d.rows))
	for _, r := range d.rows {
		if r.Name != "" {
			names = append(names, r.Name)
		}
	}
	return names
}

// Lookup resolves a URL for an entity. Entity prefixes like
// "prefeitura de" are stripped before matching; exact matches against
// the normalized municipality name win over partial ones, first row in
// sheet order on ties.
func (d *Dataset) Lookup(entityName string, linkType models.LinkType) (string, bool) {
	term := scrape.StripKnownPrefix(entityName)
	if term == "" {
		return "", false
	}

	for _, row := range d.rows {
		if scrape.Normalize(row.Name) == term {
			if url, ok := row.extract(linkType); ok {
				return url, true
			}
		}
	}
	for _, row := range d.rows {
		rn := scrape.Normalize(row.Name)
		if rn == "" {
			continue
		}
		if strings.Contains(rn, term) || strings.Contains(term, rn) {
			if url, ok := row.extract(linkType); ok {
				return url, true
			}
		}
	}
	return "", false
}

func (r DatasetRow) extract(linkType models.LinkType) (string, bool) {
	var primary string
	switch linkType {
	case models.LinkOfficialSite:
		primary = r.OfficialSite
	case models.LinkCouncilSite:
		primary = r.CouncilSite
	case models.LinkTransparency:
		primary = r.Transparency
	default:
		return "", false
	}

	if url, ok := CleanURL(primary); ok {
		return url, true
	}
	// Secondary column fallback for official sites.
	if linkType == models.LinkOfficialSite {
		if url, ok := CleanURL(r.OfficialSiteURL); ok {
			return url, true
		}
	}
	return "", false
}

// CleanURL applies the spreadsheet URL conventions: parenthesized
// values are unwrapped, the "(a ser determinado)" placeholder means
// absent, scheme-less URLs get https.
func CleanURL(raw string) (string, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", false
	}
	if strings.Contains(strings.ToLower(v), placeholderValue) {
		return "", false
	}
	if strings.HasPrefix(v, "(") && strings.HasSuffix(v, ")") {
		v = strings.TrimSpace(v[1 : len(v)-1])
		if v == "" {
			return "", false
		}
	}
	if !strings.HasPrefix(v, "http://") && !strings.HasPrefix(v, "https://") {
		v = "https://" + v
	}
	return v, true
}
