package catalog

import (
	"testing"

	"github.com/sapt/auditor/internal/models"
)

func TestBaseCatalogIntegrity(t *testing.T) {
	criteria := Base()
	if len(criteria) < 60 {
		t.Fatalf("base catalog has %d criteria, want at least 60", len(criteria))
	}

	seen := map[string]bool{}
	for _, c := range criteria {
		if c.ID == "" || c.Question == "" || c.Dimension == "" || c.LegalBasis == "" {
			t.Errorf("criterion %q has empty fields: %+v", c.ID, c)
		}
		if seen[c.ID] {
			t.Errorf("duplicate criterion id %q", c.ID)
		}
		seen[c.ID] = true
		switch c.Classification {
		case models.ClassEssential, models.ClassMandatory, models.ClassRecommended:
		default:
			t.Errorf("criterion %q has unknown classification %q", c.ID, c.Classification)
		}
	}
}

func TestBaseReturnsCopy(t *testing.T) {
	a := Base()
	a[0].Question = "mutated"
	b := Base()
	if b[0].Question == "mutated" {
		t.Error("Base must not expose internal state")
	}
}

func TestByID(t *testing.T) {
	c, ok := ByID("11.7")
	if !ok {
		t.Fatal("expected to find criterion 11.7")
	}
	if c.Classification != models.ClassEssential {
		t.Errorf("11.7 classification = %q", c.Classification)
	}
	if _, ok := ByID("99.9"); ok {
		t.Error("expected miss for unknown id")
	}
}

func TestForMatrix(t *testing.T) {
	tests := []struct {
		matrix  string
		minRows int
		wantID  string
	}{
		{MatrixExecutive, 15, "11.8"},
		{MatrixLegislative, 11, "20.1"},
		{MatrixCourtOfAccounts, 12, "22.6"},
		{MatrixProsecution, 4, "23.2"},
		{MatrixPublicDefender, 3, "24.1"},
		{MatrixConsortia, 8, "25.3"},
		{MatrixExecutiveConsortia, 1, "11.6"},
	}
	for _, tt := range tests {
		t.Run(tt.matrix, func(t *testing.T) {
			rows := ForMatrix(tt.matrix)
			if len(rows) < tt.minRows {
				t.Fatalf("matrix %s has %d rows, want at least %d", tt.matrix, len(rows), tt.minRows)
			}
			found := false
			for _, c := range rows {
				if c.ID == tt.wantID {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("matrix %s missing criterion %s", tt.matrix, tt.wantID)
			}
		})
	}

	if rows := ForMatrix("inexistente"); len(rows) != 0 {
		t.Errorf("unknown matrix returned %d rows", len(rows))
	}
}

func TestChecksFor(t *testing.T) {
	tests := []struct {
		id   string
		want []models.Check
	}{
		{"1.1", []models.Check{models.CheckAvailability}},
		{"2.9", []models.Check{models.CheckAvailability}},
		{"3.1", []models.Check{
			models.CheckAvailability,
			models.CheckRecency,
			models.CheckHistoricalSeries,
			models.CheckReportDownload,
			models.CheckSearchFilter,
		}},
		{"4.1", []models.Check{
			models.CheckAvailability,
			models.CheckRecency,
			models.CheckHistoricalSeries,
			models.CheckReportDownload,
			models.CheckSearchFilter,
		}},
		{"11.7", []models.Check{models.CheckAvailability, models.CheckRecency}},
		{"99.9", []models.Check{models.CheckAvailability}},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got := ChecksFor(tt.id)
			if len(got) != len(tt.want) {
				t.Fatalf("ChecksFor(%s) = %v, want %v", tt.id, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ChecksFor(%s)[%d] = %v, want %v", tt.id, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestChecksForReturnsCopy(t *testing.T) {
	a := ChecksFor("3.1")
	a[0] = models.CheckSearchFilter
	b := ChecksFor("3.1")
	if b[0] != models.CheckAvailability {
		t.Error("ChecksFor must not expose internal state")
	}
}

func TestEveryCatalogedCriterionHasChecks(t *testing.T) {
	for _, c := range Base() {
		if len(ChecksFor(c.ID)) == 0 {
			t.Errorf("criterion %s has no checks", c.ID)
		}
	}
	for _, m := range MatrixTypes() {
		for _, c := range ForMatrix(m) {
			if len(ChecksFor(c.ID)) == 0 {
				t.Errorf("criterion %s (%s) has no checks", c.ID, m)
			}
		}
	}
}
