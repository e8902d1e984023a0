package catalog

import (
	"log"

	"github.com/sapt/auditor/internal/models"
)

var (
	availabilityOnly = []models.Check{models.CheckAvailability}

	fiscalDataChecks = []models.Check{
		models.CheckAvailability,
		models.CheckRecency,
		models.CheckHistoricalSeries,
		models.CheckReportDownload,
		models.CheckSearchFilter,
	}

	fiscalReportChecks = []models.Check{
		models.CheckAvailability,
		models.CheckRecency,
	}
)

// checkSets maps every cataloged criterion id to the checks it
// requires. Built at init so the table stays total as matrices grow:
// revenue and expense data criteria carry the full verification set,
// periodic fiscal reports (RREO/RGF) need recency on top of
// availability, everything else is a pure availability question.
var checkSets = buildCheckSets()

func buildCheckSets() map[string][]models.Check {
	sets := map[string][]models.Check{}
	for _, c := range base {
		sets[c.ID] = availabilityOnly
	}
	for _, rows := range matrices {
		for _, c := range rows {
			sets[c.ID] = availabilityOnly
		}
	}
	for _, id := range []string{"3.1", "3.2", "4.1", "4.2", "4.3"} {
		sets[id] = fiscalDataChecks
	}
	for _, id := range []string{"11.5", "11.6", "11.7"} {
		sets[id] = fiscalReportChecks
	}
	return sets
}

// ChecksFor returns the verification set for a criterion. Ids missing
// from the table fall back to availability only, with a log line so the
// gap surfaces during evaluation rather than silently.
func ChecksFor(id string) []models.Check {
	checks, ok := checkSets[id]
	if !ok {
		log.Printf("criterion %s not in check table, defaulting to availability", id)
		checks = availabilityOnly
	}
	out := make([]models.Check, len(checks))
	copy(out, checks)
	return out
}
