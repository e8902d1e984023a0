// Package verify inspects resolved pages and decides whether they
// satisfy the content checks a criterion requires.
package verify

import "time"

const filingGraceDays = 30

// LastDueQuadrimester returns the (year, quadrimester) of the most
// recent fiscal-management report legally due at the evaluation date.
// Quadrimesters end 30 Apr, 31 Aug and 31 Dec with a 30-day filing
// grace period; the prior year's third quadrimester is always a
// candidate. When nothing is due yet, the prior year's third
// quadrimester is assumed.
func LastDueQuadrimester(evaluation time.Time) (year, quadrimester int) {
	y := evaluation.Year()

	type period struct {
		year, quad int
		end        time.Time
	}
	periods := []period{
		{y, 1, time.Date(y, time.April, 30, 0, 0, 0, 0, evaluation.Location())},
		{y, 2, time.Date(y, time.August, 31, 0, 0, 0, 0, evaluation.Location())},
		{y, 3, time.Date(y, time.December, 31, 0, 0, 0, 0, evaluation.Location())},
		{y - 1, 3, time.Date(y-1, time.December, 31, 0, 0, 0, 0, evaluation.Location())},
	}

	bestYear, bestQuad := y-1, 3
	found := false
	for _, p := range periods {
		due := p.end.AddDate(0, 0, filingGraceDays)
		if due.After(evaluation) {
			continue
		}
		if !found || p.year > bestYear || (p.year == bestYear && p.quad > bestQuad) {
			bestYear, bestQuad = p.year, p.quad
			found = true
		}
	}
	return bestYear, bestQuad
}
