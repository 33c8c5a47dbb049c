// Package taxonomy classifies compiler error codes across a run and
// produces a ranked breakdown of the most common failure categories.
package taxonomy

import (
	"sort"

	"github.com/shinso-labs/movebench/internal/models"
)

// descriptions maps Move compiler diagnostic codes to human-readable
// categories. Codes outside the table still rank; they just render with
// a generic label.
var descriptions = map[string]string{
	"E01002": "Invalid syntax",
	"E02010": "Invalid name",
	"E03002": "Unbound module",
	"E03003": "Unbound module member",
	"E03009": "Unbound variable",
	"E04001": "Type mismatch",
	"E04007": "Invalid field access",
	"E04024": "Invalid usage of immutable variable",
	"E05001": "Ability constraint not satisfied",
	"E06001": "Unused value without drop",
	"E10001": "Invalid usage of borrowed value",
}

// Describe returns the category label for a diagnostic code.
func Describe(code string) string {
	if d, ok := descriptions[code]; ok {
		return d
	}
	return "Unknown error"
}

// Analyzer accumulates error codes from scored results.
type Analyzer struct {
	total     map[string]int
	byModel   map[string]map[string]int
	firstSeen map[string]int
	nextSeen  int
}

// NewAnalyzer returns an empty Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		total:     make(map[string]int),
		byModel:   make(map[string]map[string]int),
		firstSeen: make(map[string]int),
	}
}

// Observe records the error codes of a single result. Results without
// error codes are a no-op, so callers can feed every result through.
func (a *Analyzer) Observe(res models.ArtifactResult) {
	for _, code := range res.ErrorCodes {
		if _, ok := a.firstSeen[code]; !ok {
			a.firstSeen[code] = a.nextSeen
			a.nextSeen++
		}
		a.total[code]++
		m := a.byModel[res.ModelID]
		if m == nil {
			m = make(map[string]int)
			a.byModel[res.ModelID] = m
		}
		m[code]++
	}
}

// Top returns up to k error records ranked by total occurrences,
// descending. Codes with equal counts keep the order in which they were
// first observed.
func (a *Analyzer) Top(k int) []models.ErrorRecord {
	codes := make([]string, 0, len(a.total))
	for code := range a.total {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		ci, cj := codes[i], codes[j]
		if a.total[ci] != a.total[cj] {
			return a.total[ci] > a.total[cj]
		}
		return a.firstSeen[ci] < a.firstSeen[cj]
	})

	if k >= 0 && len(codes) > k {
		codes = codes[:k]
	}

	out := make([]models.ErrorRecord, 0, len(codes))
	for _, code := range codes {
		rec := models.ErrorRecord{
			Code:        code,
			Description: Describe(code),
			Total:       a.total[code],
			ByModel:     make(map[string]int),
		}
		for modelID, counts := range a.byModel {
			if n := counts[code]; n > 0 {
				rec.ByModel[modelID] = n
			}
		}
		out = append(out, rec)
	}
	return out
}
