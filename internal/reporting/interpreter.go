// Package reporting renders run records for people: a markdown report
// for sharing and plain-language readings of the statistics.
package reporting

import (
	"fmt"

	"github.com/shinso-labs/movebench/internal/models"
)

// SignificanceDescription translates a p-value into the phrase used
// throughout reports.
func SignificanceDescription(p float64) string {
	switch {
	case p < 0.001:
		return "Highly significant (p < 0.001)"
	case p < 0.01:
		return "Very significant (p < 0.01)"
	case p < 0.05:
		return "Significant (p < 0.05)"
	default:
		return "Not significant (p >= 0.05)"
	}
}

// InterpretChiSquare produces a one-sentence reading of the run's
// pass rate independence test.
func InterpretChiSquare(record *models.RunRecord) string {
	chi := record.ChiSquare
	if chi == nil {
		return "Statistical comparison requires at least two models."
	}
	if chi.PValue < 0.05 {
		return fmt.Sprintf(
			"Test pass rates differ across models more than chance would explain (chi-square %.2f, df %d, p = %.4g).",
			chi.Statistic, chi.DF, chi.PValue)
	}
	return fmt.Sprintf(
		"The observed pass rate differences are consistent with chance (chi-square %.2f, df %d, p = %.4g).",
		chi.Statistic, chi.DF, chi.PValue)
}

// InterpretPairwise produces a one-sentence reading of a single
// pairwise comparison.
func InterpretPairwise(pc models.PairwiseComparison) string {
	lead, trail := pc.ModelA, pc.ModelB
	diff := pc.RateDiffPP
	if diff < 0 {
		lead, trail = pc.ModelB, pc.ModelA
		diff = -diff
	}
	if pc.PValue >= 0.05 {
		return fmt.Sprintf("%s and %s are statistically indistinguishable (%.1f pp gap, p = %.4g).",
			pc.ModelA, pc.ModelB, diff, pc.PValue)
	}
	return fmt.Sprintf("%s outperforms %s by %.1f percentage points (p = %.4g, %s).",
		lead, trail, diff, pc.PValue, SignificanceDescription(pc.PValue))
}
