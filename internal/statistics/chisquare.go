package statistics

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrNoTrials is returned when a contingency table contains a model with
// zero trials. Degenerate rows are a configuration error and must be
// rejected before any statistic is computed.
var ErrNoTrials = errors.New("model has zero trials")

// PassFail is one row of the model × {pass, fail} contingency table.
type PassFail struct {
	Model  string
	Passed int
	Failed int
}

// ChiSquareResult is the outcome of the overall independence test.
type ChiSquareResult struct {
	Statistic    float64 `json:"statistic"`
	PValue       float64 `json:"p_value"`
	DF           int     `json:"degrees_of_freedom"`
	Significance string  `json:"significance"`
}

// ChiSquareIndependence runs a chi-square test of independence on the
// model × {pass, fail} table. Degrees of freedom are (rows-1)(cols-1) with
// cols fixed at 2. Requires at least two rows, each with at least one trial.
func ChiSquareIndependence(table []PassFail) (ChiSquareResult, error) {
	if len(table) < 2 {
		return ChiSquareResult{}, fmt.Errorf("chi-square test needs at least 2 models, got %d", len(table))
	}

	grandTotal := 0
	totalPassed := 0
	for _, row := range table {
		if row.Passed < 0 || row.Failed < 0 {
			return ChiSquareResult{}, fmt.Errorf("model %q has negative counts", row.Model)
		}
		if row.Passed+row.Failed == 0 {
			return ChiSquareResult{}, fmt.Errorf("model %q: %w", row.Model, ErrNoTrials)
		}
		grandTotal += row.Passed + row.Failed
		totalPassed += row.Passed
	}
	totalFailed := grandTotal - totalPassed

	stat := 0.0
	for _, row := range table {
		rowTotal := float64(row.Passed + row.Failed)
		expPassed := rowTotal * float64(totalPassed) / float64(grandTotal)
		expFailed := rowTotal * float64(totalFailed) / float64(grandTotal)
		if expPassed > 0 {
			d := float64(row.Passed) - expPassed
			stat += d * d / expPassed
		}
		if expFailed > 0 {
			d := float64(row.Failed) - expFailed
			stat += d * d / expFailed
		}
	}

	df := len(table) - 1
	p := 1.0 - distuv.ChiSquared{K: float64(df)}.CDF(stat)

	return ChiSquareResult{
		Statistic:    stat,
		PValue:       p,
		DF:           df,
		Significance: SignificanceLabel(p),
	}, nil
}

// SignificanceLabel maps a p-value to the conventional star tier. The raw
// p-value is always reported alongside the label.
func SignificanceLabel(p float64) string {
	switch {
	case p < 0.001:
		return "***"
	case p < 0.01:
		return "**"
	case p < 0.05:
		return "*"
	default:
		return "ns"
	}
}
