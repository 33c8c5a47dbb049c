package statistics

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Interval holds a Wilson score confidence interval for a binomial
// proportion. All three values are fractions in [0, 1].
type Interval struct {
	Rate            float64 `json:"point_estimate"`
	Lower           float64 `json:"lower"`
	Upper           float64 `json:"upper"`
	ConfidenceLevel float64 `json:"confidence_level"`
	Trials          int     `json:"trials"`
}

// WilsonInterval computes the Wilson score interval for successes/trials at
// the given confidence level (e.g. 0.95). Unlike the normal approximation it
// stays well-behaved near 0 and 1. Zero trials yields the degenerate
// (0, 0, 0) interval rather than an error.
func WilsonInterval(successes, trials int, confidenceLevel float64) Interval {
	if trials == 0 {
		return Interval{ConfidenceLevel: confidenceLevel}
	}

	n := float64(trials)
	p := float64(successes) / n

	alpha := 1.0 - confidenceLevel
	z := distuv.UnitNormal.Quantile(1.0 - alpha/2.0)
	z2 := z * z

	denom := 1.0 + z2/n
	center := (p + z2/(2.0*n)) / denom
	margin := z * math.Sqrt(p*(1.0-p)/n+z2/(4.0*n*n)) / denom

	return Interval{
		Rate:            p,
		Lower:           clamp01(center - margin),
		Upper:           clamp01(center + margin),
		ConfidenceLevel: confidenceLevel,
		Trials:          trials,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
