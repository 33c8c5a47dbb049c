// Package scoring converts extracted compile and test observations into
// per-artifact scores. Scoring is deterministic: the same ArtifactResult
// always produces the same scores, and the engine never touches the
// filesystem or network.
package scoring

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/shinso-labs/movebench/internal/models"
)

// Weights holds the point allocation for each scoring component. The
// three components sum to a 100-point scale under the defaults.
type Weights struct {
	// Compile is awarded in full when the artifact builds, zero otherwise.
	Compile float64 `yaml:"compile" json:"compile"`

	// Test is the maximum for the test component, scaled linearly by the
	// fraction of expected tests that passed.
	Test float64 `yaml:"test" json:"test"`

	// Quality tiers keyed off the warning count.
	QualityClean float64 `yaml:"quality_clean" json:"quality_clean"`
	QualityFew   float64 `yaml:"quality_few" json:"quality_few"`
	QualityMany  float64 `yaml:"quality_many" json:"quality_many"`

	// FewWarningsMax is the largest warning count that still earns the
	// middle quality tier.
	FewWarningsMax int `yaml:"few_warnings_max" json:"few_warnings_max"`
}

// DefaultWeights returns the standard 40/50/10 split.
func DefaultWeights() Weights {
	return Weights{
		Compile:        40,
		Test:           50,
		QualityClean:   10,
		QualityFew:     7,
		QualityMany:    3,
		FewWarningsMax: 5,
	}
}

// Validate checks that the weights describe a usable scale.
func (w Weights) Validate() error {
	if w.Compile < 0 || w.Test < 0 {
		return fmt.Errorf("scoring weights must be non-negative (compile=%v, test=%v)", w.Compile, w.Test)
	}
	if w.QualityClean < w.QualityFew || w.QualityFew < w.QualityMany {
		return fmt.Errorf("quality tiers must be non-increasing (clean=%v, few=%v, many=%v)",
			w.QualityClean, w.QualityFew, w.QualityMany)
	}
	if w.FewWarningsMax < 0 {
		return fmt.Errorf("few_warnings_max must be non-negative, got %d", w.FewWarningsMax)
	}
	return nil
}

// Engine scores artifact results against a fixed set of weights.
type Engine struct {
	weights Weights
}

// NewEngine builds an Engine. The weights are captured at construction
// and never change for the engine's lifetime.
func NewEngine(w Weights) (*Engine, error) {
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring weights: %w", err)
	}
	return &Engine{weights: w}, nil
}

// Score fills in the four score fields of a result and returns the
// updated copy. The input is not mutated.
//
// Artifacts that never produced tool output (missing directory, timeout,
// tool invocation failure) score zero on every component. Compile
// failures score zero on compile and test but still earn a quality
// score from whatever warnings the partial output contained.
func (e *Engine) Score(res models.ArtifactResult) models.ArtifactResult {
	switch res.Failure {
	case models.FailureMissingArtifact, models.FailureTimeout, models.FailureToolError:
		res.CompileScore = 0
		res.TestScore = 0
		res.QualityScore = 0
		res.TotalScore = 0
		return res
	}

	if res.Compiles {
		res.CompileScore = e.weights.Compile
	} else {
		res.CompileScore = 0
	}

	res.TestScore = 0
	if res.Compiles && res.TestsExpected > 0 {
		ratio := float64(res.TestsPassed) / float64(res.TestsExpected)
		res.TestScore = round2(ratio * e.weights.Test)
	}

	res.QualityScore = e.qualityScore(res.WarningCount)
	res.TotalScore = round2(res.CompileScore + res.TestScore + res.QualityScore)
	return res
}

func (e *Engine) qualityScore(warnings int) float64 {
	switch {
	case warnings == 0:
		return e.weights.QualityClean
	case warnings <= e.weights.FewWarningsMax:
		return e.weights.QualityFew
	default:
		return e.weights.QualityMany
	}
}

func round2(v float64) float64 {
	r, err := stats.Round(v, 2)
	if err != nil {
		return v
	}
	return r
}
