// Package aggregate rolls per-artifact results up into per-model
// summaries.
package aggregate

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/shinso-labs/movebench/internal/models"
)

// Summarize groups results by model and computes the per-model summary
// statistics. The average total score is an unweighted mean over cases,
// while the pass rate pools raw test counts across cases, so a case
// with many tests moves the pass rate more than the average score.
func Summarize(results []models.ArtifactResult) map[string]models.ModelSummary {
	byModel := make(map[string][]models.ArtifactResult)
	for _, r := range results {
		byModel[r.ModelID] = append(byModel[r.ModelID], r)
	}

	summaries := make(map[string]models.ModelSummary, len(byModel))
	for modelID, rs := range byModel {
		summaries[modelID] = summarizeModel(modelID, rs)
	}
	return summaries
}

func summarizeModel(modelID string, rs []models.ArtifactResult) models.ModelSummary {
	s := models.ModelSummary{
		ModelID: modelID,
		Cases:   len(rs),
	}

	scores := make([]float64, 0, len(rs))
	compiled := 0
	for _, r := range rs {
		scores = append(scores, r.TotalScore)
		if r.Compiles {
			compiled++
		}
		s.TotalTestsPassed += r.TestsPassed
		s.TotalTestsExpected += r.TestsExpected
	}

	if mean, err := stats.Mean(scores); err == nil {
		s.AvgTotalScore = round2(mean)
	}
	if len(scores) > 1 {
		if sd, err := stats.StandardDeviation(scores); err == nil {
			s.StdDevTotalScore = round2(sd)
		}
	}
	if len(rs) > 0 {
		s.CompileRate = round2(float64(compiled) / float64(len(rs)))
	}
	if s.TotalTestsExpected > 0 {
		s.PassRate = round2(float64(s.TotalTestsPassed) / float64(s.TotalTestsExpected))
	}
	return s
}

// Ranked returns summaries ordered by average total score, best first.
// Ties fall back to model ID so the ordering is stable across runs.
func Ranked(summaries map[string]models.ModelSummary) []models.ModelSummary {
	out := make([]models.ModelSummary, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgTotalScore != out[j].AvgTotalScore {
			return out[i].AvgTotalScore > out[j].AvgTotalScore
		}
		return out[i].ModelID < out[j].ModelID
	})
	return out
}

func round2(v float64) float64 {
	r, err := stats.Round(v, 2)
	if err != nil {
		return v
	}
	return r
}
