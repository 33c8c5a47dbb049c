package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinso-labs/movebench/internal/models"
)

func result(model, caseID string, compiles bool, passed, expected int, total float64) models.ArtifactResult {
	return models.ArtifactResult{
		ModelID:       model,
		CaseID:        caseID,
		Compiles:      compiles,
		TestsPassed:   passed,
		TestsTotal:    expected,
		TestsExpected: expected,
		TotalScore:    total,
	}
}

func TestSummarize_PooledPassRate(t *testing.T) {
	results := []models.ArtifactResult{
		result("solmover", "0_hello_world", true, 11, 11, 100),
		result("solmover", "1_my_coin", true, 9, 9, 100),
		result("solmover", "5_counter", true, 12, 14, 89.86),
		result("solmover", "6_weather_oracle", true, 12, 16, 84.5),
	}

	summaries := Summarize(results)
	require.Contains(t, summaries, "solmover")
	s := summaries["solmover"]

	assert.Equal(t, 4, s.Cases)
	assert.Equal(t, 44, s.TotalTestsPassed)
	assert.Equal(t, 50, s.TotalTestsExpected)
	// Pooled ratio, not a mean of per-case rates.
	assert.InDelta(t, 0.88, s.PassRate, 0.001)
	assert.InDelta(t, 93.59, s.AvgTotalScore, 0.001)
	assert.Equal(t, 1.0, s.CompileRate)
}

func TestSummarize_PoolingDiffersFromMeanOfRates(t *testing.T) {
	// One tiny case with a perfect run and one large case with a poor
	// run. A mean of per-case rates would be 0.55; pooling weights the
	// large case.
	results := []models.ArtifactResult{
		result("gemini-2.5", "0_hello_world", true, 2, 2, 100),
		result("gemini-2.5", "6_weather_oracle", true, 2, 20, 15),
	}

	s := Summarize(results)["gemini-2.5"]
	assert.InDelta(t, 4.0/22.0, s.PassRate, 0.005)
}

func TestSummarize_CompileRateAndFailures(t *testing.T) {
	results := []models.ArtifactResult{
		result("qwen3-coder", "0_hello_world", true, 11, 11, 100),
		result("qwen3-coder", "1_my_coin", false, 0, 9, 7),
		{
			ModelID:       "qwen3-coder",
			CaseID:        "2_nft",
			TestsExpected: 8,
			Failure:       models.FailureTimeout,
		},
	}

	s := Summarize(results)["qwen3-coder"]
	assert.Equal(t, 3, s.Cases)
	assert.InDelta(t, 1.0/3.0, s.CompileRate, 0.005)
	assert.Equal(t, 11, s.TotalTestsPassed)
	assert.Equal(t, 28, s.TotalTestsExpected)
}

func TestSummarize_GroupsModels(t *testing.T) {
	results := []models.ArtifactResult{
		result("solmover", "0_hello_world", true, 11, 11, 100),
		result("gemini-2.5", "0_hello_world", true, 10, 11, 92.45),
	}

	summaries := Summarize(results)
	assert.Len(t, summaries, 2)
	assert.Equal(t, 1, summaries["solmover"].Cases)
	assert.Equal(t, 1, summaries["gemini-2.5"].Cases)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Empty(t, Summarize(nil))
}

func TestRanked_OrdersByScoreThenID(t *testing.T) {
	summaries := map[string]models.ModelSummary{
		"b-model": {ModelID: "b-model", AvgTotalScore: 90},
		"a-model": {ModelID: "a-model", AvgTotalScore: 90},
		"c-model": {ModelID: "c-model", AvgTotalScore: 95},
	}

	ranked := Ranked(summaries)
	require.Len(t, ranked, 3)
	assert.Equal(t, "c-model", ranked[0].ModelID)
	assert.Equal(t, "a-model", ranked[1].ModelID)
	assert.Equal(t, "b-model", ranked[2].ModelID)
}
