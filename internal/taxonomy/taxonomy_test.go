package taxonomy

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinso-labs/movebench/internal/models"
)

func observeCodes(a *Analyzer, modelID string, codes ...string) {
	a.Observe(models.ArtifactResult{
		ModelID:    modelID,
		CaseID:     "1_my_coin",
		Failure:    models.FailureCompile,
		ErrorCodes: codes,
	})
}

func TestAnalyzer_RanksByTotalCount(t *testing.T) {
	a := NewAnalyzer()
	for i := 0; i < 16; i++ {
		observeCodes(a, "solmover", "E03003")
	}
	for i := 0; i < 13; i++ {
		observeCodes(a, "gemini-2.5", "E03002")
	}
	for i := 0; i < 14; i++ {
		observeCodes(a, "qwen3-coder", "E05001")
	}

	top := a.Top(10)
	require.Len(t, top, 3)
	assert.Equal(t, "E03003", top[0].Code)
	assert.Equal(t, 16, top[0].Total)
	assert.Equal(t, "Unbound module member", top[0].Description)
	assert.Equal(t, "E05001", top[1].Code)
	assert.Equal(t, "Ability constraint not satisfied", top[1].Description)
	assert.Equal(t, "E03002", top[2].Code)
	assert.Equal(t, "Unbound module", top[2].Description)
}

func TestAnalyzer_TieBreaksByFirstObservation(t *testing.T) {
	a := NewAnalyzer()
	observeCodes(a, "solmover", "E04001")
	observeCodes(a, "solmover", "E01002")
	observeCodes(a, "solmover", "E03009")

	top := a.Top(5)
	require.Len(t, top, 3)
	assert.Equal(t, "E04001", top[0].Code)
	assert.Equal(t, "E01002", top[1].Code)
	assert.Equal(t, "E03009", top[2].Code)
}

func TestAnalyzer_TopCapsLength(t *testing.T) {
	a := NewAnalyzer()
	for i := 0; i < 12; i++ {
		observeCodes(a, "solmover", fmt.Sprintf("E%05d", i+1))
	}

	assert.Len(t, a.Top(10), 10)
	assert.Len(t, a.Top(5), 5)
	assert.Len(t, a.Top(100), 12)
}

func TestAnalyzer_PerModelCounts(t *testing.T) {
	a := NewAnalyzer()
	observeCodes(a, "solmover", "E03003", "E03003")
	observeCodes(a, "gemini-2.5", "E03003")

	top := a.Top(1)
	require.Len(t, top, 1)
	assert.Equal(t, 3, top[0].Total)
	assert.Equal(t, map[string]int{"solmover": 2, "gemini-2.5": 1}, top[0].ByModel)
}

func TestAnalyzer_IgnoresCleanResults(t *testing.T) {
	a := NewAnalyzer()
	a.Observe(models.ArtifactResult{ModelID: "solmover", CaseID: "0_hello_world", Compiles: true})
	assert.Empty(t, a.Top(10))
}

func TestDescribe_UnknownCode(t *testing.T) {
	assert.Equal(t, "Unknown error", Describe("E99999"))
	assert.Equal(t, "Type mismatch", Describe("E04001"))
}
