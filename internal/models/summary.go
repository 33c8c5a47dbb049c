package models

// ModelSummary aggregates every case result for one model. Summaries are
// derived values: they are rebuilt from the full result set on every
// aggregation pass, never updated incrementally.
type ModelSummary struct {
	ModelID            string  `json:"model_id"`
	Cases              int     `json:"cases"`
	AvgTotalScore      float64 `json:"avg_total_score"`
	StdDevTotalScore   float64 `json:"std_dev_total_score"`
	CompileRate        float64 `json:"compile_rate"`
	TotalTestsPassed   int     `json:"total_tests_passed"`
	TotalTestsExpected int     `json:"total_tests_expected"`
	// PassRate is the pooled ratio sum(passed)/sum(expected), so larger
	// test suites weight it more heavily than AvgTotalScore.
	PassRate float64 `json:"pass_rate"`
}

// ErrorRecord is one ranked row of the error taxonomy: a compiler error
// code, its description, and how often each model hit it.
type ErrorRecord struct {
	Code        string         `json:"code"`
	Description string         `json:"description"`
	Total       int            `json:"total_occurrences"`
	ByModel     map[string]int `json:"occurrences_by_model"`
}

// PairwiseComparison holds the exact-test outcome for one unordered model
// pair. RateDiffPP is the pass-rate difference of A over B in percentage
// points.
type PairwiseComparison struct {
	ModelA       string  `json:"model_a"`
	ModelB       string  `json:"model_b"`
	RateDiffPP   float64 `json:"rate_difference_pp"`
	PValue       float64 `json:"p_value"`
	Significance string  `json:"significance"`
}
