package models

import "fmt"

// FailureKind classifies why an artifact evaluation produced a zero score.
// An empty value means the evaluation ran to completion.
type FailureKind string

const (
	// FailureNone marks a result whose evaluation completed normally.
	FailureNone FailureKind = ""
	// FailureMissingArtifact marks a result whose expected build output
	// directory did not exist; no extraction was attempted.
	FailureMissingArtifact FailureKind = "missing"
	// FailureTimeout marks a result whose tool invocation exceeded the
	// configured timeout.
	FailureTimeout FailureKind = "timeout"
	// FailureToolError marks any other failure to invoke the external tool.
	FailureToolError FailureKind = "tool_error"
	// FailureCompile marks a result where the tool ran but the artifact did
	// not compile.
	FailureCompile FailureKind = "compile"
)

// MaxErrorCodes caps how many distinct error codes a single result retains.
const MaxErrorCodes = 5

// ArtifactResult is one (model, test case) observation: the structured
// outcome of compiling and testing a generated artifact, plus its scores.
// Results are immutable once scored; aggregates are always rederived from
// the full result set.
type ArtifactResult struct {
	ModelID       string      `json:"model_id"`
	CaseID        string      `json:"case_id"`
	Compiles      bool        `json:"compiles"`
	TestsPassed   int         `json:"tests_passed"`
	TestsTotal    int         `json:"tests_total"`
	TestsExpected int         `json:"tests_expected"`
	WarningCount  int         `json:"warning_count"`
	ErrorCodes    []string    `json:"error_codes,omitempty"`
	Failure       FailureKind `json:"failure,omitempty"`
	FailureDetail string      `json:"failure_detail,omitempty"`

	CompileScore float64 `json:"compile_score"`
	TestScore    float64 `json:"test_score"`
	QualityScore float64 `json:"quality_score"`
	TotalScore   float64 `json:"total_score"`
}

// Validate checks the construction invariants of a scored result.
func (r *ArtifactResult) Validate() error {
	if r.ModelID == "" {
		return fmt.Errorf("artifact result missing model_id")
	}
	if r.CaseID == "" {
		return fmt.Errorf("artifact result missing case_id")
	}
	if r.TestsExpected <= 0 {
		return fmt.Errorf("result %s/%s: tests_expected must be positive, got %d", r.ModelID, r.CaseID, r.TestsExpected)
	}
	if r.TestsPassed < 0 || r.TestsPassed > r.TestsExpected {
		return fmt.Errorf("result %s/%s: tests_passed %d outside [0, %d]", r.ModelID, r.CaseID, r.TestsPassed, r.TestsExpected)
	}
	if !r.Compiles && r.CompileScore != 0 {
		return fmt.Errorf("result %s/%s: non-compiling artifact has compile_score %.2f", r.ModelID, r.CaseID, r.CompileScore)
	}
	if !r.Compiles && r.TestsPassed != 0 {
		return fmt.Errorf("result %s/%s: non-compiling artifact has %d passed tests", r.ModelID, r.CaseID, r.TestsPassed)
	}
	if len(r.ErrorCodes) > MaxErrorCodes {
		return fmt.Errorf("result %s/%s: %d error codes exceeds cap of %d", r.ModelID, r.CaseID, len(r.ErrorCodes), MaxErrorCodes)
	}
	sum := r.CompileScore + r.TestScore + r.QualityScore
	if diff := r.TotalScore - sum; diff > 0.005 || diff < -0.005 {
		return fmt.Errorf("result %s/%s: total_score %.2f != %.2f (compile+test+quality)", r.ModelID, r.CaseID, r.TotalScore, sum)
	}
	return nil
}

// Failed reports whether this result carries a terminal failure marker.
func (r *ArtifactResult) Failed() bool {
	return r.Failure != FailureNone
}
