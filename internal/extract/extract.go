// Package extract parses the raw text produced by the external compile/test
// tool into a structured observation. The tool's output is free-form; only
// three token shapes are recognized: the test summary line, compiler error
// codes, and warning mentions.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shinso-labs/movebench/internal/models"
)

var (
	// Summary line emitted on a successful test run, e.g.
	// "Test result: OK. Total tests: 14; passed: 12; failed: 2".
	summaryRe = regexp.MustCompile(`Test result: (\w+)\. Total tests: (\d+); passed: (\d+); failed: (\d+)`)

	// Compiler error codes, e.g. "error[E03003]". Case-sensitive.
	errorCodeRe = regexp.MustCompile(`error\[(E\d+)\]`)
)

// Observation is the structured view of one tool invocation's output,
// before scoring.
type Observation struct {
	Compiles     bool
	TestsTotal   int
	TestsPassed  int
	TestsFailed  int
	WarningCount int
	ErrorCodes   []string
	SummaryFound bool
}

// Parse extracts an Observation from the combined stdout+stderr of a tool
// invocation. exitOK reflects the process exit status.
//
// On success the summary line is located and test counts read from it; a
// missing summary line means the tool ran without reporting counts and is
// treated as zero tests passed, not as an error. On failure the unique
// error codes are collected in order of first appearance, capped at
// models.MaxErrorCodes. Warnings are counted on both paths.
func Parse(output string, exitOK bool) Observation {
	obs := Observation{
		Compiles:     exitOK,
		WarningCount: CountWarnings(output),
	}

	if exitOK {
		if m := summaryRe.FindStringSubmatch(output); m != nil {
			obs.SummaryFound = true
			obs.TestsTotal, _ = strconv.Atoi(m[2])
			obs.TestsPassed, _ = strconv.Atoi(m[3])
			obs.TestsFailed, _ = strconv.Atoi(m[4])
		}
		return obs
	}

	obs.ErrorCodes = ErrorCodes(output)
	return obs
}

// ErrorCodes returns the unique compiler error codes in output, in order of
// first appearance, truncated to models.MaxErrorCodes. The cap keeps
// per-result storage bounded.
func ErrorCodes(output string) []string {
	var codes []string
	seen := make(map[string]bool)
	for _, m := range errorCodeRe.FindAllStringSubmatch(output, -1) {
		code := m[1]
		if seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
		if len(codes) == models.MaxErrorCodes {
			break
		}
	}
	return codes
}

// CountWarnings counts case-insensitive occurrences of "warning" anywhere
// in the output stream.
func CountWarnings(output string) int {
	return strings.Count(strings.ToLower(output), "warning")
}
