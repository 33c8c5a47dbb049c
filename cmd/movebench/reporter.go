package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shinso-labs/movebench/internal/aggregate"
	"github.com/shinso-labs/movebench/internal/models"
	"github.com/shinso-labs/movebench/internal/reporting"
)

// formatResultLine renders one completed result for verbose progress
// output.
func formatResultLine(res models.ArtifactResult) string {
	status := "ok"
	switch res.Failure {
	case models.FailureMissingArtifact:
		status = "missing"
	case models.FailureTimeout:
		status = "timeout"
	case models.FailureToolError:
		status = "tool error"
	case models.FailureCompile:
		status = "compile failed"
	}
	return fmt.Sprintf("%s/%s: %s, tests %d/%d, score %.2f",
		res.ModelID, res.CaseID, status, res.TestsPassed, res.TestsExpected, res.TotalScore)
}

// printRunSummary writes the console summary of a completed run.
func printRunSummary(w io.Writer, record *models.RunRecord, errorsShown int) {
	fmt.Fprintf(w, "\n=== %s ===\n\n", record.BenchName)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MODEL\tAVG SCORE\tCOMPILE\tTESTS\tPASS RATE")
	for _, s := range aggregate.Ranked(record.Summaries) {
		fmt.Fprintf(tw, "%s\t%.2f\t%.0f%%\t%d/%d\t%.1f%%\n",
			s.ModelID, s.AvgTotalScore, s.CompileRate*100,
			s.TotalTestsPassed, s.TotalTestsExpected, s.PassRate*100)
	}
	tw.Flush()

	if len(record.TopErrors) > 0 {
		fmt.Fprintf(w, "\nMost common errors:\n")
		errs := record.TopErrors
		if errorsShown >= 0 && len(errs) > errorsShown {
			errs = errs[:errorsShown]
		}
		for _, e := range errs {
			fmt.Fprintf(w, "  %s %s (%d)\n", e.Code, e.Description, e.Total)
		}
	}

	if record.ChiSquare != nil {
		fmt.Fprintf(w, "\nPass rate comparison: chi-square %.2f, p = %.4g %s\n",
			record.ChiSquare.Statistic, record.ChiSquare.PValue, record.ChiSquare.Significance)
	}
	if len(record.Pairwise) > 0 {
		fmt.Fprintln(w)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "COMPARISON\tDIFF (PP)\tP-VALUE\t")
		for _, pc := range record.Pairwise {
			fmt.Fprintf(tw, "%s vs %s\t%+.1f\t%.4g\t%s\n",
				pc.ModelA, pc.ModelB, pc.RateDiffPP, pc.PValue, pc.Significance)
		}
		tw.Flush()
	}
}

// printInterpretation writes the plain-language reading of the run's
// statistics.
func printInterpretation(w io.Writer, record *models.RunRecord) {
	fmt.Fprintf(w, "\n%s\n", reporting.InterpretChiSquare(record))
	for _, pc := range record.Pairwise {
		fmt.Fprintf(w, "- %s\n", reporting.InterpretPairwise(pc))
	}
	if len(record.Intervals) > 0 {
		level := record.Setup.ConfidenceLevel * 100
		fmt.Fprintf(w, "\nPass rate intervals (%.0f%% confidence):\n", level)
		for _, id := range record.Setup.Models {
			ci, ok := record.Intervals[id]
			if !ok {
				continue
			}
			fmt.Fprintf(w, "  %s: %.1f%% [%.1f%%, %.1f%%]\n",
				id, ci.Rate*100, ci.Lower*100, ci.Upper*100)
		}
	}
}

// summaryCSV renders model summaries as CSV rows for export.
func summaryCSV(record *models.RunRecord) [][]string {
	rows := [][]string{{"model", "cases", "avg_total_score", "std_dev", "compile_rate", "tests_passed", "tests_expected", "pass_rate"}}
	for _, s := range aggregate.Ranked(record.Summaries) {
		rows = append(rows, []string{
			s.ModelID,
			fmt.Sprintf("%d", s.Cases),
			fmt.Sprintf("%.2f", s.AvgTotalScore),
			fmt.Sprintf("%.2f", s.StdDevTotalScore),
			fmt.Sprintf("%.2f", s.CompileRate),
			fmt.Sprintf("%d", s.TotalTestsPassed),
			fmt.Sprintf("%d", s.TotalTestsExpected),
			fmt.Sprintf("%.4f", s.PassRate),
		})
	}
	return rows
}

// trimTrailingSpaces keeps tabwriter output stable in golden-style
// assertions.
func trimTrailingSpaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}
