package reporting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shinso-labs/movebench/internal/aggregate"
	"github.com/shinso-labs/movebench/internal/models"
)

// Markdown renders a full run record as a markdown report. errorsShown
// caps the error breakdown table; pass a negative value to show every
// stored category.
func Markdown(record *models.RunRecord, errorsShown int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", record.BenchName)
	fmt.Fprintf(&b, "Run `%s` on %s. %d models, %d cases, %d results.\n\n",
		record.RunID, record.Timestamp.Format("2006-01-02 15:04 UTC"),
		len(record.Setup.Models), len(record.Setup.Cases), len(record.Results))

	writeScoringSystem(&b)
	writeLeaderboard(&b, record)
	writeCaseTable(&b, record)
	writeErrorBreakdown(&b, record, errorsShown)
	writeSignificance(&b, record)

	return b.String()
}

func writeScoringSystem(b *strings.Builder) {
	b.WriteString("## Scoring System\n\n")
	b.WriteString("Each translated package is scored out of 100 points:\n\n")
	b.WriteString("- **Compilation (40)**: full marks when the package builds.\n")
	b.WriteString("- **Tests (50)**: scaled by the fraction of the reference suite that passes.\n")
	b.WriteString("- **Code quality (10)**: 10 for a clean build, 7 for up to five warnings, 3 beyond that.\n\n")
}

func writeLeaderboard(b *strings.Builder, record *models.RunRecord) {
	b.WriteString("## Model Summary\n\n")
	b.WriteString("| Model | Avg Score | Std Dev | Compile Rate | Tests Passed | Pass Rate |\n")
	b.WriteString("|-------|-----------|---------|--------------|--------------|----------|\n")
	for _, s := range aggregate.Ranked(record.Summaries) {
		fmt.Fprintf(b, "| %s | %.2f | %.2f | %.0f%% | %d/%d | %.1f%% |\n",
			s.ModelID, s.AvgTotalScore, s.StdDevTotalScore, s.CompileRate*100,
			s.TotalTestsPassed, s.TotalTestsExpected, s.PassRate*100)
	}
	b.WriteString("\n")
}

func writeCaseTable(b *strings.Builder, record *models.RunRecord) {
	b.WriteString("## Per-Case Results\n\n")
	b.WriteString("| Model | Case | Compiles | Tests | Warnings | Score | Notes |\n")
	b.WriteString("|-------|------|----------|-------|----------|-------|-------|\n")
	for _, r := range record.Results {
		compiles := "yes"
		if !r.Compiles {
			compiles = "no"
		}
		notes := "-"
		switch r.Failure {
		case models.FailureMissingArtifact:
			notes = "no output directory"
		case models.FailureTimeout:
			notes = "timed out"
		case models.FailureToolError:
			notes = "tool error"
		case models.FailureCompile:
			if len(r.ErrorCodes) > 0 {
				notes = strings.Join(r.ErrorCodes, ", ")
			}
		}
		fmt.Fprintf(b, "| %s | %s | %s | %d/%d | %d | %.2f | %s |\n",
			r.ModelID, r.CaseID, compiles, r.TestsPassed, r.TestsExpected,
			r.WarningCount, r.TotalScore, notes)
	}
	b.WriteString("\n")
}

func writeErrorBreakdown(b *strings.Builder, record *models.RunRecord, shown int) {
	if len(record.TopErrors) == 0 {
		return
	}
	b.WriteString("## Most Common Errors\n\n")
	b.WriteString("| Code | Category | Occurrences | Models Affected |\n")
	b.WriteString("|------|----------|-------------|------------------|\n")

	errs := record.TopErrors
	if shown >= 0 && len(errs) > shown {
		errs = errs[:shown]
	}
	for _, e := range errs {
		affected := make([]string, 0, len(e.ByModel))
		for m := range e.ByModel {
			affected = append(affected, m)
		}
		sort.Strings(affected)
		fmt.Fprintf(b, "| %s | %s | %d | %s |\n",
			e.Code, e.Description, e.Total, strings.Join(affected, ", "))
	}
	b.WriteString("\n")
}

func writeSignificance(b *strings.Builder, record *models.RunRecord) {
	b.WriteString("## Statistical Significance\n\n")
	b.WriteString(InterpretChiSquare(record))
	b.WriteString("\n\n")

	if len(record.Intervals) > 0 {
		level := record.Setup.ConfidenceLevel * 100
		fmt.Fprintf(b, "### Pass Rate Confidence Intervals (%.0f%%)\n\n", level)
		b.WriteString("| Model | Pass Rate | Interval |\n")
		b.WriteString("|-------|-----------|----------|\n")
		modelIDs := record.Setup.Models
		if len(modelIDs) == 0 {
			for id := range record.Intervals {
				modelIDs = append(modelIDs, id)
			}
			sort.Strings(modelIDs)
		}
		for _, id := range modelIDs {
			ci, ok := record.Intervals[id]
			if !ok {
				continue
			}
			fmt.Fprintf(b, "| %s | %.1f%% | [%.1f%%, %.1f%%] |\n",
				id, ci.Rate*100, ci.Lower*100, ci.Upper*100)
		}
		b.WriteString("\n")
	}

	if len(record.Pairwise) > 0 {
		b.WriteString("### Pairwise Comparisons\n\n")
		b.WriteString("| Comparison | Diff (pp) | p-value | |\n")
		b.WriteString("|------------|-----------|---------|---|\n")
		for _, pc := range record.Pairwise {
			fmt.Fprintf(b, "| %s vs %s | %+.1f | %.4g | %s |\n",
				pc.ModelA, pc.ModelB, pc.RateDiffPP, pc.PValue, pc.Significance)
		}
		b.WriteString("\n")
		for _, pc := range record.Pairwise {
			fmt.Fprintf(b, "- %s\n", InterpretPairwise(pc))
		}
		b.WriteString("\n")
	}
}
