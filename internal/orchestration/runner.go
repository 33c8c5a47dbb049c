// Package orchestration drives a full benchmark run: it walks every
// model and case pair, invokes the tool, extracts and scores the
// outcome, then builds the aggregate and statistical views of the run.
package orchestration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shinso-labs/movebench/internal/aggregate"
	"github.com/shinso-labs/movebench/internal/config"
	"github.com/shinso-labs/movebench/internal/execution"
	"github.com/shinso-labs/movebench/internal/extract"
	"github.com/shinso-labs/movebench/internal/models"
	"github.com/shinso-labs/movebench/internal/scoring"
	"github.com/shinso-labs/movebench/internal/statistics"
	"github.com/shinso-labs/movebench/internal/taxonomy"
)

// Progress is invoked once per completed model and case pair. Calls are
// serialized even when the run is parallel.
type Progress func(res models.ArtifactResult)

// Runner executes a configured benchmark.
type Runner struct {
	cfg    *config.Config
	engine execution.Engine
	scorer *scoring.Engine
	logger *slog.Logger

	// Root is prepended to every model output directory. Empty means
	// the current working directory.
	Root string

	// OnResult, when set, receives each result as it completes.
	OnResult Progress
}

// NewRunner builds a Runner over the given engine.
func NewRunner(cfg *config.Config, engine execution.Engine) (*Runner, error) {
	scorer, err := scoring.NewEngine(cfg.Scoring)
	if err != nil {
		return nil, err
	}
	return &Runner{
		cfg:    cfg,
		engine: engine,
		scorer: scorer,
		logger: slog.Default().With("component", "runner"),
	}, nil
}

// Run evaluates every model against every case and returns the
// completed run record. Individual tool failures become failure-marked
// results rather than errors; Run itself fails only when the run as a
// whole cannot be assembled.
func (r *Runner) Run(ctx context.Context) (*models.RunRecord, error) {
	start := time.Now()

	type job struct {
		model config.ModelSpec
		cs    config.CaseSpec
	}
	var jobs []job
	for _, m := range r.cfg.Models {
		for _, cs := range r.cfg.Cases {
			jobs = append(jobs, job{model: m, cs: cs})
		}
	}

	results := make([]models.ArtifactResult, len(jobs))
	var mu sync.Mutex

	runJob := func(ctx context.Context, i int) error {
		res := r.evaluate(ctx, jobs[i].model, jobs[i].cs)
		mu.Lock()
		results[i] = res
		if r.OnResult != nil {
			r.OnResult(res)
		}
		mu.Unlock()
		return ctx.Err()
	}

	if r.cfg.Parallel {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.cfg.MaxWorkers)
		for i := range jobs {
			g.Go(func() error { return runJob(gctx, i) })
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i := range jobs {
			if err := runJob(ctx, i); err != nil {
				return nil, err
			}
		}
	}

	record, err := r.assemble(results)
	if err != nil {
		return nil, err
	}
	record.DurationMs = time.Since(start).Milliseconds()
	return record, nil
}

// evaluate runs one model and case pair end to end. Every failure mode
// maps to a marked, zero-scored result.
func (r *Runner) evaluate(ctx context.Context, m config.ModelSpec, cs config.CaseSpec) models.ArtifactResult {
	res := models.ArtifactResult{
		ModelID:       m.ID,
		CaseID:        cs.ID,
		TestsExpected: cs.ExpectedTests,
	}

	dir := filepath.Join(r.Root, m.OutputDir, cs.ID)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		r.logger.Debug("artifact missing", "model", m.ID, "case", cs.ID, "dir", dir)
		res.Failure = models.FailureMissingArtifact
		res.FailureDetail = fmt.Sprintf("no package at %s", dir)
		return r.scorer.Score(res)
	}

	inv, err := r.engine.Run(ctx, dir)
	if err != nil {
		if errors.Is(err, execution.ErrTimeout) {
			res.Failure = models.FailureTimeout
		} else {
			res.Failure = models.FailureToolError
		}
		res.FailureDetail = err.Error()
		return r.scorer.Score(res)
	}

	obs := extract.Parse(inv.Output, inv.ExitOK)
	res.Compiles = obs.Compiles
	res.TestsPassed = obs.TestsPassed
	res.TestsTotal = obs.TestsTotal
	res.WarningCount = obs.WarningCount
	res.ErrorCodes = obs.ErrorCodes
	if !obs.Compiles {
		res.Failure = models.FailureCompile
	}
	// Clamp so the pass ratio stays in range when a package ships more
	// tests than the reference suite.
	if res.TestsPassed > res.TestsExpected {
		res.TestsPassed = res.TestsExpected
	}
	return r.scorer.Score(res)
}

// assemble builds the aggregate and statistical sections of the record.
func (r *Runner) assemble(results []models.ArtifactResult) (*models.RunRecord, error) {
	summaries := aggregate.Summarize(results)

	analyzer := taxonomy.NewAnalyzer()
	for _, res := range results {
		analyzer.Observe(res)
	}

	intervals := make(map[string]statistics.Interval, len(summaries))
	table := make([]statistics.PassFail, 0, len(r.cfg.Models))
	for _, m := range r.cfg.Models {
		s, ok := summaries[m.ID]
		if !ok {
			continue
		}
		intervals[m.ID] = statistics.WilsonInterval(s.TotalTestsPassed, s.TotalTestsExpected, r.cfg.ConfidenceLevel)
		table = append(table, statistics.PassFail{
			Model:  m.ID,
			Passed: s.TotalTestsPassed,
			Failed: s.TotalTestsExpected - s.TotalTestsPassed,
		})
	}

	record := &models.RunRecord{
		RunID:     time.Now().UTC().Format("20060102-150405"),
		BenchName: r.cfg.Name,
		Timestamp: time.Now().UTC(),
		Setup:     r.setup(),
		Results:   results,
		Summaries: summaries,
		Intervals: intervals,
		TopErrors: analyzer.Top(r.cfg.ErrorsStored),
	}

	if len(table) >= 2 {
		chi, err := statistics.ChiSquareIndependence(table)
		if err != nil {
			return nil, fmt.Errorf("pass rate independence test: %w", err)
		}
		record.ChiSquare = &chi
		record.Pairwise = r.pairwise(table)
	}
	return record, nil
}

func (r *Runner) pairwise(table []statistics.PassFail) []models.PairwiseComparison {
	var out []models.PairwiseComparison
	for i := 0; i < len(table); i++ {
		for j := i + 1; j < len(table); j++ {
			a, b := table[i], table[j]
			p := statistics.FisherExact(a.Passed, a.Failed, b.Passed, b.Failed)
			rateA := float64(a.Passed) / float64(a.Passed+a.Failed)
			rateB := float64(b.Passed) / float64(b.Passed+b.Failed)
			out = append(out, models.PairwiseComparison{
				ModelA:       a.Model,
				ModelB:       b.Model,
				RateDiffPP:   (rateA - rateB) * 100,
				PValue:       p,
				Significance: statistics.SignificanceLabel(p),
			})
		}
	}
	return out
}

func (r *Runner) setup() models.RunSetup {
	setup := models.RunSetup{
		TimeoutSec:      r.cfg.TimeoutSec,
		ConfidenceLevel: r.cfg.ConfidenceLevel,
	}
	for _, m := range r.cfg.Models {
		setup.Models = append(setup.Models, m.ID)
	}
	for _, cs := range r.cfg.Cases {
		setup.Cases = append(setup.Cases, cs.ID)
	}
	return setup
}
