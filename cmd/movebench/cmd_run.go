package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shinso-labs/movebench/internal/config"
	"github.com/shinso-labs/movebench/internal/execution"
	"github.com/shinso-labs/movebench/internal/models"
	"github.com/shinso-labs/movebench/internal/orchestration"
	"github.com/shinso-labs/movebench/internal/reporting"
)

var (
	runRoot       string
	runOutputPath string
	runReportPath string
	runParallel   bool
	runWorkers    int
	runVerbose    bool
	runInterpret  bool
)

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <movebench.yaml>",
		Short: "Run the benchmark over every model and case",
		Long: `Run builds and tests each model's translated package for every case in
the configuration, scores the results, and writes a run record.`,
		Args: cobra.ExactArgs(1),
		RunE: runCommandE,
	}

	cmd.Flags().StringVar(&runRoot, "root", "", "Directory containing the model output directories (default: config file's directory)")
	cmd.Flags().StringVarP(&runOutputPath, "output", "o", "", "Output JSON file for the run record (default: <output_dir>/run-<id>.json)")
	cmd.Flags().StringVar(&runReportPath, "report", "", "Also write a markdown report to this path")
	cmd.Flags().BoolVar(&runParallel, "parallel", false, "Evaluate model/case pairs concurrently")
	cmd.Flags().IntVar(&runWorkers, "workers", 0, "Number of concurrent workers (requires --parallel)")
	cmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print each result as it completes")
	cmd.Flags().BoolVar(&runInterpret, "interpret", false, "Print a plain-language interpretation of the statistics")

	return cmd
}

func runCommandE(cmd *cobra.Command, args []string) error {
	configPath := args[0]

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// CLI flags override the config file.
	if runParallel {
		cfg.Parallel = true
	}
	if runWorkers > 0 {
		cfg.MaxWorkers = runWorkers
	}

	root := runRoot
	if root == "" {
		root = filepath.Dir(configPath)
	}

	engine := execution.NewMoveEngine(cfg.Timeout())
	runner, err := orchestration.NewRunner(cfg, engine)
	if err != nil {
		return err
	}
	runner.Root = root

	total := len(cfg.Models) * len(cfg.Cases)
	done := 0
	runner.OnResult = func(res models.ArtifactResult) {
		done++
		if runVerbose {
			fmt.Fprintf(cmd.OutOrStdout(), "  [%d/%d] %s\n", done, total, formatResultLine(res))
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "  [%d/%d] %s/%s\n", done, total, res.ModelID, res.CaseID)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Running %s: %d models x %d cases\n", cfg.Name, len(cfg.Models), len(cfg.Cases))

	record, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	printRunSummary(cmd.OutOrStdout(), record, cfg.ErrorsShown)
	if runInterpret {
		printInterpretation(cmd.OutOrStdout(), record)
	}

	outputPath := runOutputPath
	if outputPath == "" {
		if err := os.MkdirAll(filepath.Join(root, cfg.OutputDir), 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		outputPath = filepath.Join(root, cfg.OutputDir, "run-"+record.RunID+".json")
	}
	if err := record.Save(outputPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nRun record written to %s\n", outputPath)

	if runReportPath != "" {
		report := reporting.Markdown(record, cfg.ErrorsShown)
		if err := os.WriteFile(runReportPath, []byte(report), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", runReportPath)
	}

	return nil
}
