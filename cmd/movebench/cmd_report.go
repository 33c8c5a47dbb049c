package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinso-labs/movebench/internal/models"
	"github.com/shinso-labs/movebench/internal/reporting"
)

var (
	reportOutputPath  string
	reportErrorsShown int
)

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <run.json>",
		Short: "Render a saved run record as a markdown report",
		Args:  cobra.ExactArgs(1),
		RunE:  reportCommandE,
	}

	cmd.Flags().StringVarP(&reportOutputPath, "output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().IntVar(&reportErrorsShown, "errors", 5, "Number of error categories to show")

	return cmd
}

func reportCommandE(cmd *cobra.Command, args []string) error {
	record, err := models.LoadRunRecord(args[0])
	if err != nil {
		return err
	}

	report := reporting.Markdown(record, reportErrorsShown)

	if reportOutputPath == "" {
		fmt.Fprint(cmd.OutOrStdout(), report)
		return nil
	}
	if err := os.WriteFile(reportOutputPath, []byte(report), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", reportOutputPath)
	return nil
}
