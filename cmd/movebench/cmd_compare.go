package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinso-labs/movebench/internal/models"
)

var (
	compareFormat  string
	compareCSVPath string
)

func newCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <run.json> [run.json...]",
		Short: "Compare model performance from saved run records",
		Long: `Compare prints the model summaries and significance tests of one or
more saved run records side by side.`,
		Args: cobra.MinimumNArgs(1),
		RunE: compareCommandE,
	}

	cmd.Flags().StringVar(&compareFormat, "format", "table", "Output format: table, json")
	cmd.Flags().StringVar(&compareCSVPath, "csv", "", "Also export model summaries to a CSV file")

	return cmd
}

func compareCommandE(cmd *cobra.Command, args []string) error {
	records := make([]*models.RunRecord, 0, len(args))
	for _, path := range args {
		record, err := models.LoadRunRecord(path)
		if err != nil {
			return err
		}
		records = append(records, record)
	}

	switch compareFormat {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return err
		}
	case "table":
		for _, record := range records {
			printRunSummary(cmd.OutOrStdout(), record, -1)
			printInterpretation(cmd.OutOrStdout(), record)
			fmt.Fprintln(cmd.OutOrStdout())
		}
	default:
		return fmt.Errorf("unknown format %q (want table or json)", compareFormat)
	}

	if compareCSVPath != "" {
		if err := writeSummaryCSV(compareCSVPath, records); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Summaries exported to %s\n", compareCSVPath)
	}

	return nil
}

func writeSummaryCSV(path string, records []*models.RunRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating CSV file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for i, record := range records {
		rows := summaryCSV(record)
		if i > 0 {
			// Drop the repeated header when concatenating records.
			rows = rows[1:]
		}
		for _, row := range rows {
			if err := w.Write(row); err != nil {
				return fmt.Errorf("writing CSV: %w", err)
			}
		}
	}
	w.Flush()
	return w.Error()
}
