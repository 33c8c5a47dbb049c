package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/shinso-labs/movebench/internal/client"
	"github.com/shinso-labs/movebench/internal/config"
)

var (
	translateEndpoint  string
	translateContracts string
	translateRoot      string
	translateModels    []string
	translateRetries   int
)

func newTranslateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate <movebench.yaml>",
		Short: "Generate Move packages from the Solidity contracts",
		Long: `Translate asks the local translation service to convert each Solidity
contract into a Move module and writes the cleaned output into each
model's output directory, ready for a benchmark run.`,
		Args: cobra.ExactArgs(1),
		RunE: translateCommandE,
	}

	cmd.Flags().StringVar(&translateEndpoint, "endpoint", "http://localhost:11434", "Translation service base URL")
	cmd.Flags().StringVar(&translateContracts, "contracts", "contracts", "Directory with <case>.sol source contracts")
	cmd.Flags().StringVar(&translateRoot, "root", "", "Directory for model output directories (default: config file's directory)")
	cmd.Flags().StringArrayVar(&translateModels, "model", nil, "Only translate with these models (can be repeated)")
	cmd.Flags().IntVar(&translateRetries, "retries", 3, "Generation attempts per contract")

	return cmd
}

func translateCommandE(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}

	root := translateRoot
	if root == "" {
		root = filepath.Dir(args[0])
	}

	selected := cfg.Models
	if len(translateModels) > 0 {
		selected = selected[:0:0]
		wanted := make(map[string]bool, len(translateModels))
		for _, id := range translateModels {
			wanted[id] = true
		}
		for _, m := range cfg.Models {
			if wanted[m.ID] {
				selected = append(selected, m)
			}
		}
		if len(selected) == 0 {
			return fmt.Errorf("no configured model matches %v", translateModels)
		}
	}

	retry := client.DefaultRetryPolicy()
	if translateRetries > 0 {
		retry.MaxAttempts = translateRetries
	}

	for _, m := range selected {
		c := client.New(translateEndpoint, m.ID, retry, nil)
		if err := c.CheckModel(cmd.Context()); err != nil {
			return err
		}

		for _, cs := range cfg.Cases {
			contractPath := filepath.Join(root, translateContracts, cs.ID+".sol")
			source, err := os.ReadFile(contractPath)
			if err != nil {
				return fmt.Errorf("reading contract for %s: %w", cs.ID, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "translating %s with %s...", cs.ID, m.ID)
			start := time.Now()
			raw, err := c.Generate(cmd.Context(), translationPrompt(string(source)))
			if err != nil {
				return fmt.Errorf("translating %s with %s: %w", cs.ID, m.ID, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), " done (%s)\n", time.Since(start).Round(time.Second))

			moveSource := client.CleanGeneratedCode(raw)
			outDir := filepath.Join(root, m.OutputDir, cs.ID, "sources")
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			outPath := filepath.Join(outDir, cs.ID+".move")
			if err := os.WriteFile(outPath, []byte(moveSource), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
		}
	}

	return nil
}

func translationPrompt(solidity string) string {
	return "Translate the following Solidity contract into a complete Sui Move module " +
		"with unit tests. Respond with only the Move source code.\n\n" + solidity
}
