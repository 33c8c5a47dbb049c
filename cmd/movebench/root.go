package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movebench",
		Short: "Movebench - score Solidity-to-Move translation models",
		Long: `Movebench evaluates code translation models by building and testing the
Move packages they produce, then comparing models with pass rate
confidence intervals and significance tests.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	cmd.AddCommand(newRunCommand())
	cmd.AddCommand(newCompareCommand())
	cmd.AddCommand(newReportCommand())
	cmd.AddCommand(newTranslateCommand())

	return cmd
}

func execute() error {
	return newRootCommand().Execute()
}
