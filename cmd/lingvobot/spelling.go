package main

import (
	"fmt"

	"github.com/gimalovartem2-bit/lingvobot/internal/analysis"
	"github.com/gimalovartem2-bit/lingvobot/internal/analyzer"
	"github.com/gimalovartem2-bit/lingvobot/internal/cleanup"
	"github.com/gimalovartem2-bit/lingvobot/internal/logger"
	"github.com/spf13/cobra"
)

func newSpellingCmd() *cobra.Command {
	opts := commonOptions{}
	cmd := &cobra.Command{
		Use:   "spelling <text>...",
		Short: "Check spelling",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Usage()
				return fmt.Errorf("text to check is required")
			}
			return runSpelling(cmd, args, &opts)
		},
		SilenceUsage: true,
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	addCommonFlags(cmd, &opts)
	return cmd
}

func runSpelling(cmd *cobra.Command, args []string, opts *commonOptions) error {
	text := textFromArgs(args)
	if text == "" {
		return fmt.Errorf("text to check is empty")
	}

	cfg, err := buildConfig(opts)
	if err != nil {
		return err
	}

	a := analyzer.New(cfg)
	cleanup.Register(a.Close)

	ctx, stop := signalContext()
	defer stop()

	if a.AIEnabled() {
		logger.Info("Checking spelling", "model", cfg.Model)
	}
	report := a.CheckSpelling(ctx, text)
	if ctx.Err() != nil {
		logger.Warn("Spelling check canceled")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), analysis.FormatSpellingReport(report))
	logger.Debug("Spelling check finished", "errors", report.ErrorWords, "source", report.Source)
	return nil
}
