package main

import (
	"fmt"

	"github.com/gimalovartem2-bit/lingvobot/internal/analysis"
	"github.com/gimalovartem2-bit/lingvobot/internal/analyzer"
	"github.com/gimalovartem2-bit/lingvobot/internal/cleanup"
	"github.com/gimalovartem2-bit/lingvobot/internal/logger"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	opts := commonOptions{}
	cmd := &cobra.Command{
		Use:   "grammar <text>...",
		Short: "Check grammar and punctuation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Usage()
				return fmt.Errorf("text to check is required")
			}
			return runGrammar(cmd, args, &opts)
		},
		SilenceUsage: true,
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	addCommonFlags(cmd, &opts)
	return cmd
}

func runGrammar(cmd *cobra.Command, args []string, opts *commonOptions) error {
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
		logger.Info("Checking grammar", "model", cfg.Model)
	}
	report := a.CheckGrammar(ctx, text)
	if ctx.Err() != nil {
		logger.Warn("Grammar check canceled")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), analysis.FormatGrammarReport(report))
	logger.Debug("Grammar check finished", "issues", report.IssueCount, "source", report.Source)
	return nil
}
