package main

import (
	"fmt"
	"strings"

	"github.com/gimalovartem2-bit/lingvobot/internal/analysis"
	"github.com/gimalovartem2-bit/lingvobot/internal/analyzer"
	"github.com/gimalovartem2-bit/lingvobot/internal/cleanup"
	"github.com/gimalovartem2-bit/lingvobot/internal/logger"
	"github.com/spf13/cobra"
)

type analyzeOptions struct {
	analysisType string
	common       commonOptions
}

func newAnalyzeCmd() *cobra.Command {
	opts := analyzeOptions{}
	cmd := &cobra.Command{
		Use:   "analyze <text>...",
		Short: "Run one of the linguistic analyses on a text",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Usage()
				return fmt.Errorf("text to analyze is required")
			}
			return runAnalyze(cmd, args, &opts)
		},
		SilenceUsage: true,
	}

	cmd.SetUsageTemplate(subcommandUsageTemplate)
	addAnalyzeFlags(cmd, &opts)
	return cmd
}

func addAnalyzeFlags(cmd *cobra.Command, opts *analyzeOptions) {
	cmd.Flags().StringVarP(&opts.analysisType, "type", "t", string(analysis.TypeTextAnalysis),
		fmt.Sprintf("Analysis type (%s)", analysisTypeLabel()))
	addCommonFlags(cmd, &opts.common)
}

func analysisTypeLabel() string {
	names := make([]string, 0, len(analysis.AllTypes()))
	for _, t := range analysis.AllTypes() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

func runAnalyze(cmd *cobra.Command, args []string, opts *analyzeOptions) error {
	text := textFromArgs(args)
	if text == "" {
		return fmt.Errorf("text to analyze is empty")
	}

	typ := analysis.Type(strings.ToLower(strings.TrimSpace(opts.analysisType)))
	if !typ.Valid() {
		return fmt.Errorf("unknown analysis type %q (supported: %s)", opts.analysisType, analysisTypeLabel())
	}

	cfg, err := buildConfig(&opts.common)
	if err != nil {
		return err
	}

	a := analyzer.New(cfg)
	cleanup.Register(a.Close)

	ctx, stop := signalContext()
	defer stop()

	if a.AIEnabled() {
		logger.Info("Analyzing", "type", typ, "model", cfg.Model)
	}
	result := a.Analyze(ctx, text, typ)
	if ctx.Err() != nil {
		logger.Warn("Analysis canceled")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Analysis)
	logger.Debug("Analysis finished", "success", result.Success, "source", result.Source)
	return nil
}
