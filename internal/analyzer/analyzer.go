// Package analyzer is the façade the boundary layer talks to. It tries the
// AI path first and falls back to local heuristics, so its public methods
// never fail: they always hand back a fully populated envelope whose Source
// names the path that answered.
package analyzer

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/gimalovartem2-bit/lingvobot/internal/analysis"
	"github.com/gimalovartem2-bit/lingvobot/internal/config"
	"github.com/gimalovartem2-bit/lingvobot/internal/gigachat"
	"github.com/gimalovartem2-bit/lingvobot/internal/local"
)

// Analyzer composes the AI-backed analyzers with the local fallback engine.
// With no credentials configured the AI path is never constructed and every
// call routes locally; that is a steady, expected state.
type Analyzer struct {
	ai     *aiAnalyzer
	closer io.Closer
}

// New builds the analyzer from configuration. The caller owns the lifecycle:
// construct once, Close exactly once during teardown.
func New(cfg *config.Config) *Analyzer {
	if !cfg.HasCredentials() {
		slog.Info("GigaChat credentials not configured, local heuristics only")
		return &Analyzer{}
	}

	client := gigachat.NewClient(cfg)
	slog.Info("GigaChat analyzer initialized", "model", client.Model())
	return &Analyzer{
		ai:     &aiAnalyzer{client: client},
		closer: client,
	}
}

// newWithCompleter wires a custom upstream, for tests.
func newWithCompleter(c gigachat.Completer) *Analyzer {
	return &Analyzer{ai: &aiAnalyzer{client: c}}
}

// AIEnabled reports whether the AI path was constructed.
func (a *Analyzer) AIEnabled() bool {
	return a.ai != nil
}

// Analyze runs one linguistic analysis. There is no local engine for the
// seven analysis types, so when the AI path is absent the caller gets a
// minimal failure envelope rather than a degraded answer.
func (a *Analyzer) Analyze(ctx context.Context, text string, typ analysis.Type) analysis.Result {
	if a.ai == nil {
		return analysis.Result{
			Type: typ,
			Analysis: fmt.Sprintf(
				"ИИ анализ (%s) недоступен: GigaChat API не настроен\n\nИспользую локальный анализ...", typ),
			OriginalText: text,
			Source:       analysis.SourceLocalFallback,
		}
	}

	result := a.ai.Analyze(ctx, text, typ)
	if !result.Success {
		slog.Warn("AI analysis failed", "analysis_type", string(typ), "source", string(result.Source))
	}
	return result
}

// CheckGrammar checks grammar through the AI path, degrading to the local
// heuristics whenever that path is absent or failed.
func (a *Analyzer) CheckGrammar(ctx context.Context, text string) analysis.GrammarReport {
	if a.ai == nil {
		return local.CheckGrammar(text)
	}

	report := a.ai.CheckGrammar(ctx, text)
	if !report.Success {
		slog.Warn("AI grammar check failed, using local heuristics", "comment", report.AIComment)
		return local.CheckGrammar(text)
	}
	return report
}

// CheckSpelling checks spelling through the AI path, degrading to the local
// dictionary whenever that path is absent or failed.
func (a *Analyzer) CheckSpelling(ctx context.Context, text string) analysis.SpellingReport {
	if a.ai == nil {
		return local.CheckSpelling(text)
	}

	report := a.ai.CheckSpelling(ctx, text)
	if !report.Success {
		slog.Warn("AI spelling check failed, using local dictionary", "comment", report.AIComment)
		return local.CheckSpelling(text)
	}
	return report
}

// Close releases pooled upstream connections. Safe to call on an analyzer
// without an AI path.
func (a *Analyzer) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
