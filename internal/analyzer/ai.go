package analyzer

import (
	"context"
	"strings"

	"github.com/gimalovartem2-bit/lingvobot/internal/analysis"
	"github.com/gimalovartem2-bit/lingvobot/internal/apperrors"
	"github.com/gimalovartem2-bit/lingvobot/internal/gigachat"
)

// aiAnalyzer drives prompt construction, the upstream exchange and reply
// normalization for the AI-backed path. Every failure comes back inside the
// envelope; callers decide whether to fall back.
type aiAnalyzer struct {
	client gigachat.Completer
}

const emptyTextComment = "Текст пустой"

func (a *aiAnalyzer) Analyze(ctx context.Context, text string, typ analysis.Type) analysis.Result {
	if strings.TrimSpace(text) == "" {
		return analysis.Result{
			Success:      true,
			Type:         typ,
			Analysis:     emptyTextComment,
			OriginalText: text,
			Source:       analysis.SourceGigaChat,
		}
	}

	pair := analysis.BuildPrompt(typ, text)
	reply, err := a.client.Complete(ctx, pair.System, pair.User)
	if err != nil {
		return analysis.Failure(text, typ, apperrors.PublicMessage(err))
	}
	return analysis.Normalize(reply, typ, text)
}

func (a *aiAnalyzer) CheckGrammar(ctx context.Context, text string) analysis.GrammarReport {
	if strings.TrimSpace(text) == "" {
		return analysis.GrammarReport{
			Success:       true,
			CorrectedText: text,
			AIComment:     emptyTextComment,
			Score:         100,
			Source:        analysis.SourceGigaChat,
		}
	}

	pair := analysis.GrammarPrompt(text)
	reply, err := a.client.Complete(ctx, pair.System, pair.User)
	if err != nil {
		return analysis.GrammarFailure(text, apperrors.PublicMessage(err))
	}
	return analysis.ParseGrammarReply(reply, text)
}

func (a *aiAnalyzer) CheckSpelling(ctx context.Context, text string) analysis.SpellingReport {
	if strings.TrimSpace(text) == "" {
		return analysis.SpellingReport{
			Success:       true,
			CorrectedText: text,
			AIComment:     emptyTextComment,
			AccuracyScore: 100,
			Source:        analysis.SourceGigaChat,
		}
	}

	pair := analysis.SpellingPrompt(text)
	reply, err := a.client.Complete(ctx, pair.System, pair.User)
	if err != nil {
		return analysis.SpellingFailure(text, apperrors.PublicMessage(err))
	}
	return analysis.ParseSpellingReply(reply, text)
}
