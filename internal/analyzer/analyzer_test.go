package analyzer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gimalovartem2-bit/lingvobot/internal/analysis"
	"github.com/gimalovartem2-bit/lingvobot/internal/apperrors"
	"github.com/gimalovartem2-bit/lingvobot/internal/config"
)

type mockCompleter struct {
	reply string
	err   error
	calls int
}

func (m *mockCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func TestAnalyze_SuccessPath(t *testing.T) {
	mock := &mockCompleter{reply: `{"part_of_speech": "глагол", "initial_form": "читать"}`}
	a := newWithCompleter(mock)

	res := a.Analyze(context.Background(), "читали", analysis.TypeMorphology)
	if !res.Success || res.Source != analysis.SourceGigaChat {
		t.Fatalf("unexpected envelope: %+v", res)
	}
	if !strings.Contains(res.Analysis, "глагол") {
		t.Fatalf("analysis missing parsed content:\n%s", res.Analysis)
	}
	if mock.calls != 1 {
		t.Fatalf("upstream called %d times", mock.calls)
	}
}

func TestAnalyze_NoCredentials(t *testing.T) {
	a := New(&config.Config{})
	res := a.Analyze(context.Background(), "текст", analysis.TypeEtymology)
	if res.Success {
		t.Fatalf("expected failure envelope without AI path")
	}
	if res.Source != analysis.SourceLocalFallback {
		t.Fatalf("source = %q, want local_fallback", res.Source)
	}
	if !strings.Contains(res.Analysis, "etymology") {
		t.Fatalf("envelope does not name the analysis type: %q", res.Analysis)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("Close() on local-only analyzer: %v", err)
	}
}

func TestAnalyze_UpstreamFailureBecomesErrorEnvelope(t *testing.T) {
	mock := &mockCompleter{err: apperrors.Transient(errors.New("dial timeout"))}
	a := newWithCompleter(mock)

	res := a.Analyze(context.Background(), "текст", analysis.TypeStylistics)
	if res.Success || res.Source != analysis.SourceError {
		t.Fatalf("unexpected envelope: %+v", res)
	}
	if strings.Contains(res.Analysis, "dial timeout") {
		t.Fatalf("raw transport detail leaked to the user: %q", res.Analysis)
	}
}

func TestAnalyze_MalformedReplySoftDegrades(t *testing.T) {
	mock := &mockCompleter{reply: "Это просто текст, не JSON"}
	a := newWithCompleter(mock)

	res := a.Analyze(context.Background(), "текст", analysis.TypeTextAnalysis)
	if !res.Success || res.Source != analysis.SourceGigaChatText {
		t.Fatalf("unexpected envelope: %+v", res)
	}
	if res.Analysis != "Это просто текст, не JSON" {
		t.Fatalf("prose reply not preserved: %q", res.Analysis)
	}
}

func TestAnalyze_EmptyTextShortCircuits(t *testing.T) {
	mock := &mockCompleter{reply: "unused"}
	a := newWithCompleter(mock)

	res := a.Analyze(context.Background(), "   ", analysis.TypePhonetics)
	if !res.Success || res.Analysis != "Текст пустой" {
		t.Fatalf("unexpected envelope: %+v", res)
	}
	if mock.calls != 0 {
		t.Fatalf("upstream called for empty text")
	}
}

func TestCheckGrammar_AISuccess(t *testing.T) {
	mock := &mockCompleter{reply: `{"issues": [{"original": "он сказал что", "corrected": "он сказал, что", "type": "пунктуация", "severity": "высокий", "explanation": "нужна запятая"}], "score": 95}`}
	a := newWithCompleter(mock)

	rep := a.CheckGrammar(context.Background(), "он сказал что придет")
	if rep.Source != analysis.SourceGigaChatGrammar {
		t.Fatalf("source = %q", rep.Source)
	}
	if len(rep.Issues) != 1 || rep.Score != 95 {
		t.Fatalf("unexpected report: %+v", rep)
	}
}

func TestCheckGrammar_FallsBackToLocal(t *testing.T) {
	mock := &mockCompleter{err: apperrors.Auth(errors.New("401"))}
	a := newWithCompleter(mock)

	rep := a.CheckGrammar(context.Background(), "слово а слово")
	if !rep.Success || rep.Source != analysis.SourceLocal {
		t.Fatalf("expected local fallback, got: %+v", rep)
	}
	if len(rep.Issues) != 1 || rep.Types[0] != "пунктуация" {
		t.Fatalf("local heuristics did not run: %+v", rep)
	}
}

func TestCheckGrammar_NoCredentialsUsesLocal(t *testing.T) {
	a := New(&config.Config{})
	rep := a.CheckGrammar(context.Background(), "текст  с двойным пробелом")
	if rep.Source != analysis.SourceLocal || len(rep.Issues) != 1 {
		t.Fatalf("unexpected report: %+v", rep)
	}
}

func TestCheckSpelling_FallsBackToLocal(t *testing.T) {
	mock := &mockCompleter{err: apperrors.Transient(errors.New("503"))}
	a := newWithCompleter(mock)

	rep := a.CheckSpelling(context.Background(), "здраствуйте")
	if !rep.Success || rep.Source != analysis.SourceLocal {
		t.Fatalf("expected local fallback, got: %+v", rep)
	}
	if len(rep.Errors) != 1 || rep.Suggestions[0] != "здравствуйте" {
		t.Fatalf("local dictionary did not run: %+v", rep)
	}
	if rep.AccuracyScore != 80 {
		t.Fatalf("accuracy = %d, want 80", rep.AccuracyScore)
	}
}

func TestCheckSpelling_AISuccessKept(t *testing.T) {
	mock := &mockCompleter{reply: `{"errors": [], "ai_comment": "ошибок нет", "accuracy_score": 100}`}
	a := newWithCompleter(mock)

	rep := a.CheckSpelling(context.Background(), "здравствуйте")
	if rep.Source != analysis.SourceGigaChatSpelling || rep.AccuracyScore != 100 {
		t.Fatalf("unexpected report: %+v", rep)
	}
}

func TestPublicMethods_NeverPanic(t *testing.T) {
	analyzers := []*Analyzer{
		New(&config.Config{}),
		newWithCompleter(&mockCompleter{reply: "{{{{broken"}),
		newWithCompleter(&mockCompleter{err: errors.New("plain error")}),
	}
	ctx := context.Background()
	for _, a := range analyzers {
		for _, typ := range analysis.AllTypes() {
			_ = a.Analyze(ctx, "текст", typ)
		}
		_ = a.Analyze(ctx, "текст", analysis.Type("foo"))
		_ = a.CheckGrammar(ctx, "текст")
		_ = a.CheckSpelling(ctx, "текст")
		_ = a.Close()
	}
}
