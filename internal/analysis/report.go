package analysis

import (
	"encoding/json"
	"fmt"
)

// Score discounts. These formulas are inherited behavior, not derived from
// any scoring policy; change them here if the policy ever gets one.
const (
	GrammarIssuePenalty  = 5
	SpellingErrorPenalty = 10

	commentPreviewLimit = 300
)

// ParseGrammarReply parses the model's grammar-check reply. A non-JSON reply
// degrades to a clean report carrying the prose as the AI comment. Issue
// entries without an original fragment are dropped from all five parallel
// slices atomically.
func ParseGrammarReply(raw, originalText string) GrammarReport {
	clean := ExtractJSON(raw)

	var parsed map[string]any
	if err := json.Unmarshal([]byte(clean), &parsed); err != nil {
		return GrammarReport{
			Success:        true,
			CorrectedText:  originalText,
			AIComment:      commentPreview(raw, "ИИ дал рекомендации по грамматике"),
			TotalSentences: CountSentences(originalText),
			TotalChars:     CountChars(originalText),
			Score:          100,
			Source:         SourceGigaChatText,
		}
	}

	var issues, corrections, explanations, issueTypes, severities []string
	rawIssues, _ := parsed["issues"].([]any)
	for _, item := range rawIssues {
		issue, ok := item.(map[string]any)
		if !ok {
			continue
		}
		original := stringOr(issue, "original", "")
		if original == "" {
			continue
		}
		issues = append(issues, original)
		corrections = append(corrections, stringOr(issue, "corrected", ""))
		explanations = append(explanations, stringOr(issue, "explanation", ""))
		issueTypes = append(issueTypes, stringOr(issue, "type", "грамматика"))
		severities = append(severities, stringOr(issue, "severity", "средний"))
	}

	issueCount := intOr(parsed, "issue_count", len(rawIssues))
	score := intOr(parsed, "score", clampScore(100-issueCount*GrammarIssuePenalty))

	return GrammarReport{
		Success:        true,
		Issues:         issues,
		Corrections:    corrections,
		Explanations:   explanations,
		Types:          issueTypes,
		Severities:     severities,
		CorrectedText:  stringOr(parsed, "corrected_text", originalText),
		AIComment:      stringOr(parsed, "ai_comment", ""),
		TotalSentences: CountSentences(originalText),
		TotalChars:     CountChars(originalText),
		IssueCount:     issueCount,
		Score:          score,
		HasIssues:      issueCount > 0,
		Source:         SourceGigaChatGrammar,
	}
}

// ParseSpellingReply parses the model's spelling-check reply. Error entries
// need both the misspelled word and a correction; incomplete entries are
// dropped from all three parallel slices.
func ParseSpellingReply(raw, originalText string) SpellingReport {
	clean := ExtractJSON(raw)

	var parsed map[string]any
	if err := json.Unmarshal([]byte(clean), &parsed); err != nil {
		return SpellingReport{
			Success:       true,
			CorrectedText: originalText,
			AIComment:     commentPreview(raw, "ИИ дал рекомендации"),
			TotalWords:    CountWords(originalText),
			AccuracyScore: 100,
			Source:        SourceGigaChatText,
		}
	}

	var words, suggestions, explanations []string
	rawErrors, _ := parsed["errors"].([]any)
	for _, item := range rawErrors {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		original := stringOr(entry, "original", "")
		corrected := stringOr(entry, "corrected", "")
		if original == "" || corrected == "" {
			continue
		}
		words = append(words, original)
		suggestions = append(suggestions, corrected)
		explanations = append(explanations, stringOr(entry, "explanation", ""))
	}

	errorCount := intOr(parsed, "error_count", len(rawErrors))
	accuracy := intOr(parsed, "accuracy_score", clampScore(100-errorCount*SpellingErrorPenalty))

	return SpellingReport{
		Success:       true,
		Errors:        words,
		Suggestions:   suggestions,
		Explanations:  explanations,
		CorrectedText: stringOr(parsed, "corrected_text", originalText),
		AIComment:     stringOr(parsed, "ai_comment", ""),
		TotalWords:    CountWords(originalText),
		ErrorWords:    errorCount,
		HasErrors:     errorCount > 0,
		AccuracyScore: accuracy,
		Source:        SourceGigaChatSpelling,
	}
}

// GrammarFailure builds the error-sourced grammar envelope.
func GrammarFailure(text, errMsg string) GrammarReport {
	return GrammarReport{
		CorrectedText:  text,
		AIComment:      fmt.Sprintf("ИИ проверка грамматики недоступна: %s", errMsg),
		TotalSentences: CountSentences(text),
		TotalChars:     CountChars(text),
		Source:         SourceError,
	}
}

// SpellingFailure builds the error-sourced spelling envelope.
func SpellingFailure(text, errMsg string) SpellingReport {
	return SpellingReport{
		CorrectedText: text,
		AIComment:     fmt.Sprintf("ИИ проверка недоступна: %s", errMsg),
		TotalWords:    CountWords(text),
		Source:        SourceError,
	}
}

func commentPreview(raw, fallback string) string {
	if raw == "" {
		return fallback
	}
	runes := []rune(raw)
	if len(runes) > commentPreviewLimit {
		return string(runes[:commentPreviewLimit])
	}
	return raw
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	return score
}

func stringOr(m map[string]any, key, fallback string) string {
	if v, ok := m[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func intOr(m map[string]any, key string, fallback int) int {
	if v, ok := m[key].(float64); ok {
		return int(v)
	}
	return fallback
}
