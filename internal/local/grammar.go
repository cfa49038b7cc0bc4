// Package local provides degraded, deterministic heuristics for grammar and
// spelling used when the AI path is unavailable or not configured. No
// network, no state.
package local

import (
	"regexp"

	"github.com/gimalovartem2-bit/lingvobot/internal/analysis"
)

// Flagged texts get a flat discount instead of a per-issue one. The values
// are inherited behavior kept as named constants, not a derived policy.
const (
	CleanScore   = 100
	FlaggedScore = 80
)

var (
	doubleSpaceRe      = regexp.MustCompile(`  `)
	missingCommaARe    = regexp.MustCompile(`(?i)[а-яё]\s+а\s+[а-яё]`)
	missingCommaChtoRe = regexp.MustCompile(`(?i)[а-яё]\s+что\s+[а-яё]`)
)

// CheckGrammar flags a small fixed set of patterns: repeated whitespace and
// the missing comma before the conjunctions «а» and «что». Each hit adds one
// entry to all five parallel slices.
func CheckGrammar(text string) analysis.GrammarReport {
	var issues, corrections, explanations, issueTypes, severities []string

	add := func(issue, correction, explanation, issueType, severity string) {
		issues = append(issues, issue)
		corrections = append(corrections, correction)
		explanations = append(explanations, explanation)
		issueTypes = append(issueTypes, issueType)
		severities = append(severities, severity)
	}

	if doubleSpaceRe.MatchString(text) {
		add("двойной пробел", "один пробел",
			"Уберите лишние пробелы", "пунктуация", "низкий")
	}
	if missingCommaARe.MatchString(text) {
		add("пропущена запятая перед союзом \"а\"", "добавить запятую перед \"а\"",
			"В сложносочиненных предложениях перед союзом \"а\" всегда ставится запятая",
			"пунктуация", "высокий")
	}
	if missingCommaChtoRe.MatchString(text) {
		add("пропущена запятая перед союзом \"что\"", "добавить запятую перед \"что\"",
			"В сложноподчиненных предложениях перед союзом \"что\" ставится запятая",
			"пунктуация", "высокий")
	}

	score := CleanScore
	if len(issues) > 0 {
		score = FlaggedScore
	}

	return analysis.GrammarReport{
		Success:        true,
		Issues:         issues,
		Corrections:    corrections,
		Explanations:   explanations,
		Types:          issueTypes,
		Severities:     severities,
		CorrectedText:  text,
		AIComment:      "Используется локальная проверка грамматики",
		TotalSentences: analysis.CountSentences(text),
		TotalChars:     analysis.CountChars(text),
		IssueCount:     len(issues),
		Score:          score,
		HasIssues:      len(issues) > 0,
		Source:         analysis.SourceLocal,
	}
}
