package local

import (
	"regexp"
	"strings"

	"github.com/gimalovartem2-bit/lingvobot/internal/analysis"
)

type correction struct {
	corrected   string
	explanation string
}

// commonMisspellings is the static lookup behind the local spelling check.
// Keys are lowercase.
var commonMisspellings = map[string]correction{
	"здраствуйте": {"здравствуйте", "Неправильное написание приветствия"},
	"зделать":     {"сделать", "Неправильная приставка"},
	"придти":      {"прийти", "Устаревшая форма глагола"},
	"ихний":       {"их", "Просторечное выражение"},
	"ложить":      {"класть", "Глагол \"ложить\" используется только с приставками"},
	"одел":        {"надел", "Путаница с глаголами одевать/надевать"},
	"симпотичный": {"симпатичный", "Опечатка в слове"},
	"экстримальный": {"экстремальный", "Опечатка \"и\" вместо \"е\""},
	"агенство":    {"агентство", "Орфографическая ошибка"},
	"сдесь":       {"здесь", "Правильно через \"зде\""},
	"через-чюр":   {"чересчур", "Слитное написание"},
	"вообщем":     {"в общем", "Раздельное написание"},
}

var cyrillicWordRe = regexp.MustCompile(`[а-яёА-ЯЁ]+(?:-[а-яёА-ЯЁ]+)*`)

// CheckSpelling tokenizes Cyrillic words and looks each up, case
// insensitively, in the static misspelling table. Deterministic: the same
// text always yields the same report.
func CheckSpelling(text string) analysis.SpellingReport {
	words := cyrillicWordRe.FindAllString(text, -1)

	var errWords, suggestions, explanations []string
	for _, word := range words {
		if c, ok := commonMisspellings[strings.ToLower(word)]; ok {
			errWords = append(errWords, word)
			suggestions = append(suggestions, c.corrected)
			explanations = append(explanations, c.explanation)
		}
	}

	accuracy := CleanScore
	if len(errWords) > 0 {
		accuracy = FlaggedScore
	}

	return analysis.SpellingReport{
		Success:       true,
		Errors:        errWords,
		Suggestions:   suggestions,
		Explanations:  explanations,
		CorrectedText: text,
		AIComment:     "Используется локальная проверка орфографии",
		TotalWords:    len(words),
		ErrorWords:    len(errWords),
		HasErrors:     len(errWords) > 0,
		AccuracyScore: accuracy,
		Source:        analysis.SourceLocal,
	}
}
