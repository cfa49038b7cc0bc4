package analysis

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// Normalize turns a raw model reply into a uniform Result. A reply that is
// not valid JSON is not an error: the cleaned prose is still worth showing,
// so it comes back as a gigachat_text success. Only a panic inside
// formatting degrades to an error-sourced envelope; nothing propagates to
// the caller.
func Normalize(raw string, typ Type, originalText string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("analysis formatting failed",
				"analysis_type", string(typ), "panic", fmt.Sprint(r))
			result = Failure(originalText, typ, "Ошибка обработки ответа")
		}
	}()

	clean := ExtractJSON(raw)

	var parsed map[string]any
	if err := json.Unmarshal([]byte(clean), &parsed); err != nil {
		return Result{
			Success:      true,
			Type:         typ,
			Analysis:     clean,
			OriginalText: originalText,
			Source:       SourceGigaChatText,
		}
	}

	return Result{
		Success:      true,
		Type:         typ,
		Analysis:     FormatAnalysis(parsed, typ, originalText),
		ParsedData:   parsed,
		OriginalText: originalText,
		Source:       SourceGigaChat,
	}
}

// Failure builds the error-sourced envelope for a generic analysis that
// could not be served.
func Failure(text string, typ Type, errMsg string) Result {
	return Result{
		Success:      false,
		Type:         typ,
		Analysis:     fmt.Sprintf("ИИ анализ недоступен: %s", errMsg),
		OriginalText: text,
		Source:       SourceError,
	}
}
