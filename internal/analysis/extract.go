package analysis

import (
	"regexp"
	"strings"
)

var codeFenceRe = regexp.MustCompile("```(?:json)?\\s*")

// ExtractJSON pulls a best-effort JSON candidate out of a model reply.
// Markdown code fences are stripped, then the substring between the first
// '{' and the last '}' is taken. When no brace pair exists the trimmed text
// is returned as-is; whether it parses is the caller's problem. The function
// is deliberately decoupled from HTTP and formatting so it can be thrown
// arbitrary model output.
func ExtractJSON(raw string) string {
	text := codeFenceRe.ReplaceAllString(raw, "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	return strings.TrimSpace(text)
}
