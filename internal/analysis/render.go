package analysis

import (
	"fmt"
	"strings"
)

// FormatGrammarReport renders a grammar report with HTML micro-markup.
func FormatGrammarReport(rep GrammarReport) string {
	if !rep.Success {
		comment := rep.AIComment
		if comment == "" {
			comment = "Ошибка проверки"
		}
		return fmt.Sprintf("⚠️ <b>Проверка грамматики не удалась</b>\n\n%s", comment)
	}

	var b strings.Builder
	if !rep.HasIssues {
		fmt.Fprintf(&b, "✅ <b>Грамматическая проверка завершена успешно!</b>\n\n")
		fmt.Fprintf(&b, "📊 <b>Статистика:</b>\n")
		fmt.Fprintf(&b, "• Предложений: %d\n", rep.TotalSentences)
		fmt.Fprintf(&b, "• Символов: %d\n", rep.TotalChars)
		fmt.Fprintf(&b, "• Ошибок не обнаружено\n")
		fmt.Fprintf(&b, "• Оценка грамматики: %d/100\n", rep.Score)
		fmt.Fprintf(&b, "• Источник: %s\n\n", rep.Source)
		writeComment(&b, rep.AIComment)
		b.WriteString("<i>Отличная грамматика! 👏</i>")
		return b.String()
	}

	fmt.Fprintf(&b, "⚠️ <b>Найдено грамматических проблем: %d</b>\n\n", rep.IssueCount)
	if len(rep.Issues) > 0 {
		b.WriteString("<b>Исправления:</b>\n")
		for i := range rep.Issues {
			fmt.Fprintf(&b, "%d. %s%s <b>%s</b>\n", i+1,
				severityIcon(rep.Severities[i]), typeIcon(rep.Types[i]),
				strings.ToUpper(rep.Types[i]))
			fmt.Fprintf(&b, "   <code>%s</code> → <b>%s</b>\n", rep.Issues[i], rep.Corrections[i])
			fmt.Fprintf(&b, "   <i>%s</i>\n\n", rep.Explanations[i])
		}
	}
	fmt.Fprintf(&b, "📝 <b>Исправленный текст:</b>\n<pre>%s</pre>\n\n", rep.CorrectedText)
	fmt.Fprintf(&b, "📊 <b>Детали:</b>\n")
	fmt.Fprintf(&b, "• Предложений: %d\n", rep.TotalSentences)
	fmt.Fprintf(&b, "• Символов: %d\n", rep.TotalChars)
	fmt.Fprintf(&b, "• Найдено проблем: %d\n", rep.IssueCount)
	fmt.Fprintf(&b, "• Оценка грамматики: %d/100\n", rep.Score)
	fmt.Fprintf(&b, "• Источник: %s\n\n", rep.Source)
	writeComment(&b, rep.AIComment)
	b.WriteString("<i>🤖 Анализ выполнен с помощью GigaChat AI</i>")
	return b.String()
}

// FormatSpellingReport renders a spelling report with HTML micro-markup.
func FormatSpellingReport(rep SpellingReport) string {
	if !rep.Success {
		comment := rep.AIComment
		if comment == "" {
			comment = "Ошибка проверки"
		}
		return fmt.Sprintf("⚠️ <b>Проверка не удалась</b>\n\n%s", comment)
	}

	var b strings.Builder
	if !rep.HasErrors {
		fmt.Fprintf(&b, "✅ <b>Проверка завершена успешно!</b>\n\n")
		fmt.Fprintf(&b, "📊 <b>Статистика:</b>\n")
		fmt.Fprintf(&b, "• Проверено слов: %d\n", rep.TotalWords)
		fmt.Fprintf(&b, "• Ошибок не обнаружено\n")
		fmt.Fprintf(&b, "• Точность текста: %d%%\n", rep.AccuracyScore)
		fmt.Fprintf(&b, "• Источник: %s\n\n", rep.Source)
		writeComment(&b, rep.AIComment)
		b.WriteString("<i>Отличная грамотность! 👏</i>")
		return b.String()
	}

	fmt.Fprintf(&b, "⚠️ <b>Найдено ошибок: %d</b>\n\n", rep.ErrorWords)
	if len(rep.Errors) > 0 {
		b.WriteString("<b>Исправления:</b>\n")
		for i := range rep.Errors {
			explanation := ""
			if i < len(rep.Explanations) && rep.Explanations[i] != "" {
				explanation = fmt.Sprintf(" <i>(%s)</i>", rep.Explanations[i])
			}
			fmt.Fprintf(&b, "%d. <code>%s</code> → <b>%s</b>%s\n", i+1, rep.Errors[i], rep.Suggestions[i], explanation)
		}
	}
	fmt.Fprintf(&b, "\n📝 <b>Исправленный текст:</b>\n<pre>%s</pre>\n\n", rep.CorrectedText)
	fmt.Fprintf(&b, "📊 <b>Детали:</b>\n")
	fmt.Fprintf(&b, "• Всего слов: %d\n", rep.TotalWords)
	fmt.Fprintf(&b, "• Найдено ошибок: %d\n", rep.ErrorWords)
	fmt.Fprintf(&b, "• Точность текста: %d%%\n", rep.AccuracyScore)
	writeComment(&b, rep.AIComment)
	b.WriteString("<i>🤖 Проверка выполнена с помощью GigaChat AI</i>")
	return b.String()
}

// writeComment appends the AI comment block unless it is empty or is itself an
// unavailability notice, which would just repeat the source line.
func writeComment(b *strings.Builder, comment string) {
	if comment == "" || strings.Contains(strings.ToLower(comment), "недоступна") {
		return
	}
	fmt.Fprintf(b, "💡 <b>Комментарий ИИ:</b>\n%s\n\n", comment)
}

func severityIcon(severity string) string {
	switch severity {
	case "высокий":
		return "🔴"
	case "средний":
		return "🟡"
	default:
		return "🟢"
	}
}

func typeIcon(issueType string) string {
	switch {
	case strings.Contains(issueType, "пунктуация"):
		return "📝"
	case strings.Contains(issueType, "грамматика"):
		return "🔤"
	default:
		return "💡"
	}
}
