package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// missingValue is substituted for any absent or non-scalar field. The
// upstream JSON shape is advisory, never validated, so every access here
// must survive a missing or oddly-typed value.
const missingValue = "N/A"

// FormatAnalysis renders parsed upstream data as a chat-ready report for the
// given analysis type. Output uses the inline HTML vocabulary the chat layer
// renders (<b>, <i>, <code>, <pre>); the markup is a fixed contract, not free
// text. Types outside the closed enumeration get a labeled pretty-printed
// dump instead of being dropped.
func FormatAnalysis(parsed map[string]any, typ Type, originalText string) string {
	switch typ {
	case TypeTextAnalysis:
		return formatTextAnalysis(parsed)
	case TypeMorphology:
		return formatMorphology(parsed, originalText)
	case TypePhonetics:
		return formatPhonetics(parsed, originalText)
	case TypeSynonyms:
		return formatSynonyms(parsed, originalText)
	case TypeLanguageDetection:
		return formatLanguageDetection(parsed)
	case TypeStylistics:
		return formatStylistics(parsed)
	case TypeEtymology:
		return formatEtymology(parsed, originalText)
	default:
		return fmt.Sprintf("<b>Анализ (%s):</b>\n<pre>%s</pre>", typ, prettyJSON(parsed))
	}
}

func formatTextAnalysis(parsed map[string]any) string {
	stats := getMap(parsed, "statistics")
	var b strings.Builder
	b.WriteString("📊 <b>Полный анализ текста:</b>\n\n")
	b.WriteString("<b>Статистика:</b>\n")
	fmt.Fprintf(&b, "• Символов: %s\n", getScalar(stats, "characters"))
	fmt.Fprintf(&b, "• Слов: %s\n", getScalar(stats, "words"))
	fmt.Fprintf(&b, "• Предложений: %s\n", getScalar(stats, "sentences"))
	fmt.Fprintf(&b, "• Ср. длина слова: %s\n", getScalar(stats, "average_word_length"))
	fmt.Fprintf(&b, "• Ср. длина предложения: %s\n\n", getScalar(stats, "average_sentence_length"))
	fmt.Fprintf(&b, "<b>Стиль языка:</b> %s\n", getScalar(parsed, "language_style"))
	fmt.Fprintf(&b, "<b>Сложность:</b> %s\n", getScalar(parsed, "complexity"))
	fmt.Fprintf(&b, "<b>Читаемость:</b> %s/100\n", getScalar(parsed, "readability_score"))
	fmt.Fprintf(&b, "<b>Эмоциональный тон:</b> %s\n\n", getScalar(parsed, "emotional_tone"))
	b.WriteString("<b>Ключевые темы:</b>\n")
	b.WriteString(bullets(getList(parsed, "key_themes")))
	b.WriteString("\n\n<b>Рекомендации:</b>\n")
	b.WriteString(bullets(getList(parsed, "recommendations")))
	return b.String()
}

func formatMorphology(parsed map[string]any, originalText string) string {
	features := getMap(parsed, "grammatical_features")
	var b strings.Builder
	fmt.Fprintf(&b, "🔤 <b>Морфологический разбор слова '%s':</b>\n\n", originalText)
	fmt.Fprintf(&b, "<b>Часть речи:</b> %s\n", getScalar(parsed, "part_of_speech"))
	fmt.Fprintf(&b, "<b>Начальная форма:</b> %s\n\n", getScalar(parsed, "initial_form"))
	b.WriteString("<b>Грамматические признаки:</b>\n")
	fmt.Fprintf(&b, "• Падеж: %s\n", getScalar(features, "case"))
	fmt.Fprintf(&b, "• Число: %s\n", getScalar(features, "number"))
	fmt.Fprintf(&b, "• Род: %s\n", getScalar(features, "gender"))
	fmt.Fprintf(&b, "• Лицо: %s\n", getScalar(features, "person"))
	fmt.Fprintf(&b, "• Время: %s\n", getScalar(features, "tense"))
	fmt.Fprintf(&b, "• Наклонение: %s\n", getScalar(features, "mood"))
	fmt.Fprintf(&b, "• Залог: %s\n", getScalar(features, "voice"))
	fmt.Fprintf(&b, "• Вид: %s\n\n", getScalar(features, "aspect"))
	fmt.Fprintf(&b, "<b>Морфемный разбор:</b>\n%s\n\n", getScalar(parsed, "morphological_analysis"))
	fmt.Fprintf(&b, "<b>Синтаксическая роль:</b> %s\n\n", getScalar(parsed, "syntactic_role"))
	b.WriteString("<b>Примеры использования:</b>\n")
	b.WriteString(bullets(getList(parsed, "examples")))
	return b.String()
}

func formatPhonetics(parsed map[string]any, originalText string) string {
	sounds := getMap(parsed, "sound_analysis")
	var b strings.Builder
	fmt.Fprintf(&b, "🎵 <b>Фонетический анализ слова '%s':</b>\n\n", originalText)
	fmt.Fprintf(&b, "<b>Транскрипция:</b> %s\n", getScalar(parsed, "transcription"))
	fmt.Fprintf(&b, "<b>Слоги:</b> %s\n", strings.Join(getList(parsed, "syllables"), "-"))
	fmt.Fprintf(&b, "<b>Количество слогов:</b> %s\n", getScalar(parsed, "syllable_count"))
	fmt.Fprintf(&b, "<b>Ударный слог:</b> %s\n\n", getScalar(parsed, "stress_syllable"))
	b.WriteString("<b>Звуковой состав:</b>\n")
	fmt.Fprintf(&b, "• Гласных: %s\n", getScalar(sounds, "vowels"))
	fmt.Fprintf(&b, "• Согласных: %s\n", getScalar(sounds, "consonants"))
	fmt.Fprintf(&b, "• Звонких согласных: %s\n", getScalar(sounds, "voiced_consonants"))
	fmt.Fprintf(&b, "• Глухих согласных: %s\n", getScalar(sounds, "voiceless_consonants"))
	fmt.Fprintf(&b, "• Твёрдых согласных: %s\n", getScalar(sounds, "hard_consonants"))
	fmt.Fprintf(&b, "• Мягких согласных: %s\n\n", getScalar(sounds, "soft_consonants"))
	fmt.Fprintf(&b, "<b>Звуко-буквенный анализ:</b>\n%s\n\n", getScalar(parsed, "sound_letter_analysis"))
	b.WriteString("<b>Фонетические особенности:</b>\n")
	b.WriteString(bullets(getList(parsed, "phonetic_features")))
	return b.String()
}

func formatSynonyms(parsed map[string]any, originalText string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📚 <b>Лексический анализ слова '%s':</b>\n\n", originalText)
	b.WriteString("<b>Синонимы:</b>\n")
	b.WriteString(bullets(getList(parsed, "synonyms")))
	b.WriteString("\n\n<b>Антонимы:</b>\n")
	b.WriteString(bullets(getList(parsed, "antonyms")))
	b.WriteString("\n\n<b>Родственные слова:</b>\n")
	b.WriteString(bullets(getList(parsed, "related_words")))
	fmt.Fprintf(&b, "\n\n<b>Словообразовательное гнездо:</b>\n%s\n\n", getScalar(parsed, "word_family"))
	fmt.Fprintf(&b, "<b>Этимология:</b>\n%s\n\n", getScalar(parsed, "etymology"))
	b.WriteString("<b>Примеры использования:</b>\n")
	b.WriteString(bullets(getList(parsed, "usage_examples")))
	fmt.Fprintf(&b, "\n\n<b>Стилистические пометы:</b>\n%s", getScalar(parsed, "stylistic_notes"))
	return b.String()
}

func formatLanguageDetection(parsed map[string]any) string {
	var langLines []string
	if langs, ok := parsed["detected_languages"].([]any); ok {
		for _, item := range langs {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			langLines = append(langLines, fmt.Sprintf("• %s: %s%%",
				getScalar(entry, "language"), getScalar(entry, "confidence")))
		}
	}

	mixed := "Нет"
	if isMixed, ok := parsed["is_mixed"].(bool); ok && isMixed {
		mixed = "Да"
	}

	var b strings.Builder
	b.WriteString("🌍 <b>Определение языка текста:</b>\n\n")
	fmt.Fprintf(&b, "<b>Обнаруженные языки:</b>\n%s\n\n", strings.Join(langLines, "\n"))
	fmt.Fprintf(&b, "<b>Основной язык:</b> %s\n", getScalar(parsed, "primary_language"))
	fmt.Fprintf(&b, "<b>Смешанный текст:</b> %s\n\n", mixed)
	b.WriteString("<b>Языковые особенности:</b>\n")
	b.WriteString(bullets(getList(parsed, "language_features")))
	fmt.Fprintf(&b, "\n\n<b>Подсказка для перевода:</b>\n%s", getScalar(parsed, "translation_hint"))
	return b.String()
}

func formatStylistics(parsed map[string]any) string {
	styleErrors := bullets(getList(parsed, "stylistic_errors"))
	if styleErrors == "" {
		styleErrors = "• Не обнаружено"
	}

	var b strings.Builder
	b.WriteString("🎨 <b>Стилистический анализ текста:</b>\n\n")
	fmt.Fprintf(&b, "<b>Тип стиля:</b> %s\n", getScalar(parsed, "style_type"))
	fmt.Fprintf(&b, "<b>Тон текста:</b> %s\n", getScalar(parsed, "tone"))
	fmt.Fprintf(&b, "<b>Уровень формальности:</b> %s\n", getScalar(parsed, "formality_level"))
	fmt.Fprintf(&b, "<b>Богатство словаря:</b> %s\n", getScalar(parsed, "vocabulary_richness"))
	fmt.Fprintf(&b, "<b>Разнообразие предложений:</b> %s\n\n", getScalar(parsed, "sentence_variety"))
	b.WriteString("<b>Стилистические особенности:</b>\n")
	b.WriteString(bullets(getList(parsed, "stylistic_features")))
	fmt.Fprintf(&b, "\n\n<b>Стилистические ошибки:</b>\n%s\n\n", styleErrors)
	b.WriteString("<b>Предложения по улучшению:</b>\n")
	b.WriteString(bullets(getList(parsed, "improvement_suggestions")))
	fmt.Fprintf(&b, "\n\n<b>Общее впечатление:</b>\n%s", getScalar(parsed, "overall_impression"))
	return b.String()
}

func formatEtymology(parsed map[string]any, originalText string) string {
	borrowing := getScalar(parsed, "borrowing_source")
	if borrowing == missingValue {
		borrowing = "Не заимствовано"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📜 <b>Этимологический анализ слова '%s':</b>\n\n", originalText)
	fmt.Fprintf(&b, "<b>Происхождение:</b>\n%s\n\n", getScalar(parsed, "origin"))
	b.WriteString("<b>Исторические формы:</b>\n")
	b.WriteString(bullets(getList(parsed, "historical_forms")))
	fmt.Fprintf(&b, "\n\n<b>Корень:</b> %s\n\n", getScalar(parsed, "root"))
	b.WriteString("<b>Родственные слова:</b>\n")
	b.WriteString(bullets(getList(parsed, "cognates")))
	fmt.Fprintf(&b, "\n\n<b>Источник заимствования:</b> %s\n\n", borrowing)
	fmt.Fprintf(&b, "<b>Эволюция значения:</b>\n%s\n\n", getScalar(parsed, "meaning_evolution"))
	b.WriteString("<b>Интересные факты:</b>\n")
	b.WriteString(bullets(getList(parsed, "interesting_facts")))
	return b.String()
}

// --- advisory-shape accessors ---

func getMap(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	nested, _ := m[key].(map[string]any)
	return nested
}

// getScalar stringifies a scalar field, substituting "N/A" when the field is
// absent, empty, or not a scalar.
func getScalar(m map[string]any, key string) string {
	if m == nil {
		return missingValue
	}
	value, ok := m[key]
	if !ok || value == nil {
		return missingValue
	}
	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return missingValue
		}
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return missingValue
	}
}

// getList stringifies the elements of a sequence field; missing or non-list
// values yield an empty slice.
func getList(m map[string]any, key string) []string {
	if m == nil {
		return nil
	}
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	items := make([]string, 0, len(raw))
	for _, item := range raw {
		switch v := item.(type) {
		case string:
			items = append(items, v)
		case float64:
			items = append(items, strconv.FormatFloat(v, 'f', -1, 64))
		default:
			items = append(items, fmt.Sprint(v))
		}
	}
	return items
}

func bullets(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "• "+item)
	}
	return strings.Join(lines, "\n")
}

func prettyJSON(parsed map[string]any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(parsed); err != nil {
		return fmt.Sprint(parsed)
	}
	return strings.TrimRight(buf.String(), "\n")
}
