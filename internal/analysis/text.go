package analysis

import (
	"regexp"

	"github.com/rivo/uniseg"
)

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?]+`)
	wordRe          = regexp.MustCompile(`[\p{L}\p{N}_]+`)
)

// CountSentences counts sentence-like fragments by splitting on terminal
// punctuation runs.
func CountSentences(text string) int {
	return len(sentenceSplitRe.Split(text, -1))
}

// CountWords counts word tokens.
func CountWords(text string) int {
	return len(wordRe.FindAllString(text, -1))
}

// CountChars counts user-perceived characters rather than bytes or runes,
// so combining marks and emoji do not inflate the totals shown to users.
func CountChars(text string) int {
	return uniseg.GraphemeClusterCount(text)
}
