package analysis

import (
	"strings"
	"testing"
)

func TestBuildPrompt_ContainsInputText(t *testing.T) {
	const text = "в лесу родилась ёлочка"
	for _, typ := range AllTypes() {
		pair := BuildPrompt(typ, text)
		if pair.System == "" {
			t.Errorf("%s: empty system instruction", typ)
		}
		if !strings.Contains(pair.User, text) {
			t.Errorf("%s: user instruction does not carry the input text", typ)
		}
		if !strings.Contains(pair.System, "JSON") {
			t.Errorf("%s: system instruction does not demand JSON", typ)
		}
	}
}

func TestBuildPrompt_UnknownTypeFallsBackToTextAnalysis(t *testing.T) {
	const text = "какой-то текст"
	unknown := BuildPrompt(Type("foo"), text)
	want := BuildPrompt(TypeTextAnalysis, text)
	if unknown != want {
		t.Fatalf("unknown type did not fall back to the text_analysis pair")
	}
}

func TestBuildPrompt_FreshPerCall(t *testing.T) {
	a := BuildPrompt(TypeMorphology, "первый")
	b := BuildPrompt(TypeMorphology, "второй")
	if a.User == b.User {
		t.Fatalf("user instruction must interpolate the current input")
	}
	if a.System != b.System {
		t.Fatalf("system instruction must be fixed per type")
	}
}

func TestGrammarAndSpellingPrompts(t *testing.T) {
	const text = "он сказал что придет"
	if pair := GrammarPrompt(text); !strings.Contains(pair.User, text) || pair.System == "" {
		t.Fatalf("grammar prompt incomplete: %+v", pair)
	}
	if pair := SpellingPrompt(text); !strings.Contains(pair.User, text) || pair.System == "" {
		t.Fatalf("spelling prompt incomplete: %+v", pair)
	}
}
