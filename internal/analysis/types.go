package analysis

// Type selects one of the linguistic analysis categories. The set is closed:
// prompt construction and formatting are both keyed on it and must stay in
// lock-step. Unknown values are tolerated on input (see BuildPrompt and
// FormatAnalysis) because the boundary layer hands us free-form selectors.
type Type string

const (
	TypeTextAnalysis      Type = "text_analysis"
	TypeMorphology        Type = "morphology"
	TypePhonetics         Type = "phonetics"
	TypeSynonyms          Type = "synonyms"
	TypeLanguageDetection Type = "language_detection"
	TypeStylistics        Type = "stylistics"
	TypeEtymology         Type = "etymology"
)

// AllTypes returns the closed enumeration in a stable order.
func AllTypes() []Type {
	return []Type{
		TypeTextAnalysis,
		TypeMorphology,
		TypePhonetics,
		TypeSynonyms,
		TypeLanguageDetection,
		TypeStylistics,
		TypeEtymology,
	}
}

// Valid reports whether t belongs to the closed enumeration.
func (t Type) Valid() bool {
	switch t {
	case TypeTextAnalysis, TypeMorphology, TypePhonetics, TypeSynonyms,
		TypeLanguageDetection, TypeStylistics, TypeEtymology:
		return true
	}
	return false
}

// Source identifies which path produced a result.
type Source string

const (
	SourceGigaChat         Source = "gigachat"
	SourceGigaChatText     Source = "gigachat_text"
	SourceGigaChatGrammar  Source = "gigachat_grammar"
	SourceGigaChatSpelling Source = "gigachat_spelling"
	SourceLocal            Source = "local"
	SourceLocalFallback    Source = "local_fallback"
	SourceError            Source = "error"
)

// PromptPair carries the per-type system instruction and the user instruction
// with the input text interpolated. Built fresh per request, never cached.
type PromptPair struct {
	System string
	User   string
}

// Result is the uniform envelope every analysis path returns.
type Result struct {
	Success      bool
	Type         Type
	Analysis     string
	ParsedData   map[string]any
	OriginalText string
	Source       Source
}

// GrammarReport is the uniform envelope for grammar checks. The five issue
// slices are parallel: an entry without an original fragment is dropped from
// all of them atomically.
type GrammarReport struct {
	Success        bool
	Issues         []string
	Corrections    []string
	Explanations   []string
	Types          []string
	Severities     []string
	CorrectedText  string
	AIComment      string
	TotalSentences int
	TotalChars     int
	IssueCount     int
	Score          int
	HasIssues      bool
	Source         Source
}

// SpellingReport is the uniform envelope for spelling checks. Errors,
// Suggestions and Explanations are parallel slices.
type SpellingReport struct {
	Success       bool
	Errors        []string
	Suggestions   []string
	Explanations  []string
	CorrectedText string
	AIComment     string
	TotalWords    int
	ErrorWords    int
	HasErrors     bool
	AccuracyScore int
	Source        Source
}
