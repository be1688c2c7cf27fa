package types

// ------------------------------
// Request Types
// ------------------------------

// TranslationRequest holds the texts to translate for one call.
type TranslationRequest struct {
	// SourceLang is the source language, if known. Left empty, the
	// server auto-detects it and no source_lang parameter is sent.
	SourceLang string
	// TargetLang is the target language (required by the server).
	TargetLang string
	// Texts are the strings to translate, in the order the results
	// should come back.
	Texts []string
}

// SplitSentences controls how the engine segments input before
// translating. The zero value sends no parameter so the server default
// applies.
type SplitSentences int

const (
	// SplitDefault omits the parameter.
	SplitDefault SplitSentences = iota
	// SplitNone disables sentence splitting.
	SplitNone
	// SplitPunctuation splits on punctuation only.
	SplitPunctuation
	// SplitPunctuationAndNewlines splits on punctuation and newlines.
	SplitPunctuationAndNewlines
)

// Formality selects the desired translation formality. The zero value
// sends no parameter so the server default applies.
type Formality int

const (
	// FormalityUnset omits the parameter.
	FormalityUnset Formality = iota
	// FormalityDefault requests the server's default formality explicitly.
	FormalityDefault
	// FormalityMore leans towards formal language.
	FormalityMore
	// FormalityLess leans towards informal language.
	FormalityLess
)

// TranslationOptions carries the optional translation flags. Every
// field is independently optional; an unset field produces no request
// parameter at all rather than an explicit default token.
type TranslationOptions struct {
	SplitSentences SplitSentences
	// PreserveFormatting, when set, tells the engine whether to respect
	// the original formatting even where it would usually correct some
	// aspects. Nil omits the parameter.
	PreserveFormatting *bool
	Formality          Formality
}
