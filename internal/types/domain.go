package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// Usage reports account consumption for the current billing period.
// Both values are defined entirely by the server; the client enforces
// no relationship between them.
type Usage struct {
	// CharacterLimit is how many characters may be translated per
	// billing period, based on the account settings.
	CharacterLimit uint64 `json:"character_limit"`
	// CharacterCount is how many characters were already translated in
	// the current billing period.
	CharacterCount uint64 `json:"character_count"`
}

// Language describes one language supported by the API.
type Language struct {
	// Language is the identifier used by DeepL, e.g. "EN-US". Use this
	// when specifying a source or target language.
	Language string `json:"language"`
	// Name is the English name of the language, e.g. "English (America)".
	Name string `json:"name"`
}

// Translation holds one unit of translated text.
type Translation struct {
	// DetectedSourceLanguage holds the source language provided in the
	// request, or the one DeepL auto-detected when none was given.
	DetectedSourceLanguage string `json:"detected_source_language"`
	// Text is the translated text.
	Text string `json:"text"`
}
