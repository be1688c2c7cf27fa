package deepl

import "github.com/deepl-clients/deepl-go/internal/types"

// Public type aliases so SDK consumers can import only the deepl package.
type (
	// Requests
	TranslationRequest = types.TranslationRequest
	TranslationOptions = types.TranslationOptions
	SplitSentences     = types.SplitSentences
	Formality          = types.Formality

	// Domain entities
	Usage       = types.Usage
	Language    = types.Language
	Translation = types.Translation

	// Errors
	Error     = types.Error
	ErrorKind = types.ErrorKind
)

// Sentence-splitting modes. SplitDefault omits the parameter so the
// server default applies.
const (
	SplitDefault                = types.SplitDefault
	SplitNone                   = types.SplitNone
	SplitPunctuation            = types.SplitPunctuation
	SplitPunctuationAndNewlines = types.SplitPunctuationAndNewlines
)

// Formality modes. FormalityUnset omits the parameter so the server
// default applies; FormalityDefault requests it explicitly.
const (
	FormalityUnset   = types.FormalityUnset
	FormalityDefault = types.FormalityDefault
	FormalityMore    = types.FormalityMore
	FormalityLess    = types.FormalityLess
)

// Bool returns a pointer to v, for the optional boolean fields in
// TranslationOptions.
func Bool(v bool) *bool { return &v }
