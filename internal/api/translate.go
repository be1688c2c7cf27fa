package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/deepl-clients/deepl-go/internal/types"
)

// Translate sends one or more texts for translation. Options left unset
// produce no parameter on the wire so the server default applies.
func Translate(ctx context.Context, httpClient HTTPClient, baseURL, authKey string, req types.TranslationRequest, opts *types.TranslationOptions) ([]types.Translation, error) {
	params := url.Values{}
	// target_lang is always sent, even when empty; the server is the
	// authority on rejecting it.
	params.Set("target_lang", req.TargetLang)
	if req.SourceLang != "" {
		params.Set("source_lang", req.SourceLang)
	}
	for _, text := range req.Texts {
		params.Add("text", text)
	}
	if opts != nil {
		applyOptions(params, opts)
	}

	body, err := postForm(ctx, httpClient, baseURL, authKey, "/translate", params)
	if err != nil {
		return nil, err
	}

	var wire struct {
		Translations *[]struct {
			DetectedSourceLanguage *string `json:"detected_source_language"`
			Text                   *string `json:"text"`
		} `json:"translations"`
	}
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, &types.Error{Kind: types.KindDeserialization, Underlying: err}
	}
	if wire.Translations == nil {
		return nil, &types.Error{
			Kind:       types.KindDeserialization,
			Underlying: fmt.Errorf("translate response missing translations"),
		}
	}

	translations := make([]types.Translation, 0, len(*wire.Translations))
	for i, t := range *wire.Translations {
		if t.DetectedSourceLanguage == nil || t.Text == nil {
			return nil, &types.Error{
				Kind:       types.KindDeserialization,
				Underlying: fmt.Errorf("translation %d missing detected_source_language or text", i),
			}
		}
		translations = append(translations, types.Translation{
			DetectedSourceLanguage: *t.DetectedSourceLanguage,
			Text:                   *t.Text,
		})
	}
	return translations, nil
}

// applyOptions maps each option that is set to its fixed wire token.
func applyOptions(params url.Values, opts *types.TranslationOptions) {
	switch opts.SplitSentences {
	case types.SplitNone:
		params.Set("split_sentences", "0")
	case types.SplitPunctuation:
		params.Set("split_sentences", "nonewlines")
	case types.SplitPunctuationAndNewlines:
		params.Set("split_sentences", "1")
	}
	if opts.PreserveFormatting != nil {
		if *opts.PreserveFormatting {
			params.Set("preserve_formatting", "1")
		} else {
			params.Set("preserve_formatting", "0")
		}
	}
	switch opts.Formality {
	case types.FormalityDefault:
		params.Set("formality", "default")
	case types.FormalityMore:
		params.Set("formality", "more")
	case types.FormalityLess:
		params.Set("formality", "less")
	}
}
