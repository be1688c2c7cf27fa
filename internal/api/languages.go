package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/deepl-clients/deepl-go/internal/types"
)

// Language list type selectors accepted by the /languages endpoint.
const (
	LanguageTypeSource = "source"
	LanguageTypeTarget = "target"
)

// Languages retrieves the languages currently available as translation
// sources or targets, depending on languageType. Order is the server's;
// no client-side sorting or deduplication happens.
func Languages(ctx context.Context, httpClient HTTPClient, baseURL, authKey, languageType string) ([]types.Language, error) {
	params := url.Values{}
	params.Set("type", languageType)

	body, err := postForm(ctx, httpClient, baseURL, authKey, "/languages", params)
	if err != nil {
		return nil, err
	}

	var wire []struct {
		Language *string `json:"language"`
		Name     *string `json:"name"`
	}
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, &types.Error{Kind: types.KindDeserialization, Underlying: err}
	}

	languages := make([]types.Language, 0, len(wire))
	for i, l := range wire {
		if l.Language == nil || l.Name == nil {
			return nil, &types.Error{
				Kind:       types.KindDeserialization,
				Underlying: fmt.Errorf("language entry %d missing language or name", i),
			}
		}
		languages = append(languages, types.Language{Language: *l.Language, Name: *l.Name})
	}
	return languages, nil
}
