package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deepl-clients/deepl-go/internal/types"
)

// Usage retrieves account usage and limits. This can also be used to
// verify an API key without consuming translation contingent.
func Usage(ctx context.Context, httpClient HTTPClient, baseURL, authKey string) (*types.Usage, error) {
	body, err := postForm(ctx, httpClient, baseURL, authKey, "/usage", nil)
	if err != nil {
		return nil, err
	}

	// Pointer fields so a missing required field is reported instead of
	// silently decoding to zero.
	var wire struct {
		CharacterLimit *uint64 `json:"character_limit"`
		CharacterCount *uint64 `json:"character_count"`
	}
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, &types.Error{Kind: types.KindDeserialization, Underlying: err}
	}
	if wire.CharacterLimit == nil || wire.CharacterCount == nil {
		return nil, &types.Error{
			Kind:       types.KindDeserialization,
			Underlying: fmt.Errorf("usage response missing character_limit or character_count"),
		}
	}
	return &types.Usage{
		CharacterLimit: *wire.CharacterLimit,
		CharacterCount: *wire.CharacterCount,
	}, nil
}
