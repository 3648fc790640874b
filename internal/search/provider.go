// Package search wraps the external search capability used by the
// evidence retriever. Results are bounded and carry enough metadata to
// build a resolvable evidence source.
package search

import (
	"fmt"

	"github.com/arbiterhq/arbiter/internal/domain"
)

// Provider constants
const (
	ProviderBrave = "brave"
	ProviderMock  = "mock"
)

// NewClient creates a search client based on the provider name.
// Returns an error if the provider is unknown or the API key is empty
// (except for mock); the caller degrades evidence retrieval rather
// than failing the pipeline.
func NewClient(provider, apiKey string) (domain.SearchClient, error) {
	switch provider {
	case ProviderBrave:
		if apiKey == "" {
			return nil, fmt.Errorf("BRAVE_API_KEY is required for Brave provider")
		}
		return NewBraveClient(apiKey), nil

	case ProviderMock:
		return NewMockClient(), nil

	default:
		return nil, fmt.Errorf("unknown search provider: %s (valid options: brave, mock)", provider)
	}
}
