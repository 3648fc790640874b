package search

import (
	"context"

	"github.com/arbiterhq/arbiter/internal/domain"
)

// MockClient is a configurable search client for testing.
type MockClient struct {
	SearchResponse []domain.SearchResult
	SearchError    error

	// Call tracking for assertions
	SearchCalls []string
}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (c *MockClient) Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	c.SearchCalls = append(c.SearchCalls, query)
	if c.SearchError != nil {
		return nil, c.SearchError
	}
	if len(c.SearchResponse) > limit {
		return c.SearchResponse[:limit], nil
	}
	return c.SearchResponse, nil
}
