package llm

import (
	"context"
	"sync"
	"time"
)

// MockClient is a configurable completion client for testing.
// Set the response fields to control what Complete returns; set Delay
// to simulate a slow backend that can hit a dispatch deadline. Safe for
// concurrent use: one client may take several fan-out calls at once.
type MockClient struct {
	CompleteResponse string
	CompleteError    error
	Delay            time.Duration

	// Call tracking for assertions
	CompleteCalls []string

	mu sync.Mutex
}

func NewMockClient() *MockClient {
	return &MockClient{
		CompleteResponse: "Mock completion",
	}
}

func (c *MockClient) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	c.mu.Lock()
	c.CompleteCalls = append(c.CompleteCalls, prompt)
	c.mu.Unlock()

	if c.Delay > 0 {
		timer := time.NewTimer(c.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return "", err
	}

	if c.CompleteError != nil {
		return "", c.CompleteError
	}
	return c.CompleteResponse, nil
}

// Reset clears recorded calls and restores defaults.
func (c *MockClient) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.CompleteResponse = "Mock completion"
	c.CompleteError = nil
	c.Delay = 0
	c.CompleteCalls = nil
}
