package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LLMClient is one model-invocation capability. Each configured backend
// carries its own client; the retriever borrows one for fact extraction.
type LLMClient interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// SearchResult is one hit from the external search capability.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
	Domain  string `json:"domain"`
}

// SearchClient is the external search capability, bounded to a fixed
// maximum result count per call.
type SearchClient interface {
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
}

// ProfileStore reads user preference profiles. Read-only from the
// pipeline's perspective.
type ProfileStore interface {
	Get(ctx context.Context, userKey string) (*JudgmentProfile, error)
}

// JudgmentLogEntry is the audit record persisted after each completed
// orchestration. Request-scoped entities themselves never persist.
type JudgmentLogEntry struct {
	ID           uuid.UUID
	Mode         Mode
	StressActive bool
	EvidenceUsed bool
	Tool         ExecutionTool
	Backends     int
	Succeeded    int
	CreatedAt    time.Time
}

// JudgmentLogStore records completed orchestrations.
type JudgmentLogStore interface {
	Record(ctx context.Context, e *JudgmentLogEntry) error
}
