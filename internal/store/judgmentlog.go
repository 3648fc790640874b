package store

import (
	"context"

	"github.com/arbiterhq/arbiter/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// JudgmentLogStore persists one audit row per completed orchestration.
type JudgmentLogStore struct {
	db *pgxpool.Pool
}

func NewJudgmentLogStore(db *pgxpool.Pool) *JudgmentLogStore {
	return &JudgmentLogStore{db: db}
}

func (s *JudgmentLogStore) Record(ctx context.Context, e *domain.JudgmentLogEntry) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO judgment_log (id, mode, stress_active, evidence_used, tool, backends, succeeded, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.Mode, e.StressActive, e.EvidenceUsed, e.Tool, e.Backends, e.Succeeded, e.CreatedAt,
	)
	return err
}
