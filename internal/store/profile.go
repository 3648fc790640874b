package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/arbiterhq/arbiter/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ProfileStore reads judgment profiles from postgres. The pipeline
// never writes through this store; profile rows are owned by the
// onboarding collaborator.
type ProfileStore struct {
	db *pgxpool.Pool
}

func NewProfileStore(db *pgxpool.Pool) *ProfileStore {
	return &ProfileStore{db: db}
}

func (s *ProfileStore) Get(ctx context.Context, userKey string) (*domain.JudgmentProfile, error) {
	rows, err := s.db.Query(ctx,
		`SELECT field, value, source, confirmed_at
		 FROM judgment_profiles WHERE user_key = $1
		 ORDER BY field`,
		userKey,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profile := &domain.JudgmentProfile{
		UserKey: userKey,
		Fields:  make(map[string]domain.ProfileField),
	}
	for rows.Next() {
		var field string
		var f domain.ProfileField
		if err := rows.Scan(&field, &f.Value, &f.Source, &f.ConfirmedAt); err != nil {
			return nil, err
		}
		// Profile values are explicit by contract; anything else is a
		// validation error surfaced verbatim to the caller.
		if f.Source != "explicit" {
			return nil, fmt.Errorf("profile validation: field %q has non-explicit source %q", field, f.Source)
		}
		profile.Fields[field] = f
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(profile.Fields) == 0 {
		return nil, ErrNotFound
	}
	return profile, nil
}
