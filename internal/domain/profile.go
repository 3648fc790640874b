package domain

import "time"

// ProfileField is one explicitly confirmed preference value. Source is
// always "explicit"; the pipeline never infers profile values.
type ProfileField struct {
	Value       string    `json:"value"`
	Source      string    `json:"source"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

// JudgmentProfile is the external user preference record. The pipeline
// treats it as read-only input and never writes to it implicitly.
type JudgmentProfile struct {
	UserKey string                  `json:"user_key"`
	Fields  map[string]ProfileField `json:"fields"`
}
