package domain

import "time"

// EvidenceFact is a sourced, neutral factual statement. A fact without
// a resolvable source is never surfaced; the retriever discards any
// extracted sentence whose source index does not resolve.
type EvidenceFact struct {
	Text        string     `json:"text"`
	SourceID    string     `json:"source_id"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// EvidenceSource identifies where a fact came from.
type EvidenceSource struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Domain      string    `json:"domain"`
	URL         string    `json:"url"`
	RetrievedAt time.Time `json:"retrieved_at"`
}

// EmptyReason explains why extraction produced zero facts despite
// non-empty search results. The retriever checks reasons in a fixed
// precedence: no_results, computed_statistic, ambiguous_query,
// source_fetch_blocked, unknown.
type EmptyReason string

const (
	EmptyNoResults         EmptyReason = "no_results"
	EmptyComputedStatistic EmptyReason = "computed_statistic"
	EmptyAmbiguousQuery    EmptyReason = "ambiguous_query"
	EmptySourceBlocked     EmptyReason = "source_fetch_blocked"
	EmptyUnknown           EmptyReason = "unknown"
)

// EvidenceBundle is the full retriever output for one query. A failed
// retrieval carries a limitation note instead of facts; it is never
// fatal to the rest of the pipeline.
type EvidenceBundle struct {
	Query       string           `json:"query"`
	Facts       []EvidenceFact   `json:"facts"`
	Sources     []EvidenceSource `json:"sources"`
	EmptyReason EmptyReason      `json:"empty_reason,omitempty"`
	Limitation  string           `json:"limitation,omitempty"`
	Duration    time.Duration    `json:"duration"`
}

// Used reports whether the bundle carries at least one sourced fact.
func (b *EvidenceBundle) Used() bool {
	return b != nil && len(b.Facts) > 0
}
