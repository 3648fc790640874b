package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/arbiterhq/arbiter/internal/domain"
	"go.uber.org/zap"
)

// Markers of persuasive language. Any extracted sentence containing
// one is dropped; evidence must stay neutral.
var persuasiveMarkers = []string{
	"best", "amazing", "incredible", "revolutionary", "game-chang",
	"must-have", "guaranteed", "unbelievable", "world-class",
	"you should", "don't miss", "stunning",
}

// Markers of a computed-statistic request, used for empty-reason
// classification only.
var computedStatMarkers = []string{
	"average", "mean", "median", "per capita", "total number",
	"how many", "rate of", "percentage of", "sum of",
}

// EvidenceService retrieves sourced facts for a query: one bounded
// search call, one bounded model extraction call. Retrieval failure is
// never fatal; it degrades to a limitation note on the bundle.
type EvidenceService struct {
	search     domain.SearchClient
	extractor  domain.LLMClient
	logger     *zap.Logger
	maxResults int
	maxFacts   int
	timeout    time.Duration
}

func NewEvidenceService(search domain.SearchClient, extractor domain.LLMClient, logger *zap.Logger, maxResults, maxFacts int, timeout time.Duration) *EvidenceService {
	return &EvidenceService{
		search:     search,
		extractor:  extractor,
		logger:     logger,
		maxResults: maxResults,
		maxFacts:   maxFacts,
		timeout:    timeout,
	}
}

type extractedFact struct {
	Text   string `json:"text"`
	Source int    `json:"source"`
}

// Retrieve runs the evidence step for one query. The returned bundle
// always has a usable shape: facts with resolvable sources, or an
// empty-reason, or a limitation note.
func (s *EvidenceService) Retrieve(ctx context.Context, query string) *domain.EvidenceBundle {
	start := time.Now()
	bundle := &domain.EvidenceBundle{Query: query}
	defer func() { bundle.Duration = time.Since(start) }()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if s.search == nil || s.extractor == nil {
		bundle.Limitation = "evidence search is not configured; answering without external facts"
		return bundle
	}

	results, err := s.search.Search(ctx, query, s.maxResults)
	if err != nil {
		s.logger.Warn("evidence search failed", zap.String("query", query), zap.Error(err))
		bundle.Limitation = "evidence search failed; answering without external facts"
		return bundle
	}

	if len(results) == 0 {
		bundle.EmptyReason = domain.EmptyNoResults
		return bundle
	}

	now := time.Now()
	sources := make([]domain.EvidenceSource, len(results))
	for i, r := range results {
		sources[i] = domain.EvidenceSource{
			ID:          fmt.Sprintf("s%d", i+1),
			Title:       r.Title,
			Domain:      r.Domain,
			URL:         r.URL,
			RetrievedAt: now,
		}
	}

	facts, err := s.extractFacts(ctx, query, results, sources)
	if err != nil {
		s.logger.Warn("fact extraction failed", zap.String("query", query), zap.Error(err))
		bundle.Limitation = "fact extraction failed; search results could not be turned into sourced facts"
		return bundle
	}

	if len(facts) == 0 {
		bundle.EmptyReason = classifyEmpty(query, results)
		return bundle
	}

	bundle.Facts = facts
	bundle.Sources = sources
	return bundle
}

func (s *EvidenceService) extractFacts(ctx context.Context, query string, results []domain.SearchResult, sources []domain.EvidenceSource) ([]domain.EvidenceFact, error) {
	prompt := fmt.Sprintf(extractFactsPrompt, query, s.maxFacts, formatSearchResults(results))

	raw, err := s.extractor.Complete(ctx, prompt, 1024)
	if err != nil {
		return nil, fmt.Errorf("extract facts: %w", err)
	}

	// Strip markdown fences if present
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var extracted []extractedFact
	if err := json.Unmarshal([]byte(raw), &extracted); err != nil {
		return nil, fmt.Errorf("parse extraction result: %w (raw: %s)", err, raw)
	}

	facts := make([]domain.EvidenceFact, 0, s.maxFacts)
	for _, e := range extracted {
		if len(facts) >= s.maxFacts {
			break
		}
		// A fact without a resolvable source is never surfaced.
		if e.Source < 1 || e.Source > len(sources) {
			continue
		}
		if e.Text == "" || isPersuasive(e.Text) {
			continue
		}
		facts = append(facts, domain.EvidenceFact{
			Text:     e.Text,
			SourceID: sources[e.Source-1].ID,
		})
	}
	return facts, nil
}

func isPersuasive(text string) bool {
	lower := strings.ToLower(text)
	for _, m := range persuasiveMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// classifyEmpty picks the reason extraction produced zero facts from
// non-empty search results. Precedence is fixed: computed_statistic,
// then ambiguous_query, then source_fetch_blocked, then unknown.
func classifyEmpty(query string, results []domain.SearchResult) domain.EmptyReason {
	lower := strings.ToLower(query)
	for _, m := range computedStatMarkers {
		if strings.Contains(lower, m) {
			return domain.EmptyComputedStatistic
		}
	}

	if len(strings.Fields(lower)) < 3 {
		return domain.EmptyAmbiguousQuery
	}

	blocked := true
	for _, r := range results {
		if strings.TrimSpace(r.Snippet) != "" {
			blocked = false
			break
		}
	}
	if blocked {
		return domain.EmptySourceBlocked
	}

	return domain.EmptyUnknown
}

// evidenceQuery derives the search query from the utterance: the first
// sentence, trimmed of the question mark.
func evidenceQuery(text string) string {
	q := strings.TrimSpace(text)
	if i := strings.IndexAny(q, ".?!\n"); i > 0 {
		q = q[:i]
	}
	return strings.TrimSpace(q)
}
