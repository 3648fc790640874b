package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arbiterhq/arbiter/internal/domain"
)

// Fixed evidence-usage notes. The synthesis never stays silent about
// evidence.
const (
	EvidenceNoteUsed         = "Evidence: sourced facts were retrieved and used for this judgment."
	EvidenceNoteUnavailable  = "Evidence: retrieval was attempted but no usable facts were available."
	EvidenceNoteNotRequested = "Evidence: not requested for this judgment."
)

// ErrInvalidExecutionTool reports a contract violation: the synthesis
// produced a tool tag outside the closed four-value taxonomy.
var ErrInvalidExecutionTool = errors.New("execution tool outside the allowed taxonomy")

// Sentences containing one of these are surfaced as ranked risks.
var riskMarkers = []string{
	"risk", "legal", "lawsuit", "liability", "expose", "penalty",
	"fine", "lose", "loss", "damage", "fail", "harm", "violation",
}

// Rewrite-intent markers drive tool selection when there is no
// disagreement to argue.
var rewriteMarkers = []string{
	"rewrite", "rephrase", "redraft", "draft", "edit this", "reword",
}

const maxRisks = 5

// SynthesisBuilder merges evidence, lenses, and disagreements into one
// structured result. The merge is fully deterministic: replaying the
// same inputs yields an identical result.
type SynthesisBuilder struct{}

func NewSynthesisBuilder() *SynthesisBuilder {
	return &SynthesisBuilder{}
}

// Build produces the final synthesis from the surviving outputs.
// execOutput is the normalized execution-lens result, present only
// when the stress test was active and that call succeeded.
func (b *SynthesisBuilder) Build(
	u domain.Utterance,
	evidence *domain.EvidenceBundle,
	evidenceRequested bool,
	outputs []domain.NormalizedOutput,
	disagreements []domain.Disagreement,
	stress bool,
	execOutput *domain.NormalizedOutput,
) (*domain.SynthesisResult, error) {
	result := &domain.SynthesisResult{
		Framing:       "Deciding: " + firstSentence(u.Text),
		Risks:         collectRisks(outputs),
		Disagreements: disagreements,
		EvidenceNote:  evidenceNote(evidence, evidenceRequested),
	}

	recs := survivingRecommendations(outputs)
	interps := survivingInterpretations(outputs)

	switch {
	case stress && execOutput != nil && execOutput.Recommendation != "":
		result.Primary = execOutput.Recommendation
	case len(recs) > 0:
		result.Primary = majorityRecommendation(recs)
	case len(interps) > 0:
		result.Primary = interps[0]
	default:
		result.Primary = "No backend produced a usable answer; clarify the request and retry."
	}

	if len(recs) > 0 {
		result.Safer = mostCautious(recs)
		result.Bolder = mostBold(recs)
	}

	switch {
	case len(outputs) == 0:
		result.Tool = domain.ToolClarify
	case len(disagreements) > 0:
		result.Tool = domain.ToolArgue
	case hasRewriteIntent(u.Text):
		result.Tool = domain.ToolRewrite
	default:
		result.Tool = domain.ToolResponse
	}

	if !domain.ValidExecutionTool(string(result.Tool)) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidExecutionTool, result.Tool)
	}
	return result, nil
}

func firstSentence(text string) string {
	t := strings.TrimSpace(text)
	if i := strings.IndexAny(t, ".?!\n"); i > 0 {
		t = t[:i+1]
	}
	return t
}

// collectRisks pulls risk-flavored sentences from every evidence and
// interpretation section, deduplicated case-insensitively and capped.
func collectRisks(outputs []domain.NormalizedOutput) []string {
	var risks []string
	seen := make(map[string]bool)
	for _, o := range outputs {
		for _, section := range []string{o.Evidence, o.Interpretation} {
			for _, sentence := range splitSentences(section) {
				if len(risks) >= maxRisks {
					return risks
				}
				lower := strings.ToLower(sentence)
				if seen[lower] {
					continue
				}
				for _, m := range riskMarkers {
					if strings.Contains(lower, m) {
						seen[lower] = true
						risks = append(risks, sentence)
						break
					}
				}
			}
		}
	}
	return risks
}

func splitSentences(text string) []string {
	var sentences []string
	for _, part := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '?' || r == '!' || r == '\n'
	}) {
		part = strings.TrimSpace(part)
		if part != "" {
			sentences = append(sentences, part)
		}
	}
	return sentences
}

func survivingRecommendations(outputs []domain.NormalizedOutput) []string {
	var recs []string
	for _, o := range outputs {
		if o.Recommendation != "" {
			recs = append(recs, o.Recommendation)
		}
	}
	return recs
}

func survivingInterpretations(outputs []domain.NormalizedOutput) []string {
	var interps []string
	for _, o := range outputs {
		if o.Interpretation != "" {
			interps = append(interps, o.Interpretation)
		}
	}
	return interps
}

// majorityRecommendation returns the first recommendation matching the
// majority stance; on a tie or an all-neutral field, the first
// recommendation wins.
func majorityRecommendation(recs []string) string {
	cautious, bold := 0, 0
	for _, r := range recs {
		switch ClassifyStance(r) {
		case domain.StanceCautious:
			cautious++
		case domain.StanceBold:
			bold++
		}
	}

	var want domain.Stance
	switch {
	case cautious > bold:
		want = domain.StanceCautious
	case bold > cautious:
		want = domain.StanceBold
	default:
		return recs[0]
	}

	for _, r := range recs {
		if ClassifyStance(r) == want {
			return r
		}
	}
	return recs[0]
}

func mostCautious(recs []string) string {
	best := recs[0]
	bestScore := stanceScore(best)
	for _, r := range recs[1:] {
		if s := stanceScore(r); s > bestScore {
			best, bestScore = r, s
		}
	}
	return best
}

func mostBold(recs []string) string {
	best := recs[0]
	bestScore := stanceScore(best)
	for _, r := range recs[1:] {
		if s := stanceScore(r); s < bestScore {
			best, bestScore = r, s
		}
	}
	return best
}

func hasRewriteIntent(text string) bool {
	lower := strings.ToLower(text)
	for _, m := range rewriteMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

func evidenceNote(evidence *domain.EvidenceBundle, requested bool) string {
	switch {
	case evidence.Used():
		return EvidenceNoteUsed
	case requested:
		return EvidenceNoteUnavailable
	default:
		return EvidenceNoteNotRequested
	}
}
