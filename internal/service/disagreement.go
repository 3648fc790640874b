package service

import (
	"fmt"
	"strings"

	"github.com/arbiterhq/arbiter/internal/domain"
)

// Fixed keyword weights for stance classification. Positive weights
// pull cautious, negative pull bold. The heuristic is deliberately
// coarse and is preserved as-is; downstream fixtures assume its exact
// boundaries.
var stanceWeights = map[string]int{
	"wait":       2,
	"hold off":   2,
	"delay":      1,
	"caution":    2,
	"careful":    1,
	"carefully":  1,
	"risk":       1,
	"risky":      1,
	"avoid":      1,
	"consult":    1,
	"reconsider": 2,
	"slow down":  2,
	"not yet":    2,

	"immediately":  -2,
	"right away":   -2,
	"go ahead":     -2,
	"proceed":      -1,
	"act now":      -2,
	"decisive":     -1,
	"move fast":    -2,
	"commit":       -1,
	"launch":       -1,
	"push forward": -2,
}

// ClassifyStance classifies one recommendation as cautious or bold by
// summing fixed keyword weights; a zero sum is neutral.
func ClassifyStance(text string) domain.Stance {
	lower := strings.ToLower(text)
	score := 0
	for phrase, w := range stanceWeights {
		if strings.Contains(lower, phrase) {
			score += w
		}
	}
	switch {
	case score > 0:
		return domain.StanceCautious
	case score < 0:
		return domain.StanceBold
	default:
		return domain.StanceNeutral
	}
}

// stanceScore exposes the raw weighted sum, used by the synthesis
// builder to pick the most cautious and most bold survivors.
func stanceScore(text string) int {
	lower := strings.ToLower(text)
	score := 0
	for phrase, w := range stanceWeights {
		if strings.Contains(lower, phrase) {
			score += w
		}
	}
	return score
}

// ExtractDisagreements emits one record per pair of succeeded outputs
// with opposite stances. With fewer than two succeeded outputs the set
// is always empty. lensByBackend records which lens each backend was
// assigned (empty names are kept as-is).
func ExtractDisagreements(outputs []domain.NormalizedOutput, lensByBackend map[string]string) []domain.Disagreement {
	if len(outputs) < 2 {
		return nil
	}

	stances := make([]domain.Stance, len(outputs))
	for i, o := range outputs {
		stances[i] = ClassifyStance(o.Recommendation)
	}

	var disagreements []domain.Disagreement
	for i := 0; i < len(outputs); i++ {
		for j := i + 1; j < len(outputs); j++ {
			if !opposite(stances[i], stances[j]) {
				continue
			}
			disagreements = append(disagreements, domain.Disagreement{
				AgentA: outputs[i].Backend,
				LensA:  lensByBackend[outputs[i].Backend],
				AgentB: outputs[j].Backend,
				LensB:  lensByBackend[outputs[j].Backend],
				Point: fmt.Sprintf("%s recommends a %s course while %s recommends a %s one",
					outputs[i].Backend, stances[i], outputs[j].Backend, stances[j]),
			})
		}
	}
	return disagreements
}

func opposite(a, b domain.Stance) bool {
	return (a == domain.StanceCautious && b == domain.StanceBold) ||
		(a == domain.StanceBold && b == domain.StanceCautious)
}
