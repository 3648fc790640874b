package service

import (
	"fmt"
	"strings"

	"github.com/arbiterhq/arbiter/internal/domain"
)

// Section markers every work-mode backend is instructed to emit. The
// normalizer looks for exactly these three.
const (
	markerEvidence       = "EVIDENCE:"
	markerInterpretation = "INTERPRETATION:"
	markerRecommendation = "RECOMMENDATION:"
)

const structuredInstruction = `Answer in three sections, each starting on its own line with the exact markers EVIDENCE:, INTERPRETATION:, RECOMMENDATION:. Put known facts under EVIDENCE, your reading of the situation under INTERPRETATION, and one concrete recommendation under RECOMMENDATION.`

const extractFactsPrompt = `You are given search results for the query %q. Extract at most %d neutral factual statements that directly bear on the query. Rules: state facts plainly without persuasive or promotional language; every fact must come from exactly one of the numbered results; skip opinions, predictions, and advertising copy.

Search results:
%s
Respond with a JSON array only, no prose, in the form:
[{"text": "...", "source": 1}]
where "source" is the number of the result the fact came from. Respond with [] if no usable facts exist.`

// buildPrompt assembles one backend's prompt: base instruction
// (work mode only), optional lens instruction, optional evidence
// block, then the utterance. Each backend gets an independently built
// string; nothing is shared between concurrent calls.
func buildPrompt(u domain.Utterance, lens *domain.Lens, evidence *domain.EvidenceBundle) string {
	var sb strings.Builder

	if u.Mode == domain.ModeWork {
		sb.WriteString(structuredInstruction)
		sb.WriteString("\n\n")
	}

	if lens != nil {
		sb.WriteString(lens.Instruction)
		sb.WriteString("\n\n")
	}

	if evidence.Used() {
		sb.WriteString("Sourced facts retrieved for this request:\n")
		for _, f := range evidence.Facts {
			sb.WriteString("- ")
			sb.WriteString(f.Text)
			sb.WriteString(" [")
			sb.WriteString(f.SourceID)
			sb.WriteString("]\n")
		}
		sb.WriteString("\n")
	}

	if u.PriorTurn != "" {
		sb.WriteString("Previous turn: ")
		sb.WriteString(u.PriorTurn)
		sb.WriteString("\n\n")
	}

	sb.WriteString(u.Text)
	return sb.String()
}

// formatSearchResults renders numbered results for the extraction
// prompt.
func formatSearchResults(results []domain.SearchResult) string {
	var sb strings.Builder
	for i, r := range results {
		sb.WriteString(fmt.Sprintf("%d. %s (%s)\n   %s\n", i+1, r.Title, r.Domain, r.Snippet))
	}
	return sb.String()
}
