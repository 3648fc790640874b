package service

import "github.com/arbiterhq/arbiter/internal/domain"

// Disclosure strings are fixed, exact text. They are never paraphrased
// at runtime; clients and tests match on them literally.
const (
	DisclosureModeWork     = "Work mode: guardrail gates are active for this request."
	DisclosureModeNormal   = "Normal mode: answering freely without guardrail gates."
	DisclosureEvidenceOn   = "Evidence retrieval was performed for this request."
	DisclosureStressActive = "Stress-test mode is active: this request is being treated as a consequential decision."
	DisclosureContextUsed  = "A prior turn from this conversation is being used."
	DisclosureProfileUsed  = "Your confirmed preference profile is being used."
)

const (
	transparencyNoContext  = "No prior conversation context is in use."
	transparencyNoProfile  = "No preference profile is in use."
	transparencyNoEvidence = "No evidence has been retrieved in this request."
	transparencyNoStress   = "Stress-test mode is not active."
	transparencyNoFacts    = "Facts on hand: none."
)

// ModeDisclosure returns the per-mode disclosure line attached to
// every response.
func ModeDisclosure(mode domain.Mode) string {
	if mode == domain.ModeNormal {
		return DisclosureModeNormal
	}
	return DisclosureModeWork
}

// BuildTransparencyCard renders the short-circuit answer to a
// transparency query. It is assembled purely from already-known
// booleans and whatever evidence already exists in this request
// context; it must never trigger an evidence fetch or a model call.
func BuildTransparencyCard(state domain.TransparencyState, evidence *domain.EvidenceBundle) *domain.TransparencyCard {
	card := &domain.TransparencyCard{State: state}

	if state.ContextUsed {
		card.Lines = append(card.Lines, DisclosureContextUsed)
	} else {
		card.Lines = append(card.Lines, transparencyNoContext)
	}

	if state.ProfileUsed {
		card.Lines = append(card.Lines, DisclosureProfileUsed)
	} else {
		card.Lines = append(card.Lines, transparencyNoProfile)
	}

	if state.EvidenceUsed {
		card.Lines = append(card.Lines, DisclosureEvidenceOn)
	} else {
		card.Lines = append(card.Lines, transparencyNoEvidence)
	}

	if state.StressModeActive {
		card.Lines = append(card.Lines, DisclosureStressActive)
	} else {
		card.Lines = append(card.Lines, transparencyNoStress)
	}

	if evidence.Used() {
		card.Facts = evidence.Facts
	} else {
		card.Lines = append(card.Lines, transparencyNoFacts)
	}

	return card
}
