package rules

import "strings"

// ConsequenceTable configures the stress-test classifier. Decision,
// risk, and irreversible patterns match as substrings; action verbs
// match with word-boundary semantics; exclusions match as prefixes of
// the trimmed utterance.
type ConsequenceTable struct {
	Decision     Ruleset
	Risk         Ruleset
	Irreversible Ruleset
	ActionVerbs  Ruleset
	Exclusions   []string
}

// DefaultConsequenceTable returns the fixed stress-test rule table.
func DefaultConsequenceTable() ConsequenceTable {
	return ConsequenceTable{
		Decision: Ruleset{
			{Pattern: "should i", Category: "decision"},
			{Pattern: "should we", Category: "decision"},
			{Pattern: "do i have to", Category: "decision"},
			{Pattern: "is it worth", Category: "decision"},
			{Pattern: "whether to", Category: "decision"},
			{Pattern: "or should", Category: "decision"},
		},
		Risk: Ruleset{
			{Pattern: "risk", Category: "risk"},
			{Pattern: "consequence", Category: "risk"},
			{Pattern: "afford to lose", Category: "risk"},
			{Pattern: "what if it fails", Category: "risk"},
			{Pattern: "worst case", Category: "risk"},
		},
		Irreversible: Ruleset{
			{Pattern: "irreversible", Category: "irreversible"},
			{Pattern: "can't undo", Category: "irreversible"},
			{Pattern: "cannot undo", Category: "irreversible"},
			{Pattern: "no going back", Category: "irreversible"},
			{Pattern: "permanent", Category: "irreversible"},
			{Pattern: "burn the bridge", Category: "irreversible"},
		},
		ActionVerbs: Ruleset{
			{Pattern: "fire", Category: "action"},
			{Pattern: "terminate", Category: "action"},
			{Pattern: "quit", Category: "action"},
			{Pattern: "resign", Category: "action"},
			{Pattern: "sue", Category: "action"},
			{Pattern: "invest", Category: "action"},
			{Pattern: "sell", Category: "action"},
			{Pattern: "buy", Category: "action"},
			{Pattern: "sign", Category: "action"},
			{Pattern: "cancel", Category: "action"},
			{Pattern: "reject", Category: "action"},
			{Pattern: "confront", Category: "action"},
			{Pattern: "merge", Category: "action"},
			{Pattern: "shut down", Category: "action"},
			{Pattern: "lay off", Category: "action"},
		},
		Exclusions: []string{
			"how do i",
			"how to",
			"how does",
			"what is",
			"what does",
			"what are",
			"explain",
			"tell me about",
		},
	}
}

// DetectConsequence reports whether the utterance frames a
// consequential decision that warrants the multi-lens stress test.
// Instructional phrasings are excluded first. Must only be called on
// utterances that already passed the no-assumptions gate.
func DetectConsequence(text string, table ConsequenceTable) bool {
	trimmed := strings.ToLower(strings.TrimSpace(text))
	for _, ex := range table.Exclusions {
		if strings.HasPrefix(trimmed, ex) {
			return false
		}
	}

	if _, ok := table.Decision.MatchSubstring(text); ok {
		return true
	}
	if _, ok := table.Risk.MatchSubstring(text); ok {
		return true
	}
	if _, ok := table.Irreversible.MatchSubstring(text); ok {
		return true
	}
	_, ok := table.ActionVerbs.MatchWord(text)
	return ok
}
