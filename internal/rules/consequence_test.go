package rules

import "testing"

func TestDetectConsequence(t *testing.T) {
	table := DefaultConsequenceTable()

	cases := []struct {
		text string
		want bool
	}{
		{"Should I fire this employee? He's had 2 written warnings, missed 3 deadlines, and policy requires 3 warnings.", true},
		{"Should we sign the lease before Friday?", true},
		{"I'm worried about the risk of losing the account", true},
		{"This is permanent, there's no going back once we ship", true},
		{"I want to quit my job over this", true},
		{"What's the weather like?", false},
		{"Tell me a joke", false},
		{"I had a nice lunch today", false},
	}

	for _, c := range cases {
		if got := DetectConsequence(c.text, table); got != c.want {
			t.Errorf("DetectConsequence(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}

func TestDetectConsequence_InstructionalExclusions(t *testing.T) {
	table := DefaultConsequenceTable()

	excluded := []string{
		"How do I fire someone in this HR system?",
		"How to sell a car privately",
		"What is an irreversible decision, conceptually?",
		"Explain the risk matrix template",
	}
	for _, text := range excluded {
		if DetectConsequence(text, table) {
			t.Errorf("instructional phrasing should not trigger: %q", text)
		}
	}
}

func TestDetectConsequence_WordBoundary(t *testing.T) {
	table := DefaultConsequenceTable()

	// "buyer" and "signature" contain action verbs as substrings but
	// must not match with word-boundary semantics.
	if DetectConsequence("the buyer sent a signature page", table) {
		t.Error("substring of an action verb must not match")
	}
	if !DetectConsequence("time to buy the building", table) {
		t.Error("whole-word action verb must match")
	}
}
