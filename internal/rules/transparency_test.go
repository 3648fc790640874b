package rules

import "testing"

func TestDetectTransparency(t *testing.T) {
	table := DefaultTransparencyPhrases()

	matching := []string{
		"What do you remember about me?",
		"what data do you have on my account",
		"How did you decide that?",
		"Are you using my profile for this?",
		"what mode are you in right now",
	}
	for _, text := range matching {
		if !DetectTransparency(text, table) {
			t.Errorf("expected transparency match: %q", text)
		}
	}

	nonMatching := []string{
		"What's the weather like?",
		"Should I fire him?",
		"Remember to buy milk",
	}
	for _, text := range nonMatching {
		if DetectTransparency(text, table) {
			t.Errorf("unexpected transparency match: %q", text)
		}
	}
}
