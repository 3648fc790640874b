package rules

import "testing"

func TestContainsWord(t *testing.T) {
	cases := []struct {
		text, pattern string
		want          bool
	}{
		{"time to buy the building", "buy", true},
		{"the buyer sent papers", "buy", false},
		{"fire.", "fire", true},
		{"fire", "fire", true},
		{"misfire happened", "fire", false},
		{"shut down the plant", "shut down", true},
		{"", "fire", false},
		// Multibyte letters count as word runes on either side.
		{"café fire drill", "fire", true},
		{"caféfire drill", "fire", false},
		{"the fireé spread", "fire", false},
	}

	for _, c := range cases {
		if got := containsWord(c.text, c.pattern); got != c.want {
			t.Errorf("containsWord(%q, %q) = %v, want %v", c.text, c.pattern, got, c.want)
		}
	}
}

func TestRulesetOrdering(t *testing.T) {
	rs := Ruleset{
		{Pattern: "alpha", Category: "first"},
		{Pattern: "alpha beta", Category: "second"},
	}

	r, ok := rs.MatchSubstring("alpha beta gamma")
	if !ok {
		t.Fatal("expected a match")
	}
	if r.Category != "first" {
		t.Errorf("first rule in order should win, got %q", r.Category)
	}
}
