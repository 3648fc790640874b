package rules

import "testing"

func TestNeedsEvidence_KeywordCategories(t *testing.T) {
	table := DefaultEvidenceRules()

	cases := []struct {
		text string
		want bool
	}{
		{"What are the latest layoff numbers in tech?", true},
		{"What is the current interest rate situation?", true},
		{"Any news about the merger?", true},
		{"What's the average severance package?", true},
		{"Is this compliant with labor law?", true},
		{"How many warnings does policy require this year?", true},
		{"What's the weather like?", false},
		{"Help me phrase this email politely", false},
		{"I like turtles", false},
	}

	for _, c := range cases {
		if got := NeedsEvidence(c.text, table); got != c.want {
			t.Errorf("NeedsEvidence(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}

func TestEvidenceCategory(t *testing.T) {
	table := DefaultEvidenceRules()

	if got := EvidenceCategory("latest figures please", table); got != CategoryTemporal {
		t.Errorf("expected temporal category, got %q", got)
	}
	if got := EvidenceCategory("median salary for the role", table); got != CategoryStatistical {
		t.Errorf("expected statistical category, got %q", got)
	}
	if got := EvidenceCategory("nothing matching here", table); got != "" {
		t.Errorf("expected empty category, got %q", got)
	}
}

func TestNeedsEvidence_InjectedTable(t *testing.T) {
	custom := Ruleset{{Pattern: "quarterly report", Category: CategoryNews}}

	if !NeedsEvidence("show me the quarterly report", custom) {
		t.Error("custom rule should match")
	}
	if NeedsEvidence("What are the latest layoff numbers?", custom) {
		t.Error("default keywords must not match a custom table")
	}
}
