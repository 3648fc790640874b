package rules

import "testing"

func TestEvaluateAssumptions_UnderSpecifiedDecision(t *testing.T) {
	table := DefaultAssumptionTable()

	questions, fired := EvaluateAssumptions("Should I fire him?", table)
	if !fired {
		t.Fatal("expected the gate to fire for an under-specified decision")
	}
	if len(questions) == 0 || len(questions) > 3 {
		t.Fatalf("expected 1-3 clarifying questions, got %d", len(questions))
	}
}

func TestEvaluateAssumptions_SpecifiedDecisionPasses(t *testing.T) {
	table := DefaultAssumptionTable()

	text := "Should I fire this employee? He's had 2 written warnings, missed 3 deadlines, and policy requires 3 warnings."
	if _, fired := EvaluateAssumptions(text, table); fired {
		t.Error("a decision with stated criteria must pass the gate")
	}
}

func TestEvaluateAssumptions_TooShort(t *testing.T) {
	table := DefaultAssumptionTable()

	questions, fired := EvaluateAssumptions("hey", table)
	if !fired {
		t.Fatal("expected the gate to fire for a bare greeting")
	}
	if len(questions) > 3 {
		t.Fatalf("expected at most 3 questions, got %d", len(questions))
	}
}

func TestEvaluateAssumptions_ShortWithTopicPasses(t *testing.T) {
	table := DefaultAssumptionTable()

	if _, fired := EvaluateAssumptions("summarize kubernetes", table); fired {
		t.Error("a short message with a topic indicator must pass")
	}
}

func TestEvaluateAssumptions_CasualQuestionPasses(t *testing.T) {
	table := DefaultAssumptionTable()

	if _, fired := EvaluateAssumptions("What's the weather like?", table); fired {
		t.Error("a casual informational question must pass the gate")
	}
}

func TestEvaluateAssumptions_QuestionsDeduplicated(t *testing.T) {
	table := DefaultAssumptionTable()

	// Fires pattern (a) and (b) at once; questions must stay unique
	// and capped at three.
	questions, fired := EvaluateAssumptions("Should I sell?", table)
	if !fired {
		t.Fatal("expected the gate to fire")
	}
	seen := make(map[string]bool)
	for _, q := range questions {
		if seen[q] {
			t.Fatalf("duplicate question returned: %q", q)
		}
		seen[q] = true
	}
	if len(questions) > 3 {
		t.Fatalf("expected at most 3 questions, got %d", len(questions))
	}
}
