package domain

import "testing"

func TestDefaultLensSet(t *testing.T) {
	ls := DefaultLensSet([]string{"alpha", "beta", "gamma", "delta"})

	if ls.For("alpha").Name != "risk" {
		t.Errorf("alpha lens = %q", ls.For("alpha").Name)
	}
	if ls.For("beta").Name != "relationship" {
		t.Errorf("beta lens = %q", ls.For("beta").Name)
	}
	if ls.For("gamma").Name != "strategy" {
		t.Errorf("gamma lens = %q", ls.For("gamma").Name)
	}
	// More backends than lenses cycles back to the first lens.
	if ls.For("delta").Name != "risk" {
		t.Errorf("delta lens = %q", ls.For("delta").Name)
	}
}

func TestLensSetForIsTotal(t *testing.T) {
	ls := DefaultLensSet([]string{"alpha"})

	got := ls.For("never-configured")
	if got.Name != ls.Execution.Name {
		t.Errorf("unknown backend lens = %q, want the execution fallback", got.Name)
	}
}

func TestEvidenceBundleUsed(t *testing.T) {
	var nilBundle *EvidenceBundle
	if nilBundle.Used() {
		t.Error("nil bundle must not report used")
	}
	if (&EvidenceBundle{}).Used() {
		t.Error("factless bundle must not report used")
	}
	b := &EvidenceBundle{Facts: []EvidenceFact{{Text: "f", SourceID: "s1"}}}
	if !b.Used() {
		t.Error("bundle with facts must report used")
	}
}
