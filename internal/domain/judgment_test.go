package domain

import "testing"

func TestParseMode(t *testing.T) {
	cases := []struct {
		in   string
		want Mode
	}{
		{"work", ModeWork},
		{"normal", ModeNormal},
		{"NORMAL", ModeNormal},
		{" Normal ", ModeNormal},
		{"", ModeWork},
		{"turbo", ModeWork},
	}

	for _, c := range cases {
		if got := ParseMode(c.in); got != c.want {
			t.Errorf("ParseMode(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestValidExecutionTool(t *testing.T) {
	for _, valid := range []string{"response", "rewrite", "argue", "clarify"} {
		if !ValidExecutionTool(valid) {
			t.Errorf("%q should be valid", valid)
		}
	}
	for _, invalid := range []string{"", "summarize", "Response", "argue "} {
		if ValidExecutionTool(invalid) {
			t.Errorf("%q should be rejected", invalid)
		}
	}
}
