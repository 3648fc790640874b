package rules

// DefaultTransparencyPhrases returns the fixed phrase list for
// transparency/meta queries. Substring match, case-insensitive.
func DefaultTransparencyPhrases() Ruleset {
	return Ruleset{
		{Pattern: "what do you remember", Category: "memory"},
		{Pattern: "what do you know about me", Category: "memory"},
		{Pattern: "what data do you have", Category: "data"},
		{Pattern: "are you using my", Category: "data"},
		{Pattern: "did you search", Category: "evidence"},
		{Pattern: "did you use evidence", Category: "evidence"},
		{Pattern: "why did you decide", Category: "reasoning"},
		{Pattern: "how did you decide", Category: "reasoning"},
		{Pattern: "what context are you using", Category: "context"},
		{Pattern: "are you in stress", Category: "mode"},
		{Pattern: "what mode are you in", Category: "mode"},
	}
}

// DetectTransparency reports whether the utterance is a meta query
// about the pipeline's own state. Transparency queries are answered
// from already-known booleans only; the match must happen before any
// evidence fetch or backend call.
func DetectTransparency(text string, table Ruleset) bool {
	_, ok := table.MatchSubstring(text)
	return ok
}
