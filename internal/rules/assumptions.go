package rules

// AssumptionTable configures the no-assumptions gate. The gate blocks
// model invocation when required context is missing and returns
// clarifying questions instead.
type AssumptionTable struct {
	ActionVerbs      Ruleset
	DecisionPhrases  Ruleset
	CriteriaMarkers  Ruleset
	MinTokens        int
	FillerWords      map[string]bool
	MaxActionContext int
}

// DefaultAssumptionTable returns the fixed missing-context rule table.
func DefaultAssumptionTable() AssumptionTable {
	filler := map[string]bool{
		"i": true, "me": true, "my": true, "you": true, "we": true, "us": true,
		"him": true, "her": true, "it": true, "them": true, "this": true,
		"that": true, "these": true, "those": true, "the": true, "a": true,
		"an": true, "to": true, "of": true, "for": true, "on": true,
		"in": true, "at": true, "and": true, "or": true, "so": true,
		"please": true, "now": true, "just": true, "should": true,
		"can": true, "could": true, "would": true, "do": true, "is": true,
		"what": true, "hey": true, "hi": true, "hello": true, "thanks": true,
	}
	return AssumptionTable{
		ActionVerbs: DefaultConsequenceTable().ActionVerbs,
		DecisionPhrases: Ruleset{
			{Pattern: "should i", Category: "decision"},
			{Pattern: "should we", Category: "decision"},
			{Pattern: "which one", Category: "decision"},
			{Pattern: "which should", Category: "decision"},
			{Pattern: "do you think i should", Category: "decision"},
			{Pattern: "is it worth", Category: "decision"},
		},
		CriteriaMarkers: Ruleset{
			{Pattern: "because", Category: "criteria"},
			{Pattern: "since", Category: "criteria"},
			{Pattern: "given", Category: "criteria"},
			{Pattern: "criteria", Category: "criteria"},
			{Pattern: "policy", Category: "criteria"},
			{Pattern: "budget", Category: "criteria"},
			{Pattern: "deadline", Category: "criteria"},
			{Pattern: "warning", Category: "criteria"},
			{Pattern: "requirement", Category: "criteria"},
			{Pattern: "versus", Category: "criteria"},
			{Pattern: " vs", Category: "criteria"},
		},
		MinTokens:        4,
		FillerWords:      filler,
		MaxActionContext: 6,
	}
}

// Clarifying question texts, fixed per missing-context pattern.
const (
	questionObject   = "What exactly should be done, and to what or whom?"
	questionCriteria = "What criteria matter most for this decision?"
	questionLimits   = "What constraints or policies apply here?"
	questionTopic    = "What topic is this about?"
	questionOutcome  = "What outcome are you looking for?"
)

// EvaluateAssumptions runs the three missing-context patterns against
// the utterance: (a) action verb with no accompanying object, (b)
// decision request with no stated criteria, (c) a message below the
// minimum token threshold with no topic indicator. On match it returns
// one to three clarifying questions; the caller must not invoke any
// backend for the request.
func EvaluateAssumptions(text string, table AssumptionTable) ([]string, bool) {
	tokens := tokenize(text)

	var questions []string
	add := func(q string) {
		for _, have := range questions {
			if have == q {
				return
			}
		}
		if len(questions) < 3 {
			questions = append(questions, q)
		}
	}

	// (a) action verb with nothing contentful after it
	if verb, ok := table.ActionVerbs.MatchWord(text); ok && len(tokens) <= table.MaxActionContext {
		if !hasContentAfter(tokens, verb.Pattern, table.FillerWords) {
			add(questionObject)
		}
	}

	// (b) decision request with no stated criteria
	if _, ok := table.DecisionPhrases.MatchSubstring(text); ok {
		_, criteria := table.CriteriaMarkers.MatchSubstring(text)
		if !criteria && !containsDigit(text) {
			add(questionCriteria)
			add(questionLimits)
		}
	}

	// (c) too short with no topic indicator
	if len(tokens) < table.MinTokens && !hasTopicWord(tokens, table.FillerWords) {
		add(questionTopic)
		add(questionOutcome)
	}

	return questions, len(questions) > 0
}

// hasContentAfter reports whether any token after the first occurrence
// of verb is a contentful word rather than filler.
func hasContentAfter(tokens []string, verb string, filler map[string]bool) bool {
	seen := false
	for _, t := range tokens {
		if seen && !filler[t] {
			return true
		}
		if t == verb {
			seen = true
		}
	}
	return false
}

// hasTopicWord reports whether any token looks like a topic indicator:
// four or more characters and not filler.
func hasTopicWord(tokens []string, filler map[string]bool) bool {
	for _, t := range tokens {
		if len(t) >= 4 && !filler[t] {
			return true
		}
	}
	return false
}
