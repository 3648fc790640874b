package rules

// Evidence-need categories.
const (
	CategoryTemporal    = "temporal"
	CategoryNews        = "news"
	CategoryStatistical = "statistical"
	CategoryRegulatory  = "regulatory"
)

// DefaultEvidenceRules returns the keyword table for the evidence-need
// classifier. Ordered by category; first hit wins.
func DefaultEvidenceRules() Ruleset {
	return Ruleset{
		{Pattern: "latest", Category: CategoryTemporal},
		{Pattern: "current", Category: CategoryTemporal},
		{Pattern: "recent", Category: CategoryTemporal},
		{Pattern: "today", Category: CategoryTemporal},
		{Pattern: "this year", Category: CategoryTemporal},
		{Pattern: "as of", Category: CategoryTemporal},
		{Pattern: "right now", Category: CategoryTemporal},
		{Pattern: "news", Category: CategoryNews},
		{Pattern: "announcement", Category: CategoryNews},
		{Pattern: "headline", Category: CategoryNews},
		{Pattern: "stock", Category: CategoryNews},
		{Pattern: "market", Category: CategoryNews},
		{Pattern: "price of", Category: CategoryNews},
		{Pattern: "election", Category: CategoryNews},
		{Pattern: "statistic", Category: CategoryStatistical},
		{Pattern: "average", Category: CategoryStatistical},
		{Pattern: "percentage", Category: CategoryStatistical},
		{Pattern: "how many", Category: CategoryStatistical},
		{Pattern: "median", Category: CategoryStatistical},
		{Pattern: "growth rate", Category: CategoryStatistical},
		{Pattern: "market share", Category: CategoryStatistical},
		{Pattern: "regulation", Category: CategoryRegulatory},
		{Pattern: "compliance", Category: CategoryRegulatory},
		{Pattern: "legal requirement", Category: CategoryRegulatory},
		{Pattern: "labor law", Category: CategoryRegulatory},
		{Pattern: "tax", Category: CategoryRegulatory},
	}
}

// NeedsEvidence reports whether the utterance asks about something the
// pipeline should ground in searched facts. Pure function, text in,
// boolean out.
func NeedsEvidence(text string, table Ruleset) bool {
	_, ok := table.MatchSubstring(text)
	return ok
}

// EvidenceCategory returns the category of the first matching rule, or
// empty when no rule fires.
func EvidenceCategory(text string, table Ruleset) string {
	r, ok := table.MatchSubstring(text)
	if !ok {
		return ""
	}
	return r.Category
}
