package domain

// Lens is a fixed analytical framing applied to one backend's prompt
// during stress-test mode.
type Lens struct {
	Name        string `json:"name"`
	Focus       string `json:"focus"`
	Instruction string `json:"instruction"`
}

// LensSet maps each participating backend identity to exactly one lens.
// The synthesis role always receives the distinct execution lens. The
// set is immutable configuration passed into the pipeline, never a
// module-level constant, so tests can substitute their own.
type LensSet struct {
	ByBackend map[string]Lens
	Execution Lens
}

// For returns the lens for a backend. The mapping is total over the
// configured backends; unknown identities fall back to the execution
// lens so the lookup never has a hole.
func (ls LensSet) For(backend string) Lens {
	if l, ok := ls.ByBackend[backend]; ok {
		return l
	}
	return ls.Execution
}

// DefaultLensSet assigns the fixed analytical lenses to backends in
// dispatch order, cycling when there are more backends than lenses.
func DefaultLensSet(backends []string) LensSet {
	lenses := []Lens{
		{
			Name:        "risk",
			Focus:       "downside exposure and failure modes",
			Instruction: "Analyze this decision through a risk lens. Name what can go wrong, legal or policy exposure, and irreversible consequences before anything else.",
		},
		{
			Name:        "relationship",
			Focus:       "people and trust impact",
			Instruction: "Analyze this decision through a relationship lens. Weigh the effect on the people involved, trust, morale, and long-term working relationships.",
		},
		{
			Name:        "strategy",
			Focus:       "long-term positioning",
			Instruction: "Analyze this decision through a strategy lens. Weigh the long-term positioning, precedent set, and opportunity cost of each option.",
		},
	}

	byBackend := make(map[string]Lens, len(backends))
	for i, b := range backends {
		byBackend[b] = lenses[i%len(lenses)]
	}

	return LensSet{
		ByBackend: byBackend,
		Execution: Lens{
			Name:        "execution",
			Focus:       "concrete next action",
			Instruction: "Synthesize through an execution lens. State the single next action, who takes it, and what would make you stop.",
		},
	}
}
