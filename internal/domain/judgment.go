package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Mode is the per-request interaction mode. Work mode activates the
// guardrail gates; normal mode disables everything except dispatch and
// normalization.
type Mode string

const (
	ModeWork   Mode = "work"
	ModeNormal Mode = "normal"
)

// ParseMode normalizes a mode value case-insensitively. Unrecognized or
// absent values fail safe to work mode.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal":
		return ModeNormal
	default:
		return ModeWork
	}
}

// Utterance is one user turn. Immutable once received.
type Utterance struct {
	Text      string `json:"text"`
	Mode      Mode   `json:"mode"`
	PriorTurn string `json:"prior_turn,omitempty"`
}

// AgentStatus tags the outcome of one backend dispatch.
type AgentStatus string

const (
	AgentSucceeded AgentStatus = "succeeded"
	AgentTimedOut  AgentStatus = "timed_out"
	AgentErrored   AgentStatus = "errored"
	AgentSkipped   AgentStatus = "skipped"
)

// AgentResult is produced exactly once per dispatched backend per
// request. A backend is never retried within a request.
type AgentResult struct {
	Backend  string        `json:"backend"`
	Lens     string        `json:"lens,omitempty"`
	Status   AgentStatus   `json:"status"`
	Output   string        `json:"output,omitempty"`
	Reason   string        `json:"reason,omitempty"`
	Duration time.Duration `json:"duration"`
}

// NormalizedOutput is the three-part structured record parsed from one
// succeeded AgentResult. Sections are optional.
type NormalizedOutput struct {
	Backend        string `json:"backend"`
	Evidence       string `json:"evidence,omitempty"`
	Interpretation string `json:"interpretation,omitempty"`
	Recommendation string `json:"recommendation,omitempty"`
}

// Stance is the directional classification of a recommendation.
type Stance string

const (
	StanceCautious Stance = "cautious"
	StanceBold     Stance = "bold"
	StanceNeutral  Stance = "neutral"
)

// Disagreement records one pairwise stance conflict between two
// succeeded backends.
type Disagreement struct {
	AgentA string `json:"agent_a"`
	LensA  string `json:"lens_a"`
	AgentB string `json:"agent_b"`
	LensB  string `json:"lens_b"`
	Point  string `json:"point"`
}

// ExecutionTool is the closed four-value taxonomy for the synthesis
// result. Any other value is a contract violation.
type ExecutionTool string

const (
	ToolResponse ExecutionTool = "response"
	ToolRewrite  ExecutionTool = "rewrite"
	ToolArgue    ExecutionTool = "argue"
	ToolClarify  ExecutionTool = "clarify"
)

func ValidExecutionTool(t string) bool {
	switch ExecutionTool(t) {
	case ToolResponse, ToolRewrite, ToolArgue, ToolClarify:
		return true
	}
	return false
}

// SynthesisResult is the single reconciled recommendation built from
// all backend outputs plus evidence plus detected disagreements.
type SynthesisResult struct {
	Framing       string         `json:"framing"`
	Risks         []string       `json:"risks,omitempty"`
	Disagreements []Disagreement `json:"disagreements,omitempty"`
	Primary       string         `json:"primary"`
	Safer         string         `json:"safer,omitempty"`
	Bolder        string         `json:"bolder,omitempty"`
	Tool          ExecutionTool  `json:"tool"`
	EvidenceNote  string         `json:"evidence_note"`
}

// TransparencyState is a read-only snapshot of already-known runtime
// booleans. It is assembled without any model call and never guessed.
type TransparencyState struct {
	ContextUsed      bool `json:"context_used"`
	ProfileUsed      bool `json:"profile_used"`
	EvidenceUsed     bool `json:"evidence_used"`
	StressModeActive bool `json:"stress_mode_active"`
}

// TransparencyCard is the rendered short-circuit response for a
// transparency query.
type TransparencyCard struct {
	State TransparencyState `json:"state"`
	Lines []string          `json:"lines"`
	Facts []EvidenceFact    `json:"facts,omitempty"`
}

// JudgmentResponse is the full pipeline output for one utterance.
// Exactly one of Questions, Transparency, or Results/Synthesis is the
// payload, depending on which gate resolved the request.
type JudgmentResponse struct {
	ID             uuid.UUID        `json:"id"`
	Mode           Mode             `json:"mode"`
	ModeDisclosure string           `json:"mode_disclosure"`
	Questions      []string         `json:"questions,omitempty"`
	Results        []AgentResult    `json:"results,omitempty"`
	Synthesis      *SynthesisResult `json:"synthesis,omitempty"`
	Transparency   *TransparencyCard `json:"transparency,omitempty"`
	Evidence       *EvidenceBundle  `json:"evidence,omitempty"`
	Unavailable    []string         `json:"unavailable,omitempty"`
}
