package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arbiterhq/arbiter/internal/domain"
	"github.com/arbiterhq/arbiter/internal/rules"
	"github.com/arbiterhq/arbiter/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RuleTables bundles the injectable classifier tables. Defaults come
// from the rules package; tests substitute their own.
type RuleTables struct {
	Evidence     rules.Ruleset
	Consequence  rules.ConsequenceTable
	Assumptions  rules.AssumptionTable
	Transparency rules.Ruleset
}

func DefaultRuleTables() RuleTables {
	return RuleTables{
		Evidence:     rules.DefaultEvidenceRules(),
		Consequence:  rules.DefaultConsequenceTable(),
		Assumptions:  rules.DefaultAssumptionTable(),
		Transparency: rules.DefaultTransparencyPhrases(),
	}
}

// OrchestrateRequest is one judgment request. Mode is carried
// per-request, never server-global. WantEvidence is the normal-mode
// manual evidence trigger; work mode ignores it and classifies.
type OrchestrateRequest struct {
	Text         string
	Mode         string
	PriorTurn    string
	UserKey      string
	WantEvidence bool
}

// JudgmentService runs the orchestration pipeline: transparency gate,
// mode gate, no-assumptions gate, evidence gate, consequence gate,
// lens assignment, fan-out, normalization, disagreement extraction,
// and synthesis. The two short-circuit gates run first so that no
// external call of any kind happens when they fire.
type JudgmentService struct {
	dispatcher *Dispatcher
	evidence   *EvidenceService
	builder    *SynthesisBuilder
	profiles   domain.ProfileStore
	journal    domain.JudgmentLogStore
	lenses     domain.LensSet
	tables     RuleTables
	logger     *zap.Logger
}

func NewJudgmentService(
	dispatcher *Dispatcher,
	evidence *EvidenceService,
	profiles domain.ProfileStore,
	journal domain.JudgmentLogStore,
	lenses domain.LensSet,
	tables RuleTables,
	logger *zap.Logger,
) *JudgmentService {
	return &JudgmentService{
		dispatcher: dispatcher,
		evidence:   evidence,
		builder:    NewSynthesisBuilder(),
		profiles:   profiles,
		journal:    journal,
		lenses:     lenses,
		tables:     tables,
		logger:     logger,
	}
}

// NeedsEvidence exposes the evidence-need classifier on the service's
// configured table.
func (s *JudgmentService) NeedsEvidence(text string) bool {
	return rules.NeedsEvidence(text, s.tables.Evidence)
}

// DetectConsequence exposes the stress-test classifier on the
// service's configured table.
func (s *JudgmentService) DetectConsequence(text string) bool {
	return rules.DetectConsequence(text, s.tables.Consequence)
}

// RetrieveEvidence runs the evidence step directly; this is the
// normal-mode manual trigger surfaced over the API.
func (s *JudgmentService) RetrieveEvidence(ctx context.Context, query string) *domain.EvidenceBundle {
	return s.evidence.Retrieve(ctx, query)
}

// Orchestrate runs the full pipeline for one utterance.
func (s *JudgmentService) Orchestrate(ctx context.Context, req OrchestrateRequest) (*domain.JudgmentResponse, error) {
	mode := domain.ParseMode(req.Mode)
	u := domain.Utterance{Text: req.Text, Mode: mode, PriorTurn: req.PriorTurn}

	resp := &domain.JudgmentResponse{
		ID:             uuid.New(),
		Mode:           mode,
		ModeDisclosure: ModeDisclosure(mode),
	}

	profileUsed, err := s.profileUsed(ctx, req.UserKey)
	if err != nil {
		// Profile collaborator errors surface verbatim, never swallowed.
		return nil, err
	}
	contextUsed := req.PriorTurn != ""

	// Transparency gate: answered purely from already-known booleans,
	// before any evidence fetch or backend call.
	if rules.DetectTransparency(req.Text, s.tables.Transparency) {
		state := domain.TransparencyState{
			ContextUsed: contextUsed,
			ProfileUsed: profileUsed,
		}
		resp.Transparency = BuildTransparencyCard(state, nil)
		return resp, nil
	}

	// No-assumptions gate (work mode only): under-specified requests
	// get clarifying questions, never a backend call.
	if mode == domain.ModeWork {
		if questions, fired := rules.EvaluateAssumptions(req.Text, s.tables.Assumptions); fired {
			resp.Questions = questions
			return resp, nil
		}
	}

	// Evidence gate: automatic in work mode, manual in normal mode.
	// Retrieval completes (or degrades) strictly before fan-out, since
	// evidence text is injected into each backend's prompt.
	evidenceRequested := false
	evidence := &domain.EvidenceBundle{}
	switch {
	case mode == domain.ModeWork && s.NeedsEvidence(req.Text):
		evidenceRequested = true
	case mode == domain.ModeNormal && req.WantEvidence:
		evidenceRequested = true
	}
	if evidenceRequested {
		evidence = s.evidence.Retrieve(ctx, evidenceQuery(req.Text))
		resp.Evidence = evidence
	}

	// Consequence gate (work mode only, after no-assumptions passed).
	stress := mode == domain.ModeWork && s.DetectConsequence(req.Text)

	calls, lensByBackend := s.buildCalls(u, evidence, stress)
	results := s.dispatcher.Dispatch(ctx, calls)
	resp.Results = results

	var outputs []domain.NormalizedOutput
	var execOutput *domain.NormalizedOutput
	for _, r := range results {
		if r.Status != domain.AgentSucceeded {
			resp.Unavailable = append(resp.Unavailable, fmt.Sprintf("%s: %s (%s)", r.Backend, r.Status, r.Reason))
			continue
		}
		normalized := Normalize(r.Backend, r.Output)
		if stress && r.Lens == s.lenses.Execution.Name {
			execOutput = &normalized
			continue
		}
		outputs = append(outputs, normalized)
	}

	disagreements := ExtractDisagreements(outputs, lensByBackend)

	synthesis, err := s.builder.Build(u, evidence, evidenceRequested, outputs, disagreements, stress, execOutput)
	if err != nil {
		return nil, err
	}
	resp.Synthesis = synthesis

	s.record(ctx, resp, stress, evidence)
	return resp, nil
}

// buildCalls assigns lenses and constructs one independent prompt per
// backend. When the stress test is active every backend gets its
// analytical lens and the first configured backend additionally takes
// the execution-lens call used by the synthesis role.
func (s *JudgmentService) buildCalls(u domain.Utterance, evidence *domain.EvidenceBundle, stress bool) ([]Call, map[string]string) {
	backends := s.dispatcher.ConfiguredBackends()
	lensByBackend := make(map[string]string, len(backends))

	calls := make([]Call, 0, len(backends)+1)
	for _, b := range backends {
		var lens *domain.Lens
		lensName := ""
		if stress {
			l := s.lenses.For(b.Name)
			lens = &l
			lensName = l.Name
		}
		lensByBackend[b.Name] = lensName
		calls = append(calls, Call{
			Backend: b,
			Prompt:  buildPrompt(u, lens, evidence),
			Lens:    lensName,
		})
	}

	if stress {
		exec := s.lenses.Execution
		calls = append(calls, Call{
			Backend: backends[0],
			Prompt:  buildPrompt(u, &exec, evidence),
			Lens:    exec.Name,
		})
	}

	return calls, lensByBackend
}

func (s *JudgmentService) profileUsed(ctx context.Context, userKey string) (bool, error) {
	if userKey == "" || s.profiles == nil {
		return false, nil
	}
	profile, err := s.profiles.Get(ctx, userKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return profile != nil && len(profile.Fields) > 0, nil
}

// record persists the audit entry. Best effort: a journal failure is
// logged, not surfaced.
func (s *JudgmentService) record(ctx context.Context, resp *domain.JudgmentResponse, stress bool, evidence *domain.EvidenceBundle) {
	if s.journal == nil || resp.Synthesis == nil {
		return
	}
	succeeded := 0
	for _, r := range resp.Results {
		if r.Status == domain.AgentSucceeded {
			succeeded++
		}
	}
	entry := &domain.JudgmentLogEntry{
		ID:           resp.ID,
		Mode:         resp.Mode,
		StressActive: stress,
		EvidenceUsed: evidence.Used(),
		Tool:         resp.Synthesis.Tool,
		Backends:     len(resp.Results),
		Succeeded:    succeeded,
		CreatedAt:    time.Now(),
	}
	if err := s.journal.Record(ctx, entry); err != nil {
		s.logger.Warn("judgment journal write failed", zap.Error(err))
	}
}
