package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arbiterhq/arbiter/internal/service"
)

type JudgmentHandler struct {
	svc *service.JudgmentService
}

func NewJudgmentHandler(svc *service.JudgmentService) *JudgmentHandler {
	return &JudgmentHandler{svc: svc}
}

type orchestrateRequest struct {
	Text         string `json:"text"`
	Mode         string `json:"mode"`
	PriorTurn    string `json:"prior_turn,omitempty"`
	UserKey      string `json:"user_key,omitempty"`
	WantEvidence bool   `json:"want_evidence,omitempty"`
}

func (h *JudgmentHandler) Orchestrate(w http.ResponseWriter, r *http.Request) {
	var req orchestrateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	resp, err := h.svc.Orchestrate(r.Context(), service.OrchestrateRequest{
		Text:         req.Text,
		Mode:         req.Mode,
		PriorTurn:    req.PriorTurn,
		UserKey:      req.UserKey,
		WantEvidence: req.WantEvidence,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidExecutionTool):
			writeError(w, http.StatusInternalServerError, err.Error())
		default:
			// Profile collaborator errors surface verbatim.
			writeError(w, http.StatusBadGateway, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

type classifyRequest struct {
	Text string `json:"text"`
}

func (h *JudgmentHandler) Classify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"needs_evidence": h.svc.NeedsEvidence(req.Text)})
}

func (h *JudgmentHandler) Consequence(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"consequence": h.svc.DetectConsequence(req.Text)})
}
