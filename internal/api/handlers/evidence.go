package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/arbiterhq/arbiter/internal/service"
)

type EvidenceHandler struct {
	svc *service.JudgmentService
}

func NewEvidenceHandler(svc *service.JudgmentService) *EvidenceHandler {
	return &EvidenceHandler{svc: svc}
}

type retrieveRequest struct {
	Query string `json:"query"`
}

// Retrieve is the manual evidence trigger (the only way evidence is
// fetched in normal mode). Retrieval degrades instead of failing, so
// this always returns 200 with a bundle.
func (h *EvidenceHandler) Retrieve(w http.ResponseWriter, r *http.Request) {
	var req retrieveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	writeJSON(w, http.StatusOK, h.svc.RetrieveEvidence(r.Context(), req.Query))
}
