package handlers

import (
	"errors"
	"net/http"

	"github.com/arbiterhq/arbiter/internal/domain"
	"github.com/arbiterhq/arbiter/internal/store"
	"github.com/go-chi/chi/v5"
)

type ProfileHandler struct {
	profiles domain.ProfileStore
}

func NewProfileHandler(profiles domain.ProfileStore) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userKey := chi.URLParam(r, "userKey")
	if userKey == "" {
		writeError(w, http.StatusBadRequest, "user key is required")
		return
	}

	profile, err := h.profiles.Get(r.Context(), userKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		// Validation errors from the profile collaborator surface
		// verbatim, never swallowed.
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
