package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/arbiterhq/arbiter/internal/domain"
	"github.com/arbiterhq/arbiter/internal/store"
	"github.com/go-chi/chi/v5"
)

type stubProfileStore struct {
	profiles map[string]*domain.JudgmentProfile
	err      error
}

func (s *stubProfileStore) Get(ctx context.Context, userKey string) (*domain.JudgmentProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.profiles[userKey]
	if !ok {
		return nil, store.ErrNotFound
	}
	return p, nil
}

func profileRouter(profiles domain.ProfileStore) http.Handler {
	h := NewProfileHandler(profiles)
	r := chi.NewRouter()
	r.Get("/v1/profiles/{userKey}", h.Get)
	return r
}

func TestProfileGet(t *testing.T) {
	router := profileRouter(&stubProfileStore{
		profiles: map[string]*domain.JudgmentProfile{
			"u1": {
				UserKey: "u1",
				Fields: map[string]domain.ProfileField{
					"tone": {Value: "direct", Source: "explicit", ConfirmedAt: time.Now()},
				},
			},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/profiles/u1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got domain.JudgmentProfile
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.UserKey != "u1" || got.Fields["tone"].Value != "direct" {
		t.Errorf("profile = %+v", got)
	}
}

func TestProfileGet_NotFound(t *testing.T) {
	router := profileRouter(&stubProfileStore{})

	req := httptest.NewRequest(http.MethodGet, "/v1/profiles/nobody", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestProfileGet_ValidationErrorSurfacesVerbatim(t *testing.T) {
	router := profileRouter(&stubProfileStore{err: profileValidationErr{}})

	req := httptest.NewRequest(http.MethodGet, "/v1/profiles/u1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	want := profileValidationErr{}.Error()
	if body["error"] != want {
		t.Errorf("error = %q, want the store error verbatim", body["error"])
	}
}
