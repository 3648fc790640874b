package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/arbiterhq/arbiter/internal/domain"
	"github.com/arbiterhq/arbiter/internal/llm"
	"github.com/arbiterhq/arbiter/internal/search"
	"github.com/arbiterhq/arbiter/internal/service"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) *service.JudgmentService {
	t.Helper()

	names := []string{"alpha", "beta"}
	backends := make([]service.Backend, 0, len(names))
	for _, name := range names {
		backends = append(backends, service.Backend{
			Name:    name,
			Client:  llm.NewMockClient(),
			Timeout: time.Second,
		})
	}

	dispatcher, err := service.NewDispatcher(backends, zap.NewNop())
	if err != nil {
		t.Fatalf("dispatcher: %v", err)
	}
	evidence := service.NewEvidenceService(search.NewMockClient(), llm.NewMockClient(), zap.NewNop(), 5, 5, time.Second)

	return service.NewJudgmentService(
		dispatcher,
		evidence,
		nil,
		nil,
		domain.DefaultLensSet(names),
		service.DefaultRuleTables(),
		zap.NewNop(),
	)
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestClassify(t *testing.T) {
	h := NewJudgmentHandler(newTestService(t))

	rec := postJSON(t, h.Classify, `{"text": "What are the latest layoff numbers?"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string]bool
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if !resp["needs_evidence"] {
		t.Error("expected needs_evidence = true")
	}

	rec = postJSON(t, h.Classify, `{"text": "Help me phrase this email"}`)
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp["needs_evidence"] {
		t.Error("expected needs_evidence = false")
	}
}

func TestClassify_BadRequests(t *testing.T) {
	h := NewJudgmentHandler(newTestService(t))

	if rec := postJSON(t, h.Classify, `{"text": ""}`); rec.Code != http.StatusBadRequest {
		t.Errorf("empty text: status = %d, want 400", rec.Code)
	}
	if rec := postJSON(t, h.Classify, `not json`); rec.Code != http.StatusBadRequest {
		t.Errorf("bad body: status = %d, want 400", rec.Code)
	}
}

func TestConsequence(t *testing.T) {
	h := NewJudgmentHandler(newTestService(t))

	rec := postJSON(t, h.Consequence, `{"text": "Should I quit my job?"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string]bool
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if !resp["consequence"] {
		t.Error("expected consequence = true")
	}
}

func TestOrchestrate_TransparencyResponse(t *testing.T) {
	h := NewJudgmentHandler(newTestService(t))

	rec := postJSON(t, h.Orchestrate, `{"text": "What do you remember about me?", "mode": "work"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp domain.JudgmentResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Transparency == nil {
		t.Error("expected a transparency card in the response")
	}
	if resp.Synthesis != nil {
		t.Error("a transparency response carries no synthesis")
	}
}

func TestOrchestrate_MissingText(t *testing.T) {
	h := NewJudgmentHandler(newTestService(t))

	if rec := postJSON(t, h.Orchestrate, `{"mode": "work"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestOrchestrate_ProfileErrorIsBadGateway(t *testing.T) {
	svc := service.NewJudgmentService(
		mustDispatcher(t),
		service.NewEvidenceService(search.NewMockClient(), llm.NewMockClient(), zap.NewNop(), 5, 5, time.Second),
		failingProfileStore{},
		nil,
		domain.DefaultLensSet([]string{"alpha"}),
		service.DefaultRuleTables(),
		zap.NewNop(),
	)
	h := NewJudgmentHandler(svc)

	rec := postJSON(t, h.Orchestrate, `{"text": "Summarize this", "mode": "normal", "user_key": "u1"}`)
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "non-explicit source") {
		t.Errorf("body = %s, want the collaborator error verbatim", rec.Body.String())
	}
}

func mustDispatcher(t *testing.T) *service.Dispatcher {
	t.Helper()
	d, err := service.NewDispatcher([]service.Backend{
		{Name: "alpha", Client: llm.NewMockClient(), Timeout: time.Second},
	}, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	return d
}

type failingProfileStore struct{}

func (failingProfileStore) Get(ctx context.Context, userKey string) (*domain.JudgmentProfile, error) {
	return nil, profileValidationErr{}
}

type profileValidationErr struct{}

func (profileValidationErr) Error() string {
	return `profile validation: field "tone" has non-explicit source "inferred"`
}
