package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/arbiterhq/arbiter/internal/domain"
	"github.com/arbiterhq/arbiter/internal/llm"
	"github.com/arbiterhq/arbiter/internal/search"
	"github.com/arbiterhq/arbiter/internal/service"
	"go.uber.org/zap"
)

func TestRetrieve_AlwaysReturnsABundle(t *testing.T) {
	searcher := search.NewMockClient()
	searcher.SearchError = errors.New("search backend down")
	evidence := service.NewEvidenceService(searcher, llm.NewMockClient(), zap.NewNop(), 5, 5, time.Second)

	svc := service.NewJudgmentService(
		mustDispatcher(t),
		evidence,
		nil,
		nil,
		domain.DefaultLensSet([]string{"alpha"}),
		service.DefaultRuleTables(),
		zap.NewNop(),
	)
	h := NewEvidenceHandler(svc)

	rec := postJSON(t, h.Retrieve, `{"query": "latest layoff numbers"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, retrieval must degrade rather than fail", rec.Code)
	}

	var bundle domain.EvidenceBundle
	if err := json.NewDecoder(rec.Body).Decode(&bundle); err != nil {
		t.Fatal(err)
	}
	if bundle.Limitation == "" {
		t.Error("expected a limitation note on a degraded bundle")
	}
	if len(bundle.Facts) != 0 {
		t.Error("a degraded bundle carries no facts")
	}
}

func TestRetrieve_MissingQuery(t *testing.T) {
	h := NewEvidenceHandler(newTestService(t))

	if rec := postJSON(t, h.Retrieve, `{}`); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
