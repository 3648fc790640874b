package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arbiterhq/arbiter/internal/domain"
	"github.com/arbiterhq/arbiter/internal/llm"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type DispatcherSuite struct {
	suite.Suite
}

func TestDispatcherSuite(t *testing.T) {
	suite.Run(t, new(DispatcherSuite))
}

func (s *DispatcherSuite) backend(name string, client domain.LLMClient, timeout time.Duration) Backend {
	return Backend{Name: name, Client: client, Timeout: timeout}
}

func (s *DispatcherSuite) TestNoBackendsIsFatal() {
	_, err := NewDispatcher(nil, zap.NewNop())
	s.Require().ErrorIs(err, ErrNoBackends)
}

func (s *DispatcherSuite) TestAllSucceed() {
	alpha := llm.NewMockClient()
	beta := llm.NewMockClient()
	beta.CompleteResponse = "beta says hi"

	d, err := NewDispatcher([]Backend{
		s.backend("alpha", alpha, time.Second),
		s.backend("beta", beta, time.Second),
	}, zap.NewNop())
	s.Require().NoError(err)

	results := d.Dispatch(context.Background(), []Call{
		{Backend: d.ConfiguredBackends()[0], Prompt: "p1"},
		{Backend: d.ConfiguredBackends()[1], Prompt: "p2"},
	})

	s.Require().Len(results, 2)
	s.Equal("alpha", results[0].Backend)
	s.Equal(domain.AgentSucceeded, results[0].Status)
	s.Equal("beta", results[1].Backend)
	s.Equal("beta says hi", results[1].Output)
	s.Equal([]string{"p1"}, alpha.CompleteCalls)
	s.Equal([]string{"p2"}, beta.CompleteCalls)
}

func (s *DispatcherSuite) TestTimeoutDoesNotCorruptSiblings() {
	slow := llm.NewMockClient()
	slow.Delay = 200 * time.Millisecond
	fast := llm.NewMockClient()
	fast.CompleteResponse = "fast answer"

	d, err := NewDispatcher([]Backend{
		s.backend("slow", slow, 10*time.Millisecond),
		s.backend("fast", fast, time.Second),
	}, zap.NewNop())
	s.Require().NoError(err)

	results := d.Dispatch(context.Background(), []Call{
		{Backend: d.ConfiguredBackends()[0], Prompt: "p"},
		{Backend: d.ConfiguredBackends()[1], Prompt: "p"},
	})

	s.Require().Len(results, 2)
	s.Equal(domain.AgentTimedOut, results[0].Status)
	s.Equal("backend deadline exceeded", results[0].Reason)
	s.Empty(results[0].Output)
	s.Equal(domain.AgentSucceeded, results[1].Status)
	s.Equal("fast answer", results[1].Output)
}

func (s *DispatcherSuite) TestErroredBackend() {
	broken := llm.NewMockClient()
	broken.CompleteError = errors.New("upstream 500")

	d, err := NewDispatcher([]Backend{s.backend("broken", broken, time.Second)}, zap.NewNop())
	s.Require().NoError(err)

	results := d.Dispatch(context.Background(), []Call{
		{Backend: d.ConfiguredBackends()[0], Prompt: "p"},
	})

	s.Require().Len(results, 1)
	s.Equal(domain.AgentErrored, results[0].Status)
	s.Equal("upstream 500", results[0].Reason)
}

func (s *DispatcherSuite) TestNilClientIsSkipped() {
	d, err := NewDispatcher([]Backend{
		{Name: "ghost", Client: nil, Timeout: time.Second, SkipReason: "missing API key"},
	}, zap.NewNop())
	s.Require().NoError(err)

	results := d.Dispatch(context.Background(), []Call{
		{Backend: d.ConfiguredBackends()[0], Prompt: "p"},
	})

	s.Require().Len(results, 1)
	s.Equal(domain.AgentSkipped, results[0].Status)
	s.Equal("missing API key", results[0].Reason)
}

func (s *DispatcherSuite) TestSharedClientRecordsEveryConcurrentCall() {
	shared := llm.NewMockClient()
	b := s.backend("alpha", shared, time.Second)

	d, err := NewDispatcher([]Backend{b}, zap.NewNop())
	s.Require().NoError(err)

	calls := make([]Call, 8)
	for i := range calls {
		calls[i] = Call{Backend: b, Prompt: "p"}
	}

	results := d.Dispatch(context.Background(), calls)

	s.Require().Len(results, len(calls))
	for _, r := range results {
		s.Equal(domain.AgentSucceeded, r.Status)
	}
	s.Len(shared.CompleteCalls, len(calls))
}

func (s *DispatcherSuite) TestResultsInCallOrder() {
	clients := []*llm.MockClient{llm.NewMockClient(), llm.NewMockClient(), llm.NewMockClient()}
	clients[0].Delay = 30 * time.Millisecond

	backends := []Backend{
		s.backend("a", clients[0], time.Second),
		s.backend("b", clients[1], time.Second),
		s.backend("c", clients[2], time.Second),
	}
	d, err := NewDispatcher(backends, zap.NewNop())
	s.Require().NoError(err)

	results := d.Dispatch(context.Background(), []Call{
		{Backend: backends[0], Lens: "risk"},
		{Backend: backends[1], Lens: "relationship"},
		{Backend: backends[2], Lens: "strategy"},
		{Backend: backends[0], Lens: "execution"},
	})

	s.Require().Len(results, 4)
	for i, lens := range []string{"risk", "relationship", "strategy", "execution"} {
		s.Equal(lens, results[i].Lens)
	}
	// First backend took both its own call and the execution call.
	s.Len(clients[0].CompleteCalls, 2)
	s.Len(clients[1].CompleteCalls, 1)
}
