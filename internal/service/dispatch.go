package service

import (
	"context"
	"errors"
	"time"

	"github.com/arbiterhq/arbiter/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Backend is one configured judgment backend. A nil Client means the
// transport was unavailable at configuration time (missing credential);
// such a backend is dispatched as skipped, never errored.
type Backend struct {
	Name       string
	Client     domain.LLMClient
	Timeout    time.Duration
	SkipReason string
}

// Call is one prompt bound for one backend. Each call carries an
// independently built prompt; nothing is shared between concurrent
// calls.
type Call struct {
	Backend Backend
	Prompt  string
	Lens    string
}

// ErrNoBackends is the only fatal configuration condition in the
// pipeline.
var ErrNoBackends = errors.New("no judgment backends configured")

// Dispatcher fans calls out to their backends concurrently, each under
// its own deadline. It returns once every call has succeeded, errored,
// timed out, or been skipped; one backend's failure never cancels or
// corrupts its siblings. A backend is never retried within a request.
type Dispatcher struct {
	backends []Backend
	logger   *zap.Logger
}

func NewDispatcher(backends []Backend, logger *zap.Logger) (*Dispatcher, error) {
	if len(backends) == 0 {
		return nil, ErrNoBackends
	}
	return &Dispatcher{backends: backends, logger: logger}, nil
}

// ConfiguredBackends returns the backend configs in dispatch order.
func (d *Dispatcher) ConfiguredBackends() []Backend {
	return d.backends
}

const dispatchMaxTokens = 1024

// Dispatch issues every call concurrently and collects one tagged
// result per call, in call order. Each goroutine writes only its own
// slice slot; the errgroup Wait is the fan-in barrier.
func (d *Dispatcher) Dispatch(ctx context.Context, calls []Call) []domain.AgentResult {
	results := make([]domain.AgentResult, len(calls))

	var g errgroup.Group
	for i, c := range calls {
		g.Go(func() error {
			results[i] = d.callOne(ctx, c)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (d *Dispatcher) callOne(ctx context.Context, c Call) domain.AgentResult {
	result := domain.AgentResult{Backend: c.Backend.Name, Lens: c.Lens}

	if c.Backend.Client == nil {
		result.Status = domain.AgentSkipped
		result.Reason = c.Backend.SkipReason
		if result.Reason == "" {
			result.Reason = "backend transport unavailable"
		}
		return result
	}

	callCtx, cancel := context.WithTimeout(ctx, c.Backend.Timeout)
	defer cancel()

	start := time.Now()
	output, err := c.Backend.Client.Complete(callCtx, c.Prompt, dispatchMaxTokens)
	result.Duration = time.Since(start)

	switch {
	case err == nil:
		result.Status = domain.AgentSucceeded
		result.Output = output
	case errors.Is(err, context.DeadlineExceeded):
		result.Status = domain.AgentTimedOut
		result.Reason = "backend deadline exceeded"
		d.logger.Warn("backend timed out",
			zap.String("backend", c.Backend.Name),
			zap.Duration("timeout", c.Backend.Timeout))
	default:
		result.Status = domain.AgentErrored
		result.Reason = err.Error()
		d.logger.Warn("backend errored",
			zap.String("backend", c.Backend.Name),
			zap.Error(err))
	}
	return result
}
