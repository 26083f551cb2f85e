package resilience

import (
	"context"
	"time"

	"github.com/dmitrijs2005/picdiary/internal/logging"
	"github.com/dmitrijs2005/picdiary/internal/provider/imagegen"
	"github.com/dmitrijs2005/picdiary/internal/provider/llm"
	"github.com/sony/gobreaker"
)

// LLM guards an llm.Provider.
type LLM struct {
	next    llm.Provider
	cb      *gobreaker.CircuitBreaker
	timeout time.Duration
}

func NewLLM(next llm.Provider, cfg BreakerConfig, timeout time.Duration, log logging.Logger) *LLM {
	return &LLM{next: next, cb: newBreaker(cfg, log), timeout: timeout}
}

func (p *LLM) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	return execute(ctx, p.cb, p.timeout, func(ctx context.Context) (*llm.CompletionResponse, error) {
		return p.next.Complete(ctx, req)
	})
}

// State exposes the breaker state for diagnostics.
func (p *LLM) State() string { return p.cb.State().String() }

// Images guards an imagegen.Provider.
type Images struct {
	next    imagegen.Provider
	cb      *gobreaker.CircuitBreaker
	timeout time.Duration
}

func NewImages(next imagegen.Provider, cfg BreakerConfig, timeout time.Duration, log logging.Logger) *Images {
	return &Images{next: next, cb: newBreaker(cfg, log), timeout: timeout}
}

func (p *Images) Generate(ctx context.Context, req imagegen.Request) ([]imagegen.Artifact, error) {
	return execute(ctx, p.cb, p.timeout, func(ctx context.Context) ([]imagegen.Artifact, error) {
		return p.next.Generate(ctx, req)
	})
}

func (p *Images) State() string { return p.cb.State().String() }

var (
	_ llm.Provider      = (*LLM)(nil)
	_ imagegen.Provider = (*Images)(nil)
)
