// Package mock provides a test double for llm.Provider.
//
// Responses are served in order from Responses; once exhausted, Response is
// returned for every further call. Err, when set, fails every call.
package mock

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/picdiary/internal/provider/llm"
)

// Call records a single invocation of Complete.
type Call struct {
	Ctx context.Context
	Req llm.CompletionRequest
}

// Provider is a scripted llm.Provider.
type Provider struct {
	mu sync.Mutex

	// ByPurpose answers calls by their request Purpose. It is consulted
	// before Responses, which keeps concurrent callers deterministic.
	ByPurpose map[string]string

	// Responses are returned one per call, in order.
	Responses []string

	// Response is returned when Responses is exhausted.
	Response string

	// Err, if non-nil, is returned by every call.
	Err error

	// Fn, if set, takes precedence over all of the above.
	Fn func(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error)

	// Calls records every invocation in order.
	Calls []Call
}

// Complete records the call and returns the scripted reply.
func (p *Provider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	p.mu.Lock()
	msgs := make([]llm.Message, len(req.Messages))
	copy(msgs, req.Messages)
	req.Messages = msgs
	p.Calls = append(p.Calls, Call{Ctx: ctx, Req: req})
	fn := p.Fn
	if content, ok := p.ByPurpose[req.Purpose]; ok && fn == nil && p.Err == nil {
		p.mu.Unlock()
		return &llm.CompletionResponse{Content: content}, nil
	}
	if fn == nil && p.Err == nil && len(p.Responses) > 0 {
		content := p.Responses[0]
		p.Responses = p.Responses[1:]
		p.mu.Unlock()
		return &llm.CompletionResponse{Content: content}, nil
	}
	err, content := p.Err, p.Response
	p.mu.Unlock()

	if fn != nil {
		return fn(ctx, req)
	}
	if err != nil {
		return nil, err
	}
	return &llm.CompletionResponse{Content: content}, nil
}

// CallsSnapshot returns a copy of the recorded calls.
func (p *Provider) CallsSnapshot() []Call {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Call, len(p.Calls))
	copy(out, p.Calls)
	return out
}

// CallsFor returns the recorded calls with the given purpose.
func (p *Provider) CallsFor(purpose string) []Call {
	var out []Call
	for _, c := range p.CallsSnapshot() {
		if c.Req.Purpose == purpose {
			out = append(out, c)
		}
	}
	return out
}

var _ llm.Provider = (*Provider)(nil)
