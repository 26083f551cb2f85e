// Package mock provides a test double for imagegen.Provider.
package mock

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/picdiary/internal/provider/imagegen"
)

// Provider returns Artifacts (or Err) and records every request.
type Provider struct {
	mu sync.Mutex

	Artifacts []imagegen.Artifact
	Err       error

	Requests []imagegen.Request
}

func (p *Provider) Generate(ctx context.Context, req imagegen.Request) ([]imagegen.Artifact, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Requests = append(p.Requests, req)
	if p.Err != nil {
		return nil, p.Err
	}
	out := make([]imagegen.Artifact, len(p.Artifacts))
	copy(out, p.Artifacts)
	return out, nil
}

// RequestsSnapshot returns a copy of the recorded requests.
func (p *Provider) RequestsSnapshot() []imagegen.Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]imagegen.Request, len(p.Requests))
	copy(out, p.Requests)
	return out
}

var _ imagegen.Provider = (*Provider)(nil)
