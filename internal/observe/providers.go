package observe

import (
	"context"
	"time"

	"github.com/dmitrijs2005/picdiary/internal/provider/imagegen"
	"github.com/dmitrijs2005/picdiary/internal/provider/llm"
)

const purposeIllustration = "illustration"

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// InstrumentedLLM records call counts and latency per purpose.
type InstrumentedLLM struct {
	next llm.Provider
	name string
	c    *Collector
}

func NewInstrumentedLLM(next llm.Provider, name string, c *Collector) *InstrumentedLLM {
	return &InstrumentedLLM{next: next, name: name, c: c}
}

func (p *InstrumentedLLM) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	start := time.Now()
	resp, err := p.next.Complete(ctx, req)
	p.c.ProviderDuration.WithLabelValues(p.name, req.Purpose).Observe(time.Since(start).Seconds())
	p.c.ProviderRequests.WithLabelValues(p.name, req.Purpose, status(err)).Inc()
	return resp, err
}

// InstrumentedImages records image generation calls and filtered artifacts.
type InstrumentedImages struct {
	next imagegen.Provider
	name string
	c    *Collector
}

func NewInstrumentedImages(next imagegen.Provider, name string, c *Collector) *InstrumentedImages {
	return &InstrumentedImages{next: next, name: name, c: c}
}

func (p *InstrumentedImages) Generate(ctx context.Context, req imagegen.Request) ([]imagegen.Artifact, error) {
	start := time.Now()
	arts, err := p.next.Generate(ctx, req)
	p.c.ProviderDuration.WithLabelValues(p.name, purposeIllustration).Observe(time.Since(start).Seconds())
	p.c.ProviderRequests.WithLabelValues(p.name, purposeIllustration, status(err)).Inc()
	for _, a := range arts {
		if a.Filtered() {
			p.c.ImagesFiltered.Inc()
		}
	}
	return arts, err
}

var (
	_ llm.Provider      = (*InstrumentedLLM)(nil)
	_ imagegen.Provider = (*InstrumentedImages)(nil)
)
