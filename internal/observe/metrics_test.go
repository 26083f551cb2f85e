package observe

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/picdiary/internal/provider/imagegen"
	imagemock "github.com/dmitrijs2005/picdiary/internal/provider/imagegen/mock"
	"github.com/dmitrijs2005/picdiary/internal/provider/llm"
	llmmock "github.com/dmitrijs2005/picdiary/internal/provider/llm/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, c *Collector) string {
	t.Helper()
	srv := httptest.NewServer(c.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestNewCollector_IndependentRegistries(t *testing.T) {
	a := NewCollector("picdiary")
	b := NewCollector("picdiary")
	assert.NotSame(t, a.Registry(), b.Registry())
}

func TestInstrumentedLLM(t *testing.T) {
	c := NewCollector("picdiary")
	m := &llmmock.Provider{Response: "ok"}
	p := NewInstrumentedLLM(m, "openai", c)

	_, err := p.Complete(context.Background(), llm.CompletionRequest{Purpose: llm.PurposeTitle})
	require.NoError(t, err)

	m.Err = errors.New("down")
	_, err = p.Complete(context.Background(), llm.CompletionRequest{Purpose: llm.PurposeTitle})
	require.Error(t, err)

	body := scrape(t, c)
	assert.Contains(t, body, `picdiary_provider_requests_total{provider="openai",purpose="title",status="ok"} 1`)
	assert.Contains(t, body, `picdiary_provider_requests_total{provider="openai",purpose="title",status="error"} 1`)
}

func TestInstrumentedImages_CountsFiltered(t *testing.T) {
	c := NewCollector("picdiary")
	m := &imagemock.Provider{Artifacts: []imagegen.Artifact{
		{Type: imagegen.ArtifactImage, FinishReason: imagegen.FinishFilter},
		{Type: imagegen.ArtifactImage, FinishReason: imagegen.FinishSuccess, Binary: []byte{1}},
	}}
	p := NewInstrumentedImages(m, "stability", c)

	arts, err := p.Generate(context.Background(), imagegen.Request{Width: 64, Height: 64})
	require.NoError(t, err)
	assert.Len(t, arts, 2)

	body := scrape(t, c)
	assert.Contains(t, body, "picdiary_images_filtered_total 1")
	assert.Contains(t, body, `picdiary_provider_requests_total{provider="stability",purpose="illustration",status="ok"} 1`)
}
