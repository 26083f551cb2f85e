// Package stability provides an imagegen.Provider backed by the Stability AI
// REST text-to-image endpoint (v1 generation API).
package stability

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/picdiary/internal/logging"
	"github.com/dmitrijs2005/picdiary/internal/provider/imagegen"
)

const (
	DefaultHost   = "https://api.stability.ai"
	DefaultEngine = "stable-diffusion-v1-6"

	defaultSteps    = 30
	defaultCfgScale = 7
)

// Provider implements imagegen.Provider.
type Provider struct {
	apiKey     string
	host       string
	engine     string
	timeout    time.Duration
	httpClient *http.Client
	log        logging.Logger
}

// Option is a functional option for Provider.
type Option func(*Provider)

// WithHost overrides the API host (scheme included).
func WithHost(host string) Option {
	return func(p *Provider) {
		p.host = strings.TrimRight(host, "/")
	}
}

// WithEngine selects the generation engine id.
func WithEngine(engine string) Option {
	return func(p *Provider) {
		p.engine = engine
	}
}

// WithTimeout sets the HTTP timeout. It applies to a copy of the client, so
// a client passed with WithHTTPClient is never modified.
func WithTimeout(d time.Duration) Option {
	return func(p *Provider) {
		p.timeout = d
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(p *Provider) {
		p.httpClient = hc
	}
}

// WithLogger sets the logger used to report unusable artifacts.
func WithLogger(l logging.Logger) Option {
	return func(p *Provider) {
		p.log = l
	}
}

// New creates a Stability provider. apiKey must be non-empty.
func New(apiKey string, opts ...Option) (*Provider, error) {
	if apiKey == "" {
		return nil, errors.New("stability: apiKey must not be empty")
	}
	p := &Provider{
		apiKey:     apiKey,
		host:       DefaultHost,
		engine:     DefaultEngine,
		httpClient: &http.Client{},
		log:        logging.Nop(),
	}
	for _, o := range opts {
		o(p)
	}
	if p.httpClient == nil {
		p.httpClient = &http.Client{}
	}
	if p.timeout > 0 {
		hc := *p.httpClient
		hc.Timeout = p.timeout
		p.httpClient = &hc
	}
	if p.log == nil {
		p.log = logging.Nop()
	}
	if p.engine == "" {
		p.engine = DefaultEngine
	}
	if p.host == "" {
		p.host = DefaultHost
	}
	return p, nil
}

type textPrompt struct {
	Text   string  `json:"text"`
	Weight float64 `json:"weight,omitempty"`
}

type generationRequest struct {
	TextPrompts []textPrompt `json:"text_prompts"`
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	Samples     int          `json:"samples"`
	Steps       int          `json:"steps"`
	CfgScale    float64      `json:"cfg_scale"`
}

type artifactPayload struct {
	Base64       string `json:"base64"`
	Seed         uint32 `json:"seed"`
	FinishReason string `json:"finishReason"`
}

type generationResponse struct {
	Artifacts []artifactPayload `json:"artifacts"`
}

type errorResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Generate implements imagegen.Provider.
func (p *Provider) Generate(ctx context.Context, req imagegen.Request) ([]imagegen.Artifact, error) {
	if req.Width%64 != 0 || req.Height%64 != 0 {
		return nil, fmt.Errorf("stability: dimensions %dx%d are not multiples of 64", req.Width, req.Height)
	}

	body, err := json.Marshal(generationRequest{
		TextPrompts: []textPrompt{{Text: req.Prompt, Weight: 1}},
		Width:       req.Width,
		Height:      req.Height,
		Samples:     1,
		Steps:       defaultSteps,
		CfgScale:    defaultCfgScale,
	})
	if err != nil {
		return nil, fmt.Errorf("stability: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/generation/%s/text-to-image", p.host, p.engine)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("stability: build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("stability: request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("stability: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var e errorResponse
		if json.Unmarshal(raw, &e) == nil && e.Message != "" {
			return nil, fmt.Errorf("stability: %s: %s (%s)", resp.Status, e.Message, e.Name)
		}
		return nil, fmt.Errorf("stability: %s", resp.Status)
	}

	var gr generationResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return nil, fmt.Errorf("stability: decode response: %w", err)
	}

	artifacts := make([]imagegen.Artifact, 0, len(gr.Artifacts))
	for i, a := range gr.Artifacts {
		art := imagegen.Artifact{
			Type:         imagegen.ArtifactImage,
			FinishReason: imagegen.FinishReason(a.FinishReason),
			Seed:         a.Seed,
		}
		switch bin, err := base64.StdEncoding.DecodeString(a.Base64); {
		case a.Base64 == "":
			art.Type = imagegen.ArtifactOther
		case err != nil:
			// unusable, but later artifacts may still be fine
			p.log.Warn(ctx, "stability artifact not decodable", "index", i, "error", err)
			art.Type = imagegen.ArtifactOther
		default:
			art.Binary = bin
		}
		artifacts = append(artifacts, art)
	}
	return artifacts, nil
}

var _ imagegen.Provider = (*Provider)(nil)
