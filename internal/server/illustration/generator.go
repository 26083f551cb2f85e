// Package illustration turns diary text into a PNG picture: the language
// model writes an English visual prompt, the image backend draws it.
package illustration

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/picdiary/internal/common"
	"github.com/dmitrijs2005/picdiary/internal/imagex"
	"github.com/dmitrijs2005/picdiary/internal/logging"
	"github.com/dmitrijs2005/picdiary/internal/provider/imagegen"
	"github.com/dmitrijs2005/picdiary/internal/provider/llm"
)

// Step is the dimension granularity accepted by the image backend.
const Step = 64

// Quantize rounds n up to the next multiple of Step.
func Quantize(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + Step - 1) / Step * Step
}

type Generator struct {
	llm         llm.Provider
	images      imagegen.Provider
	instruction string
	width       int
	height      int
	log         logging.Logger
}

// New creates a generator drawing width x height pictures (rounded up to
// multiples of Step).
func New(p llm.Provider, images imagegen.Provider, instruction string, width, height int, log logging.Logger) *Generator {
	if log == nil {
		log = logging.Nop()
	}
	return &Generator{
		llm:         p,
		images:      images,
		instruction: instruction,
		width:       Quantize(width),
		height:      Quantize(height),
		log:         log.With("module", "illustration"),
	}
}

// Size returns the dimensions actually requested from the backend.
func (g *Generator) Size() (int, int) {
	return g.width, g.height
}

// Illustrate returns PNG bytes for body, or nil when the backend produced no
// usable image. Capability failures are returned as common.ErrGeneration.
func (g *Generator) Illustrate(ctx context.Context, body string) ([]byte, error) {
	resp, err := g.llm.Complete(ctx, llm.CompletionRequest{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: g.instruction},
			{Role: llm.RoleUser, Content: body},
		},
		Purpose: llm.PurposeIllustrationPrompt,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: illustration prompt: %w", common.ErrGeneration, err)
	}

	arts, err := g.images.Generate(ctx, imagegen.Request{
		Prompt: resp.Content,
		Width:  g.width,
		Height: g.height,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: image: %w", common.ErrGeneration, err)
	}

	return g.pick(ctx, arts), nil
}

// pick returns the first image artifact that passed the content filter and
// decodes cleanly, re-encoded as PNG.
func (g *Generator) pick(ctx context.Context, arts []imagegen.Artifact) []byte {
	for i, a := range arts {
		if a.Filtered() {
			g.log.Warn(ctx, "image artifact rejected by content filter", "index", i, "seed", a.Seed)
			continue
		}
		if a.Type != imagegen.ArtifactImage {
			continue
		}
		data, err := imagex.ToPNG(a.Binary)
		if err != nil {
			g.log.Warn(ctx, "image artifact could not be decoded", "index", i, "error", err)
			continue
		}
		return data
	}
	g.log.Info(ctx, "no usable image artifact", "candidates", len(arts))
	return nil
}
