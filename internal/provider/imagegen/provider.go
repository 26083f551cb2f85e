// Package imagegen defines the image-generation capability: a text prompt
// and target dimensions in, zero or more candidate artifacts out.
package imagegen

import "context"

// ArtifactType classifies a candidate returned by the backend.
type ArtifactType string

const (
	ArtifactImage ArtifactType = "image"
	ArtifactText  ArtifactType = "text"
	ArtifactOther ArtifactType = "other"
)

// FinishReason tells why the backend stopped producing an artifact.
type FinishReason string

const (
	FinishSuccess FinishReason = "SUCCESS"
	FinishError   FinishReason = "ERROR"
	// FinishFilter marks an artifact rejected by the content filter.
	FinishFilter FinishReason = "CONTENT_FILTERED"
)

// Artifact is a single candidate output.
type Artifact struct {
	Type         ArtifactType
	FinishReason FinishReason
	Binary       []byte
	Seed         uint32
}

// Filtered reports whether the content filter rejected the artifact.
func (a Artifact) Filtered() bool {
	return a.FinishReason == FinishFilter
}

// Request describes one generation. Width and Height must be multiples of 64.
type Request struct {
	Prompt string
	Width  int
	Height int
}

// Provider is the abstraction over any text-to-image backend.
type Provider interface {
	Generate(ctx context.Context, req Request) ([]Artifact, error)
}
