// Package llm defines the language-model capability used by the diary
// pipeline: given an ordered list of role/content messages, produce text.
//
// Implementations must be safe for concurrent use and must return promptly
// once ctx is cancelled.
package llm

import "context"

// Roles understood by every provider.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Purposes label a request for metrics and logs.
const (
	PurposeQuestion           = "question"
	PurposeSummary            = "summary"
	PurposeTitle              = "title"
	PurposeIllustrationPrompt = "illustration_prompt"
)

// Message is a single entry of the conversation sent to the model.
type Message struct {
	Role    string
	Content string
}

// CompletionRequest carries everything the model needs for one reply.
type CompletionRequest struct {
	// Messages is the ordered conversation. It must not be empty.
	Messages []Message

	// Purpose is a free-form label (see Purpose* constants). Providers ignore it.
	Purpose string

	// Temperature in [0, 2]; zero means provider default.
	Temperature float64

	// MaxTokens caps the reply; zero means provider default.
	MaxTokens int
}

// Usage holds token accounting returned by the backend.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// CompletionResponse is the model's reply.
type CompletionResponse struct {
	Content string
	Usage   Usage
}

// Provider is the abstraction over any chat-completion backend.
type Provider interface {
	// Complete sends req to the model and waits for the full reply.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

func (f ProviderFunc) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	return f(ctx, req)
}
