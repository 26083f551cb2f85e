// Package compiler turns a finished interview into diary prose and a title.
// Neither call touches the live transcript.
package compiler

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/picdiary/internal/common"
	"github.com/dmitrijs2005/picdiary/internal/provider/llm"
	"github.com/dmitrijs2005/picdiary/internal/server/transcript"
)

type Compiler struct {
	llm               llm.Provider
	summaryPrompt     string
	titleInstructions string
}

func New(p llm.Provider, summaryPrompt, titlePrompt string) *Compiler {
	return &Compiler{llm: p, summaryPrompt: summaryPrompt, titleInstructions: titlePrompt}
}

// Summarize writes the diary body from the interview. Leading system entries
// are dropped and the summary instruction is appended to a private copy.
func (c *Compiler) Summarize(ctx context.Context, entries []transcript.Entry) (string, error) {
	msgs := transcript.Messages(transcript.TrimSystemPrefix(entries))
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: c.summaryPrompt})

	return c.complete(ctx, llm.PurposeSummary, msgs)
}

// Title names a diary body. Only the body is given to the model.
func (c *Compiler) Title(ctx context.Context, body string) (string, error) {
	msgs := []llm.Message{
		{Role: llm.RoleUser, Content: c.titleInstructions},
		{Role: llm.RoleUser, Content: body},
	}
	return c.complete(ctx, llm.PurposeTitle, msgs)
}

func (c *Compiler) complete(ctx context.Context, purpose string, msgs []llm.Message) (string, error) {
	resp, err := c.llm.Complete(ctx, llm.CompletionRequest{Messages: msgs, Purpose: purpose})
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", common.ErrGeneration, purpose, err)
	}
	return resp.Content, nil
}
