// Package interview drives the question-and-answer part of a diary session.
package interview

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/picdiary/internal/common"
	"github.com/dmitrijs2005/picdiary/internal/logging"
	"github.com/dmitrijs2005/picdiary/internal/provider/llm"
	"github.com/dmitrijs2005/picdiary/internal/server/transcript"
)

// Engine asks the next question of an interview.
type Engine struct {
	store *transcript.Store
	llm   llm.Provider
	log   logging.Logger
}

func NewEngine(store *transcript.Store, p llm.Provider, log logging.Logger) *Engine {
	if log == nil {
		log = logging.Nop()
	}
	return &Engine{store: store, llm: p, log: log.With("module", "interview")}
}

// Ask records the user's answer, sends the whole transcript to the model
// and records and returns its reply verbatim.
//
// When the model call fails the answer stays in the transcript and nothing
// else is appended.
func (e *Engine) Ask(ctx context.Context, sessionID, answer string) (string, error) {
	if err := e.store.Append(sessionID, transcript.RoleUser, answer); err != nil {
		return "", err
	}

	entries, err := e.store.Snapshot(sessionID, false)
	if err != nil {
		return "", err
	}

	resp, err := e.llm.Complete(ctx, llm.CompletionRequest{
		Messages: transcript.Messages(entries),
		Purpose:  llm.PurposeQuestion,
	})
	if err != nil {
		e.log.Error(ctx, "next question failed", "session", sessionID, "error", err)
		return "", fmt.Errorf("%w: %w", common.ErrGeneration, err)
	}

	if err := e.store.Append(sessionID, transcript.RoleAssistant, resp.Content); err != nil {
		return "", err
	}
	return resp.Content, nil
}
