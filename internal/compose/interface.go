package compose

import (
	"context"

	"assistant-srv/pkg/gemini"
	"assistant-srv/pkg/log"
)

// Composer turns loop outcomes into user-facing prose. Every method degrades
// to a deterministic template on LLM failure, so composition never fails a turn.
//
//go:generate mockery --name Composer
type Composer interface {
	Results(ctx context.Context, input ResultsInput) string
	Clarification(ctx context.Context, input ClarificationInput) string
	Questions(ctx context.Context, input QuestionsInput) string
	ConfirmationOffer(ctx context.Context, input OfferInput) string
	Completed(ctx context.Context, input CompletedInput) string
	ReAskConfirmation(ctx context.Context, input ReAskInput) string
	Chat(ctx context.Context, input ChatInput) string
	Failure(ctx context.Context, lang string) string
}

type implComposer struct {
	gemini gemini.IGemini
	l      log.Logger
}

// New - Factory function
func New(gemini gemini.IGemini, l log.Logger) Composer {
	return &implComposer{
		gemini: gemini,
		l:      l,
	}
}
