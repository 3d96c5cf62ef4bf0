package conversation

import (
	"context"

	"assistant-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// HandleTurn processes one user message end to end: route to the right
	// loop, compose the reply, and persist the updated state.
	HandleTurn(ctx context.Context, sc model.Scope, input HandleTurnInput) (HandleTurnOutput, error)
	GetConversation(ctx context.Context, sc model.Scope, input GetConversationInput) (ConversationOutput, error)
}
