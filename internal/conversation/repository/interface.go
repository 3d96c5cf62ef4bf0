package repository

import (
	"context"

	"assistant-srv/internal/model"
)

// StateRepository - Interface cho conversation state snapshot (redis)
//
//go:generate mockery --name StateRepository
type StateRepository interface {
	GetState(ctx context.Context, conversationID string) (model.ConversationState, error)
	SaveState(ctx context.Context, opt SaveStateOptions) error
}

// AuditRepository - Interface cho conversation audit log (postgres)
//
//go:generate mockery --name AuditRepository
type AuditRepository interface {
	UpsertConversation(ctx context.Context, opt UpsertConversationOptions) error
	InsertTurn(ctx context.Context, opt InsertTurnOptions) error
}
