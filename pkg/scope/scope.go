package scope

import (
	"context"

	"assistant-srv/internal/model"
)

// Payload is the verified token payload.
type Payload struct {
	UserID   string
	Username string
	Role     string
	Subject  string
}

// Manager verifies tokens into payloads.
type Manager interface {
	Verify(token string) (Payload, error)
}

// NewScope creates a model.Scope from a verified payload.
func NewScope(payload Payload) model.Scope {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}
	return model.Scope{
		UserID:   userID,
		Username: payload.Username,
		Role:     payload.Role,
	}
}

type scopeKey struct{}

// SetScopeToContext stores the scope in the context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScopeFromContext returns the scope from context, or a zero Scope if unset.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, ok := ctx.Value(scopeKey{}).(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}
