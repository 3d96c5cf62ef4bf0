package resolution

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Resolve runs the bounded search loop for one user turn and returns a
	// user-facing reply. It never fails the turn for collaborator errors; the
	// reply degrades instead.
	Resolve(ctx context.Context, input ResolveInput) (ResolveOutput, error)
}
