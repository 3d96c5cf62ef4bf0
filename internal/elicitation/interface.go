package elicitation

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Advance runs one turn of the posting flow: merge new fields, reassess
	// completeness, and produce the reply plus the updated state. The caller
	// owns persistence of the returned state.
	Advance(ctx context.Context, input AdvanceInput) (AdvanceOutput, error)
}
