package elicitation

import "assistant-srv/internal/model"

// DefaultMaxQuestions caps follow-up questions shown per turn. More than two
// questions at once overwhelms users and stalls the flow.
const DefaultMaxQuestions = 2

// Config tunes the elicitation loop. Zero values fall back to the defaults.
type Config struct {
	MaxQuestions int
}

// WithDefaults fills unset tunables with the default values.
func (c Config) WithDefaults() Config {
	if c.MaxQuestions <= 0 {
		c.MaxQuestions = DefaultMaxQuestions
	}
	return c
}

// AdvanceInput is one posting-flow turn. State is the conversation as read at
// turn start, before the current user text is appended.
type AdvanceInput struct {
	Text  string
	State model.ConversationState
}

// AdvanceOutput carries the reply and the state to persist.
type AdvanceOutput struct {
	Reply string
	State model.ConversationState

	// ReferenceID is set only when this turn finalized the listing.
	ReferenceID string
}
