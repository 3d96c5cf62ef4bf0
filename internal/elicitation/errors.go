package elicitation

import "errors"

var (
	ErrConversationCompleted = errors.New("elicitation: conversation already completed")
)
