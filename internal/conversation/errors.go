package conversation

import "errors"

var (
	ErrMessageRequired      = errors.New("conversation: message is required")
	ErrMessageTooLong       = errors.New("conversation: message too long")
	ErrConversationNotFound = errors.New("conversation: not found")
	ErrStateUnavailable     = errors.New("conversation: state store unavailable")
)
