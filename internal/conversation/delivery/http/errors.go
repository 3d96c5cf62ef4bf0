package http

import (
	"errors"

	"assistant-srv/internal/conversation"
	pkgErrors "assistant-srv/pkg/errors"
)

var (
	errMessageRequired      = pkgErrors.NewHTTPError(400, "Message is required")
	errMessageTooLong       = pkgErrors.NewHTTPError(400, "Message too long (max 2000 characters)")
	errConversationNotFound = pkgErrors.NewHTTPError(404, "Conversation not found")
	errStateUnavailable     = pkgErrors.NewHTTPError(503, "Conversation state temporarily unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, conversation.ErrMessageRequired):
		return errMessageRequired
	case errors.Is(err, conversation.ErrMessageTooLong):
		return errMessageTooLong
	case errors.Is(err, conversation.ErrConversationNotFound):
		return errConversationNotFound
	case errors.Is(err, conversation.ErrStateUnavailable):
		return errStateUnavailable
	default:
		panic(err)
	}
}
