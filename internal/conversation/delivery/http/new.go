package http

import (
	"assistant-srv/internal/conversation"
	"assistant-srv/internal/middleware"
	"assistant-srv/pkg/discord"
	"assistant-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho conversation HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      conversation.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc conversation.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
