package http

import (
	"assistant-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Locale())
	api.Use(mw.Auth())
	{
		api.POST("/turns", h.HandleTurn)
		api.GET("/conversations/:conversation_id", h.GetConversation)
	}
}
