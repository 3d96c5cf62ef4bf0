package http

import (
	"assistant-srv/internal/model"
	"assistant-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processTurnRequest(c *gin.Context) (turnReq, model.Scope, error) {
	var req turnReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processGetConversationRequest(c *gin.Context) (getConversationReq, model.Scope, error) {
	req := getConversationReq{
		ConversationID: c.Param("conversation_id"),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
