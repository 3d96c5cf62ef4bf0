package http

import (
	"assistant-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Handle one conversation turn
// @Description Send a message and receive the assistant reply plus updated conversation state
// @Tags Conversation
// @Accept json
// @Produce json
// @Param body body turnReq true "Turn request"
// @Success 200 {object} turnResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/turns [post]
func (h *handler) HandleTurn(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processTurnRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "conversation.delivery.http.HandleTurn: processTurnRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.HandleTurn(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "conversation.delivery.http.HandleTurn: usecase HandleTurn failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newTurnResp(o))
}

// @Summary Get conversation detail
// @Description Return the current conversation snapshot with turns and collected fields
// @Tags Conversation
// @Accept json
// @Produce json
// @Param conversation_id path string true "Conversation ID"
// @Success 200 {object} conversationResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/conversations/{conversation_id} [get]
func (h *handler) GetConversation(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetConversationRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "conversation.delivery.http.GetConversation: processGetConversationRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GetConversation(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "conversation.delivery.http.GetConversation: usecase GetConversation failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newConversationResp(o))
}
