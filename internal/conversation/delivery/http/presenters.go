package http

import (
	"time"

	"assistant-srv/internal/conversation"
)

type turnReq struct {
	ConversationID string `json:"conversation_id,omitempty"`
	Message        string `json:"message" binding:"required,max=2000"`
}

func (r turnReq) toInput() conversation.HandleTurnInput {
	return conversation.HandleTurnInput{
		ConversationID: r.ConversationID,
		Message:        r.Message,
	}
}

type turnResp struct {
	ConversationID    string  `json:"conversation_id"`
	Reply             string  `json:"reply"`
	Intent            string  `json:"intent"`
	Status            string  `json:"status"`
	DetectedLanguage  string  `json:"detected_language"`
	CompletenessScore float64 `json:"completeness_score"`
	ReferenceID       string  `json:"reference_id,omitempty"`
}

func (h *handler) newTurnResp(o conversation.HandleTurnOutput) turnResp {
	return turnResp{
		ConversationID:    o.ConversationID,
		Reply:             o.Reply,
		Intent:            string(o.Intent),
		Status:            string(o.Status),
		DetectedLanguage:  o.DetectedLanguage,
		CompletenessScore: o.CompletenessScore,
		ReferenceID:       o.ReferenceID,
	}
}

type getConversationReq struct {
	ConversationID string
}

func (r getConversationReq) toInput() conversation.GetConversationInput {
	return conversation.GetConversationInput{
		ConversationID: r.ConversationID,
	}
}

type turnItemResp struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type fieldResp struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type conversationResp struct {
	ID                string         `json:"id"`
	UserID            string         `json:"user_id"`
	Status            string         `json:"status"`
	DetectedLanguage  string         `json:"detected_language"`
	CompletenessScore float64        `json:"completeness_score"`
	Turns             []turnItemResp `json:"turns"`
	Fields            []fieldResp    `json:"fields,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

func (h *handler) newConversationResp(o conversation.ConversationOutput) conversationResp {
	resp := conversationResp{
		ID:                o.ID,
		UserID:            o.UserID,
		Status:            string(o.Status),
		DetectedLanguage:  o.DetectedLanguage,
		CompletenessScore: o.CompletenessScore,
		Turns:             make([]turnItemResp, 0, len(o.Turns)),
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
	for _, t := range o.Turns {
		resp.Turns = append(resp.Turns, turnItemResp{
			Role:      t.Role,
			Content:   t.Content,
			CreatedAt: t.CreatedAt,
		})
	}
	for _, f := range o.Fields {
		resp.Fields = append(resp.Fields, fieldResp{Name: f.Name, Value: f.Value})
	}
	return resp
}
