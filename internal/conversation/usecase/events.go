package usecase

import (
	"context"
	"encoding/json"
	"time"

	"assistant-srv/internal/model"
)

// turnCompletedEvent is published after every handled turn for analytics.
type turnCompletedEvent struct {
	ConversationID    string  `json:"conversation_id"`
	UserID            string  `json:"user_id"`
	Intent            string  `json:"intent"`
	Status            string  `json:"status"`
	DetectedLanguage  string  `json:"detected_language"`
	CompletenessScore float64 `json:"completeness_score"`
	ReferenceID       string  `json:"reference_id,omitempty"`
	OccurredAt        int64   `json:"occurred_at"`
}

// publishTurnCompleted emits the analytics event. Best-effort: a broker
// outage must not fail the turn.
func (uc *implUseCase) publishTurnCompleted(ctx context.Context, state model.ConversationState, intent model.Intent, referenceID string) {
	if uc.producer == nil {
		return
	}

	event := turnCompletedEvent{
		ConversationID:    state.ID,
		UserID:            state.UserID,
		Intent:            string(intent),
		Status:            string(state.Status),
		DetectedLanguage:  state.DetectedLanguage,
		CompletenessScore: state.CompletenessScore,
		ReferenceID:       referenceID,
		OccurredAt:        time.Now().Unix(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		uc.l.Warnf(ctx, "conversation.publishTurnCompleted: marshal: %v", err)
		return
	}
	if err := uc.producer.Publish([]byte(state.ID), value); err != nil {
		uc.l.Warnf(ctx, "conversation.publishTurnCompleted: publish: %v", err)
	}
}
