package repository

import "assistant-srv/internal/model"

type SaveStateOptions struct {
	State model.ConversationState
}

type UpsertConversationOptions struct {
	ID                string
	UserID            string
	Status            model.ConversationStatus
	DetectedLanguage  string
	CompletenessScore float64
}

type InsertTurnOptions struct {
	ConversationID string
	Role           string
	Content        string
	Intent         model.Intent
	Metadata       map[string]any
}
