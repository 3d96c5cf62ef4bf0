package conversation

import (
	"time"

	"assistant-srv/internal/model"
)

const (
	MaxMessageLength = 2000

	// MaxHistoryTurns bounds how much history is sent to collaborators.
	MaxHistoryTurns = 10
)

type HandleTurnInput struct {
	ConversationID string
	Message        string
}

type HandleTurnOutput struct {
	ConversationID    string
	Reply             string
	Intent            model.Intent
	Status            model.ConversationStatus
	DetectedLanguage  string
	CompletenessScore float64

	// ReferenceID is set when this turn posted a listing.
	ReferenceID string
}

type GetConversationInput struct {
	ConversationID string
}

type ConversationOutput struct {
	ID                string
	UserID            string
	Status            model.ConversationStatus
	DetectedLanguage  string
	CompletenessScore float64
	Turns             []model.Turn
	Fields            []model.FieldValue
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
