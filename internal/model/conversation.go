package model

import "time"

// ConversationStatus is the lifecycle state of a conversation.
type ConversationStatus string

const (
	ConversationActive               ConversationStatus = "ACTIVE"
	ConversationAwaitingConfirmation ConversationStatus = "AWAITING_CONFIRMATION"
	ConversationCompleted            ConversationStatus = "COMPLETED"
)

// Turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single message in a conversation.
type Turn struct {
	Role      string    `json:"role"` // "user" | "assistant"
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ConversationState is the per-conversation state read at turn start and
// written at turn end. The snapshot store owns its lifecycle; the controller
// never deletes it.
type ConversationState struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	Turns  []Turn        `json:"turns"`
	Fields ListingFields `json:"fields"`

	CompletenessScore float64            `json:"completeness_score"` // 0..1
	DetectedLanguage  string             `json:"detected_language"`
	Status            ConversationStatus `json:"status"`

	// ActiveIntent keeps routing sticky while a posting flow is in progress,
	// so mid-flow answers like "3" are not re-classified as chat.
	ActiveIntent Intent `json:"active_intent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppendTurn adds a turn and bumps UpdatedAt.
func (s *ConversationState) AppendTurn(role, content string) {
	now := time.Now()
	s.Turns = append(s.Turns, Turn{Role: role, Content: content, CreatedAt: now})
	s.UpdatedAt = now
}

// RecentTurns returns at most n most recent turns, oldest first.
func (s *ConversationState) RecentTurns(n int) []Turn {
	if n <= 0 || len(s.Turns) <= n {
		return s.Turns
	}
	return s.Turns[len(s.Turns)-n:]
}

// UserText concatenates all user turn contents, used for language detection
// over the running conversation.
func (s *ConversationState) UserText() string {
	var out string
	for _, t := range s.Turns {
		if t.Role == "user" {
			if out != "" {
				out += " "
			}
			out += t.Content
		}
	}
	return out
}
