package postgre

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"assistant-srv/internal/conversation/repository"

	"github.com/google/uuid"
)

// InsertTurn - Ghi một turn vào audit log
func (r *implRepository) InsertTurn(ctx context.Context, opt repository.InsertTurnOptions) error {
	metadata := []byte("{}")
	if len(opt.Metadata) > 0 {
		raw, err := json.Marshal(opt.Metadata)
		if err != nil {
			r.l.Errorf(ctx, "conversation.repository.postgre.InsertTurn: marshal metadata: %v", err)
			return fmt.Errorf("InsertTurn: %w", repository.ErrFailedToInsert)
		}
		metadata = raw
	}

	query := `
		INSERT INTO assistant.turns (id, conversation_id, role, content, intent, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		uuid.New().String(), opt.ConversationID, opt.Role, opt.Content, string(opt.Intent), metadata, time.Now(),
	)
	if err != nil {
		r.l.Errorf(ctx, "conversation.repository.postgre.InsertTurn: %v", err)
		return fmt.Errorf("InsertTurn: %w", repository.ErrFailedToInsert)
	}
	return nil
}
