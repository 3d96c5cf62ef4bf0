package postgre

import (
	"context"
	"fmt"
	"time"

	"assistant-srv/internal/conversation/repository"
)

// UpsertConversation - Ghi conversation metadata vào audit log
func (r *implRepository) UpsertConversation(ctx context.Context, opt repository.UpsertConversationOptions) error {
	now := time.Now()

	query := `
		INSERT INTO assistant.conversations (id, user_id, status, detected_language, completeness_score, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET status = EXCLUDED.status,
		    detected_language = EXCLUDED.detected_language,
		    completeness_score = EXCLUDED.completeness_score,
		    updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		opt.ID, opt.UserID, string(opt.Status), opt.DetectedLanguage, opt.CompletenessScore, now, now,
	)
	if err != nil {
		r.l.Errorf(ctx, "conversation.repository.postgre.UpsertConversation: %v", err)
		return fmt.Errorf("UpsertConversation: %w", repository.ErrFailedToInsert)
	}
	return nil
}
