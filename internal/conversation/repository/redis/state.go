package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"assistant-srv/internal/conversation/repository"
	"assistant-srv/internal/model"
	pkgredis "assistant-srv/pkg/redis"
)

const (
	stateKeyPrefix = "conversation:state:"

	// stateTTL keeps idle conversations around for a week before they expire.
	stateTTL = 7 * 24 * time.Hour
)

func stateKey(conversationID string) string {
	return stateKeyPrefix + conversationID
}

// GetState - Đọc conversation state snapshot
func (r *implRepository) GetState(ctx context.Context, conversationID string) (model.ConversationState, error) {
	raw, err := r.redis.Get(ctx, stateKey(conversationID))
	if err != nil {
		if errors.Is(err, pkgredis.ErrKeyNotFound) {
			return model.ConversationState{}, repository.ErrStateNotFound
		}
		r.l.Errorf(ctx, "conversation.repository.redis.GetState: %v", err)
		return model.ConversationState{}, fmt.Errorf("GetState: %w", repository.ErrFailedToGet)
	}

	var state model.ConversationState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		r.l.Errorf(ctx, "conversation.repository.redis.GetState: unmarshal: %v", err)
		return model.ConversationState{}, fmt.Errorf("GetState: %w", repository.ErrFailedToGet)
	}
	return state, nil
}

// SaveState - Ghi conversation state snapshot
func (r *implRepository) SaveState(ctx context.Context, opt repository.SaveStateOptions) error {
	raw, err := json.Marshal(opt.State)
	if err != nil {
		return fmt.Errorf("SaveState: marshal: %w", err)
	}

	if err := r.redis.Set(ctx, stateKey(opt.State.ID), raw, stateTTL); err != nil {
		r.l.Errorf(ctx, "conversation.repository.redis.SaveState: %v", err)
		return fmt.Errorf("SaveState: %w", repository.ErrFailedToSave)
	}
	return nil
}
