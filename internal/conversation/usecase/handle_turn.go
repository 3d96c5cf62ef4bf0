package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"assistant-srv/internal/compose"
	"assistant-srv/internal/conversation"
	"assistant-srv/internal/conversation/repository"
	"assistant-srv/internal/elicitation"
	"assistant-srv/internal/model"
	"assistant-srv/internal/resolution"
	"assistant-srv/internal/signal"
	"assistant-srv/pkg/intentsrv"

	"github.com/google/uuid"
)

// HandleTurn processes one user message: load state, route to a loop, compose
// the reply, persist state. State store failures are the only fatal errors;
// everything else degrades to a templated reply.
func (uc *implUseCase) HandleTurn(ctx context.Context, sc model.Scope, input conversation.HandleTurnInput) (conversation.HandleTurnOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return conversation.HandleTurnOutput{}, conversation.ErrMessageRequired
	}
	if len(message) > conversation.MaxMessageLength {
		return conversation.HandleTurnOutput{}, conversation.ErrMessageTooLong
	}

	// Step 1: read state. A missing snapshot starts a new conversation; a
	// store failure aborts the turn.
	state, err := uc.loadState(ctx, sc, input.ConversationID)
	if err != nil {
		return conversation.HandleTurnOutput{}, err
	}

	// A finished posting flow stays readable, but a new message starts the
	// next flow over the same conversation.
	if state.Status == model.ConversationCompleted {
		state.Status = model.ConversationActive
		state.ActiveIntent = model.IntentUnknown
		state.Fields = model.ListingFields{}
		state.CompletenessScore = 0
	}

	// Step 2: pick the intent. A posting flow in progress stays sticky so
	// mid-flow answers like "3" are not re-classified as chat.
	intent := state.ActiveIntent
	if !intent.IsPosting() {
		intent = uc.classify(ctx, message, &state)
	}

	// Step 3: detect the language once per conversation.
	if state.DetectedLanguage == "" {
		state.DetectedLanguage = signal.DetectLanguage(strings.TrimSpace(state.UserText() + " " + message))
	}

	// Step 4: route to the right loop.
	reply, referenceID := uc.route(ctx, intent, message, &state)

	// Step 5: record the exchange and persist. Snapshot write failure is
	// fatal; nothing the user said survives without it.
	state.AppendTurn(model.RoleUser, message)
	state.AppendTurn(model.RoleAssistant, reply)
	if err := uc.stateRepo.SaveState(ctx, repository.SaveStateOptions{State: state}); err != nil {
		uc.l.Errorf(ctx, "conversation.HandleTurn: save state: %v", err)
		return conversation.HandleTurnOutput{}, conversation.ErrStateUnavailable
	}

	// Step 6: audit log and analytics event, both best-effort.
	uc.audit(ctx, state, intent, message, reply)
	uc.publishTurnCompleted(ctx, state, intent, referenceID)

	return conversation.HandleTurnOutput{
		ConversationID:    state.ID,
		Reply:             reply,
		Intent:            intent,
		Status:            state.Status,
		DetectedLanguage:  state.DetectedLanguage,
		CompletenessScore: state.CompletenessScore,
		ReferenceID:       referenceID,
	}, nil
}

// GetConversation returns the current snapshot of one conversation.
func (uc *implUseCase) GetConversation(ctx context.Context, sc model.Scope, input conversation.GetConversationInput) (conversation.ConversationOutput, error) {
	state, err := uc.stateRepo.GetState(ctx, input.ConversationID)
	if err != nil {
		if errors.Is(err, repository.ErrStateNotFound) {
			return conversation.ConversationOutput{}, conversation.ErrConversationNotFound
		}
		uc.l.Errorf(ctx, "conversation.GetConversation: get state: %v", err)
		return conversation.ConversationOutput{}, conversation.ErrStateUnavailable
	}
	if state.UserID != sc.UserID {
		return conversation.ConversationOutput{}, conversation.ErrConversationNotFound
	}

	return conversation.ConversationOutput{
		ID:                state.ID,
		UserID:            state.UserID,
		Status:            state.Status,
		DetectedLanguage:  state.DetectedLanguage,
		CompletenessScore: state.CompletenessScore,
		Turns:             state.Turns,
		Fields:            state.Fields.Collected(),
		CreatedAt:         state.CreatedAt,
		UpdatedAt:         state.UpdatedAt,
	}, nil
}

func (uc *implUseCase) loadState(ctx context.Context, sc model.Scope, conversationID string) (model.ConversationState, error) {
	if conversationID == "" {
		return newState(sc, uuid.New().String()), nil
	}

	state, err := uc.stateRepo.GetState(ctx, conversationID)
	if err != nil {
		if errors.Is(err, repository.ErrStateNotFound) {
			return newState(sc, conversationID), nil
		}
		uc.l.Errorf(ctx, "conversation.loadState: %v", err)
		return model.ConversationState{}, conversation.ErrStateUnavailable
	}
	if state.UserID != sc.UserID {
		return model.ConversationState{}, conversation.ErrConversationNotFound
	}
	return state, nil
}

func newState(sc model.Scope, id string) model.ConversationState {
	now := time.Now()
	return model.ConversationState{
		ID:           id,
		UserID:       sc.UserID,
		Status:       model.ConversationActive,
		ActiveIntent: model.IntentUnknown,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// classify asks the intent service for a label. Failures fall back to chat so
// the user still gets an answer.
func (uc *implUseCase) classify(ctx context.Context, message string, state *model.ConversationState) model.Intent {
	history := make([]string, 0, conversation.MaxHistoryTurns)
	for _, t := range state.RecentTurns(conversation.MaxHistoryTurns) {
		history = append(history, t.Content)
	}

	out, err := uc.intent.Classify(ctx, intentsrv.ClassifyInput{Text: message, History: history})
	if err != nil {
		uc.l.Warnf(ctx, "conversation.classify: %v", err)
		return model.IntentChat
	}
	return model.ParseIntent(out.Intent)
}

// route dispatches the message to the matching loop and returns the reply.
func (uc *implUseCase) route(ctx context.Context, intent model.Intent, message string, state *model.ConversationState) (reply, referenceID string) {
	lang := state.DetectedLanguage

	switch {
	case intent.IsPosting():
		state.ActiveIntent = intent
		out, err := uc.elicitationUC.Advance(ctx, elicitation.AdvanceInput{Text: message, State: *state})
		if err != nil {
			uc.l.Errorf(ctx, "conversation.route: elicitation: %v", err)
			return uc.composer.Failure(ctx, lang), ""
		}
		*state = out.State
		return out.Reply, out.ReferenceID

	case intent == model.IntentSearch:
		out, err := uc.resolutionUC.Resolve(ctx, resolution.ResolveInput{
			Language: lang,
			Query:    message,
			History:  state.RecentTurns(conversation.MaxHistoryTurns),
		})
		if err != nil {
			uc.l.Errorf(ctx, "conversation.route: resolution: %v", err)
			return uc.composer.Failure(ctx, lang), ""
		}
		return out.Reply, ""

	case intent == model.IntentPriceAnalysis:
		return uc.composer.Chat(ctx, compose.ChatInput{
			Language:      lang,
			Message:       message,
			History:       state.RecentTurns(conversation.MaxHistoryTurns),
			PriceAnalysis: true,
		}), ""

	default:
		return uc.composer.Chat(ctx, compose.ChatInput{
			Language: lang,
			Message:  message,
			History:  state.RecentTurns(conversation.MaxHistoryTurns),
		}), ""
	}
}

// audit mirrors the turn into postgres. Best-effort: the user already has the
// reply, a logging failure must not fail the turn.
func (uc *implUseCase) audit(ctx context.Context, state model.ConversationState, intent model.Intent, message, reply string) {
	if err := uc.auditRepo.UpsertConversation(ctx, repository.UpsertConversationOptions{
		ID:                state.ID,
		UserID:            state.UserID,
		Status:            state.Status,
		DetectedLanguage:  state.DetectedLanguage,
		CompletenessScore: state.CompletenessScore,
	}); err != nil {
		uc.l.Warnf(ctx, "conversation.audit: upsert conversation: %v", err)
		return
	}

	metadata := map[string]any{
		"language": state.DetectedLanguage,
		"status":   string(state.Status),
	}

	if err := uc.auditRepo.InsertTurn(ctx, repository.InsertTurnOptions{
		ConversationID: state.ID,
		Role:           model.RoleUser,
		Content:        message,
		Intent:         intent,
		Metadata:       metadata,
	}); err != nil {
		uc.l.Warnf(ctx, "conversation.audit: insert user turn: %v", err)
	}
	if err := uc.auditRepo.InsertTurn(ctx, repository.InsertTurnOptions{
		ConversationID: state.ID,
		Role:           model.RoleAssistant,
		Content:        reply,
		Intent:         intent,
		Metadata:       metadata,
	}); err != nil {
		uc.l.Warnf(ctx, "conversation.audit: insert assistant turn: %v", err)
	}
}
