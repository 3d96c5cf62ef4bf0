package usecase

import (
	"context"
	"strings"

	"assistant-srv/internal/compose"
	"assistant-srv/internal/elicitation"
	"assistant-srv/internal/model"
	"assistant-srv/internal/signal"
	"assistant-srv/pkg/listingsrv"
)

// Advance runs one turn of the progressive posting flow.
func (uc *implUseCase) Advance(ctx context.Context, input elicitation.AdvanceInput) (elicitation.AdvanceOutput, error) {
	state := input.State
	text := input.Text

	if state.Status == model.ConversationCompleted {
		return elicitation.AdvanceOutput{}, elicitation.ErrConversationCompleted
	}

	// Step 1: detect the language once, then reuse it for the whole flow.
	if state.DetectedLanguage == "" {
		state.DetectedLanguage = signal.DetectLanguage(strings.TrimSpace(state.UserText() + " " + text))
	}
	lang := state.DetectedLanguage

	// Step 2: classify the turn's signals.
	frustrated := uc.detectors.IsFrustrated(text)
	confirmed := uc.detectors.IsConfirmation(text)

	// A clear confirmation while awaiting one finalizes the listing. This is
	// the loop's only terminal transition.
	if state.Status == model.ConversationAwaitingConfirmation && confirmed {
		return uc.finalize(ctx, state, lang)
	}

	// Step 3: merge whatever fields this turn contributes. Latest wins.
	merged := uc.extractAndMerge(ctx, &state, text, lang)

	// Ambiguous reply to the confirmation question: neither a clear yes nor
	// new data. Re-ask rather than silently finalize. A frustrated user gets
	// the collected fields shown first, never the same question verbatim.
	if state.Status == model.ConversationAwaitingConfirmation && merged == 0 {
		return elicitation.AdvanceOutput{
			Reply: uc.composer.ReAskConfirmation(ctx, compose.ReAskInput{
				Language:   lang,
				Frustrated: frustrated,
				Collected:  state.Fields.Collected(),
			}),
			State: state,
		}, nil
	}

	// New information reopens assessment; confirmation is not sticky.
	if state.Status == model.ConversationAwaitingConfirmation {
		state.Status = model.ConversationActive
	}

	// Step 4: score the accumulated fields.
	assessment, err := uc.listing.AssessCompleteness(ctx, listingsrv.AssessInput{
		Fields: toWireFields(state.Fields),
	})
	if err != nil {
		uc.l.Errorf(ctx, "elicitation.Advance: assess completeness: %v", err)
		return elicitation.AdvanceOutput{
			Reply: uc.composer.Failure(ctx, lang),
			State: state,
		}, nil
	}
	state.CompletenessScore = float64(assessment.OverallScore) / 100

	// Step 5: branch on readiness.
	if !assessment.ReadyToPost {
		questions := toNextQuestions(assessment.NextQuestions)
		if len(questions) > uc.cfg.MaxQuestions {
			questions = questions[:uc.cfg.MaxQuestions]
		}
		state.Status = model.ConversationActive
		return elicitation.AdvanceOutput{
			Reply: uc.composer.Questions(ctx, compose.QuestionsInput{
				Language:   lang,
				Questions:  questions,
				Frustrated: frustrated,
				Collected:  state.Fields.Collected(),
			}),
			State: state,
		}, nil
	}

	state.Status = model.ConversationAwaitingConfirmation
	return elicitation.AdvanceOutput{
		Reply: uc.composer.ConfirmationOffer(ctx, compose.OfferInput{
			Language:   lang,
			Summary:    assessment.CollectedSummary,
			Frustrated: frustrated,
			Collected:  state.Fields.Collected(),
		}),
		State: state,
	}, nil
}

// extractAndMerge delegates attribute extraction and merges the result into
// the state. Extraction failures are recoverable and merge nothing.
func (uc *implUseCase) extractAndMerge(ctx context.Context, state *model.ConversationState, text, lang string) int {
	out, err := uc.listing.ExtractAttributes(ctx, listingsrv.ExtractInput{
		Text:     text,
		Language: lang,
	})
	if err != nil {
		uc.l.Warnf(ctx, "elicitation.extractAndMerge: %v", err)
		return 0
	}
	return state.Fields.Merge(toModelFields(out.Fields))
}

// finalize posts the listing and closes the conversation. A posting failure
// keeps the confirmation pending so the user can simply try again.
func (uc *implUseCase) finalize(ctx context.Context, state model.ConversationState, lang string) (elicitation.AdvanceOutput, error) {
	out, err := uc.listing.PostListing(ctx, listingsrv.PostInput{
		UserID:         state.UserID,
		ConversationID: state.ID,
		ListingType:    listingType(state.ActiveIntent),
		Fields:         toWireFields(state.Fields),
	})
	if err != nil {
		uc.l.Errorf(ctx, "elicitation.finalize: post listing: %v", err)
		return elicitation.AdvanceOutput{
			Reply: uc.composer.Failure(ctx, lang),
			State: state,
		}, nil
	}

	state.Status = model.ConversationCompleted
	return elicitation.AdvanceOutput{
		Reply: uc.composer.Completed(ctx, compose.CompletedInput{
			Language:    lang,
			ReferenceID: out.ReferenceID,
		}),
		State:       state,
		ReferenceID: out.ReferenceID,
	}, nil
}

func listingType(intent model.Intent) string {
	if intent == model.IntentPostRent {
		return "rent"
	}
	return "sale"
}

func toWireFields(f model.ListingFields) listingsrv.Fields {
	return listingsrv.Fields{
		PropertyType: f.PropertyType,
		Location:     f.Location,
		District:     f.District,
		Price:        f.Price,
		AreaSqm:      f.AreaSqm,
		Bedrooms:     f.Bedrooms,
		Bathrooms:    f.Bathrooms,
		Direction:    f.Direction,
		LegalStatus:  f.LegalStatus,
		Description:  f.Description,
		ContactPhone: f.ContactPhone,
	}
}

func toModelFields(f listingsrv.Fields) model.ListingFields {
	return model.ListingFields{
		PropertyType: f.PropertyType,
		Location:     f.Location,
		District:     f.District,
		Price:        f.Price,
		AreaSqm:      f.AreaSqm,
		Bedrooms:     f.Bedrooms,
		Bathrooms:    f.Bathrooms,
		Direction:    f.Direction,
		LegalStatus:  f.LegalStatus,
		Description:  f.Description,
		ContactPhone: f.ContactPhone,
	}
}

func toNextQuestions(qs []listingsrv.NextQuestion) []model.NextQuestion {
	if len(qs) == 0 {
		return nil
	}
	out := make([]model.NextQuestion, 0, len(qs))
	for _, q := range qs {
		out = append(out, model.NextQuestion{Field: q.Field, Prompt: q.Prompt})
	}
	return out
}
