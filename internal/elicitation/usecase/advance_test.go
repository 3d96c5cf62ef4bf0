package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"assistant-srv/internal/compose"
	"assistant-srv/internal/elicitation"
	"assistant-srv/internal/model"
	"assistant-srv/internal/signal"
	"assistant-srv/pkg/gemini"
	"assistant-srv/pkg/listingsrv"
	"assistant-srv/pkg/log"
)

type stubGemini struct{}

func (stubGemini) Generate(ctx context.Context, input gemini.GenerateInput) (string, error) {
	return "", gemini.ErrCallFailed
}

type stubListing struct {
	extractOut listingsrv.ExtractOutput
	extractErr error
	assessOut  listingsrv.Assessment
	assessErr  error
	postOut    listingsrv.PostOutput
	postErr    error
	postCalls  int
}

func (s *stubListing) ExtractAttributes(ctx context.Context, input listingsrv.ExtractInput) (listingsrv.ExtractOutput, error) {
	return s.extractOut, s.extractErr
}

func (s *stubListing) AssessCompleteness(ctx context.Context, input listingsrv.AssessInput) (listingsrv.Assessment, error) {
	return s.assessOut, s.assessErr
}

func (s *stubListing) PostListing(ctx context.Context, input listingsrv.PostInput) (listingsrv.PostOutput, error) {
	s.postCalls++
	return s.postOut, s.postErr
}

func newTestUseCase(listing *stubListing) elicitation.UseCase {
	composer := compose.New(stubGemini{}, log.NewNopLogger())
	return New(listing, signal.New(signal.DefaultKeywords()), composer, elicitation.Config{}, log.NewNopLogger())
}

func activeState() model.ConversationState {
	return model.ConversationState{
		ID:           "conv-1",
		UserID:       "user-1",
		Status:       model.ConversationActive,
		ActiveIntent: model.IntentPostSale,
	}
}

func TestAdvanceQuestionCapIsTwo(t *testing.T) {
	listing := &stubListing{assessOut: listingsrv.Assessment{
		OverallScore: 30,
		ReadyToPost:  false,
		NextQuestions: []listingsrv.NextQuestion{
			{Field: "price", Prompt: "What price do you want?"},
			{Field: "area_sqm", Prompt: "How large is it?"},
			{Field: "bedrooms", Prompt: "How many bedrooms?"},
			{Field: "direction", Prompt: "Which direction does it face?"},
		},
	}}
	uc := newTestUseCase(listing)

	out, err := uc.Advance(context.Background(), elicitation.AdvanceInput{
		Text:  "I want to sell my apartment",
		State: activeState(),
	})
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	asked := 0
	for _, prompt := range []string{"What price", "How large", "How many bedrooms", "Which direction"} {
		if strings.Contains(out.Reply, prompt) {
			asked++
		}
	}
	if asked != 2 {
		t.Errorf("asked %d questions, want exactly 2: %q", asked, out.Reply)
	}
}

func TestAdvanceOffersConfirmationWhenReady(t *testing.T) {
	listing := &stubListing{assessOut: listingsrv.Assessment{
		OverallScore:     75,
		ReadyToPost:      true,
		CollectedSummary: []string{"apartment in district 2", "price 3.2 billion"},
	}}
	uc := newTestUseCase(listing)

	out, err := uc.Advance(context.Background(), elicitation.AdvanceInput{
		Text:  "80 square meters, 3 bedrooms",
		State: activeState(),
	})
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if out.State.Status != model.ConversationAwaitingConfirmation {
		t.Errorf("Status = %s, want AWAITING_CONFIRMATION", out.State.Status)
	}
	if !strings.Contains(out.Reply, "apartment in district 2") {
		t.Errorf("reply should summarize collected data, got %q", out.Reply)
	}
	if listing.postCalls != 0 {
		t.Error("must not post before the user confirms")
	}
}

func TestAdvanceConfirmationFinalizes(t *testing.T) {
	listing := &stubListing{postOut: listingsrv.PostOutput{ReferenceID: "LST-2024-4821"}}
	uc := newTestUseCase(listing)

	state := activeState()
	state.Status = model.ConversationAwaitingConfirmation
	state.DetectedLanguage = "en"

	out, err := uc.Advance(context.Background(), elicitation.AdvanceInput{Text: "yes", State: state})
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if out.State.Status != model.ConversationCompleted {
		t.Errorf("Status = %s, want COMPLETED", out.State.Status)
	}
	if out.ReferenceID != "LST-2024-4821" {
		t.Errorf("ReferenceID = %q", out.ReferenceID)
	}
	if !strings.Contains(out.Reply, "LST-2024-4821") {
		t.Errorf("reply must carry the reference id, got %q", out.Reply)
	}
	if listing.postCalls != 1 {
		t.Errorf("postCalls = %d, want 1", listing.postCalls)
	}
}

func TestAdvanceConfirmationIsNotSticky(t *testing.T) {
	// New data while awaiting confirmation reopens assessment instead of
	// finalizing.
	price := 2.8e9
	listing := &stubListing{
		extractOut: listingsrv.ExtractOutput{Fields: listingsrv.Fields{Price: &price}},
		assessOut: listingsrv.Assessment{
			OverallScore:     80,
			ReadyToPost:      true,
			CollectedSummary: []string{"price 2.8 billion"},
		},
	}
	uc := newTestUseCase(listing)

	state := activeState()
	state.Status = model.ConversationAwaitingConfirmation
	state.DetectedLanguage = "en"

	out, err := uc.Advance(context.Background(), elicitation.AdvanceInput{
		Text:  "actually make the price 2.8 billion",
		State: state,
	})
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if listing.postCalls != 0 {
		t.Error("new information must not finalize the listing")
	}
	if out.State.Status != model.ConversationAwaitingConfirmation {
		t.Errorf("Status = %s, want re-offered AWAITING_CONFIRMATION", out.State.Status)
	}
	if out.State.Fields.Price == nil || *out.State.Fields.Price != price {
		t.Error("new price must be merged before re-assessment")
	}
}

func TestAdvanceAmbiguousConfirmationReAsks(t *testing.T) {
	listing := &stubListing{} // extraction yields nothing
	uc := newTestUseCase(listing)

	state := activeState()
	state.Status = model.ConversationAwaitingConfirmation
	state.DetectedLanguage = "en"

	out, err := uc.Advance(context.Background(), elicitation.AdvanceInput{Text: "hmm maybe", State: state})
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if listing.postCalls != 0 {
		t.Error("ambiguous reply must not finalize")
	}
	if out.State.Status != model.ConversationAwaitingConfirmation {
		t.Errorf("Status = %s, want AWAITING_CONFIRMATION", out.State.Status)
	}
	if !strings.Contains(out.Reply, "post the listing now") {
		t.Errorf("expected the confirmation re-ask, got %q", out.Reply)
	}
}

func TestAdvanceFrustratedConfirmationAcknowledges(t *testing.T) {
	// Frustration while awaiting confirmation must not just repeat the same
	// question: the reply acknowledges and shows what was understood.
	listing := &stubListing{} // extraction yields nothing
	uc := newTestUseCase(listing)

	state := activeState()
	state.Status = model.ConversationAwaitingConfirmation
	state.DetectedLanguage = "en"
	district := "district 2"
	propertyType := "apartment"
	state.Fields.District = &district
	state.Fields.PropertyType = &propertyType

	out, err := uc.Advance(context.Background(), elicitation.AdvanceInput{
		Text:  "no, that's wrong",
		State: state,
	})
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if listing.postCalls != 0 {
		t.Error("frustration must not finalize")
	}
	if out.State.Status != model.ConversationAwaitingConfirmation {
		t.Errorf("Status = %s, want AWAITING_CONFIRMATION", out.State.Status)
	}
	if !strings.Contains(out.Reply, "Sorry") {
		t.Errorf("expected an acknowledgment, got %q", out.Reply)
	}
	for _, field := range []string{"district 2", "apartment"} {
		if !strings.Contains(out.Reply, field) {
			t.Errorf("reply must enumerate collected field %q: %q", field, out.Reply)
		}
	}
	if !strings.Contains(out.Reply, "post the listing now") {
		t.Errorf("reply must still ask about posting, got %q", out.Reply)
	}
}

func TestAdvanceFrustrationShowsCollectedFields(t *testing.T) {
	listing := &stubListing{assessOut: listingsrv.Assessment{
		OverallScore:  40,
		ReadyToPost:   false,
		NextQuestions: []listingsrv.NextQuestion{{Field: "price", Prompt: "What price?"}},
	}}
	uc := newTestUseCase(listing)

	state := activeState()
	state.DetectedLanguage = "en"
	district := "district 2"
	propertyType := "apartment"
	state.Fields.District = &district
	state.Fields.PropertyType = &propertyType

	out, err := uc.Advance(context.Background(), elicitation.AdvanceInput{
		Text:  "no, that's wrong",
		State: state,
	})
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if !strings.Contains(out.Reply, "Sorry") {
		t.Errorf("expected an acknowledgment, got %q", out.Reply)
	}
	for _, field := range []string{"district 2", "apartment"} {
		if !strings.Contains(out.Reply, field) {
			t.Errorf("reply must enumerate collected field %q: %q", field, out.Reply)
		}
	}
}

func TestAdvanceNeutralTextIsNotFrustration(t *testing.T) {
	listing := &stubListing{assessOut: listingsrv.Assessment{
		OverallScore:  10,
		ReadyToPost:   false,
		NextQuestions: []listingsrv.NextQuestion{{Field: "location", Prompt: "Where is the house?"}},
	}}
	uc := newTestUseCase(listing)

	state := activeState()
	state.DetectedLanguage = "en"

	out, err := uc.Advance(context.Background(), elicitation.AdvanceInput{
		Text:  "I want to sell a house",
		State: state,
	})
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if strings.Contains(out.Reply, "Sorry") {
		t.Errorf("neutral text must not trigger the frustration tone: %q", out.Reply)
	}
}

func TestAdvanceCompletenessFailureDegrades(t *testing.T) {
	listing := &stubListing{assessErr: errors.New("listing-srv: 503")}
	uc := newTestUseCase(listing)

	state := activeState()
	state.DetectedLanguage = "en"

	out, err := uc.Advance(context.Background(), elicitation.AdvanceInput{Text: "selling my condo", State: state})
	if err != nil {
		t.Fatalf("collaborator failure must not fail the turn: %v", err)
	}
	if out.Reply == "" {
		t.Error("expected the generic failure template")
	}
}

func TestAdvancePostingFailureKeepsConfirmationPending(t *testing.T) {
	listing := &stubListing{postErr: errors.New("listing-srv: 500")}
	uc := newTestUseCase(listing)

	state := activeState()
	state.Status = model.ConversationAwaitingConfirmation
	state.DetectedLanguage = "en"

	out, err := uc.Advance(context.Background(), elicitation.AdvanceInput{Text: "yes", State: state})
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if out.State.Status != model.ConversationAwaitingConfirmation {
		t.Errorf("Status = %s, want AWAITING_CONFIRMATION kept", out.State.Status)
	}
	if out.ReferenceID != "" {
		t.Error("no reference id on a failed post")
	}
}

func TestAdvanceCompletedConversationRejected(t *testing.T) {
	uc := newTestUseCase(&stubListing{})

	state := activeState()
	state.Status = model.ConversationCompleted

	if _, err := uc.Advance(context.Background(), elicitation.AdvanceInput{Text: "hello", State: state}); err != elicitation.ErrConversationCompleted {
		t.Errorf("err = %v, want ErrConversationCompleted", err)
	}
}
