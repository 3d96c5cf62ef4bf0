package compose

import (
	"context"
	"strings"
	"testing"

	"assistant-srv/internal/model"
	"assistant-srv/pkg/gemini"
	"assistant-srv/pkg/locale"
	"assistant-srv/pkg/log"
)

type stubGemini struct {
	out string
	err error
}

func (s stubGemini) Generate(ctx context.Context, input gemini.GenerateInput) (string, error) {
	return s.out, s.err
}

func newTestComposer(g gemini.IGemini) Composer {
	return New(g, log.NewNopLogger())
}

func TestResultsFallsBackOnLLMFailure(t *testing.T) {
	c := newTestComposer(stubGemini{err: gemini.ErrCallFailed})

	got := c.Results(context.Background(), ResultsInput{
		Language:     locale.EN,
		Query:        "2 bedroom apartment district 7",
		QualityScore: 0.9,
		MatchCount:   3,
		Results: []model.SearchResultItem{
			{Title: "Sunrise City 2BR", Location: "District 7, HCMC"},
		},
	})

	if !strings.Contains(got, "3 listings") {
		t.Errorf("expected match count in fallback, got %q", got)
	}
	if !strings.Contains(got, "Sunrise City 2BR") {
		t.Errorf("expected listing title in fallback, got %q", got)
	}
}

func TestClarificationNamesMissingCriteria(t *testing.T) {
	c := newTestComposer(stubGemini{err: gemini.ErrCallFailed})

	got := c.Clarification(context.Background(), ClarificationInput{
		Language:        locale.EN,
		TotalFound:      8,
		MatchCount:      1,
		MissingCriteria: []string{"district", "bedrooms"},
	})

	if !strings.Contains(got, "district, bedrooms") {
		t.Errorf("expected unmet criteria listed, got %q", got)
	}
	if !strings.Contains(got, "only 1") {
		t.Errorf("expected honest match count, got %q", got)
	}
}

func TestQuestionsFrustratedListsCollected(t *testing.T) {
	c := newTestComposer(stubGemini{err: gemini.ErrCallFailed})

	got := c.Questions(context.Background(), QuestionsInput{
		Language:   locale.VI,
		Frustrated: true,
		Collected: []model.FieldValue{
			{Name: "loại hình", Value: "căn hộ"},
			{Name: "khu vực", Value: "quận 2"},
		},
		Questions: []model.NextQuestion{
			{Field: "price", Prompt: "Giá bạn muốn đăng là bao nhiêu?"},
		},
	})

	if !strings.Contains(got, "Xin lỗi") {
		t.Errorf("expected acknowledgment, got %q", got)
	}
	if !strings.Contains(got, "căn hộ") || !strings.Contains(got, "quận 2") {
		t.Errorf("expected collected fields enumerated, got %q", got)
	}
	if !strings.Contains(got, "Giá bạn muốn đăng") {
		t.Errorf("expected the question prompt, got %q", got)
	}
}

func TestReAskFrustratedListsCollected(t *testing.T) {
	c := newTestComposer(stubGemini{err: gemini.ErrCallFailed})

	got := c.ReAskConfirmation(context.Background(), ReAskInput{
		Language:   locale.EN,
		Frustrated: true,
		Collected: []model.FieldValue{
			{Name: "district", Value: "district 2"},
			{Name: "property type", Value: "apartment"},
		},
	})

	if !strings.Contains(got, "Sorry") {
		t.Errorf("expected acknowledgment, got %q", got)
	}
	if !strings.Contains(got, "district 2") || !strings.Contains(got, "apartment") {
		t.Errorf("expected collected fields enumerated, got %q", got)
	}
	if !strings.Contains(got, "post the listing now") {
		t.Errorf("expected the confirmation question, got %q", got)
	}
}

func TestCompletedAlwaysCarriesReferenceID(t *testing.T) {
	tests := []struct {
		name string
		stub stubGemini
	}{
		{"llm down", stubGemini{err: gemini.ErrCallFailed}},
		{"llm drops the id", stubGemini{out: "Done, your listing is live!"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestComposer(tt.stub)
			got := c.Completed(context.Background(), CompletedInput{
				Language:    locale.EN,
				ReferenceID: "LST-2024-4821",
			})
			if !strings.Contains(got, "LST-2024-4821") {
				t.Errorf("reply must contain the reference ID, got %q", got)
			}
		})
	}
}

func TestLLMOutputUsedWhenAvailable(t *testing.T) {
	c := newTestComposer(stubGemini{out: "Here are three great matches for you."})

	got := c.Results(context.Background(), ResultsInput{Language: locale.EN, MatchCount: 3})
	if got != "Here are three great matches for you." {
		t.Errorf("expected LLM output passed through, got %q", got)
	}
}

func TestTemplatesCoverAllLanguages(t *testing.T) {
	c := newTestComposer(stubGemini{err: gemini.ErrCallFailed})

	for _, lang := range []string{locale.VI, locale.EN, locale.TH, locale.JA} {
		if c.Failure(context.Background(), lang) == "" {
			t.Errorf("failure template empty for %s", lang)
		}
		if c.ReAskConfirmation(context.Background(), ReAskInput{Language: lang}) == "" {
			t.Errorf("re-ask template empty for %s", lang)
		}
		if c.Chat(context.Background(), ChatInput{Language: lang}) == "" {
			t.Errorf("chat fallback empty for %s", lang)
		}
	}
}

func TestUnknownLanguageFallsBackToDefault(t *testing.T) {
	c := newTestComposer(stubGemini{err: gemini.ErrCallFailed})

	got := c.Failure(context.Background(), "de")
	want := c.Failure(context.Background(), locale.DefaultLang)
	if got != want {
		t.Errorf("unknown language should use default locale template, got %q", got)
	}
}
