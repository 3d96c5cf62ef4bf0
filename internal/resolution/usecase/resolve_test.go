package usecase

import (
	"context"
	"strings"
	"testing"

	"assistant-srv/internal/compose"
	"assistant-srv/internal/resolution"
	"assistant-srv/pkg/gemini"
	"assistant-srv/pkg/locale"
	"assistant-srv/pkg/log"
	"assistant-srv/pkg/searchsrv"
)

type stubGemini struct {
	out string
	err error
}

func (s stubGemini) Generate(ctx context.Context, input gemini.GenerateInput) (string, error) {
	return s.out, s.err
}

type stubSearch struct {
	results []searchsrv.Listing
	// resultsSeq, when set, is consumed one entry per call.
	resultsSeq [][]searchsrv.Listing
	err        error
	calls      int
}

func (s *stubSearch) Search(ctx context.Context, input searchsrv.SearchInput) ([]searchsrv.Listing, error) {
	s.calls++
	if len(s.resultsSeq) > 0 {
		r := s.resultsSeq[0]
		s.resultsSeq = s.resultsSeq[1:]
		return r, s.err
	}
	return s.results, s.err
}

// downComposer always uses template fallbacks, keeping replies deterministic.
func downComposer() compose.Composer {
	return compose.New(stubGemini{err: gemini.ErrCallFailed}, log.NewNopLogger())
}

func TestResolveSatisfiedFirstAttempt(t *testing.T) {
	search := &stubSearch{results: []searchsrv.Listing{
		{ID: "a", Title: "2BR Sunrise", District: "Quận 7", Bedrooms: 2},
		{ID: "b", Title: "2BR Riverside", District: "Quận 07", Bedrooms: 2},
	}}
	extractor := stubGemini{out: `{"bedrooms":2,"location":"quận 7"}`}
	uc := New(search, extractor, downComposer(), resolution.Config{}, log.NewNopLogger())

	out, err := uc.Resolve(context.Background(), resolution.ResolveInput{
		Language: locale.EN,
		Query:    "2 bedroom apartment in district 7",
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !out.Satisfied {
		t.Fatal("expected satisfied output")
	}
	if out.Attempts != 1 || search.calls != 1 {
		t.Errorf("attempts/calls = %d/%d, want 1/1", out.Attempts, search.calls)
	}
	if !strings.Contains(out.Reply, "2BR Sunrise") {
		t.Errorf("reply should present the results, got %q", out.Reply)
	}
}

func TestResolveRefinedSecondAttemptSucceeds(t *testing.T) {
	// First attempt misses the requirement, the refined second attempt hits.
	search := &stubSearch{resultsSeq: [][]searchsrv.Listing{
		{{ID: "a", Title: "1BR Quận 7", District: "Quận 7", Bedrooms: 1}},
		{{ID: "b", Title: "3BR Thảo Điền Quận 2", District: "Quận 2", Bedrooms: 3}},
	}}
	extractor := stubGemini{out: `{"bedrooms":3,"location":"quận 2"}`}
	uc := New(search, extractor, downComposer(), resolution.Config{}, log.NewNopLogger())

	out, err := uc.Resolve(context.Background(), resolution.ResolveInput{
		Language: locale.EN,
		Query:    "3 bedroom in district 2",
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !out.Satisfied {
		t.Fatal("refined attempt should satisfy")
	}
	if out.Attempts != 2 || search.calls != 2 {
		t.Errorf("attempts/calls = %d/%d, want 2/2", out.Attempts, search.calls)
	}
	if !strings.Contains(out.Reply, "3BR Thảo Điền Quận 2") {
		t.Errorf("reply should present the second attempt's results, got %q", out.Reply)
	}
}

func TestResolveNeverExceedsTwoSearchAttempts(t *testing.T) {
	search := &stubSearch{results: []searchsrv.Listing{
		{ID: "a", District: "Quận 7", Bedrooms: 1},
	}}
	extractor := stubGemini{out: `{"bedrooms":3,"location":"quận 2"}`}
	uc := New(search, extractor, downComposer(), resolution.Config{}, log.NewNopLogger())

	out, err := uc.Resolve(context.Background(), resolution.ResolveInput{
		Language: locale.EN,
		Query:    "3 bedroom in district 2",
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if search.calls != 2 {
		t.Errorf("search called %d times, want exactly 2", search.calls)
	}
	if out.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", out.Attempts)
	}
	if out.Satisfied {
		t.Error("unmatched results must not be satisfied")
	}
}

func TestResolveClarifiesInsteadOfReturningBadResults(t *testing.T) {
	// Scenario: every result misses district and bedrooms, and nothing
	// mentions the free-text wish. The reply must be a clarification naming
	// the unmet criteria, never a result list.
	search := &stubSearch{results: []searchsrv.Listing{
		{ID: "a", Title: "Căn hộ Quận 7", District: "Quận 7", Bedrooms: 2, PropertyType: "Căn hộ"},
		{ID: "b", Title: "Căn hộ Quận 9", District: "Quận 9", Bedrooms: 1, PropertyType: "Căn hộ"},
	}}
	extractor := stubGemini{out: `{"property_type":"căn hộ","bedrooms":3,"location":"quận 2","special_requirements":["gần trường quốc tế"]}`}
	uc := New(search, extractor, downComposer(), resolution.Config{}, log.NewNopLogger())

	out, err := uc.Resolve(context.Background(), resolution.ResolveInput{
		Language: locale.VI,
		Query:    "Tìm căn hộ 3 phòng ngủ ở quận 2 gần trường quốc tế",
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if out.Satisfied {
		t.Fatal("expected a clarification outcome")
	}
	for _, criterion := range []string{"district", "bedrooms", "gần trường quốc tế"} {
		if !strings.Contains(out.Reply, criterion) {
			t.Errorf("reply missing unmet criterion %q: %q", criterion, out.Reply)
		}
	}
	if strings.Contains(out.Reply, "Căn hộ Quận 7") {
		t.Errorf("reply must not list the rejected results, got %q", out.Reply)
	}
}

func TestResolveSearchFailureDegradesToClarification(t *testing.T) {
	search := &stubSearch{err: context.DeadlineExceeded}
	extractor := stubGemini{out: `{"bedrooms":2}`}
	uc := New(search, extractor, downComposer(), resolution.Config{}, log.NewNopLogger())

	out, err := uc.Resolve(context.Background(), resolution.ResolveInput{
		Language: locale.EN,
		Query:    "2 bedroom apartment",
	})
	if err != nil {
		t.Fatalf("Resolve must not fail the turn on a search error: %v", err)
	}
	if out.Satisfied || out.Reply == "" {
		t.Errorf("expected a non-empty clarification, got %+v", out)
	}
}

func TestResolveEmptyQuery(t *testing.T) {
	uc := New(&stubSearch{}, stubGemini{}, downComposer(), resolution.Config{}, log.NewNopLogger())

	if _, err := uc.Resolve(context.Background(), resolution.ResolveInput{Query: "  "}); err != resolution.ErrEmptyQuery {
		t.Errorf("err = %v, want ErrEmptyQuery", err)
	}
}

func TestResolveExtractionFailureStillSearches(t *testing.T) {
	search := &stubSearch{results: []searchsrv.Listing{{ID: "a", Title: "Nhà phố"}}}
	uc := New(search, stubGemini{err: gemini.ErrCallFailed}, downComposer(), resolution.Config{}, log.NewNopLogger())

	out, err := uc.Resolve(context.Background(), resolution.ResolveInput{
		Language: locale.VI,
		Query:    "nhà phố",
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	// No criteria to check, so any results satisfy.
	if !out.Satisfied {
		t.Error("empty requirement with results should be satisfied")
	}
}
