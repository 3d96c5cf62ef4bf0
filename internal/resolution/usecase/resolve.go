package usecase

import (
	"context"
	"fmt"
	"strings"

	"assistant-srv/internal/compose"
	"assistant-srv/internal/model"
	"assistant-srv/internal/resolution"
	"assistant-srv/pkg/searchsrv"
)

// loopState enumerates the phases of the resolution loop.
type loopState int

const (
	stateReasoning loopState = iota
	stateActing
	stateEvaluating
	stateClarifying
	stateDone
)

// resolveRun carries the loop's working data across transitions.
type resolveRun struct {
	input   resolution.ResolveInput
	req     model.Requirement
	query   string
	results []model.SearchResultItem
	out     resolution.ResolveOutput
}

// Resolve runs the bounded reason-act-evaluate loop for one search turn.
func (uc *implUseCase) Resolve(ctx context.Context, input resolution.ResolveInput) (resolution.ResolveOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return resolution.ResolveOutput{}, resolution.ErrEmptyQuery
	}

	run := &resolveRun{input: input}
	for st := stateReasoning; st != stateDone; {
		st = uc.step(ctx, st, run)
	}
	return run.out, nil
}

// step is the transition function: it performs one state's work and returns
// the next state. Attempts are bounded by the evaluating transition, never by
// a counter inside the states themselves.
func (uc *implUseCase) step(ctx context.Context, st loopState, run *resolveRun) loopState {
	switch st {
	case stateReasoning:
		// Extract structured requirements. A failed extraction leaves an
		// empty requirement and the loop proceeds on the raw query.
		ext := uc.extractRequirement(ctx, run.input.Query, run.input.History)
		run.req = ext.Requirement
		run.query = enrichQuery(run.input.Query, run.req)
		return stateActing

	case stateActing:
		// Execute the search. A gateway failure counts as an empty result
		// set for this attempt, not a failed turn.
		run.out.Attempts++
		listings, err := uc.search.Search(ctx, searchsrv.SearchInput{Query: run.query})
		if err != nil {
			uc.l.Warnf(ctx, "resolution.Resolve: search attempt %d: %v", run.out.Attempts, err)
			listings = nil
		}
		run.results = toResultItems(listings)
		return stateEvaluating

	case stateEvaluating:
		// Pure scoring against the requirement. Satisfied exits with
		// results; otherwise refine and retry while attempts remain.
		ev := evaluate(run.req, run.results, uc.cfg.SatisfiedThreshold)
		run.out.Results = run.results
		run.out.Evaluation = ev

		uc.l.Debugf(ctx, "resolution.Resolve: attempt %d: %d/%d matched, quality %.2f",
			run.out.Attempts, ev.MatchCount, ev.TotalCount, ev.QualityScore)

		if ev.Satisfied {
			run.out.Satisfied = true
			run.out.Reply = uc.composer.Results(ctx, compose.ResultsInput{
				Language:     run.input.Language,
				Query:        run.input.Query,
				Results:      run.results,
				QualityScore: ev.QualityScore,
				MatchCount:   ev.MatchCount,
			})
			return stateDone
		}
		if run.out.Attempts < uc.cfg.MaxAttempts {
			run.query = uc.refineQuery(ctx, run.query, run.req, ev)
			return stateActing
		}
		return stateClarifying

	case stateClarifying:
		// Exhausted: never hand over a result set the evaluation rejected.
		run.out.Reply = uc.composer.Clarification(ctx, compose.ClarificationInput{
			Language:        run.input.Language,
			TotalFound:      run.out.Evaluation.TotalCount,
			MatchCount:      run.out.Evaluation.MatchCount,
			MissingCriteria: run.out.Evaluation.MissingCriteria,
		})
		return stateDone

	default:
		return stateDone
	}
}

// enrichQuery appends extracted context the raw query text does not carry, so
// details from earlier turns survive into the search call.
func enrichQuery(query string, req model.Requirement) string {
	parts := []string{query}
	lower := strings.ToLower(query)
	if req.Location != nil && !strings.Contains(lower, strings.ToLower(*req.Location)) {
		parts = append(parts, *req.Location)
	}
	if req.Bedrooms != nil {
		if _, found := firstInteger(query); !found {
			parts = append(parts, fmt.Sprintf("%d", *req.Bedrooms))
		}
	}
	return strings.Join(parts, " ")
}

func toResultItems(listings []searchsrv.Listing) []model.SearchResultItem {
	if len(listings) == 0 {
		return nil
	}
	items := make([]model.SearchResultItem, 0, len(listings))
	for _, l := range listings {
		items = append(items, model.SearchResultItem{
			ID:           l.ID,
			Title:        l.Title,
			Location:     l.Location,
			District:     l.District,
			PropertyType: l.PropertyType,
			Bedrooms:     l.Bedrooms,
			Price:        l.Price,
			Attributes:   l.Attributes,
		})
	}
	return items
}
