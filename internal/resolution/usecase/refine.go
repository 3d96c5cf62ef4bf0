package usecase

import (
	"context"
	"fmt"
	"strings"

	"assistant-srv/internal/model"
	"assistant-srv/pkg/gemini"
)

const refineSystemPrompt = `You rewrite property-search queries to be more specific.
Given the original query, the structured requirements, and the criteria the
previous search failed to satisfy, produce ONE improved search query in the
same language as the original. Make vague wishes concrete (e.g. "near good
schools" becomes named school types or districts). Respond with only the query
text, nothing else.`

// refineQuery asks the LLM for a more specific query. On any failure the
// deterministic rewrite below is used so the loop always gets a second attempt.
func (uc *implUseCase) refineQuery(ctx context.Context, query string, req model.Requirement, ev model.EvaluationResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Original query: %s\n", query)
	b.WriteString("Requirements:\n")
	if req.PropertyType != nil {
		fmt.Fprintf(&b, "- property type: %s\n", *req.PropertyType)
	}
	if req.Bedrooms != nil {
		fmt.Fprintf(&b, "- bedrooms: %d\n", *req.Bedrooms)
	}
	if req.Location != nil {
		fmt.Fprintf(&b, "- location: %s\n", *req.Location)
	}
	if req.PriceMin != nil || req.PriceMax != nil {
		fmt.Fprintf(&b, "- price bounds set\n")
	}
	for _, sr := range req.SpecialRequirements {
		fmt.Fprintf(&b, "- special: %s\n", sr)
	}
	fmt.Fprintf(&b, "Unsatisfied criteria: %s\n", strings.Join(ev.MissingCriteria, ", "))

	out, err := uc.gemini.Generate(ctx, gemini.GenerateInput{
		System:      refineSystemPrompt,
		Messages:    []gemini.Message{{Role: "user", Content: b.String()}},
		Temperature: 0.3,
	})
	if err != nil {
		uc.l.Warnf(ctx, "resolution.refineQuery: generate: %v", err)
		return deterministicRefine(query, req)
	}
	refined := strings.TrimSpace(out)
	if refined == "" {
		return deterministicRefine(query, req)
	}
	return refined
}

// deterministicRefine restates the structured requirements explicitly so the
// second attempt is at least as constrained as the extraction.
func deterministicRefine(query string, req model.Requirement) string {
	parts := []string{query}
	if req.PropertyType != nil {
		parts = append(parts, *req.PropertyType)
	}
	if req.Bedrooms != nil {
		parts = append(parts, fmt.Sprintf("%d bedrooms", *req.Bedrooms))
	}
	if req.Location != nil {
		parts = append(parts, *req.Location)
	}
	return strings.Join(parts, " ")
}
