package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"assistant-srv/internal/model"
	"assistant-srv/pkg/gemini"
)

const extractSystemPrompt = `You extract structured property-search requirements from a user query.
Respond with ONLY a JSON object, no prose, with these keys (omit keys the user
did not mention):
  "property_type": string, e.g. "apartment", "house", "land"
  "bedrooms": integer
  "location": string, the district or area as the user stated it
  "price_min": number
  "price_max": number
  "special_requirements": array of strings, free-text wishes that do not fit the keys above`

// extraction is the typed outcome of one extractor call. FailedFields names
// keys the model emitted but that did not decode into the expected type, so a
// half-broken payload still yields whatever parsed cleanly.
type extraction struct {
	Requirement  model.Requirement
	FailedFields []string
}

// extractRequirement turns the free-text query into a Requirement. Any failure
// degrades to an empty requirement; the turn never fails here.
func (uc *implUseCase) extractRequirement(ctx context.Context, query string, history []model.Turn) extraction {
	var b strings.Builder
	if len(history) > 0 {
		b.WriteString("Conversation so far:\n")
		for _, t := range history {
			fmt.Fprintf(&b, "%s: %s\n", t.Role, t.Content)
		}
	}
	fmt.Fprintf(&b, "Query: %s", query)

	out, err := uc.gemini.Generate(ctx, gemini.GenerateInput{
		System:      extractSystemPrompt,
		Messages:    []gemini.Message{{Role: "user", Content: b.String()}},
		Temperature: 0,
	})
	if err != nil {
		uc.l.Warnf(ctx, "resolution.extractRequirement: generate: %v", err)
		return extraction{}
	}

	ext, err := decodeRequirement(out)
	if err != nil {
		uc.l.Warnf(ctx, "resolution.extractRequirement: decode: %v", err)
		return extraction{}
	}
	if len(ext.FailedFields) > 0 {
		uc.l.Warnf(ctx, "resolution.extractRequirement: fields failed to parse: %v", ext.FailedFields)
	}
	return ext
}

// decodeRequirement strictly decodes the model output field by field, so one
// mistyped value does not discard the rest.
func decodeRequirement(raw string) (extraction, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &fields); err != nil {
		return extraction{}, err
	}

	var ext extraction
	for key, val := range fields {
		ok := true
		switch key {
		case "property_type":
			ok = decodeField(val, &ext.Requirement.PropertyType)
		case "bedrooms":
			ok = decodeField(val, &ext.Requirement.Bedrooms)
		case "location":
			ok = decodeField(val, &ext.Requirement.Location)
		case "price_min":
			ok = decodeField(val, &ext.Requirement.PriceMin)
		case "price_max":
			ok = decodeField(val, &ext.Requirement.PriceMax)
		case "special_requirements":
			ok = json.Unmarshal(val, &ext.Requirement.SpecialRequirements) == nil
		default:
			// Unknown keys are ignored, not errors.
			continue
		}
		if !ok {
			ext.FailedFields = append(ext.FailedFields, key)
		}
	}
	return ext, nil
}

func decodeField[T any](raw json.RawMessage, dst **T) bool {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	*dst = &v
	return true
}

// stripCodeFence removes a surrounding markdown fence the model sometimes adds.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
