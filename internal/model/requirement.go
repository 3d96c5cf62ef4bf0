package model

// Requirement is the structured extraction of one search query. Immutable once
// produced; pointers distinguish "not mentioned" from explicit zero values.
type Requirement struct {
	PropertyType        *string  `json:"property_type,omitempty"`
	Bedrooms            *int     `json:"bedrooms,omitempty"`
	Location            *string  `json:"location,omitempty"`
	PriceMin            *float64 `json:"price_min,omitempty"`
	PriceMax            *float64 `json:"price_max,omitempty"`
	SpecialRequirements []string `json:"special_requirements,omitempty"`
}

// HasCriteria reports whether any checkable criterion is set.
func (r Requirement) HasCriteria() bool {
	return r.PropertyType != nil || r.Bedrooms != nil || r.Location != nil ||
		r.PriceMin != nil || r.PriceMax != nil || len(r.SpecialRequirements) > 0
}

// SearchResultItem is one candidate returned by the search gateway. Backend
// property schemas vary, so anything beyond the checked fields lives in
// Attributes.
type SearchResultItem struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Location     string         `json:"location"`
	District     string         `json:"district"`
	PropertyType string         `json:"property_type"`
	Bedrooms     int            `json:"bedrooms"`
	Price        float64        `json:"price"`
	Attributes   map[string]any `json:"attributes,omitempty"`
}

// EvaluationResult scores a result set against a requirement. Derived per loop
// iteration, never persisted.
type EvaluationResult struct {
	Satisfied       bool     `json:"satisfied"`
	MatchCount      int      `json:"match_count"`
	TotalCount      int      `json:"total_count"`
	MatchRate       float64  `json:"match_rate"` // 0..1
	MissingCriteria []string `json:"missing_criteria"`
	QualityScore    float64  `json:"quality_score"` // 0..1
}
