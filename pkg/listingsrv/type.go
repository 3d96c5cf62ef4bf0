package listingsrv

import pkghttp "assistant-srv/pkg/http"

// ListingConfig holds configuration for the listing service client.
type ListingConfig struct {
	BaseURL    string
	HTTPClient pkghttp.IClient
}

// ExtractInput is one attribute extraction request.
type ExtractInput struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

// Fields is the wire shape of extracted listing attributes. Pointers keep
// "absent" distinguishable from explicit zero values.
type Fields struct {
	PropertyType *string  `json:"property_type,omitempty"`
	Location     *string  `json:"location,omitempty"`
	District     *string  `json:"district,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	AreaSqm      *float64 `json:"area_sqm,omitempty"`
	Bedrooms     *int     `json:"bedrooms,omitempty"`
	Bathrooms    *int     `json:"bathrooms,omitempty"`
	Direction    *string  `json:"direction,omitempty"`
	LegalStatus  *string  `json:"legal_status,omitempty"`
	Description  *string  `json:"description,omitempty"`
	ContactPhone *string  `json:"contact_phone,omitempty"`
}

// ExtractOutput is the extraction response.
type ExtractOutput struct {
	Fields              Fields   `json:"fields"`
	SpecialRequirements []string `json:"special_requirements,omitempty"`
}

// AssessInput is one completeness scoring request.
type AssessInput struct {
	Fields Fields `json:"fields"`
}

// NextQuestion is one follow-up suggested by the completeness service.
type NextQuestion struct {
	Field  string `json:"field"`
	Prompt string `json:"prompt"`
}

// Assessment is the completeness service verdict.
type Assessment struct {
	OverallScore     int            `json:"overall_score"`
	ReadyToPost      bool           `json:"ready_to_post"`
	NextQuestions    []NextQuestion `json:"next_questions"`
	CollectedSummary []string       `json:"collected_summary"`
}

// PostInput finalizes a listing.
type PostInput struct {
	UserID         string `json:"user_id"`
	ConversationID string `json:"conversation_id"`
	ListingType    string `json:"listing_type"` // "sale" | "rent"
	Fields         Fields `json:"fields"`
}

// PostOutput is the posting response.
type PostOutput struct {
	ReferenceID string `json:"reference_id"`
}

// listingImpl implements IListing.
type listingImpl struct {
	baseURL    string
	httpClient pkghttp.IClient
}
