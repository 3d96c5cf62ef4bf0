package model

import (
	"fmt"
	"strconv"
)

// ListingFields is the bag of structured fields accumulated across a posting
// flow. Pointers distinguish "missing" from explicit zero values.
type ListingFields struct {
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

// Merge overlays set fields from other onto f. Latest wins on contradiction.
// Returns the number of fields taken from other.
func (f *ListingFields) Merge(other ListingFields) int {
	merged := 0
	if other.PropertyType != nil {
		f.PropertyType = other.PropertyType
		merged++
	}
	if other.Location != nil {
		f.Location = other.Location
		merged++
	}
	if other.District != nil {
		f.District = other.District
		merged++
	}
	if other.Price != nil {
		f.Price = other.Price
		merged++
	}
	if other.AreaSqm != nil {
		f.AreaSqm = other.AreaSqm
		merged++
	}
	if other.Bedrooms != nil {
		f.Bedrooms = other.Bedrooms
		merged++
	}
	if other.Bathrooms != nil {
		f.Bathrooms = other.Bathrooms
		merged++
	}
	if other.Direction != nil {
		f.Direction = other.Direction
		merged++
	}
	if other.LegalStatus != nil {
		f.LegalStatus = other.LegalStatus
		merged++
	}
	if other.Description != nil {
		f.Description = other.Description
		merged++
	}
	if other.ContactPhone != nil {
		f.ContactPhone = other.ContactPhone
		merged++
	}
	return merged
}

// FieldValue is one collected field rendered for display.
type FieldValue struct {
	Name  string
	Value string
}

// Collected returns the set fields as name/value pairs in a stable order,
// used when the assistant needs to show the user what it has understood.
func (f ListingFields) Collected() []FieldValue {
	var out []FieldValue
	if f.PropertyType != nil {
		out = append(out, FieldValue{"property_type", *f.PropertyType})
	}
	if f.Location != nil {
		out = append(out, FieldValue{"location", *f.Location})
	}
	if f.District != nil {
		out = append(out, FieldValue{"district", *f.District})
	}
	if f.Price != nil {
		out = append(out, FieldValue{"price", strconv.FormatFloat(*f.Price, 'f', -1, 64)})
	}
	if f.AreaSqm != nil {
		out = append(out, FieldValue{"area_sqm", fmt.Sprintf("%.0f m2", *f.AreaSqm)})
	}
	if f.Bedrooms != nil {
		out = append(out, FieldValue{"bedrooms", strconv.Itoa(*f.Bedrooms)})
	}
	if f.Bathrooms != nil {
		out = append(out, FieldValue{"bathrooms", strconv.Itoa(*f.Bathrooms)})
	}
	if f.Direction != nil {
		out = append(out, FieldValue{"direction", *f.Direction})
	}
	if f.LegalStatus != nil {
		out = append(out, FieldValue{"legal_status", *f.LegalStatus})
	}
	if f.Description != nil {
		out = append(out, FieldValue{"description", *f.Description})
	}
	if f.ContactPhone != nil {
		out = append(out, FieldValue{"contact_phone", *f.ContactPhone})
	}
	return out
}

// Count returns the number of set fields.
func (f ListingFields) Count() int {
	return len(f.Collected())
}

// NextQuestion is one follow-up question suggested by the completeness service.
type NextQuestion struct {
	Field  string `json:"field"`
	Prompt string `json:"prompt"`
}

// CompletenessAssessment is the completeness service verdict for the current
// accumulated fields.
type CompletenessAssessment struct {
	OverallScore     int            `json:"overall_score"` // 0..100
	ReadyToPost      bool           `json:"ready_to_post"`
	NextQuestions    []NextQuestion `json:"next_questions"`
	CollectedSummary []string       `json:"collected_summary"`
}
