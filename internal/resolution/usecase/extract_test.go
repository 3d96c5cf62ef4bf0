package usecase

import (
	"reflect"
	"testing"
)

func TestDecodeRequirement(t *testing.T) {
	raw := `{"property_type":"căn hộ","bedrooms":3,"location":"quận 2","special_requirements":["gần trường quốc tế"]}`

	ext, err := decodeRequirement(raw)
	if err != nil {
		t.Fatalf("decodeRequirement: %v", err)
	}
	if got := *ext.Requirement.PropertyType; got != "căn hộ" {
		t.Errorf("PropertyType = %q", got)
	}
	if got := *ext.Requirement.Bedrooms; got != 3 {
		t.Errorf("Bedrooms = %d", got)
	}
	if got := *ext.Requirement.Location; got != "quận 2" {
		t.Errorf("Location = %q", got)
	}
	if len(ext.FailedFields) != 0 {
		t.Errorf("FailedFields = %v, want none", ext.FailedFields)
	}
}

func TestDecodeRequirementCodeFenced(t *testing.T) {
	raw := "```json\n{\"bedrooms\":2}\n```"

	ext, err := decodeRequirement(raw)
	if err != nil {
		t.Fatalf("decodeRequirement: %v", err)
	}
	if ext.Requirement.Bedrooms == nil || *ext.Requirement.Bedrooms != 2 {
		t.Errorf("Bedrooms = %v, want 2", ext.Requirement.Bedrooms)
	}
}

func TestDecodeRequirementPartialFailure(t *testing.T) {
	// Mistyped bedrooms must not discard the fields that parsed.
	raw := `{"bedrooms":"three","location":"quận 7"}`

	ext, err := decodeRequirement(raw)
	if err != nil {
		t.Fatalf("decodeRequirement: %v", err)
	}
	if ext.Requirement.Bedrooms != nil {
		t.Error("mistyped bedrooms must stay unset")
	}
	if ext.Requirement.Location == nil || *ext.Requirement.Location != "quận 7" {
		t.Errorf("Location = %v, want quận 7", ext.Requirement.Location)
	}
	if !reflect.DeepEqual(ext.FailedFields, []string{"bedrooms"}) {
		t.Errorf("FailedFields = %v, want [bedrooms]", ext.FailedFields)
	}
}

func TestDecodeRequirementMalformed(t *testing.T) {
	if _, err := decodeRequirement("not json at all"); err == nil {
		t.Error("expected an error for unparseable output")
	}
}

func TestDecodeRequirementIgnoresUnknownKeys(t *testing.T) {
	ext, err := decodeRequirement(`{"bedrooms":1,"confidence":0.9}`)
	if err != nil {
		t.Fatalf("decodeRequirement: %v", err)
	}
	if len(ext.FailedFields) != 0 {
		t.Errorf("unknown keys must be ignored, got failures %v", ext.FailedFields)
	}
}
