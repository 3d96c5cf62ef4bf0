package usecase

import (
	"reflect"
	"testing"

	"assistant-srv/internal/model"
	"assistant-srv/internal/resolution"
)

func strPtr(s string) *string   { return &s }
func intPtr(n int) *int         { return &n }
func f64Ptr(f float64) *float64 { return &f }

func TestEvaluateDistrictDigitNormalization(t *testing.T) {
	req := model.Requirement{Location: strPtr("quận 2")}

	tests := []struct {
		name      string
		district  string
		wantMatch int
	}{
		{"same digit", "Quận 2", 1},
		{"leading zero", "Quận 02", 1},
		{"different digit", "Quận 7", 0},
		{"no digits skips the check", "Thủ Đức", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := []model.SearchResultItem{{ID: "a", District: tt.district}}
			ev := evaluate(req, results, resolution.DefaultSatisfiedThreshold)
			if ev.MatchCount != tt.wantMatch {
				t.Errorf("MatchCount = %d, want %d", ev.MatchCount, tt.wantMatch)
			}
		})
	}
}

func TestEvaluateRequirementWithoutDigitsSkipsDistrict(t *testing.T) {
	req := model.Requirement{Location: strPtr("Thảo Điền")}
	results := []model.SearchResultItem{{ID: "a", District: "Quận 2"}}

	ev := evaluate(req, results, resolution.DefaultSatisfiedThreshold)
	if ev.MatchCount != 1 {
		t.Errorf("MatchCount = %d, want 1 (criterion skipped, not failed)", ev.MatchCount)
	}
}

func TestEvaluateMatchRateAndThreshold(t *testing.T) {
	req := model.Requirement{Bedrooms: intPtr(3)}
	results := []model.SearchResultItem{
		{ID: "a", Bedrooms: 3},
		{ID: "b", Bedrooms: 3},
		{ID: "c", Bedrooms: 2},
		{ID: "d", Bedrooms: 3},
	}

	ev := evaluate(req, results, resolution.DefaultSatisfiedThreshold)
	if ev.MatchCount != 3 || ev.TotalCount != 4 {
		t.Fatalf("counts = %d/%d, want 3/4", ev.MatchCount, ev.TotalCount)
	}
	if ev.MatchRate != 0.75 || ev.QualityScore != 0.75 {
		t.Errorf("rate/score = %v/%v, want 0.75", ev.MatchRate, ev.QualityScore)
	}
	if !ev.Satisfied {
		t.Error("score 0.75 >= 0.6 must be satisfied")
	}
}

func TestEvaluateEmptyResults(t *testing.T) {
	req := model.Requirement{
		Location:            strPtr("quận 2"),
		Bedrooms:            intPtr(3),
		SpecialRequirements: []string{"gần trường quốc tế"},
	}

	ev := evaluate(req, nil, resolution.DefaultSatisfiedThreshold)
	if ev.Satisfied {
		t.Error("empty results must never satisfy")
	}
	if ev.MatchRate != 0 {
		t.Errorf("MatchRate = %v, want 0", ev.MatchRate)
	}
	want := []string{"district", "bedrooms", "gần trường quốc tế"}
	if !reflect.DeepEqual(ev.MissingCriteria, want) {
		t.Errorf("MissingCriteria = %v, want %v", ev.MissingCriteria, want)
	}
}

func TestEvaluatePropertyTypeCaseInsensitive(t *testing.T) {
	req := model.Requirement{PropertyType: strPtr("căn hộ")}
	results := []model.SearchResultItem{{ID: "a", PropertyType: "Căn Hộ chung cư"}}

	ev := evaluate(req, results, resolution.DefaultSatisfiedThreshold)
	if ev.MatchCount != 1 {
		t.Errorf("MatchCount = %d, want 1", ev.MatchCount)
	}
}

func TestEvaluatePriceBounds(t *testing.T) {
	req := model.Requirement{PriceMin: f64Ptr(2e9), PriceMax: f64Ptr(4e9)}
	results := []model.SearchResultItem{
		{ID: "in", Price: 3e9},
		{ID: "over", Price: 5e9},
		{ID: "unknown price skipped", Price: 0},
	}

	ev := evaluate(req, results, resolution.DefaultSatisfiedThreshold)
	if ev.MatchCount != 2 {
		t.Errorf("MatchCount = %d, want 2 (zero price skips the check)", ev.MatchCount)
	}
}

func TestEvaluateIsPureAndDeterministic(t *testing.T) {
	req := model.Requirement{
		Location:            strPtr("quận 2"),
		Bedrooms:            intPtr(3),
		PropertyType:        strPtr("căn hộ"),
		SpecialRequirements: []string{"gần trường quốc tế"},
	}
	results := []model.SearchResultItem{
		{ID: "a", District: "Quận 7", Bedrooms: 2, PropertyType: "Căn hộ"},
		{ID: "b", District: "Quận 02", Bedrooms: 3, PropertyType: "Nhà phố"},
	}

	first := evaluate(req, results, resolution.DefaultSatisfiedThreshold)
	second := evaluate(req, results, resolution.DefaultSatisfiedThreshold)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("evaluate is not deterministic: %+v vs %+v", first, second)
	}
}

func TestFirstInteger(t *testing.T) {
	tests := []struct {
		in    string
		want  int
		found bool
	}{
		{"quận 2", 2, true},
		{"Quận 02", 2, true},
		{"district 10, HCMC", 10, true},
		{"Thủ Đức", 0, false},
		{"เขต ๒", 0, false},
		{"เขต ๒ แขวง 4", 4, true},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, found := firstInteger(tt.in)
		if got != tt.want || found != tt.found {
			t.Errorf("firstInteger(%q) = (%d, %v), want (%d, %v)", tt.in, got, found, tt.want, tt.found)
		}
	}
}
