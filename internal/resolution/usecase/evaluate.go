package usecase

import (
	"fmt"
	"strings"

	"assistant-srv/internal/model"
)

// Criterion labels reported in EvaluationResult.MissingCriteria.
const (
	criterionDistrict     = "district"
	criterionBedrooms     = "bedrooms"
	criterionPropertyType = "property_type"
	criterionPrice        = "price"
)

// evaluate scores results against a requirement. Pure: no I/O, no LLM, same
// inputs always produce the same result.
func evaluate(req model.Requirement, results []model.SearchResultItem, threshold float64) model.EvaluationResult {
	ev := model.EvaluationResult{TotalCount: len(results)}

	if len(results) == 0 {
		ev.MissingCriteria = specifiedCriteria(req)
		return ev
	}

	// Pass counters per criterion; "considered" excludes results where the
	// check was skipped for lack of data.
	type tally struct{ passed, considered int }
	var district, bedrooms, propType, price tally

	for _, r := range results {
		matched := true

		if req.Location != nil {
			if ok, considered := districtMatches(*req.Location, r); considered {
				district.considered++
				if ok {
					district.passed++
				} else {
					matched = false
				}
			}
		}
		if req.Bedrooms != nil {
			bedrooms.considered++
			if r.Bedrooms == *req.Bedrooms {
				bedrooms.passed++
			} else {
				matched = false
			}
		}
		if req.PropertyType != nil {
			propType.considered++
			if propertyTypeMatches(*req.PropertyType, r.PropertyType) {
				propType.passed++
			} else {
				matched = false
			}
		}
		if (req.PriceMin != nil || req.PriceMax != nil) && r.Price > 0 {
			price.considered++
			if priceInBounds(req, r.Price) {
				price.passed++
			} else {
				matched = false
			}
		}

		if matched {
			ev.MatchCount++
		}
	}

	ev.MatchRate = float64(ev.MatchCount) / float64(ev.TotalCount)
	ev.QualityScore = ev.MatchRate
	ev.Satisfied = ev.QualityScore >= threshold

	failing := func(t tally) bool { return t.considered > 0 && t.passed*2 < t.considered }
	if failing(district) {
		ev.MissingCriteria = append(ev.MissingCriteria, criterionDistrict)
	}
	if failing(bedrooms) {
		ev.MissingCriteria = append(ev.MissingCriteria, criterionBedrooms)
	}
	if failing(propType) {
		ev.MissingCriteria = append(ev.MissingCriteria, criterionPropertyType)
	}
	if failing(price) {
		ev.MissingCriteria = append(ev.MissingCriteria, criterionPrice)
	}
	for _, sr := range req.SpecialRequirements {
		if !anyResultMentions(results, sr) {
			ev.MissingCriteria = append(ev.MissingCriteria, sr)
		}
	}

	return ev
}

// districtMatches compares the first integer substring of both sides, so
// "quận 2" and "Quận 02" agree. If either side has no digits the check is
// skipped rather than guessed; considered reports whether it counted.
func districtMatches(want string, r model.SearchResultItem) (ok, considered bool) {
	wantNum, found := firstInteger(want)
	if !found {
		return false, false
	}
	for _, got := range []string{r.District, r.Location} {
		if gotNum, found := firstInteger(got); found {
			return gotNum == wantNum, true
		}
	}
	return false, false
}

// firstInteger extracts the first run of ASCII digits as a number, dropping
// leading zeros via numeric parse. Non-ASCII numerals are skipped: parseDigits
// only understands '0'-'9', so admitting them would produce wrong values.
func firstInteger(s string) (int, bool) {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return parseDigits(s[start:i])
		}
	}
	if start >= 0 {
		return parseDigits(s[start:])
	}
	return 0, false
}

func parseDigits(s string) (int, bool) {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n, true
}

func propertyTypeMatches(want, got string) bool {
	w := strings.ToLower(strings.TrimSpace(want))
	g := strings.ToLower(strings.TrimSpace(got))
	if w == "" || g == "" {
		return false
	}
	return strings.Contains(g, w) || strings.Contains(w, g)
}

func priceInBounds(req model.Requirement, price float64) bool {
	if req.PriceMin != nil && price < *req.PriceMin {
		return false
	}
	if req.PriceMax != nil && price > *req.PriceMax {
		return false
	}
	return true
}

func anyResultMentions(results []model.SearchResultItem, want string) bool {
	w := strings.ToLower(want)
	for _, r := range results {
		if strings.Contains(strings.ToLower(r.Title), w) ||
			strings.Contains(strings.ToLower(r.Location), w) {
			return true
		}
		for k, v := range r.Attributes {
			if strings.Contains(strings.ToLower(k), w) ||
				strings.Contains(strings.ToLower(fmt.Sprint(v)), w) {
				return true
			}
		}
	}
	return false
}

// specifiedCriteria names every criterion the requirement actually sets. Used
// when the search returned nothing at all.
func specifiedCriteria(req model.Requirement) []string {
	var out []string
	if req.Location != nil {
		out = append(out, criterionDistrict)
	}
	if req.Bedrooms != nil {
		out = append(out, criterionBedrooms)
	}
	if req.PropertyType != nil {
		out = append(out, criterionPropertyType)
	}
	if req.PriceMin != nil || req.PriceMax != nil {
		out = append(out, criterionPrice)
	}
	out = append(out, req.SpecialRequirements...)
	return out
}
