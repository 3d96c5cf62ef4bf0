package model

import "strings"

// Intent is the classified purpose of a user turn. Classification itself is an
// external service; this system only consumes the label.
type Intent string

const (
	IntentSearch        Intent = "SEARCH"
	IntentPostSale      Intent = "POST_SALE"
	IntentPostRent      Intent = "POST_RENT"
	IntentPriceAnalysis Intent = "PRICE_ANALYSIS"
	IntentChat          Intent = "CHAT"
	IntentUnknown       Intent = "UNKNOWN"
)

// ParseIntent maps a raw label to an Intent. Unrecognized labels become IntentUnknown.
func ParseIntent(label string) Intent {
	switch Intent(strings.ToUpper(strings.TrimSpace(label))) {
	case IntentSearch:
		return IntentSearch
	case IntentPostSale:
		return IntentPostSale
	case IntentPostRent:
		return IntentPostRent
	case IntentPriceAnalysis:
		return IntentPriceAnalysis
	case IntentChat:
		return IntentChat
	default:
		return IntentUnknown
	}
}

// IsPosting reports whether the intent starts or continues a listing-posting flow.
func (i Intent) IsPosting() bool {
	return i == IntentPostSale || i == IntentPostRent
}
