package signal

import (
	"strings"

	"assistant-srv/pkg/locale"
)

// Detectors runs the keyword-based frustration and confirmation classifiers.
// The zero value is not usable; construct with New.
type Detectors struct {
	kw Keywords
}

// New creates Detectors over the given keyword tables.
func New(kw Keywords) Detectors {
	return Detectors{kw: kw}
}

// IsFrustrated reports whether the text signals the user believes the
// assistant misunderstood them. All language tables are scanned because users
// mix languages freely.
func (d Detectors) IsFrustrated(text string) bool {
	return matchAny(d.kw.Frustration, text)
}

// IsConfirmation reports whether the text signals acceptance ("post it now").
func (d Detectors) IsConfirmation(text string) bool {
	return matchAny(d.kw.Confirmation, text)
}

func matchAny(tables map[string][]string, text string) bool {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return false
	}
	tokens := strings.Fields(normalized)

	for lang, keywords := range tables {
		unsegmented := lang == locale.TH || lang == locale.JA
		for _, kw := range keywords {
			if matches(normalized, tokens, kw, unsegmented) {
				return true
			}
		}
	}
	return false
}

// matches applies substring matching for multi-word phrases and for languages
// written without word separators; single words must match a whole token so
// that short keywords like "có" or "ok" do not fire inside larger words.
func matches(normalized string, tokens []string, keyword string, unsegmented bool) bool {
	if unsegmented || strings.Contains(keyword, " ") {
		return strings.Contains(normalized, keyword)
	}
	for _, tok := range tokens {
		if strings.Trim(tok, ".,!?…") == keyword {
			return true
		}
	}
	return false
}
