package locale

const (
	// VI is Vietnamese.
	VI = "vi"
	// EN is English.
	EN = "en"
	// TH is Thai.
	TH = "th"
	// JA is Japanese.
	JA = "ja"
)

// LangList contains all supported language codes.
var LangList = []string{VI, EN, TH, JA}

// DefaultLang is the default language when no valid locale is provided.
var DefaultLang = VI
