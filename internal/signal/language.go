package signal

import (
	"strings"
	"unicode"

	"assistant-srv/pkg/locale"
)

// vietnameseMarks are letters unique to Vietnamese orthography.
const vietnameseMarks = "ăâđêôơưàáảãạèéẻẽẹấầẩẫậắằẳẵặềếểễệìíỉĩịòóỏõọốồổỗộớờởỡợùúủũụứừửữựỳýỵỷỹ"

// DetectLanguage classifies the dominant language of a text by script and
// letter frequency. Mixed or ambiguous text falls back to the default locale.
func DetectLanguage(text string) string {
	var thai, kana, viet, latin int

	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.In(r, unicode.Thai):
			thai++
		case unicode.In(r, unicode.Hiragana, unicode.Katakana):
			kana++
		case strings.ContainsRune(vietnameseMarks, r):
			viet++
		case r >= 'a' && r <= 'z':
			latin++
		}
	}

	// Script-exclusive characters decide immediately.
	if thai > 0 && thai >= kana {
		return locale.TH
	}
	if kana > 0 {
		return locale.JA
	}
	if viet > 0 {
		return locale.VI
	}
	if latin > 0 {
		return locale.EN
	}
	return locale.DefaultLang
}
