package signal

import "assistant-srv/pkg/locale"

// Keywords holds the per-language keyword tables the detectors run on.
// Constructed once at startup and passed by reference; never mutated after.
type Keywords struct {
	Frustration  map[string][]string
	Confirmation map[string][]string
}

// DefaultKeywords returns the built-in keyword tables for all supported languages.
func DefaultKeywords() Keywords {
	return Keywords{
		Frustration: map[string][]string{
			locale.VI: {
				"sai rồi", "không phải vậy", "không đúng", "hiểu sai",
				"nói lại", "bực quá", "sao khó vậy", "không hiểu gì hết",
			},
			locale.EN: {
				"that's wrong", "thats wrong", "not what i meant", "not what i said",
				"you don't understand", "you dont understand", "incorrect",
				"this is frustrating", "stop repeating",
			},
			locale.TH: {
				"ผิด", "ไม่ใช่", "ไม่เข้าใจ", "พูดใหม่",
			},
			locale.JA: {
				"違う", "違います", "間違い", "そうじゃない", "わかってない",
			},
		},
		Confirmation: map[string][]string{
			locale.VI: {
				"có", "đồng ý", "ok", "oke", "được", "đăng luôn", "đăng đi", "xác nhận",
			},
			locale.EN: {
				"yes", "yeah", "yep", "ok", "okay", "sure", "confirm", "post it", "go ahead",
			},
			locale.TH: {
				"ใช่", "ตกลง", "โอเค", "ยืนยัน", "ลงประกาศเลย",
			},
			locale.JA: {
				"はい", "お願いします", "いいです", "確認しました", "投稿して",
			},
		},
	}
}
