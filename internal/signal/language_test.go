package signal

import (
	"testing"

	"assistant-srv/pkg/locale"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"vietnamese", "Tìm căn hộ 3 phòng ngủ ở quận 2 gần trường quốc tế", locale.VI},
		{"english", "I am looking for a two bedroom apartment in district 7", locale.EN},
		{"thai", "ต้องการคอนโดสองห้องนอน", locale.TH},
		{"japanese", "アパートを探しています", locale.JA},
		{"numbers only falls back to default", "3 2 100", locale.DefaultLang},
		{"empty falls back to default", "", locale.DefaultLang},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectLanguage(tt.text); got != tt.want {
				t.Errorf("DetectLanguage(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
