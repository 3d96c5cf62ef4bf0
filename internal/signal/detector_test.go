package signal

import "testing"

func TestIsFrustrated(t *testing.T) {
	d := New(DefaultKeywords())

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"vietnamese positive", "sai rồi, tôi không muốn căn đó", true},
		{"english positive", "no, that's wrong", true},
		{"thai positive", "ผิด ไม่ใช่อันนี้", true},
		{"japanese positive", "違う、それじゃない", true},
		{"english neutral", "I want to sell a house", false},
		{"vietnamese neutral", "tôi muốn bán nhà ở quận 7", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.IsFrustrated(tt.text); got != tt.want {
				t.Errorf("IsFrustrated(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsConfirmation(t *testing.T) {
	d := New(DefaultKeywords())

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"vietnamese yes", "có", true},
		{"vietnamese post now", "đăng luôn đi", true},
		{"english yes", "yes", true},
		{"english go ahead", "ok go ahead", true},
		{"thai yes", "ใช่ ตกลง", true},
		{"japanese yes", "はい", true},
		{"short keyword inside word does not fire", "tôi cần cọc thêm", false},
		{"neutral data", "3 phòng ngủ, 2 toilet", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.IsConfirmation(tt.text); got != tt.want {
				t.Errorf("IsConfirmation(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
