package trcase

import "testing"

func TestComposeNFC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already NFC", "kitap", "kitap"},
		{"empty", "", ""},
		{"o diaeresis lower", "o\u0308rnek", "\u00f6rnek"},
		{"c cedilla lower", "c\u0327ay", "\u00e7ay"},
		{"g breve lower", "dag\u0306", "da\u011f"},
		{"I dot above", "I\u0307stanbul", "\u0130stanbul"},
		{"a circumflex", "ka\u0302r", "k\u00e2r"},
		{"S cedilla upper", "S\u0327ehir", "\u015eehir"},
		{"unrelated combiner", "caf\u0301e", "caf\u0301e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ComposeNFC(tt.input); got != tt.want {
				t.Errorf("ComposeNFC(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
