package trcase

import "testing"

func TestLower(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		r    rune
		want rune
	}{
		{"ascii I to dotless", 'I', 'ı'},
		{"dotted İ to i", 'İ', 'i'},
		{"lowercase a", 'A', 'a'},
		{"already lowercase", 'b', 'b'},
		{"Ş to ş", 'Ş', 'ş'},
		{"Ğ to ğ", 'Ğ', 'ğ'},
		{"digit unchanged", '3', '3'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Lower(tt.r); got != tt.want {
				t.Errorf("Lower(%q) = %q, want %q", tt.r, got, tt.want)
			}
		})
	}
}

func TestUpper(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		r    rune
		want rune
	}{
		{"i to dotted İ", 'i', 'İ'},
		{"dotless ı to I", 'ı', 'I'},
		{"lowercase a", 'a', 'A'},
		{"already upper", 'B', 'B'},
		{"ç to Ç", 'ç', 'Ç'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Upper(tt.r); got != tt.want {
				t.Errorf("Upper(%q) = %q, want %q", tt.r, got, tt.want)
			}
		})
	}
}

func TestToLower(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"turkic I", "KITAP", "kıtap"},
		{"dotted İ", "İstanbul", "istanbul"},
		{"mixed", "Ankara'da", "ankara'da"},
		{"empty", "", ""},
		{"already lower", "kitap", "kitap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ToLower(tt.input); got != tt.want {
				t.Errorf("ToLower(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLowerFirst(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"Kitap", "kitap"},
		{"Işık", "ışık"},
		{"İnce", "ince"},
		{"ABD", "aBD"},
		{"", ""},
		{"3'te", "3'te"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := LowerFirst(tt.input); got != tt.want {
				t.Errorf("LowerFirst(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestUpperPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input     string
		wantFirst bool
		wantAll   bool
	}{
		{"Ali", true, false},
		{"ABD", true, true},
		{"TBMM'ye", true, true},
		{"kitap", false, false},
		{"", false, false},
		{"123", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := IsUpperFirst(tt.input); got != tt.wantFirst {
				t.Errorf("IsUpperFirst(%q) = %v, want %v", tt.input, got, tt.wantFirst)
			}
			if got := IsAllUpper(tt.input); got != tt.wantAll {
				t.Errorf("IsAllUpper(%q) = %v, want %v", tt.input, got, tt.wantAll)
			}
		})
	}
}

func BenchmarkToLower_MixedCase(b *testing.B) {
	s := "Kitaplarımızdan"
	for b.Loop() {
		ToLower(s)
	}
}
