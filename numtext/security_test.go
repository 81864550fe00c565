package numtext

import (
	"strings"
	"sync"
	"testing"
)

// TestConcurrentSafety verifies all functions are safe for concurrent use.
func TestConcurrentSafety(t *testing.T) {
	var wg sync.WaitGroup

	const goroutines = 100

	for range goroutines {
		wg.Go(func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("panic in concurrent call: %v", r)
				}
			}()

			Convert(123)
			Convert(-42)
			ConvertDigits("1.250,5")
			ConvertDigits("-3")
		})
	}

	wg.Wait()
}

// TestConvertDigitsLongInput verifies oversized inputs are rejected
// without panicking.
func TestConvertDigitsLongInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"many digits", strings.Repeat("9", 10_000)},
		{"many groups", "1" + strings.Repeat(".000", 1_000)},
		{"long fraction", "1," + strings.Repeat("7", 10_000)},
		{"long zero fraction", "1," + strings.Repeat("0", 10_000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("ConvertDigits panicked: %v", r)
				}
			}()
			_ = ConvertDigits(tt.input)
		})
	}
}
