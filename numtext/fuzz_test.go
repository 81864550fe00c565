package numtext

import (
	"strconv"
	"testing"
)

// FuzzConvert verifies that Convert never panics for any int64 input.
func FuzzConvert(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(1))
	f.Add(int64(-1))
	f.Add(int64(1000))
	f.Add(int64(1_000_000_000_000_000_000))
	f.Add(int64(9223372036854775807))  // math.MaxInt64
	f.Add(int64(-9223372036854775808)) // math.MinInt64

	f.Fuzz(func(t *testing.T, n int64) {
		// Must not panic.
		_ = Convert(n)
	})
}

// FuzzConvertDigits verifies that ConvertDigits never panics and agrees
// with Convert on plain integers.
func FuzzConvertDigits(f *testing.F) {
	f.Add("")
	f.Add("3")
	f.Add("1.250")
	f.Add("-3,14")
	f.Add("3,")
	f.Add("\xff\xfe")
	f.Add("999999999999999999999")

	f.Fuzz(func(t *testing.T, s string) {
		got := ConvertDigits(s)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && s != "" && s[0] != '+' {
			if want := Convert(n); got != want {
				t.Errorf("ConvertDigits(%q) = %q, want %q", s, got, want)
			}
		}
	})
}
