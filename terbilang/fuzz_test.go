package terbilang

import (
	"strings"
	"testing"
)

// FuzzConvert verifies that Convert never panics for any int64 input.
func FuzzConvert(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(11))
	f.Add(int64(-1))
	f.Add(int64(1000))
	f.Add(int64(1_000_000))
	f.Add(int64(999_999_999_999_999))
	f.Add(int64(1_000_000_000_000_000))
	f.Add(int64(9223372036854775807))  // math.MaxInt64
	f.Add(int64(-9223372036854775808)) // math.MinInt64

	f.Fuzz(func(t *testing.T, n int64) {
		// Must not panic.
		_ = Convert(n)
	})
}

// FuzzRoundTrip verifies that Parse(Convert(n)) == n wherever n has a word form.
func FuzzRoundTrip(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(1))
	f.Add(int64(-1))
	f.Add(int64(115))
	f.Add(int64(1057))
	f.Add(int64(2300095))
	f.Add(int64(999_999_999_999_999))
	f.Add(int64(-999_999_999_999_999))

	f.Fuzz(func(t *testing.T, n int64) {
		if n >= 1_000_000_000_000_000 || n <= -1_000_000_000_000_000 {
			return // numeral fallback, no words to parse
		}
		text := Convert(n)
		got, err := Parse(text)
		if err != nil {
			t.Errorf("Parse(Convert(%d)) = %q, error: %v", n, text, err)
		}
		if got != n {
			t.Errorf("Parse(Convert(%d)) = %d, want %d (text: %q)", n, got, n, text)
		}
	})
}

// FuzzParse verifies that Parse never panics for any string input.
func FuzzParse(f *testing.F) {
	f.Add("")
	f.Add("nol")
	f.Add("seribu lima puluh tujuh")
	f.Add("minus sebelas")
	f.Add("hello world")
	f.Add("\xff\xfe")
	f.Add("belas belas")
	f.Add(string([]byte{0x00}))

	f.Fuzz(func(t *testing.T, s string) {
		// Must not panic.
		_, _ = Parse(s)
	})
}

// FuzzTerbilang verifies that string conversion never panics and never
// produces leading, trailing or doubled spaces.
func FuzzTerbilang(f *testing.F) {
	f.Add("")
	f.Add("305.07")
	f.Add("-0.5")
	f.Add("1.234.567,89")
	f.Add(" 1_000 ")
	f.Add("abc")
	f.Add("\xff\xfe")
	f.Add("999999999999999999999.000")

	f.Fuzz(func(t *testing.T, s string) {
		for _, opts := range []Options{{}, {Style: StyleTitle, Decimal: NumberMode}} {
			got := Terbilang(s, opts)
			if strings.HasPrefix(got, " ") || strings.HasSuffix(got, " ") || strings.Contains(got, "  ") {
				t.Errorf("Terbilang(%q, %+v) = %q has stray spaces", s, opts, got)
			}
		}
	})
}
