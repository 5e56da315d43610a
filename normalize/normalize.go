// Package normalize turns raw numeric input into a canonical decomposition
// used by the terbilang converter.
//
// A [Number] carries three parts:
//
//   - Negative: true only when the value is strictly below zero.
//   - Integer: the absolute integer part, always integral and non-negative.
//   - Fraction: the digits after the decimal separator, taken verbatim.
//
// Strings may use '.' or ',' as the decimal separator, with the other
// character (or the same one) as a thousands separator. The rightmost
// separator is always the decimal point; see [Separators].
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - "1,234" is read as one point two three four, never as one thousand
//     two hundred thirty-four. A lone separator is always decimal.
//   - Exponent notation ("1e5"), hex literals and non-ASCII digits are rejected.
package normalize

import (
	"errors"
	"math"
	"math/big"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// maxInputBytes is the maximum input size for String.
// Longer inputs are rejected with ErrInvalid.
const maxInputBytes = 1 << 12

var (
	// ErrEmpty is returned for input with no digits at all: "", "-", "+", " ".
	ErrEmpty = errors.New("normalize: empty input")

	// ErrInvalid is returned for input that is not a plain decimal number.
	ErrInvalid = errors.New("normalize: not a number")

	// ErrNotFinite is returned for NaN and infinite floats.
	ErrNotFinite = errors.New("normalize: not finite")
)

// Number is the canonical decomposition of a numeric value.
type Number struct {
	Negative bool
	Integer  decimal.Decimal
	Fraction string
}

// IsZero reports whether n has a zero integer part and an all-zero fraction.
func (n Number) IsZero() bool {
	return n.Integer.IsZero() && allZeros(n.Fraction)
}

// String returns n in plain decimal notation with '.' as the separator.
func (n Number) String() string {
	var b strings.Builder
	if n.Negative {
		b.WriteByte('-')
	}
	b.WriteString(n.Integer.String())
	if n.Fraction != "" {
		b.WriteByte('.')
		b.WriteString(n.Fraction)
	}
	return b.String()
}

// String parses a numeric string.
// Whitespace and underscores anywhere in s are ignored, separators are
// resolved with Separators, and the remainder must match
// [+-]digits[.digits] with at least one digit overall.
func String(s string) (Number, error) {
	if len(s) > maxInputBytes {
		return Number{}, ErrInvalid
	}

	s = strip(s)
	if s == "" {
		return Number{}, ErrEmpty
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	s = Separators(s)
	if s == "" || s == "." {
		return Number{}, ErrEmpty
	}

	whole, frac, _ := strings.Cut(s, ".")
	if (whole != "" && !allDigits(whole)) || (frac != "" && !allDigits(frac)) {
		return Number{}, ErrInvalid
	}

	whole = strings.TrimLeft(whole, "0")
	if whole == "" {
		whole = "0"
	}
	integer, err := decimal.NewFromString(whole)
	if err != nil {
		return Number{}, ErrInvalid
	}

	n := Number{Integer: integer, Fraction: frac}
	n.Negative = negative && !n.IsZero()
	return n, nil
}

// Float decomposes f using its shortest round-trip decimal form.
// Trailing zeros of the fraction are dropped; leading zeros are kept.
func Float(f float64) (Number, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Number{}, ErrNotFinite
	}

	d := decimal.NewFromFloat(math.Abs(f))
	n := Number{Integer: d.Truncate(0)}
	if _, frac, ok := strings.Cut(d.String(), "."); ok {
		n.Fraction = strings.TrimRight(frac, "0")
	}
	n.Negative = f < 0 && !n.IsZero()
	return n, nil
}

// Int decomposes n. math.MinInt64 is handled without overflow.
func Int(n int64) Number {
	return Number{
		Negative: n < 0,
		Integer:  decimal.NewFromInt(n).Abs(),
	}
}

// Uint decomposes n.
func Uint(n uint64) Number {
	return Number{Integer: decimal.NewFromBigInt(new(big.Int).SetUint64(n), 0)}
}

// Decimal decomposes d. The fraction keeps the digits of d's plain string
// form, which has no trailing zeros.
func Decimal(d decimal.Decimal) (Number, error) {
	return String(d.String())
}

// strip removes Unicode white space and underscores from s.
func strip(s string) string {
	if !strings.ContainsFunc(s, isFiller) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !isFiller(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isFiller(r rune) bool {
	return r == '_' || unicode.IsSpace(r)
}

// allDigits reports whether s consists entirely of ASCII digit characters.
// An empty string returns false.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// allZeros reports whether s consists entirely of '0' characters.
func allZeros(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}
