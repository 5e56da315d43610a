// Package terbilang spells numbers out in Indonesian.
//
// The package converts integers, floats, decimals and numeric strings into
// their written form ("terbilang"):
//
//   - Terbilang accepts any supported input and never fails; invalid input
//     yields an empty string.
//   - Strict is the same conversion, reporting why input was rejected.
//   - Convert spells an int64 in lowercase.
//   - Words spells an already normalized number.
//   - Parse turns Indonesian cardinal text back into an integer.
//
// Integers use the magnitude words ribu, juta, miliar and triliun, with the
// irregular forms sepuluh, sebelas, seratus and seribu. One million is
// "satu juta", not "sejuta". Fractions are introduced by "koma" and read
// digit by digit unless NumberMode is selected.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Integer parts of 10^15 and above are written as numerals
//     ("1000000000000000"), since Indonesian has no common word beyond triliun.
//   - String input follows the separator policy of normalize.Separators;
//     "1,234" reads as a decimal.
//   - Parse handles cardinal words only; numerals and fractions are rejected.
package terbilang

import "github.com/az-ai-labs/id-lang-nlp/normalize"

// DecimalMode controls how fractional digits are read.
type DecimalMode int

const (
	// DigitMode reads fractional digits individually:
	// "tiga koma satu empat" (3.14). It is the default.
	DigitMode DecimalMode = iota

	// NumberMode reads fractional digits as a number, keeping leading
	// zeros as "nol": "tiga koma empat belas" (3.14),
	// "tiga koma nol lima" (3.05).
	NumberMode
)

// String returns "digit" or "number". Unknown values report "digit".
func (m DecimalMode) String() string {
	if m == NumberMode {
		return "number"
	}
	return "digit"
}

// ParseDecimalMode returns the mode named by name ("digit" or "number"),
// ignoring case. Unknown names return DigitMode.
func ParseDecimalMode(name string) DecimalMode {
	if normalizeName(name) == "number" {
		return NumberMode
	}
	return DigitMode
}

// Options configures a conversion. The zero value selects StyleSentence
// and DigitMode.
type Options struct {
	Style   Style
	Decimal DecimalMode
}

// Terbilang returns the Indonesian text for input.
//
// Supported inputs are nil, all integer and float types, string,
// decimal.Decimal, *decimal.Decimal and json.Number. Nil, empty,
// unparseable, infinite and NaN input, as well as unsupported types, return
// an empty string.
func Terbilang(input any, opts Options) string {
	s, _ := Strict(input, opts)
	return s
}

// Strict is like Terbilang but returns an error instead of an empty string.
// Errors wrap normalize.ErrEmpty, normalize.ErrInvalid,
// normalize.ErrNotFinite or ErrUnsupported and can be tested with errors.Is.
func Strict(input any, opts Options) (string, error) {
	n, err := number(input)
	if err != nil {
		return "", err
	}
	return Words(n, opts), nil
}

// Convert returns the lowercase Indonesian text for n.
// Zero returns "nol". Negative numbers are prefixed with "minus".
func Convert(n int64) string {
	return words(normalize.Int(n), DigitMode)
}

// Words returns the Indonesian text for an already normalized number with
// opts applied.
func Words(n normalize.Number, opts Options) string {
	return ApplyStyle(words(n, opts.Decimal), opts.Style)
}

// Parse converts Indonesian cardinal number text to an integer.
// Input is whitespace-normalized and case-insensitive.
// Accepts both irregular ("seratus", "seribu") and explicit ("satu ratus",
// "satu ribu") forms.
//
// Returns an error for empty, unparseable, or out-of-range input.
func Parse(s string) (int64, error) {
	return parse(s)
}
