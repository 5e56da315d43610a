// Unexported conversion functions for Indonesian number-to-text conversion.
package terbilang

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/az-ai-labs/id-lang-nlp/normalize"
)

const growWords = 96 // estimated bytes for a full conversion

// limitDecimal mirrors limit for comparisons against normalize.Number.
var limitDecimal = decimal.NewFromInt(int64(limit))

// words assembles the lowercase phrase for n: optional "minus", the integer
// part, then the fractional part introduced by "koma".
func words(n normalize.Number, mode DecimalMode) string {
	var b strings.Builder
	b.Grow(growWords)

	if n.Negative {
		b.WriteString(wordNegative)
		b.WriteByte(' ')
	}

	if n.Integer.LessThan(limitDecimal) {
		writeWords(&b, uint64(n.Integer.IntPart()))
	} else {
		b.WriteString(n.Integer.String())
	}

	if n.Fraction != "" {
		b.WriteByte(' ')
		writeFraction(&b, n.Fraction, mode)
	}

	return b.String()
}

// writeWords writes n as Indonesian text into b.
// Callers must ensure n < limit.
func writeWords(b *strings.Builder, n uint64) {
	switch {
	case n < 12:
		b.WriteString(ones[n])
	case n < 20:
		writeWords(b, n-10)
		b.WriteByte(' ')
		b.WriteString(wordTeen)
	case n < 100:
		writeScaled(b, n, 10, wordTen)
	case n < 200:
		writeIrregular(b, n-100, wordOneHundred)
	case n < 1_000:
		writeScaled(b, n, 100, wordHundred)
	case n < 2_000:
		writeIrregular(b, n-1_000, wordOneThousand)
	case n < 1_000_000:
		writeScaled(b, n, 1_000, wordThousand)
	default:
		for _, mag := range magnitudes {
			if n >= mag.value {
				writeScaled(b, n, mag.value, mag.word)
				return
			}
		}
	}
}

// writeScaled writes "<n/unit> <word> [<n%unit>]".
func writeScaled(b *strings.Builder, n, unit uint64, word string) {
	writeWords(b, n/unit)
	b.WriteByte(' ')
	b.WriteString(word)
	if rest := n % unit; rest != 0 {
		b.WriteByte(' ')
		writeWords(b, rest)
	}
}

// writeIrregular writes a one-prefixed form ("seratus", "seribu") followed
// by the remainder, if any.
func writeIrregular(b *strings.Builder, rest uint64, word string) {
	b.WriteString(word)
	if rest != 0 {
		b.WriteByte(' ')
		writeWords(b, rest)
	}
}

// writeFraction writes "koma" followed by digits, which must be non-empty
// and contain only ASCII digits.
func writeFraction(b *strings.Builder, digits string, mode DecimalMode) {
	b.WriteString(wordComma)

	if mode == NumberMode {
		rest := strings.TrimLeft(digits, "0")
		for range len(digits) - len(rest) {
			b.WriteByte(' ')
			b.WriteString(wordZero)
		}
		if rest == "" {
			return
		}
		if len(rest) <= maxFractionNumber {
			if v, err := strconv.ParseUint(rest, 10, 64); err == nil {
				b.WriteByte(' ')
				writeWords(b, v)
				return
			}
		}
		digits = rest
	}

	for i := 0; i < len(digits); i++ {
		b.WriteByte(' ')
		b.WriteString(ones[digits[i]-'0'])
	}
}
