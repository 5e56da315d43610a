// Text-to-number parsing for Indonesian cardinal text.
package terbilang

import (
	"fmt"
	"math"
	"strings"

	"github.com/az-ai-labs/id-lang-nlp/internal/idcase"
)

// digitValues maps each atomic Indonesian number word to its value.
var digitValues = func() map[string]int64 {
	m := make(map[string]int64, len(ones))
	for i, w := range ones {
		m[w] = int64(i)
	}
	return m
}()

// scaleValues maps magnitude words to their multiplier.
// "milyar" is a common variant spelling of "miliar".
var scaleValues = map[string]int64{
	wordThousand: 1_000,
	"juta":       1_000_000,
	"miliar":     1_000_000_000,
	"milyar":     1_000_000_000,
	"triliun":    1_000_000_000_000,
}

// Positions inside a three-digit group, from most to least significant.
// Each word may only move the position forward.
const (
	posDone = iota
	posOnes
	posTens
	posHundreds
)

// parse converts Indonesian cardinal number text to int64.
func parse(s string) (int64, error) {
	tokens := strings.Fields(idcase.ToLower(s))
	if len(tokens) == 0 {
		return 0, fmt.Errorf("terbilang: empty input")
	}

	sign := int64(1)
	if tokens[0] == wordNegative {
		sign = -1
		tokens = tokens[1:]
		if len(tokens) == 0 {
			return 0, fmt.Errorf("terbilang: empty input after %q", wordNegative)
		}
	}

	// Handle lone "nol" before entering the general loop.
	if len(tokens) == 1 && tokens[0] == wordZero {
		return 0, nil
	}

	var (
		total int64 // sum of fully resolved magnitude groups
		group int64 // 0–999 accumulator for the group under construction
		unit  int64 // pending atomic word (1–11) not yet placed in group
		pos   = posHundreds
		prev  = int64(math.MaxInt64) // last magnitude used; must strictly decrease
	)

	scale := func(g, mag int64, tok string) error {
		if g == 0 {
			return fmt.Errorf("terbilang: %q without a count", tok)
		}
		if mag >= prev {
			return fmt.Errorf("terbilang: %q out of order", tok)
		}
		total += g * mag
		prev = mag
		group, unit, pos = 0, 0, posHundreds
		return nil
	}

	for _, tok := range tokens {
		if val, ok := digitValues[tok]; ok {
			switch {
			case val == 0:
				return 0, fmt.Errorf("terbilang: unexpected %q in compound", wordZero)
			case unit != 0 || pos == posDone:
				return 0, fmt.Errorf("terbilang: unexpected %q", tok)
			case pos == posOnes && val > 9:
				return 0, fmt.Errorf("terbilang: unexpected %q after %q", tok, wordTen)
			}
			unit = val
			continue
		}

		if mag, ok := scaleValues[tok]; ok {
			if err := scale(group+unit, mag, tok); err != nil {
				return 0, err
			}
			continue
		}

		switch tok {
		case wordTeen:
			if unit < 1 || unit > 9 || pos < posTens {
				return 0, fmt.Errorf("terbilang: misplaced %q", tok)
			}
			group += unit + 10
			unit, pos = 0, posDone
		case wordTen:
			if unit < 1 || unit > 9 || pos < posTens {
				return 0, fmt.Errorf("terbilang: misplaced %q", tok)
			}
			group += unit * 10
			unit, pos = 0, posOnes
		case wordHundred:
			if unit < 1 || unit > 9 || pos != posHundreds {
				return 0, fmt.Errorf("terbilang: misplaced %q", tok)
			}
			group = unit * 100
			unit, pos = 0, posTens
		case wordOneHundred:
			if unit != 0 || pos != posHundreds {
				return 0, fmt.Errorf("terbilang: misplaced %q", tok)
			}
			group = 100
			pos = posTens
		case wordOneThousand:
			if unit != 0 || pos != posHundreds {
				return 0, fmt.Errorf("terbilang: misplaced %q", tok)
			}
			if err := scale(1, 1_000, tok); err != nil {
				return 0, err
			}
		default:
			return 0, fmt.Errorf("terbilang: unknown word %q", tok)
		}
	}

	// Magnitudes strictly decrease and each group is below 1000, so the
	// result stays below 10^15 and cannot overflow.
	return sign * (total + group + unit), nil
}
