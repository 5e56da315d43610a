package terbilang

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// goldenInputs mirrors the sample inputs used when the converter was first
// published, plus separator and fraction cases. Run with -update to
// regenerate testdata/golden/terbilang.golden.
var goldenInputs = []any{
	0,
	5,
	10,
	11,
	15,
	21,
	1057,
	1000000,
	1234567890,
	-42,
	"305.07",
	"1001",
	-42.05,
	"1.234.567,89",
	"0,05",
	999_999_999_999_999,
	"1000000000000000",
}

var goldenStyles = []Style{StyleSentence, StyleLower, StyleUpper, StyleTitle}

func TestGolden(t *testing.T) {
	var b strings.Builder
	for _, in := range goldenInputs {
		for _, style := range goldenStyles {
			fmt.Fprintf(&b, "%v\t%s\t%s\n", in, style, Terbilang(in, Options{Style: style}))
		}
		fmt.Fprintf(&b, "%v\tnumber\t%s\n", in, Terbilang(in, Options{Style: StyleLower, Decimal: NumberMode}))
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "terbilang", []byte(b.String()))
}
