// Word tables for Indonesian number-to-text conversion.
package terbilang

const (
	// limit is the first magnitude without a word form (10^15).
	// Integers at or above it are written as plain numerals.
	limit uint64 = 1_000_000_000_000_000

	// maxFractionNumber is the longest fractional digit run that NumberMode
	// reads as a single number; longer runs fall back to digit reading.
	maxFractionNumber = 15

	wordZero        = "nol"
	wordNegative    = "minus"
	wordComma       = "koma"
	wordTeen        = "belas"
	wordTen         = "puluh"
	wordHundred     = "ratus"
	wordThousand    = "ribu"
	wordOneHundred  = "seratus"
	wordOneThousand = "seribu"
)

// ones holds the atomic words for 0–11. Ten and eleven are irregular
// ("sepuluh", "sebelas") and are never composed from smaller words.
var ones = [12]string{
	"nol",
	"satu",
	"dua",
	"tiga",
	"empat",
	"lima",
	"enam",
	"tujuh",
	"delapan",
	"sembilan",
	"sepuluh",
	"sebelas",
}

type magnitude struct {
	value uint64
	word  string
}

// magnitudes lists named powers of ten from largest to smallest.
// ribu (1000) is handled separately because of the irregular "seribu".
var magnitudes = []magnitude{
	{value: 1_000_000_000_000, word: "triliun"},
	{value: 1_000_000_000, word: "miliar"},
	{value: 1_000_000, word: "juta"},
}
