package terbilang

import "github.com/az-ai-labs/id-lang-nlp/internal/idcase"

// Style controls the casing of the final text.
type Style int

const (
	// StyleSentence lowercases the text and capitalizes its first letter:
	// "Seribu lima puluh tujuh". It is the default.
	StyleSentence Style = iota

	// StyleLower lowercases the whole text: "seribu lima puluh tujuh".
	StyleLower

	// StyleUpper uppercases the whole text: "SERIBU LIMA PULUH TUJUH".
	StyleUpper

	// StyleTitle capitalizes every word: "Seribu Lima Puluh Tujuh".
	StyleTitle
)

var styleNames = [...]string{
	StyleSentence: "sentence",
	StyleLower:    "lower",
	StyleUpper:    "upper",
	StyleTitle:    "title",
}

// String returns the lowercase name of s. Unknown values report "sentence",
// matching how they are applied.
func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return styleNames[StyleSentence]
	}
	return styleNames[s]
}

// ParseStyle returns the Style named by name, ignoring case and surrounding
// space. "capitalize" is accepted as an alias for title.
// Unknown names return StyleSentence.
func ParseStyle(name string) Style {
	switch normalizeName(name) {
	case "lower":
		return StyleLower
	case "upper":
		return StyleUpper
	case "title", "capitalize":
		return StyleTitle
	default:
		return StyleSentence
	}
}

// ApplyStyle returns phrase with style applied.
// Unknown styles behave like StyleSentence. An empty phrase is returned as is.
func ApplyStyle(phrase string, style Style) string {
	if phrase == "" {
		return phrase
	}
	switch style {
	case StyleLower:
		return idcase.ToLower(phrase)
	case StyleUpper:
		return idcase.ToUpper(phrase)
	case StyleTitle:
		return idcase.ToTitle(phrase)
	default:
		return idcase.ToSentence(phrase)
	}
}
