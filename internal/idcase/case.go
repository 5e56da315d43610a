// Package idcase provides Indonesian case conversion.
//
// Indonesian has no locale-specific case rules beyond standard Unicode
// mapping, but conversion still goes through golang.org/x/text/cases with the
// Indonesian tag so that the library never depends on the process locale.
//
// A cases.Caser is stateful, so every call builds its own.
//
// All functions are safe for concurrent use.
package idcase

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToLower returns s with Indonesian lowercasing applied to every rune.
func ToLower(s string) string {
	return cases.Lower(language.Indonesian).String(s)
}

// ToUpper returns s with Indonesian uppercasing applied to every rune.
func ToUpper(s string) string {
	return cases.Upper(language.Indonesian).String(s)
}

// ToSentence lowercases s and uppercases its first rune.
func ToSentence(s string) string {
	s = ToLower(s)
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return ToUpper(s[:size]) + s[size:]
}

// ToTitle lowercases s and uppercases the first rune of every
// space-separated token. Empty tokens from repeated spaces are kept.
func ToTitle(s string) string {
	words := strings.Split(ToLower(s), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		_, size := utf8.DecodeRuneInString(w)
		words[i] = ToUpper(w[:size]) + w[size:]
	}
	return strings.Join(words, " ")
}
