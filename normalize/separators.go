package normalize

import "strings"

// Separators resolves decimal and thousands separators in s.
//
// The rightmost '.' or ',' is the decimal separator and is rewritten to '.'.
// Every other '.' or ',' is a thousands separator and is dropped.
// A string without separators is returned unchanged.
//
//	"1.234.567,89" -> "1234567.89"
//	"1,234,567.89" -> "1234567.89"
//	"12,5"         -> "12.5"
//	"1.234.567"    -> "1234.567"
func Separators(s string) string {
	last := strings.LastIndexAny(s, ".,")
	if last == -1 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case i == last:
			b.WriteByte('.')
		case c == '.' || c == ',':
			// thousands separator
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
