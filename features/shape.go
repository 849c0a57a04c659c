package features

import (
	"strings"
	"unicode"
)

// Shape encodes every rune of w as one coarse character class. The first
// matching class wins; runes outside every class pass through unchanged, so
// the result always has the same rune length as the input.
func Shape(w string) string {
	var sb strings.Builder
	for _, r := range w {
		switch {
		case unicode.IsUpper(r):
			sb.WriteByte('U')
		case unicode.IsLower(r):
			sb.WriteByte('L')
		case unicode.IsDigit(r):
			sb.WriteByte('D')
		case r == '.' || r == ',':
			sb.WriteByte('.')
		case r == ';' || r == ':' || r == '?' || r == '!':
			sb.WriteByte(';')
		case strings.ContainsRune("+-*/=|_", r):
			sb.WriteByte('-')
		case strings.ContainsRune("([{<", r):
			sb.WriteByte('(')
		case strings.ContainsRune(")]}>", r):
			sb.WriteByte(')')
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Degenerate collapses runs of the same rune to a single occurrence.
// Idempotent: degenerating twice equals degenerating once.
func Degenerate(src string) string {
	var sb strings.Builder
	var prev rune
	first := true
	for _, r := range src {
		if first || r != prev {
			sb.WriteRune(r)
		}
		prev = r
		first = false
	}
	return sb.String()
}
