// Package parsing provides text normalization for the extraction pipeline.
package parsing

import (
	"strings"
	"unicode"
)

// Normalize prepares raw resume text for pattern extraction: characters
// outside the allowed set are replaced with spaces, runs of whitespace
// collapse to a single space, and the result is lowercased and trimmed.
// Normalize is total; it never fails, including on the empty string.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		if allowedRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	collapsed := strings.Join(strings.Fields(b.String()), " ")
	return strings.ToLower(collapsed)
}

// allowedRune reports whether a rune survives normalization: letters, digits,
// whitespace and the basic punctuation set . , ; : ! ? - ( ).
func allowedRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '.', ',', ';', ':', '!', '?', '-', '(', ')':
		return true
	}
	return false
}
