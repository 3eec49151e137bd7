package chatbot

import (
	"strings"
	"unicode"
)

// Normalize lower-cases text and reduces it to words of letters and digits separated
// by single spaces. Every other rune, including combining marks, separates words.
func Normalize(text string) string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	return strings.Join(words, " ")
}
