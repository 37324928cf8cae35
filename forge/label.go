package forge

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ToLabel turns a camelCase field key into a spaced, capitalized label:
// "cameraMovement" becomes "Camera Movement".
func ToLabel(key string) string {
	var b strings.Builder
	for i, r := range key {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return Capitalize(b.String())
}

// Capitalize upper-cases the first rune of s and leaves the rest unchanged.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
