package util

import (
	"strings"
	"unicode"
)

func HasDigit(input string) bool {
	for _, r := range input {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

// LooksLikeCode reports whether input could be a product code: non-empty, at
// least minLen runes long and containing a digit.
func LooksLikeCode(input string, minLen int) bool {
	if input == "" || len([]rune(input)) < minLen {
		return false
	}
	return HasDigit(input)
}

func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func HasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// Initials returns the uppercased first rune of each whitespace-separated
// part of name.
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		r := []rune(part)[0]
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
