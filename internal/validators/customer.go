package validators

import (
	"strings"
	"unicode"
)

const (
	MaxNameLen  = 100
	MaxPhoneLen = 20
)

// NormalizeName trims and collapses inner whitespace.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

func IsNameValid(name string) bool {
	n := NormalizeName(name)
	return n != "" && len([]rune(n)) <= MaxNameLen
}

// NormalizePhone drops spaces, dashes, dots and parentheses, keeping a leading '+'.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(phone) {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func IsPhoneValid(phone string) bool {
	p := NormalizePhone(phone)
	digits := strings.TrimPrefix(p, "+")
	if len(digits) < 6 || len(p) > MaxPhoneLen {
		return false
	}
	// reject input that had letters in it
	for _, r := range phone {
		if unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
