package dto

import (
	"regexp"
	"strings"
	"unicode"
)

// passwordRuleMessage is returned whenever the password shape check fails.
const passwordRuleMessage = "Invalid Password. Should contain 8-20 characters, 1 Upper Case, 1 Lower Case, 1 digit, 1 Special Character"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validEmail reports whether s looks like an email address.
func validEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// validPassword checks length 8-20 with at least one upper case, one lower
// case, one digit and one special character. Go's regexp has no lookahead,
// so the classes are checked with a single pass instead.
func validPassword(s string) bool {
	if len(s) < 8 || len(s) > 20 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune("!@#$%^&*()-_=+[]{};:'\",.<>/?\\|`~", r):
			special = true
		}
	}
	return upper && lower && digit && special
}
