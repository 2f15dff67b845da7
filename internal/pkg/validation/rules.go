// Package validation holds the field-level rules shared by services.
package validation

import (
	"regexp"
	"strings"
	"unicode"
)

// Field patterns
const (
	// StudentIDPattern matches a 9-digit registration number whose
	// first four digits are an intake year between 2015 and 2022.
	StudentIDPattern = `^(201[5-9]|202[0-2])\d{5}$`

	// PhonePattern matches an optional leading plus, a 7, then six to
	// fourteen further digits.
	PhonePattern = `^\+?7\d{6,14}$`

	// EmailPattern is a pragmatic address check, not a full RFC parse.
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`
)

var (
	studentIDRegex = regexp.MustCompile(StudentIDPattern)
	phoneRegex     = regexp.MustCompile(PhonePattern)
	emailRegex     = regexp.MustCompile(EmailPattern)
)

// IsValidStudentID reports whether s is a well-formed student registration number.
func IsValidStudentID(s string) bool {
	return studentIDRegex.MatchString(s)
}

// IsValidPhone reports whether s is a well-formed phone number.
func IsValidPhone(s string) bool {
	return phoneRegex.MatchString(s)
}

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// WordCount counts whitespace-separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// IsStrongPassword requires at least 8 characters with a letter and a digit.
func IsStrongPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}
