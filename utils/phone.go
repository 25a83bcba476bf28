package utils

import (
	"regexp"
	"strings"
)

var nonDigit = regexp.MustCompile(`\D`)

// NormalizePhone strips every non-digit character from a phone number.
// Cache keys and session keys are always derived from this form.
func NormalizePhone(phone string) string {
	return nonDigit.ReplaceAllString(phone, "")
}

// FormatPhone returns the phone number in international form with a leading +.
func FormatPhone(phone string) string {
	digits := NormalizePhone(phone)
	if digits == "" {
		return ""
	}
	return "+" + digits
}

// MaskPhone hides the middle of a phone number for logging.
func MaskPhone(phone string) string {
	digits := NormalizePhone(phone)
	if len(digits) <= 6 {
		return strings.Repeat("*", len(digits))
	}
	return digits[:3] + strings.Repeat("*", len(digits)-6) + digits[len(digits)-3:]
}
