package utils

import "strings"

// NormalizeEmail applies the one normalization policy used everywhere a
// caller-supplied email enters the system: trim whitespace, lowercase.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
