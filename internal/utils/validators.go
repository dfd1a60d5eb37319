package utils

import "strings"

// IsValidEmail checks if the email string contains an "@" symbol and a dot.
func IsValidEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}
