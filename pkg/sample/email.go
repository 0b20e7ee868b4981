package sample

import "strings"

// ValidateEmail checks that email contains "@" and that the part after the
// last "@" contains a "."
func ValidateEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}
