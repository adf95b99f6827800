// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var phoneRegex = regexp.MustCompile(`^\+?\d{7,15}$`)

// ValidatePhone checks if a phone number looks dialable. Local Nigerian
// numbers with a leading 0 are accepted alongside international formats.
func ValidatePhone(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	return phoneRegex.MatchString(cleaned)
}

// FormatNigerianPhone normalizes a local number to the 234 country format
// expected by the SMS gateway (0805... -> 234805...).
func FormatNigerianPhone(phone string) string {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	cleaned = strings.TrimPrefix(cleaned, "+")
	if strings.HasPrefix(cleaned, "0") {
		return "234" + cleaned[1:]
	}
	if !strings.HasPrefix(cleaned, "234") {
		return "234" + cleaned
	}
	return cleaned
}
