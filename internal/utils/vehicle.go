package utils

import (
	"regexp"
	"strings"
)

var (
	plateRegex = regexp.MustCompile(`^[A-Z]{2}\d{2}[A-Z]{2}\d{4}$`)
	pinRegex   = regexp.MustCompile(`^\d{6}$`)
	phoneRegex = regexp.MustCompile(`^\d{10}$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// NormalizePlate uppercases a vehicle registration number and strips spaces
// and dashes, so "mh 11-ca 5305" and "MH11CA5305" identify the same vehicle.
func NormalizePlate(value string) string {
	value = strings.ReplaceAll(value, " ", "")
	value = strings.ReplaceAll(value, "-", "")
	return strings.ToUpper(value)
}

// IsValidPlate reports whether a normalized plate matches the Indian
// registration format, e.g. MH11CA5305.
func IsValidPlate(plate string) bool {
	return plateRegex.MatchString(plate)
}

// IsValidPIN reports whether a postal PIN code is six digits.
func IsValidPIN(pin string) bool {
	return pinRegex.MatchString(pin)
}

// IsValidPhone reports whether a phone number is ten digits.
func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// IsValidEmail performs a light shape check; the server is the final
// arbiter of deliverability.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidPassword requires at least 8 characters with an uppercase letter,
// a lowercase letter, a digit and one of @$!%*?&, drawn only from those
// classes.
func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune("@$!%*?&", r):
			hasSpecial = true
		default:
			return false
		}
	}
	return hasUpper && hasLower && hasDigit && hasSpecial
}
