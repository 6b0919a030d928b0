package boolalg

import "strings"

// ParseValue converts a textual token into a truth value. Matching is case-insensitive.
//
//	true:  1, t, true, y, yes
//	false: 0, f, false, n, no
//
// Any other token returns an [*InvalidBooleanError].
func ParseValue(token string) (bool, error) {
	switch strings.ToLower(token) {
	case "1", "t", "true", "y", "yes":
		return true, nil
	case "0", "f", "false", "n", "no":
		return false, nil
	}
	return false, &InvalidBooleanError{Token: token}
}

// FormatValue renders a truth value as "0" or "1".
func FormatValue(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
