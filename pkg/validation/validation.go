package validation

import (
	"strings"
)

const (
	maxLatitude  = 90.0
	maxLongitude = 180.0
)

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// IsValidLatitude reports whether lat lies in [-90, 90]
func IsValidLatitude(lat float64) bool {
	return lat >= -maxLatitude && lat <= maxLatitude
}

// IsValidLongitude reports whether lon lies in [-180, 180]
func IsValidLongitude(lon float64) bool {
	return lon >= -maxLongitude && lon <= maxLongitude
}

// IsValidUnit accepts C or F in either case, with or without a degree sign
func IsValidUnit(unit string) bool {
	switch strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(unit), "°")) {
	case "C", "F":
		return true
	default:
		return false
	}
}
