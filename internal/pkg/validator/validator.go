package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsValidCoordinate checks latitude/longitude ranges. Zero-zero is
// rejected: it is the null island placeholder devices report before a
// first fix.
func IsValidCoordinate(lat, lon float64) bool {
	if lat == 0 && lon == 0 {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// IsValidWireDate checks DD-MM-YYYY.
func IsValidWireDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("02-01-2006", dateStr)
	return date, err == nil
}

var wireTimeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d:[0-5]\d$`)

// IsValidWireTime checks HH:MM:SS, 24-hour.
func IsValidWireTime(timeStr string) bool {
	return wireTimeRegex.MatchString(timeStr)
}
