package validation

import (
	"strconv"
	"strings"
	"unicode"
)

const maxCityNameLength = 100

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// IsValidCityName accepts any non-blank name up to 100 runes without control characters.
// The name itself is not normalized: cache identity depends on the exact spelling.
func IsValidCityName(city string) bool {
	if !IsNotEmpty(city) {
		return false
	}
	if len([]rune(city)) > maxCityNameLength {
		return false
	}
	for _, r := range city {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// IsValidLatitude reports whether lat is within [-90, 90]
func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

// IsValidLongitude reports whether lon is within [-180, 180]
func IsValidLongitude(lon float64) bool {
	return lon >= -180 && lon <= 180
}

// ParseCoordinates parses a latitude/longitude pair and checks both ranges
func ParseCoordinates(latRaw, lonRaw string) (float64, float64, bool) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(latRaw), 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonRaw), 64)
	if err != nil {
		return 0, 0, false
	}
	if !IsValidLatitude(lat) || !IsValidLongitude(lon) {
		return 0, 0, false
	}
	return lat, lon, true
}
