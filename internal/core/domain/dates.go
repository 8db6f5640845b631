package domain

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// yearPattern finds the first signed year-like number in a date label.
	yearPattern = regexp.MustCompile(`-?\d{1,4}`)

	// bcPattern matches a standalone BC era marker.
	bcPattern = regexp.MustCompile(`\bBC\b`)
)

// ParseYear extracts a calendar year from a free-form date label.
// Handles plain years ("1739"), negative years ("-375"), era suffixes
// ("375 BC", "50 BCE", "1200 CE"), approximations ("c. 1650"), decades
// ("1740s"), and ranges ("1739-1740", "1739–1745") by taking the first
// year. Returns false when no year can be recognised.
func ParseYear(date string) (int, bool) {
	s := strings.TrimSpace(date)
	if s == "" {
		return 0, false
	}

	// Era suffixes flip or confirm the sign.
	upper := strings.ToUpper(s)
	bce := strings.Contains(upper, "BCE") || bcPattern.MatchString(upper)

	match := yearPattern.FindString(s)
	if match == "" {
		return 0, false
	}

	year, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}

	if bce && year > 0 {
		year = -year
	}

	return year, true
}
