package tracker

import (
	"strconv"
	"strings"
)

// cellStripper removes the decorations stat cells carry ("+12",
// "1,234", "75%") before numeric parsing.
var cellStripper = strings.NewReplacer("+", "", ",", "", "%", "")

// intOr parses s as a base-10 integer after stripping decorations.
// Parse failures resolve to fallback, never to an error.
func intOr(s string, fallback int) int {
	n, err := strconv.Atoi(cellStripper.Replace(strings.TrimSpace(s)))
	if err != nil {
		return fallback
	}
	return n
}

// floatOr parses s as a float after stripping decorations, with the
// same default-on-failure behavior as intOr.
func floatOr(s string, fallback float64) float64 {
	f, err := strconv.ParseFloat(cellStripper.Replace(strings.TrimSpace(s)), 64)
	if err != nil {
		return fallback
	}
	return f
}

// textOr passes the trimmed cell text through verbatim, substituting
// fallback when the cell is absent or empty.
func textOr(s, fallback string) string {
	if trimmed := strings.TrimSpace(s); trimmed != "" {
		return trimmed
	}
	return fallback
}

// leadingInt parses the leading digit run of s ("13", "13 rounds").
// Anything without a leading digit resolves to 0.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
