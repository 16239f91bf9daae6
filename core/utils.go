package core

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Dates cross the store boundary as DD/MM/YYYY strings; times as HH:MM.
const (
	DateLayout = "02/01/2006"
	TimeLayout = "15:04"
)

var unaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// NormalizeString lowers `s` and strips diacritical marks so that
// "João" == "joao". All equality and substring comparisons on stored
// values go through this.
func NormalizeString(s string) string {
	s = CleanString(s, true)
	if folded, _, err := transform.String(unaccent, s); err == nil {
		return folded
	}
	return s
}

// ParseDate converts a DD/MM/YYYY string to a time.Time.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, CleanString(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// OneOf reports whether `s` matches one of the allowed options exactly.
func OneOf(s string, options []string) bool {
	for _, opt := range options {
		if s == opt {
			return true
		}
	}
	return false
}

// ParseClock converts an HH:MM string to minutes since midnight.
func ParseClock(s string) (int, bool) {
	t, err := time.Parse(TimeLayout, CleanString(s))
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
