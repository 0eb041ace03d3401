// =============================================================================
// goAML Report Validator - Wire Value Coercion
// =============================================================================
//
// Lenient coercion helpers for scalar wire values. Reports in the wild carry
// timestamps with and without a time portion, stray whitespace, and free text
// in numeric fields; coercion failures mean "no value", never a fault.
//
// =============================================================================

package report

import (
	"strconv"
	"strings"
	"time"
)

const (
	layoutDateTime = "2006-01-02T15:04:05"
	layoutDate     = "2006-01-02"
)

// Present reports whether a scalar wire value carries content after trimming.
func Present(s string) bool {
	return strings.TrimSpace(s) != ""
}

// ParseDate coerces a wire timestamp to a UTC calendar date. Fractional
// seconds are dropped, then a date-and-time layout and a date-only layout are
// tried in turn. The second return is false when neither layout matches.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	for _, layout := range []string{layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// NumericValue coerces a wire value to a float. The second return is false
// when the value is absent or not numeric.
func NumericValue(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
