// Package normalize centralizes currency and date parsing so the validator
// and the router apply identical semantics to the same string values.
package normalize

import (
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// dateFormats is the ordered list of accepted incident-date layouts.
// The first layout that parses wins.
var dateFormats = []string{
	"01/02/2006", // month/day/year
	"02/01/2006", // day/month/year
	"2006-01-02", // ISO
	"02-01-2006", // day-month-year with hyphens
}

// currencyMarkers are stripped before numeric parsing, alongside thousands
// separators. Longer markers first so "Rs." goes before "Rs".
var currencyMarkers = []string{"₹", "Rs.", "Rs", "INR"}

// Amount parses a monetary string after removing thousands separators and
// currency markers. Handles Indian digit grouping ("1,85,000") the same as
// western grouping since all commas are stripped.
func Amount(s string) (float64, error) {
	cleaned := strings.ReplaceAll(s, ",", "")
	for _, marker := range currencyMarkers {
		cleaned = strings.ReplaceAll(cleaned, marker, "")
	}
	cleaned = strings.TrimSpace(cleaned)
	return strconv.ParseFloat(cleaned, 64)
}

// FormatAmount renders a monetary value with thousands separators and no
// decimal places, for reasoning and inconsistency messages.
func FormatAmount(v float64) string {
	return humanize.CommafWithDigits(v, 0)
}

// Date tries each accepted layout in order and returns the first parse that
// succeeds. The boolean reports whether any layout matched.
func Date(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
