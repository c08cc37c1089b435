package utils

import (
	"errors"
	"strings"
	"time"
)

// DisplayLayout is how appointment dates are shown back to callers.
const DisplayLayout = "2006-01-02 15:04:05"

var ErrInvalidDate = errors.New("invalid ISO 8601 date")

var isoLayouts = buildIsoLayouts()

// Extended (2006-01-02T15:04:05) and basic (20060102T150405) forms.
func buildIsoLayouts() []string {
	zones := []string{"", "-07:00", "-0700", "-07"}
	forms := []struct {
		date   string
		clocks []string
	}{
		{"2006-01-02", []string{"15:04:05", "15:04", "15"}},
		{"20060102", []string{"150405", "1504", "15"}},
	}

	var layouts []string
	for _, form := range forms {
		layouts = append(layouts, form.date)
		for _, sep := range []string{"T", " "} {
			for _, clock := range form.clocks {
				for _, zone := range zones {
					layouts = append(layouts, form.date+sep+clock+zone)
				}
			}
		}
	}
	return layouts
}

// ParseIso8601 parses an ISO 8601 date or date-time. A trailing "Z" is
// treated as "+00:00". Values without an offset are returned in UTC as given.
// Fractional seconds are accepted after the seconds field. Years start at 1.
func ParseIso8601(value string) (time.Time, error) {
	if strings.HasSuffix(value, "Z") {
		value = strings.TrimSuffix(value, "Z") + "+00:00"
	}
	if !hasTwoDigitHour(value) {
		return time.Time{}, ErrInvalidDate
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			if t.Year() < 1 {
				return time.Time{}, ErrInvalidDate
			}
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// time.Parse reads "15" as one or two digits; ISO 8601 wants two.
func hasTwoDigitHour(value string) bool {
	i := strings.IndexAny(value, "T ")
	if i < 0 {
		return true
	}
	clock := value[i+1:]
	return len(clock) >= 2 && isDigit(clock[0]) && isDigit(clock[1])
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// FormatDisplay renders t on its own wall clock as YYYY-MM-DD HH:MM:SS.
func FormatDisplay(t time.Time) string {
	return t.Format(DisplayLayout)
}
