package calendarutil

import (
	"fmt"
	"regexp"
	"time"
)

var dateOnlyRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDate accepts either a plain "YYYY-MM-DD" date (normalized to midnight
// UTC) or an RFC3339 timestamp. An empty string returns the zero time with no
// error.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	if dateOnlyRe.MatchString(value) {
		t, err := time.Parse("2006-01-02", value)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q", value)
		}
		return t.UTC(), nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", value)
	}
	return t.UTC(), nil
}

// MondayStart returns the Monday 00:00:00 UTC beginning the week containing t.
// Sunday rolls back six days, every other weekday rolls back to the preceding
// Monday.
func MondayStart(t time.Time) time.Time {
	t = t.UTC()
	var diff int
	if t.Weekday() == time.Sunday {
		diff = -6
	} else {
		diff = 1 - int(t.Weekday())
	}
	d := t.AddDate(0, 0, diff)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// MonthStart returns the first of the month containing t, at 00:00 UTC.
func MonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// FormatYMD renders t as "YYYY-MM-DD" in UTC.
func FormatYMD(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
