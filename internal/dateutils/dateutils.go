// Package dateutils provides the calendar-day arithmetic used by the ledger.
// All day comparisons happen at day granularity in the location of the
// value being truncated.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO    = "2006-01-02"
	DateLayoutFull   = "2006-01-02 15:04:05"
	DateLayoutSearch = "20060102"
	DateLayoutDotted = "2006.01.02"
	DateLayoutUS     = "01/02/2006"
)

// CommonFormats is a list of standard formats to try when parsing dates
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutFull,
	time.RFC3339,
	DateLayoutDotted,
	DateLayoutSearch,
	"2006/01/02",
	DateLayoutUS,
}

var whitespace = regexp.MustCompile(`\s+`)

// ParseDate attempts to parse a date string using multiple common formats.
// Date-only values are interpreted in loc.
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	dateStr = CleanDateString(dateStr)
	for _, format := range CommonFormats {
		if t, err := time.ParseInLocation(format, dateStr, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// CleanDateString removes unwanted characters and normalizes a date string
func CleanDateString(dateStr string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// FormatSearchDate formats a date the way the bank feed expects (YYYYMMDD).
func FormatSearchDate(date time.Time) string {
	return date.Format(DateLayoutSearch)
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

// AddDays moves t by n calendar days, keeping the wall-clock time.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// StartOfWeek returns the Monday that starts t's week.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// StartOfMonth returns the first day of the month for a given date
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns the last day of the month for a given date
func EndOfMonth(date time.Time) time.Time {
	return StartOfMonth(date).AddDate(0, 1, -1)
}

// StartOfYear returns January 1st of t's year.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// IsWeekend checks if a date falls on a weekend (Saturday or Sunday)
func IsWeekend(date time.Time) bool {
	day := date.Weekday()
	return day == time.Saturday || day == time.Sunday
}

// CompareDates compares two dates at day granularity and returns -1, 0 or 1.
func CompareDates(date1, date2 time.Time) int {
	d1 := StartOfDay(date1)
	d2 := StartOfDay(date2.In(date1.Location()))
	switch {
	case d1.Before(d2):
		return -1
	case d1.After(d2):
		return 1
	default:
		return 0
	}
}

// InDayWindow reports whether t falls within the windowDays calendar days
// ending on today, inclusive.
func InDayWindow(t, today time.Time, windowDays int) bool {
	if windowDays <= 0 {
		return false
	}
	start := StartOfDay(today).AddDate(0, 0, -(windowDays - 1))
	return CompareDates(t, start) >= 0 && CompareDates(t, today) <= 0
}
