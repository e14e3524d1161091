package calendar

import (
	"fmt"
	"regexp"
	"time"

	"github.com/SergeyKozhin/student-planner-backend/internal/model"
)

const (
	DateFormat  = "2006-01-02"
	ClockFormat = "15:04"
)

var dateRX = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidDateString reports whether s has the YYYY-MM-DD shape.
func ValidDateString(s string) bool {
	return dateRX.MatchString(s)
}

// Midday pins t to 12:00 of its calendar day in its own location.
// Date arithmetic from midday never crosses a day boundary on DST changes.
func Midday(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, t.Location())
}

// ParseDate parses a YYYY-MM-DD string at midday in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if !ValidDateString(s) {
		return time.Time{}, fmt.Errorf("%q: %w", s, model.ErrInvalidDate)
	}

	t, err := time.ParseInLocation(DateFormat, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", s, model.ErrInvalidDate)
	}

	return Midday(t), nil
}

// WeekdayFromDate returns the weekday of the calendar day t falls on in its location.
func WeekdayFromDate(t time.Time) Weekday {
	return Weekday(Midday(t).Weekday())
}

// WeekdayFromDateString resolves a YYYY-MM-DD string to its weekday.
// The result does not depend on the process time zone.
func WeekdayFromDateString(s string) (Weekday, error) {
	t, err := ParseDate(s, time.UTC)
	if err != nil {
		return 0, err
	}

	return WeekdayFromDate(t), nil
}

// FormatDateOnly renders t as zero-padded YYYY-MM-DD.
func FormatDateOnly(t time.Time) string {
	return t.Format(DateFormat)
}

// DatesAreEqual compares calendar days, ignoring time of day.
func DatesAreEqual(a, b time.Time) bool {
	return FormatDateOnly(a) == FormatDateOnly(b)
}

// DateStringsAreEqual compares two date strings by calendar day.
// Strings that are not valid dates are compared verbatim.
func DateStringsAreEqual(a, b string) bool {
	ta, errA := ParseDate(a, time.UTC)
	tb, errB := ParseDate(b, time.UTC)
	if errA != nil || errB != nil {
		return a == b
	}

	return DatesAreEqual(ta, tb)
}

// AddDays moves t by n calendar days keeping its wall clock.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}
