package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var clockRX = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*([AaPp][Mm])?$`)

// ParseClockTime parses "HH:MM", "H:MM AM" or "9PM" into a 24-hour clock.
func ParseClockTime(s string) (hour, minute int, ok bool) {
	m := clockRX.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, false
	}

	hour, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	switch strings.ToUpper(m[3]) {
	case "AM":
		if hour < 1 || hour > 12 {
			return 0, 0, false
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return 0, 0, false
		}
		if hour != 12 {
			hour += 12
		}
	}

	if hour > 23 || minute > 59 {
		return 0, 0, false
	}

	return hour, minute, true
}

// ClockMinutes returns minutes since midnight for a clock string.
func ClockMinutes(s string) (int, bool) {
	h, m, ok := ParseClockTime(s)
	if !ok {
		return 0, false
	}
	return h*60 + m, true
}

func FormatClock24(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// FormatClock12 renders a clock for display, e.g. "9:05 AM".
func FormatClock12(hour, minute int) string {
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}

	display := hour % 12
	if display == 0 {
		display = 12
	}

	return fmt.Sprintf("%d:%02d %s", display, minute, period)
}

// CanonicalClock converts any accepted clock string into 24-hour HH:MM.
func CanonicalClock(s string) (string, bool) {
	h, m, ok := ParseClockTime(s)
	if !ok {
		return "", false
	}
	return FormatClock24(h, m), true
}
