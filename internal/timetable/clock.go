package timetable

import (
	"regexp"
	"strings"

	"github.com/SergeyKozhin/student-planner-backend/internal/calendar"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// timeExpr matches a clock token such as "9", "09:30", "9:00 AM", "9 p.m."
// or "9:00 ص". It is embedded into the line patterns.
const timeExpr = `\d{1,2}(?::\d{2})?(?:\s*(?:[AaPp]\.?[Mm]\.?|صباحاً|صباحا|صباح|مساءً|مساء|ص|م))?`

var clockPartsRX = regexp.MustCompile(`^(\d{1,2}(?::\d{2})?)\s*(.*)$`)

var meridiems = map[string]string{
	"am":     "AM",
	"pm":     "PM",
	"ص":      "AM",
	"صباح":   "AM",
	"صباحا":  "AM",
	"صباحاً": "AM",
	"م":      "PM",
	"مساء":   "PM",
	"مساءً":  "PM",
}

// NormalizeTime converts a clock token into 24-hour HH:MM. Tokens that do
// not describe a valid clock are returned trimmed but otherwise unchanged.
func NormalizeTime(raw string) string {
	trimmed := strings.TrimSpace(raw)

	m := clockPartsRX.FindStringSubmatch(foldDigits(trimmed))
	if m == nil {
		return trimmed
	}

	clock := m[1]
	if suffix := strings.ReplaceAll(strings.ToLower(m[2]), ".", ""); suffix != "" {
		mer, ok := meridiems[suffix]
		if !ok {
			return trimmed
		}
		clock += " " + mer
	}

	if canonical, ok := calendar.CanonicalClock(clock); ok {
		return canonical
	}

	return trimmed
}

// foldDigits rewrites Arabic-Indic and Persian digits as ASCII digits.
func foldDigits(s string) string {
	t := runes.Map(func(r rune) rune {
		switch {
		case r >= '٠' && r <= '٩':
			return '0' + (r - '٠')
		case r >= '۰' && r <= '۹':
			return '0' + (r - '۰')
		}
		return r
	})

	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
