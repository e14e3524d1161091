package timetable

import (
	"encoding/json"
	"strings"
	"unicode"

	"github.com/SergeyKozhin/student-planner-backend/internal/calendar"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DayToken is the weekday of a candidate. A token that did not resolve keeps
// its raw text so it can still be shown and corrected by the user.
type DayToken struct {
	Weekday    calendar.Weekday
	Raw        string
	Recognized bool
}

func Recognized(wd calendar.Weekday) DayToken {
	return DayToken{Weekday: wd, Raw: wd.String(), Recognized: true}
}

func Unrecognized(raw string) DayToken {
	return DayToken{Raw: raw}
}

// String returns the canonical English name or the raw token.
func (d DayToken) String() string {
	if d.Recognized {
		return d.Weekday.String()
	}
	return d.Raw
}

func (d DayToken) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DayToken) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	*d = NormalizeDay(s)
	return nil
}

var dayAliases = map[calendar.Weekday][]string{
	calendar.Sunday:    {"sunday", "sun", "الأحد", "أحد", "الاحد", "احد"},
	calendar.Monday:    {"monday", "mon", "الاثنين", "اثنين", "الإثنين", "إثنين", "الاتنين"},
	calendar.Tuesday:   {"tuesday", "tue", "tues", "الثلاثاء", "ثلاثاء", "الثلاثا", "ثلاثا"},
	calendar.Wednesday: {"wednesday", "wed", "الأربعاء", "أربعاء", "الاربعاء", "اربعاء", "الأربعا"},
	calendar.Thursday:  {"thursday", "thu", "thur", "thurs", "الخميس", "خميس"},
	calendar.Friday:    {"friday", "fri", "الجمعة", "جمعة", "الجمعه", "جمعه"},
	calendar.Saturday:  {"saturday", "sat", "السبت", "سبت"},
}

// dayTable maps folded tokens to weekdays. Numeric keys follow the
// Sunday-indexed day-of-week convention.
var dayTable = buildDayTable()

func buildDayTable() map[string]calendar.Weekday {
	table := make(map[string]calendar.Weekday)
	for wd, aliases := range dayAliases {
		for _, a := range aliases {
			table[foldToken(a)] = wd
		}
		table[string(rune('0'+int(wd)))] = wd
	}

	return table
}

const tatweel = 'ـ'

// foldToken lower-cases s and strips Arabic diacritics and tatweel. Hamza
// carrying alef forms decompose under NFD, so they fold to a bare alef.
func foldToken(s string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(func(r rune) bool { return r == tatweel })),
		norm.NFC,
	)

	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	return strings.ToLower(folded)
}

// NormalizeDay resolves a weekday token written in English or Arabic, full or
// abbreviated, or as a digit 0-6. Unknown tokens come back unrecognized with
// their trimmed text.
func NormalizeDay(raw string) DayToken {
	trimmed := strings.TrimSpace(raw)
	key := foldToken(strings.TrimRight(trimmed, ":.,،"))
	if key == "" {
		return Unrecognized(trimmed)
	}

	if wd, ok := dayTable[key]; ok {
		return Recognized(wd)
	}
	if rest := strings.TrimPrefix(key, "ال"); rest != key {
		if wd, ok := dayTable[rest]; ok {
			return Recognized(wd)
		}
	}

	return Unrecognized(trimmed)
}
