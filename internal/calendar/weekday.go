package calendar

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Weekday is a day of the week, Sunday-indexed like time.Weekday.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// englishNames and arabicNames share indices; keep them in lockstep.
var englishNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
var arabicNames = [7]string{"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت"}

func (d Weekday) Valid() bool {
	return d >= Sunday && d <= Saturday
}

// String returns the canonical English name.
func (d Weekday) String() string {
	if !d.Valid() {
		return ""
	}
	return englishNames[d]
}

func (d Weekday) Arabic() string {
	if !d.Valid() {
		return ""
	}
	return arabicNames[d]
}

// Weekdays returns the seven canonical weekdays starting from Sunday.
func Weekdays() []Weekday {
	return []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
}

// NormalizeWeekdayName upper-cases the first letter and lower-cases the rest.
// Unknown names pass through in the same shape, so the result is not
// guaranteed to be one of the canonical names.
func NormalizeWeekdayName(raw string) string {
	if raw == "" {
		return raw
	}

	first, size := utf8.DecodeRuneInString(raw)
	return string(unicode.ToUpper(first)) + strings.ToLower(raw[size:])
}

// ParseWeekday resolves a canonical English day name regardless of casing
// and surrounding whitespace.
func ParseWeekday(name string) (Weekday, bool) {
	normalized := NormalizeWeekdayName(strings.TrimSpace(name))
	for i, n := range englishNames {
		if n == normalized {
			return Weekday(i), true
		}
	}

	return 0, false
}

// CanonicalDays normalizes every entry of days and reports whether all of
// them resolved to canonical weekdays. Duplicates are dropped.
func CanonicalDays(days []string) ([]string, bool) {
	res := make([]string, 0, len(days))
	seen := make(map[Weekday]struct{}, len(days))
	ok := true

	for _, d := range days {
		wd, found := ParseWeekday(d)
		if !found {
			ok = false
			continue
		}
		if _, dup := seen[wd]; dup {
			continue
		}
		seen[wd] = struct{}{}
		res = append(res, wd.String())
	}

	return res, ok
}
