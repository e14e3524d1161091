package calendar

import "strings"

// IsWeekdayMatch reports whether target names one of classDays. The
// comparison tolerates casing differences and partial spellings.
func IsWeekdayMatch(classDays []string, target string) bool {
	target = strings.TrimSpace(target)
	if target == "" {
		return false
	}

	for _, d := range classDays {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		if dayEntryMatches(d, target) {
			return true
		}
	}

	return false
}

// dayEntryMatches is the single predicate deciding whether one stored day
// entry matches a requested day.
func dayEntryMatches(entry, target string) bool {
	if entry == target {
		return true
	}

	entryLower := strings.ToLower(entry)
	targetLower := strings.ToLower(target)
	if entryLower == targetLower {
		return true
	}

	if NormalizeWeekdayName(entry) == NormalizeWeekdayName(target) {
		return true
	}

	return looseContains(entryLower, targetLower)
}

// looseContains accepts partial spellings in either direction ("mon" vs
// "monday"). It also admits false positives on malformed data; tighten here.
func looseContains(entryLower, targetLower string) bool {
	return strings.Contains(entryLower, targetLower) || strings.Contains(targetLower, entryLower)
}
