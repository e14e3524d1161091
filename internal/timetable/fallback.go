package timetable

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	windowBefore = 50
	windowAfter  = 100
)

var (
	// the optional tail swallows the end of a "9:00 - 10:30" range
	looseTimeRX = regexp.MustCompile(`(` + timeExpr + `)(?:\s*[-–—]\s*` + timeExpr + `)?`)
	wordRX      = regexp.MustCompile(`\p{L}+`)
	subjectRX   = regexp.MustCompile(`\p{L}{3,}(?:\s+\p{L}{3,})*`)
)

var stopwords = map[string]struct{}{
	"and": {}, "the": {}, "from": {}, "until": {}, "room": {}, "class": {}, "hall": {},
	"lecture": {}, "time": {}, "day": {}, "have": {}, "has": {}, "with": {}, "our": {}, "then": {},
	"من": {}, "إلى": {}, "الى": {}, "حتى": {}, "الساعة": {}, "ساعة": {}, "قاعة": {}, "يوم": {},
	"صباحا": {}, "صباح": {}, "مساء": {}, "محاضرة": {}, "لدينا": {},
}

// fallback runs the loose heuristics over the whole text. Lines read as
// table rows are not scanned for clock tokens again.
func fallback(text string) []Candidate {
	var res []Candidate
	seen := make(map[string]struct{})

	add := func(cs []Candidate) {
		for _, c := range cs {
			key := c.Day.String() + "\x00" + c.Time + "\x00" + c.Subject
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			res = append(res, c)
		}
	}

	rows, consumed := scanColumns(text)
	add(rows)
	add(scanTimeWindows(text, consumed))

	return res
}

// scanTimeWindows looks around every clock token for a weekday and a
// subject-like run of letters.
func scanTimeWindows(text string, skipLines map[string]struct{}) []Candidate {
	var res []Candidate
	for _, loc := range looseTimeRX.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[0], trimMeridiemEnd(text, loc[1])
		if glued(text, start, end) {
			continue
		}

		lineStart := strings.LastIndexByte(text[:start], '\n') + 1
		lineEnd := len(text)
		if i := strings.IndexByte(text[end:], '\n'); i >= 0 {
			lineEnd = end + i
		}
		if _, ok := skipLines[strings.TrimSpace(text[lineStart:lineEnd])]; ok {
			continue
		}

		clockEnd := loc[3]
		if clockEnd > end {
			clockEnd = end
		}
		clock := text[loc[2]:clockEnd]

		before := tailRunes(text[:start], windowBefore)
		after := headRunes(text[end:], windowAfter)

		day, ok := nearestDay(before, after)
		if !ok {
			continue
		}

		subject, ok := firstSubject(text[end:lineEnd], text[lineStart:start], after, before)
		if !ok {
			continue
		}

		res = append(res, newCandidate(subject, day, clock, ""))
	}

	return res
}

// trimMeridiemEnd drops a trailing Arabic meridiem letter that is in fact
// the first letter of the following word.
func trimMeridiemEnd(text string, end int) int {
	if end >= len(text) {
		return end
	}

	next, _ := utf8.DecodeRuneInString(text[end:])
	if !unicode.IsLetter(next) {
		return end
	}

	last, _ := utf8.DecodeLastRuneInString(text[:end])
	if !unicode.IsLetter(last) {
		return end
	}

	head := strings.TrimRightFunc(text[:end], unicode.IsLetter)
	return len(strings.TrimRight(head, ". \t"))
}

// glued reports whether the token is part of a larger word or number,
// like "B12", "2024" or the month of "2024-01-08".
func glued(text string, start, end int) bool {
	if start > 0 {
		prev, size := utf8.DecodeLastRuneInString(text[:start])
		if unicode.IsLetter(prev) || unicode.IsDigit(prev) {
			return true
		}
		if strings.ContainsRune("-/.", prev) && start > size {
			beforePrev, _ := utf8.DecodeLastRuneInString(text[:start-size])
			if unicode.IsDigit(beforePrev) {
				return true
			}
		}
	}

	if end < len(text) {
		next, _ := utf8.DecodeRuneInString(text[end:])
		if unicode.IsDigit(next) || next == '/' {
			return true
		}
	}

	return false
}

// nearestDay returns the recognized weekday closest to the clock token.
func nearestDay(before, after string) (DayToken, bool) {
	bestDist := -1
	var best DayToken

	for _, loc := range wordRX.FindAllStringIndex(before, -1) {
		d := NormalizeDay(before[loc[0]:loc[1]])
		dist := utf8.RuneCountInString(before[loc[1]:])
		if d.Recognized && (bestDist < 0 || dist < bestDist) {
			best, bestDist = d, dist
		}
	}

	for _, loc := range wordRX.FindAllStringIndex(after, -1) {
		d := NormalizeDay(after[loc[0]:loc[1]])
		dist := utf8.RuneCountInString(after[:loc[0]])
		if d.Recognized && (bestDist < 0 || dist < bestDist) {
			best, bestDist = d, dist
		}
	}

	return best, bestDist >= 0
}

// firstSubject tries each text in turn and returns the first subject found.
func firstSubject(texts ...string) (string, bool) {
	for _, s := range texts {
		if subject, ok := findSubject(s); ok {
			return subject, true
		}
	}

	return "", false
}

// findSubject returns the first run of 3+ letter words that is not a
// weekday, meridiem or filler word.
func findSubject(s string) (string, bool) {
	for _, line := range strings.Split(s, "\n") {
		for _, loc := range wordRX.FindAllStringIndex(line, -1) {
			w := line[loc[0]:loc[1]]
			if utf8.RuneCountInString(w) < 3 || isNoise(w) {
				continue
			}

			// extend over the following words of the same run
			words := strings.Fields(subjectRX.FindString(line[loc[0]:]))
			n := 1
			for n < len(words) && !isNoise(words[n]) {
				n++
			}
			return strings.Join(words[:n], " "), true
		}
	}

	return "", false
}

func isNoise(w string) bool {
	if NormalizeDay(w).Recognized {
		return true
	}

	lower := strings.ToLower(w)
	if _, ok := stopwords[lower]; ok {
		return true
	}
	_, ok := meridiems[strings.ReplaceAll(lower, ".", "")]
	return ok
}

// scanColumns reads any pipe or tab separated line with at least three
// non-empty cells as day, time and subject. It also returns the lines it
// consumed.
func scanColumns(text string) ([]Candidate, map[string]struct{}) {
	var res []Candidate
	consumed := make(map[string]struct{})

	for _, line := range splitLines(text) {
		sep := "|"
		if !strings.Contains(line, sep) {
			sep = "\t"
		}
		if !strings.Contains(line, sep) {
			continue
		}

		var cols []string
		for _, c := range splitColumns(line, sep) {
			if c != "" {
				cols = append(cols, c)
			}
		}
		if len(cols) < 3 || !strings.ContainsAny(cols[1], "0123456789") {
			continue
		}

		subject := cleanSubject(cols[2])
		if utf8.RuneCountInString(subject) <= 2 {
			continue
		}

		var location string
		if len(cols) > 3 {
			location = cols[3]
		}
		res = append(res, newCandidate(subject, NormalizeDay(cols[0]), cols[1], location))
		consumed[line] = struct{}{}
	}

	return res, consumed
}

func tailRunes(s string, n int) string {
	count := 0
	for i := len(s); i > 0; {
		_, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
		count++
		if count == n {
			return s[i:]
		}
	}
	return s
}

func headRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
