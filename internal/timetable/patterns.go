package timetable

import (
	"regexp"
	"strings"
)

// lineMatcher extracts candidates from a single line. A nil result means
// the line does not have the matcher's shape.
type lineMatcher func(line string) []Candidate

// lineMatchers are tried in order; the first one producing candidates wins.
var lineMatchers = []lineMatcher{
	matchDayEntries,
	matchTimeSubjectDay,
	matchSubjectTimeDay,
	matchPipeRow,
	matchTabRow,
}

var (
	dayEntriesRX     = regexp.MustCompile(`^(?:يوم\s+)?(\p{L}+)\s*:\s*(.+)$`)
	entrySeparatorRX = regexp.MustCompile(`[,،]`)

	timeDashSubjectRX = regexp.MustCompile(`^(` + timeExpr + `)\s*[-–—]\s*(.+)$`)
	timeSubjectRX     = regexp.MustCompile(`^(` + timeExpr + `)\s+(.+)$`)
	subjectTimeRX     = regexp.MustCompile(`^(.+?)\s+(` + timeExpr + `)$`)
	timeSubjectDayRX  = regexp.MustCompile(`^(` + timeExpr + `)\s*[-–—]\s*(.+?)\s*[-–—]\s*(\S+)$`)
	subjectTimeDayRX  = regexp.MustCompile(`^(.+?) +(` + timeExpr + `) +(\S+)$`)
)

const subjectTrimCutset = " \t-–—:;,،.|"

// matchDayEntries handles "Monday: 9:00 - Math, 11:00 - Physics".
func matchDayEntries(line string) []Candidate {
	m := dayEntriesRX.FindStringSubmatch(line)
	if m == nil {
		return nil
	}

	day := NormalizeDay(m[1])

	var res []Candidate
	for _, entry := range entrySeparatorRX.Split(m[2], -1) {
		clock, subject, ok := splitEntry(strings.TrimSpace(entry))
		if !ok {
			continue
		}
		res = append(res, newCandidate(subject, day, clock, ""))
	}

	return res
}

// splitEntry reads "<time> - <subject>", "<time> <subject>" or "<subject> <time>".
func splitEntry(entry string) (clock, subject string, ok bool) {
	if entry == "" {
		return "", "", false
	}

	if m := timeDashSubjectRX.FindStringSubmatch(entry); m != nil {
		clock, subject = m[1], m[2]
	} else if m := timeSubjectRX.FindStringSubmatch(entry); m != nil {
		clock, subject = m[1], m[2]
	} else if m := subjectTimeRX.FindStringSubmatch(entry); m != nil {
		subject, clock = m[1], m[2]
	} else {
		return "", "", false
	}

	subject = cleanSubject(subject)
	return clock, subject, subject != ""
}

// matchTimeSubjectDay handles "9:00 - Math - Monday".
func matchTimeSubjectDay(line string) []Candidate {
	m := timeSubjectDayRX.FindStringSubmatch(line)
	if m == nil {
		return nil
	}

	subject := cleanSubject(m[2])
	if subject == "" {
		return nil
	}

	return []Candidate{newCandidate(subject, NormalizeDay(m[3]), m[1], "")}
}

// matchSubjectTimeDay handles "Math 9:00 Monday".
func matchSubjectTimeDay(line string) []Candidate {
	m := subjectTimeDayRX.FindStringSubmatch(line)
	if m == nil {
		return nil
	}

	subject := cleanSubject(m[1])
	if subject == "" {
		return nil
	}

	return []Candidate{newCandidate(subject, NormalizeDay(m[3]), m[2], "")}
}

func matchPipeRow(line string) []Candidate {
	return matchRow(line, "|")
}

func matchTabRow(line string) []Candidate {
	return matchRow(line, "\t")
}

// matchRow handles "<day> SEP <time> SEP <subject> [SEP <location>]". The
// time column must contain a digit, which skips header and ruler rows. Time
// cells that are not a single clock, such as ranges, pass through as written.
func matchRow(line, sep string) []Candidate {
	if !strings.Contains(line, sep) {
		return nil
	}

	cols := splitColumns(line, sep)
	if len(cols) < 3 {
		return nil
	}
	if !strings.ContainsAny(cols[1], "0123456789") {
		return nil
	}

	subject := cleanSubject(cols[2])
	if subject == "" {
		return nil
	}

	var location string
	if len(cols) > 3 {
		location = cols[3]
	}

	return []Candidate{newCandidate(subject, NormalizeDay(cols[0]), cols[1], location)}
}

// splitColumns splits a table row and trims cells, dropping the empty outer
// cells of "| a | b |" style rows.
func splitColumns(line, sep string) []string {
	parts := strings.Split(line, sep)
	cols := make([]string, 0, len(parts))
	for _, p := range parts {
		cols = append(cols, strings.TrimSpace(p))
	}

	for len(cols) > 0 && cols[0] == "" {
		cols = cols[1:]
	}
	for len(cols) > 0 && cols[len(cols)-1] == "" {
		cols = cols[:len(cols)-1]
	}

	return cols
}

func cleanSubject(s string) string {
	return strings.Trim(strings.TrimSpace(s), subjectTrimCutset)
}

func newCandidate(subject string, day DayToken, clock, location string) Candidate {
	return Candidate{
		Subject:  subject,
		Day:      day,
		Time:     NormalizeTime(clock),
		Location: strings.TrimSpace(location),
	}
}
