package timetable

import (
	"fmt"
	"strings"

	"github.com/SergeyKozhin/student-planner-backend/internal/calendar"
	"github.com/SergeyKozhin/student-planner-backend/internal/model"
)

// Candidate is a class read from timetable text, pending confirmation.
type Candidate struct {
	Subject  string   `json:"subject"`
	Day      DayToken `json:"day"`
	Time     string   `json:"time"`
	Location string   `json:"location,omitempty"`
	Color    string   `json:"color"`
}

// Parse extracts class candidates from free-form timetable text. Lines are
// matched against the known layouts first; only when no line matches at all
// the loose heuristics run over the whole text. Parse never fails: text it
// cannot understand yields no candidates.
func Parse(text string) []Candidate {
	text = foldDigits(text)

	var res []Candidate
	for _, line := range splitLines(text) {
		res = append(res, matchLine(line)...)
	}

	if len(res) == 0 {
		res = fallback(text)
	}

	for i := range res {
		res[i].Color = PaletteColor(i)
	}

	if res == nil {
		return []Candidate{}
	}
	return res
}

// ParseText is Parse for callers that treat an empty result as a failure.
func ParseText(text string) ([]Candidate, error) {
	res := Parse(text)
	if len(res) == 0 {
		return nil, fmt.Errorf("parse timetable: %w", model.ErrNoCandidates)
	}

	return res, nil
}

func matchLine(line string) []Candidate {
	for _, match := range lineMatchers {
		if cs := match(line); len(cs) > 0 {
			return cs
		}
	}

	return nil
}

func splitLines(text string) []string {
	var res []string
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			res = append(res, l)
		}
	}

	return res
}

// ToClassCreate turns a confirmed candidate into a single-day class. It
// reports false when the day or the time never resolved.
func (c Candidate) ToClassCreate(userID string) (*model.ClassCreate, bool) {
	if !c.Day.Recognized {
		return nil, false
	}

	clock, ok := calendar.CanonicalClock(c.Time)
	if !ok {
		return nil, false
	}

	subject := strings.TrimSpace(c.Subject)
	if subject == "" {
		return nil, false
	}

	color := c.Color
	if !ValidColor(color) {
		color = ""
	}

	return &model.ClassCreate{
		UserID:             userID,
		Name:               subject,
		Time:               clock,
		Days:               []string{c.Day.String()},
		Location:           strings.TrimSpace(c.Location),
		RepetitionInterval: 1,
		Color:              color,
	}, true
}
