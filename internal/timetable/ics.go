package timetable

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/SergeyKozhin/student-planner-backend/internal/calendar"
	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"
)

// ParseICS reads class candidates from an iCalendar export. Every timed
// VEVENT yields one candidate per weekday it recurs on; clock times are read
// in loc. Repeated instances of the same class collapse into one candidate.
func ParseICS(r io.Reader, loc *time.Location) ([]Candidate, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parse calendar: %w", err)
	}

	var res []Candidate
	seen := make(map[string]struct{})

	for _, ev := range cal.Events() {
		summary := propertyValue(ev, ical.ComponentPropertySummary)
		if summary == "" {
			continue
		}

		dtStart := ev.GetProperty(ical.ComponentPropertyDtStart)
		if dtStart == nil || !strings.Contains(dtStart.Value, "T") {
			continue
		}

		start, err := ev.GetStartAt()
		if err != nil {
			continue
		}
		start = start.In(loc)

		clock := calendar.FormatClock24(start.Hour(), start.Minute())
		location := propertyValue(ev, ical.ComponentPropertyLocation)

		for _, wd := range eventWeekdays(propertyValue(ev, ical.ComponentPropertyRrule), start) {
			c := newCandidate(summary, Recognized(wd), clock, location)

			key := c.Day.String() + "\x00" + c.Time + "\x00" + c.Subject
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			res = append(res, c)
		}
	}

	for i := range res {
		res[i].Color = PaletteColor(i)
	}

	return res, nil
}

func propertyValue(ev *ical.VEvent, prop ical.ComponentProperty) string {
	p := ev.GetProperty(prop)
	if p == nil {
		return ""
	}
	return strings.TrimSpace(p.Value)
}

// eventWeekdays lists the weekdays an event meets on according to its RRULE.
func eventWeekdays(rule string, start time.Time) []calendar.Weekday {
	own := []calendar.Weekday{calendar.WeekdayFromDate(start)}
	if rule == "" {
		return own
	}

	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return own
	}

	if len(opt.Byweekday) > 0 && (opt.Freq == rrule.WEEKLY || opt.Freq == rrule.DAILY) {
		res := make([]calendar.Weekday, 0, len(opt.Byweekday))
		for _, d := range opt.Byweekday {
			res = append(res, calendar.FromRRuleWeekday(d))
		}
		return res
	}

	if opt.Freq == rrule.DAILY {
		return calendar.Weekdays()
	}

	return own
}
