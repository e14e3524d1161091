package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/SergeyKozhin/student-planner-backend/internal/model"
	"github.com/teambition/rrule-go"
)

var rruleWeekdays = [7]rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

// ToRRuleWeekday converts a weekday into its rrule counterpart.
func ToRRuleWeekday(d Weekday) rrule.Weekday {
	return rruleWeekdays[d]
}

// FromRRuleWeekday converts a Monday-indexed rrule weekday.
func FromRRuleWeekday(d rrule.Weekday) Weekday {
	return Weekday((d.Day() + 1) % 7)
}

// anchor is the first instant a class can meet: its start date at the class
// time, or the start of its creation week when no start date was recorded.
func anchor(c *model.Class, loc *time.Location) (time.Time, bool) {
	h, m, ok := ParseClockTime(c.Time)
	if !ok {
		return time.Time{}, false
	}

	start := c.StartDate
	if start.IsZero() {
		start = WeekStart(c.CreatedAt.In(loc))
	}

	y, mo, d := start.In(loc).Date()
	return time.Date(y, mo, d, h, m, 0, 0, loc), true
}

func interval(c *model.Class) int {
	if c.RepetitionInterval < 1 {
		return 1
	}
	return c.RepetitionInterval
}

// WeeklyOption describes the class recurrence as an rrule option with
// Sunday as the first day of the week.
func WeeklyOption(c *model.Class, loc *time.Location) (*rrule.ROption, error) {
	start, ok := anchor(c, loc)
	if !ok {
		return nil, fmt.Errorf("class time %q: unreadable", c.Time)
	}

	var days []rrule.Weekday
	for _, d := range c.Days {
		if wd, ok := ParseWeekday(d); ok {
			days = append(days, ToRRuleWeekday(wd))
		}
	}
	if len(days) == 0 {
		return nil, errors.New("class has no recognizable days")
	}

	return &rrule.ROption{
		Freq:      rrule.WEEKLY,
		Interval:  interval(c),
		Wkst:      rrule.SU,
		Byweekday: days,
		Dtstart:   start,
	}, nil
}

// Occurrences expands the class meetings starting within [from, to).
func Occurrences(c *model.Class, from, to time.Time, loc *time.Location) ([]time.Time, error) {
	opt, err := WeeklyOption(c, loc)
	if err != nil {
		return nil, err
	}

	rule, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("make rule: %w", err)
	}

	var res []time.Time
	for _, t := range rule.Between(from, to, true) {
		if t.Before(to) {
			res = append(res, t)
		}
	}

	return res, nil
}

// MeetsInWeekOf reports whether the class repetition interval includes the
// week of date. Weeks before the start date never match.
func MeetsInWeekOf(c *model.Class, date time.Time) bool {
	start, ok := anchor(c, date.Location())
	if !ok {
		return false
	}

	weeks := WeeksBetween(start, date)
	if weeks < 0 {
		return false
	}
	if weeks == 0 && FormatDateOnly(Midday(date)) < FormatDateOnly(start) {
		return false
	}

	return weeks%interval(c) == 0
}

// ClassesMeetingOn is ClassesOnDate restricted to classes whose repetition
// interval covers the week of date.
func ClassesMeetingOn(classes []*model.Class, date time.Time) []*model.Class {
	var res []*model.Class
	for _, c := range ClassesOnDate(classes, date) {
		if MeetsInWeekOf(c, date) {
			res = append(res, c)
		}
	}

	return res
}
