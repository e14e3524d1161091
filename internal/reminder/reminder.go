package reminder

import (
	"sort"
	"time"

	"github.com/SergeyKozhin/student-planner-backend/internal/calendar"
	"github.com/SergeyKozhin/student-planner-backend/internal/model"
)

// MaxLeadMinutes is the longest lead that still fires before every weekly
// meeting. A lead of a whole week or more would always fall at or before
// the previous meeting.
const MaxLeadMinutes = 7*24*60 - 1

// Next returns the instant a reminder leadMinutes ahead of the next meeting
// of a class held at classTime on day should fire. A meeting at or before
// now counts as passed, so the next one is a week later. It reports false
// when the time or day cannot be read, or when the fire instant is not after
// now.
func Next(now time.Time, classTime, day string, leadMinutes int) (time.Time, bool) {
	start, ok := NextStart(now, classTime, day)
	if !ok || leadMinutes < 0 {
		return time.Time{}, false
	}

	fire := start.Add(-time.Duration(leadMinutes) * time.Minute)
	if !fire.After(now) {
		return time.Time{}, false
	}

	return fire, true
}

// NextStart returns the next meeting of a class at classTime on day
// strictly after now, in the location of now.
func NextStart(now time.Time, classTime, day string) (time.Time, bool) {
	hour, minute, ok := calendar.ParseClockTime(classTime)
	if !ok {
		return time.Time{}, false
	}

	target, ok := calendar.ParseWeekday(day)
	if !ok {
		return time.Time{}, false
	}

	daysUntil := (int(target) - int(now.Weekday()) + 7) % 7

	y, m, d := now.Date()
	start := time.Date(y, m, d+daysUntil, hour, minute, 0, 0, now.Location())
	if daysUntil == 0 && !start.After(now) {
		start = time.Date(y, m, d+7, hour, minute, 0, 0, now.Location())
	}

	return start, true
}

type Reminder struct {
	Class       *model.Class
	Day         calendar.Weekday
	LeadMinutes int
	ClassStart  time.Time
	FireAt      time.Time
}

// Schedule lists the upcoming reminders of a class, one per day and lead
// time, ordered by fire instant. Classes without their own lead times use
// defaultLead. Pairs that cannot be computed are skipped.
func Schedule(c *model.Class, now time.Time, defaultLead int) []*Reminder {
	leads := c.Reminders
	if len(leads) == 0 {
		leads = []int{defaultLead}
	}

	interval := c.RepetitionInterval
	if interval < 1 {
		interval = 1
	}

	var res []*Reminder
	for _, day := range c.Days {
		wd, ok := calendar.ParseWeekday(day)
		if !ok {
			continue
		}

		for _, lead := range leads {
			fire, ok := Next(now, c.Time, day, lead)
			if !ok {
				continue
			}
			start := fire.Add(time.Duration(lead) * time.Minute)

			for i := 1; i < interval && !calendar.MeetsInWeekOf(c, start); i++ {
				start = start.AddDate(0, 0, 7)
			}
			if !calendar.MeetsInWeekOf(c, start) {
				continue
			}

			res = append(res, &Reminder{
				Class:       c,
				Day:         wd,
				LeadMinutes: lead,
				ClassStart:  start,
				FireAt:      start.Add(-time.Duration(lead) * time.Minute),
			})
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].FireAt.Before(res[j].FireAt)
	})

	return res
}

// Due returns the reminders of classes firing within [from, to).
func Due(classes []*model.Class, from, to time.Time, defaultLead int) []*Reminder {
	var res []*Reminder
	for _, c := range classes {
		for _, r := range Schedule(c, from.Add(-time.Nanosecond), defaultLead) {
			if !r.FireAt.Before(from) && r.FireAt.Before(to) {
				res = append(res, r)
			}
		}
	}

	return res
}
