package calendar

import (
	"sort"
	"strings"
	"time"

	"github.com/SergeyKozhin/student-planner-backend/internal/model"
)

type TimeBucket string

const (
	Morning   TimeBucket = "morning"
	Afternoon TimeBucket = "afternoon"
	Evening   TimeBucket = "evening"
)

func (b TimeBucket) Valid() bool {
	switch b {
	case Morning, Afternoon, Evening:
		return true
	}
	return false
}

// ClassesOnDate returns the classes whose days include the weekday of date.
func ClassesOnDate(classes []*model.Class, date time.Time) []*model.Class {
	return FilterByDay(classes, WeekdayFromDate(date).String())
}

func FilterByDay(classes []*model.Class, day string) []*model.Class {
	var res []*model.Class
	for _, c := range classes {
		if IsWeekdayMatch(c.Days, day) {
			res = append(res, c)
		}
	}

	return res
}

// FilterByTimeOfDay buckets classes by start hour: morning [6,12),
// afternoon [12,18), evening [18,24) and [0,6). Classes with unreadable
// times are dropped; an unknown bucket keeps everything.
func FilterByTimeOfDay(classes []*model.Class, bucket TimeBucket) []*model.Class {
	var res []*model.Class
	for _, c := range classes {
		hour, _, ok := ParseClockTime(c.Time)
		if !ok {
			continue
		}

		if inBucket(hour, bucket) {
			res = append(res, c)
		}
	}

	return res
}

func inBucket(hour int, bucket TimeBucket) bool {
	switch bucket {
	case Morning:
		return hour >= 6 && hour < 12
	case Afternoon:
		return hour >= 12 && hour < 18
	case Evening:
		return hour >= 18 || hour < 6
	default:
		return true
	}
}

func FilterBySubject(classes []*model.Class, subject string) []*model.Class {
	subject = strings.ToLower(strings.TrimSpace(subject))
	if subject == "" {
		return nil
	}

	var res []*model.Class
	for _, c := range classes {
		if strings.Contains(strings.ToLower(c.Name), subject) {
			res = append(res, c)
		}
	}

	return res
}

// SortByTime orders classes by start time in place; unreadable times go last.
func SortByTime(classes []*model.Class) {
	sort.SliceStable(classes, func(i, j int) bool {
		mi, oki := ClockMinutes(classes[i].Time)
		mj, okj := ClockMinutes(classes[j].Time)
		if oki != okj {
			return oki
		}
		return mi < mj
	})
}

// UpcomingClasses lists the classes meeting on each of the days days
// starting at from, sorted by start time within each day.
func UpcomingClasses(classes []*model.Class, from time.Time, days int) []*model.Occurrence {
	var res []*model.Occurrence
	for i := 0; i < days; i++ {
		day := AddDays(Midday(from), i)
		onDay := ClassesOnDate(classes, day)
		SortByTime(onDay)

		for _, c := range onDay {
			h, m, ok := ParseClockTime(c.Time)
			if !ok {
				continue
			}
			y, mo, d := day.Date()
			res = append(res, &model.Occurrence{
				Class: c,
				Start: time.Date(y, mo, d, h, m, 0, 0, from.Location()),
			})
		}
	}

	return res
}

// NextClass returns the first class starting after now within a week.
func NextClass(classes []*model.Class, now time.Time) *model.Occurrence {
	for _, o := range UpcomingClasses(classes, now, 8) {
		if o.Start.After(now) {
			return o
		}
	}

	return nil
}
