package classes

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/SergeyKozhin/student-planner-backend/internal/calendar"
	"github.com/SergeyKozhin/student-planner-backend/internal/model"
	"github.com/SergeyKozhin/student-planner-backend/internal/pkg/validator"
	"github.com/SergeyKozhin/student-planner-backend/internal/reminder"
	"github.com/SergeyKozhin/student-planner-backend/internal/timetable"
)

// prepare validates c and rewrites it into its stored form: trimmed name,
// 24-hour time, canonical day names and sorted unique lead times.
func prepare(c *model.ClassCreate, today time.Time) error {
	v := validator.New()

	c.Name = strings.TrimSpace(c.Name)
	v.Check(c.Name != "", "name", "name must be provided")

	clock, ok := calendar.CanonicalClock(c.Time)
	v.Check(ok, "time", "time must be HH:MM or H:MM AM/PM")

	v.Check(len(c.Days) != 0, "days", "at least one day must be provided")
	days, ok := calendar.CanonicalDays(c.Days)
	v.Check(ok, "days", "days must be weekday names")

	if c.RepetitionInterval == 0 {
		c.RepetitionInterval = 1
	}
	v.Check(c.RepetitionInterval >= 1, "repetition_interval", "repetition interval must be at least 1 week")

	for _, l := range c.Reminders {
		v.Check(l >= 0 && l <= reminder.MaxLeadMinutes, "reminders", fmt.Sprintf("reminder lead times must be between 0 and %d minutes", reminder.MaxLeadMinutes))
	}

	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
	v.Check(c.Color == "" || timetable.ValidColor(c.Color), "color", "color must be a #rrggbb value")

	if !v.Valid() {
		return &model.ValidationError{Errors: v.Errors}
	}

	c.Time = clock
	c.Days = days
	c.Reminders = uniqueLeads(c.Reminders)
	if c.StartDate.IsZero() {
		c.StartDate = calendar.Midday(today)
	}

	return nil
}

func uniqueLeads(leads []int) []int {
	res := make([]int, 0, len(leads))
	seen := make(map[int]struct{}, len(leads))
	for _, l := range leads {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		res = append(res, l)
	}

	sort.Ints(res)
	return res
}
