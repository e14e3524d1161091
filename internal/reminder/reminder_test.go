package reminder

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/SergeyKozhin/student-planner-backend/internal/calendar"
	"github.com/SergeyKozhin/student-planner-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2024, 1, day, hour, minute, 0, 0, time.UTC)
}

func TestNext(t *testing.T) {
	tests := []struct {
		name  string
		now   time.Time
		clock string
		day   string
		lead  int
		want  time.Time
		ok    bool
	}{
		{name: "later today", now: at(8, 8, 0), clock: "09:00", day: "Monday", lead: 15, want: at(8, 8, 45), ok: true},
		{name: "passed today", now: at(8, 9, 30), clock: "09:00", day: "Monday", lead: 15, want: at(15, 8, 45), ok: true},
		{name: "starting now", now: at(8, 9, 0), clock: "09:00", day: "Monday", lead: 15, want: at(15, 8, 45), ok: true},
		{name: "later this week", now: at(6, 20, 0), clock: "9:00 AM", day: "monday", lead: 30, want: at(8, 8, 30), ok: true},
		{name: "day before today", now: at(9, 10, 0), clock: "13:15", day: "MONDAY", lead: 0, want: at(15, 13, 15), ok: true},
		{name: "lead crosses midnight", now: at(7, 12, 0), clock: "00:30", day: "Monday", lead: 60, want: at(7, 23, 30), ok: true},
		{name: "fire already passed", now: at(8, 8, 50), clock: "09:00", day: "Monday", lead: 15},
		{name: "unreadable time", now: at(8, 8, 0), clock: "morning", day: "Monday", lead: 15},
		{name: "unknown day", now: at(8, 8, 0), clock: "09:00", day: "Funday", lead: 15},
		{name: "abbreviated day", now: at(8, 8, 0), clock: "09:00", day: "Mon", lead: 15},
		{name: "negative lead", now: at(8, 8, 0), clock: "09:00", day: "Monday", lead: -5},
		{name: "longest lead right after meeting", now: at(8, 9, 0), clock: "09:00", day: "Monday", lead: MaxLeadMinutes, want: at(8, 9, 1), ok: true},
		{name: "whole week lead", now: at(8, 9, 0), clock: "09:00", day: "Monday", lead: 7 * 24 * 60},
		{name: "whole week lead just before meeting", now: at(8, 8, 59), clock: "09:00", day: "Monday", lead: 7 * 24 * 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Next(tt.now, tt.clock, tt.day, tt.lead)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
				assert.True(t, got.After(tt.now))
			}
		})
	}
}

func TestNextAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	now := time.Date(2024, 3, 9, 12, 0, 0, 0, ny)
	got, ok := Next(now, "09:00", "Sunday", 15)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 10, 8, 45, 0, 0, ny), got)
	assert.Equal(t, 8, got.Hour())
}

func class(days []string, clock string, leads ...int) *model.Class {
	return &model.Class{
		ID: "c1",
		ClassCreate: model.ClassCreate{
			Name:               "Math",
			Time:               clock,
			Days:               days,
			Reminders:          leads,
			RepetitionInterval: 1,
		},
	}
}

func TestSchedule(t *testing.T) {
	c := class([]string{"Monday", "Wednesday", "Someday"}, "09:00", 15, 60)

	res := Schedule(c, at(8, 8, 30), 10)
	require.Len(t, res, 3)

	assert.Equal(t, calendar.Monday, res[0].Day)
	assert.Equal(t, at(8, 8, 45), res[0].FireAt)
	assert.Equal(t, at(8, 9, 0), res[0].ClassStart)

	assert.Equal(t, at(10, 8, 0), res[1].FireAt)
	assert.Equal(t, 60, res[1].LeadMinutes)
	assert.Equal(t, at(10, 8, 45), res[2].FireAt)
}

func TestScheduleDefaultLead(t *testing.T) {
	res := Schedule(class([]string{"Tuesday"}, "10:00"), at(8, 8, 30), 20)
	require.Len(t, res, 1)
	assert.Equal(t, 20, res[0].LeadMinutes)
	assert.Equal(t, at(9, 9, 40), res[0].FireAt)
}

func TestScheduleInterval(t *testing.T) {
	c := class([]string{"Monday"}, "09:00", 15)
	c.RepetitionInterval = 2
	c.StartDate = at(8, 0, 0)

	res := Schedule(c, at(15, 7, 0), 15)
	require.Len(t, res, 1)
	assert.Equal(t, at(22, 8, 45), res[0].FireAt)

	res = Schedule(c, at(8, 7, 0), 15)
	require.Len(t, res, 1)
	assert.Equal(t, at(8, 8, 45), res[0].FireAt)
}

func TestDue(t *testing.T) {
	classes := []*model.Class{
		class([]string{"Monday"}, "09:00", 15),
		class([]string{"Monday"}, "10:00", 75),
		class([]string{"Monday"}, "broken", 15),
	}

	res := Due(classes, at(8, 8, 45), at(8, 8, 46), 15)
	require.Len(t, res, 2)
	assert.Equal(t, at(8, 8, 45), res[0].FireAt)
	assert.Equal(t, at(8, 8, 45), res[1].FireAt)

	assert.Empty(t, Due(classes, at(8, 8, 46), at(8, 8, 47), 15))
}

func TestParseLeadTime(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{in: "5 دقائق", want: 5, ok: true},
		{in: "15 دقيقة", want: 15, ok: true},
		{in: "ساعة واحدة", want: 60, ok: true},
		{in: "ساعتين", want: 120, ok: true},
		{in: "3 ساعات", want: 180, ok: true},
		{in: "٥ دقائق", want: 5, ok: true},
		{in: "1 hour", want: 60, ok: true},
		{in: "2 Hours", want: 120, ok: true},
		{in: "30 minutes before", want: 30, ok: true},
		{in: "1 day", want: 1440, ok: true},
		{in: "45", want: 45, ok: true},
		{in: "6 days", want: 6 * 1440, ok: true},
		{in: "soon", ok: false},
		{in: "1 week", ok: false},
		{in: "2 weeks", ok: false},
		{in: "أسبوع", ok: false},
		{in: "7 days", ok: false},
		{in: "1.5 hours", ok: false},
		{in: "١٫٥ ساعة", ok: false},
		{in: "1 hour 30 minutes", ok: false},
		{in: "10 potatoes", ok: false},
		{in: "دقيقة", ok: false},
		{in: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLeadTime(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDueLeadLimit(t *testing.T) {
	class := func(lead int) *model.Class {
		return &model.Class{
			ID: "c1",
			ClassCreate: model.ClassCreate{
				Name:               "Math",
				Time:               "09:00",
				Days:               []string{"Monday"},
				RepetitionInterval: 1,
				Reminders:          []int{lead},
				StartDate:          at(1, 12, 0),
			},
		}
	}

	countFires := func(c *model.Class) []*Reminder {
		var res []*Reminder
		for m := at(8, 0, 0); m.Before(at(22, 0, 0)); m = m.Add(time.Minute) {
			res = append(res, Due([]*model.Class{c}, m, m.Add(time.Minute), 15)...)
		}
		return res
	}

	fires := countFires(class(MaxLeadMinutes))
	require.Len(t, fires, 2)
	assert.Equal(t, at(8, 9, 1), fires[0].FireAt)
	assert.Equal(t, at(15, 9, 0), fires[0].ClassStart)
	assert.Equal(t, at(15, 9, 1), fires[1].FireAt)

	assert.Empty(t, countFires(class(MaxLeadMinutes+1)))
}
