package calendar

import (
	"testing"
	"time"

	"github.com/SergeyKozhin/student-planner-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teambition/rrule-go"
)

func TestRRuleWeekdays(t *testing.T) {
	for _, wd := range Weekdays() {
		assert.Equal(t, wd, FromRRuleWeekday(ToRRuleWeekday(wd)))
	}
	assert.Equal(t, Monday, FromRRuleWeekday(rrule.MO))
	assert.Equal(t, Sunday, FromRRuleWeekday(rrule.SU))
}

func biweekly() *model.Class {
	c := newClass("c", "Math", "09:00", "monday", "Wednesday")
	c.RepetitionInterval = 2
	c.StartDate = time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	return c
}

func TestOccurrences(t *testing.T) {
	res, err := Occurrences(biweekly(), time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), time.Date(2024, 2, 4, 0, 0, 0, 0, time.UTC), time.UTC)
	require.NoError(t, err)

	assert.Equal(t, []time.Time{
		time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 22, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 24, 9, 0, 0, 0, time.UTC),
	}, res)

	_, err = Occurrences(newClass("x", "Broken", "later", "Monday"), time.Time{}, time.Now(), time.UTC)
	assert.Error(t, err)

	_, err = Occurrences(newClass("y", "Nowhere", "09:00", "Someday"), time.Time{}, time.Now(), time.UTC)
	assert.Error(t, err)
}

func TestMeetsInWeekOf(t *testing.T) {
	c := biweekly()

	tests := []struct {
		date string
		want bool
	}{
		{date: "2024-01-01", want: false},
		{date: "2024-01-07", want: false},
		{date: "2024-01-08", want: true},
		{date: "2024-01-10", want: true},
		{date: "2024-01-15", want: false},
		{date: "2024-01-22", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			d, err := ParseDate(tt.date, time.UTC)
			require.NoError(t, err)
			assert.Equal(t, tt.want, MeetsInWeekOf(c, d))
		})
	}

	weekly := newClass("w", "Art", "10:00", "Monday")
	weekly.StartDate = c.StartDate
	d, err := ParseDate("2024-01-15", time.UTC)
	require.NoError(t, err)
	assert.True(t, MeetsInWeekOf(weekly, d))

	assert.Equal(t, []string{"w"}, ids(ClassesMeetingOn([]*model.Class{c, weekly}, d)))
}
