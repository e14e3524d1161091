package calendar

import (
	"testing"
	"time"

	"github.com/SergeyKozhin/student-planner-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClass(id, name, clock string, days ...string) *model.Class {
	return &model.Class{
		ID: id,
		ClassCreate: model.ClassCreate{
			Name: name,
			Time: clock,
			Days: days,
		},
	}
}

func ids(classes []*model.Class) []string {
	res := make([]string, 0, len(classes))
	for _, c := range classes {
		res = append(res, c.ID)
	}
	return res
}

func TestClassesOnDate(t *testing.T) {
	classes := []*model.Class{
		newClass("sun", "Arabic", "08:00", "Sunday"),
		newClass("mon", "Math", "09:00", "monday"),
		newClass("tue", "Physics", "10:00", "TUESDAY"),
		newClass("wed", "Chemistry", "11:00", "Wednesday"),
	}

	tests := []struct {
		date string
		want []string
	}{
		{date: "2024-01-07", want: []string{"sun"}},
		{date: "2024-01-08", want: []string{"mon"}},
		{date: "2024-01-09", want: []string{"tue"}},
		{date: "2024-01-10", want: []string{"wed"}},
		{date: "2024-01-12", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			d, err := ParseDate(tt.date, time.UTC)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(ClassesOnDate(classes, d)))
		})
	}
}

func TestFilterByTimeOfDay(t *testing.T) {
	classes := []*model.Class{
		newClass("early", "A", "05:59", "Sunday"),
		newClass("six", "B", "6:00 AM", "Sunday"),
		newClass("noon", "C", "12:00 PM", "Sunday"),
		newClass("late-afternoon", "D", "17:59", "Sunday"),
		newClass("evening", "E", "6:00 PM", "Sunday"),
		newClass("midnight", "F", "12:00 AM", "Sunday"),
		newClass("broken", "G", "soon", "Sunday"),
	}

	assert.Equal(t, []string{"six"}, ids(FilterByTimeOfDay(classes, Morning)))
	assert.Equal(t, []string{"noon", "late-afternoon"}, ids(FilterByTimeOfDay(classes, Afternoon)))
	assert.Equal(t, []string{"early", "evening", "midnight"}, ids(FilterByTimeOfDay(classes, Evening)))
	assert.Len(t, FilterByTimeOfDay(classes, TimeBucket("whenever")), 6)
}

func TestFilterBySubjectAndSort(t *testing.T) {
	classes := []*model.Class{
		newClass("3", "Applied Math", "13:00", "Monday"),
		newClass("1", "Physics", "08:00", "Monday"),
		newClass("x", "Math II", "bad", "Monday"),
		newClass("2", "math I", "9:00 AM", "Monday"),
	}

	assert.Equal(t, []string{"3", "x", "2"}, ids(FilterBySubject(classes, "MATH")))
	assert.Empty(t, FilterBySubject(classes, " "))

	SortByTime(classes)
	assert.Equal(t, []string{"1", "2", "3", "x"}, ids(classes))
}

func TestNextClass(t *testing.T) {
	classes := []*model.Class{
		newClass("mon-9", "Math", "09:00", "Monday"),
		newClass("mon-13", "Physics", "13:00", "Monday"),
		newClass("wed-8", "Chemistry", "08:00", "Wednesday"),
	}

	monday := time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC)
	next := NextClass(classes, monday)
	require.NotNil(t, next)
	assert.Equal(t, "mon-13", next.Class.ID)
	assert.Equal(t, time.Date(2024, 1, 8, 13, 0, 0, 0, time.UTC), next.Start)

	next = NextClass(classes, time.Date(2024, 1, 8, 14, 0, 0, 0, time.UTC))
	require.NotNil(t, next)
	assert.Equal(t, "wed-8", next.Class.ID)

	next = NextClass(classes, time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC))
	require.NotNil(t, next)
	assert.Equal(t, "mon-9", next.Class.ID)
	assert.Equal(t, time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC), next.Start)

	assert.Nil(t, NextClass(nil, monday))
}
