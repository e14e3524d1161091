package timetable

import (
	"testing"

	"github.com/SergeyKozhin/student-planner-backend/internal/calendar"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeDay(t *testing.T) {
	tests := []struct {
		in   string
		want calendar.Weekday
	}{
		{in: "Sunday", want: calendar.Sunday},
		{in: "MON", want: calendar.Monday},
		{in: "tues", want: calendar.Tuesday},
		{in: "Thur", want: calendar.Thursday},
		{in: "fri:", want: calendar.Friday},
		{in: "الأحد", want: calendar.Sunday},
		{in: "احد", want: calendar.Sunday},
		{in: "الإثنين", want: calendar.Monday},
		{in: "اثنين", want: calendar.Monday},
		{in: "الثلاثاء", want: calendar.Tuesday},
		{in: "الاربعاء", want: calendar.Wednesday},
		{in: "أربعاء", want: calendar.Wednesday},
		{in: "الخميس", want: calendar.Thursday},
		{in: "الجمعة", want: calendar.Friday},
		{in: "جمعة", want: calendar.Friday},
		{in: "السبت", want: calendar.Saturday},
		{in: "الســبت", want: calendar.Saturday},
		{in: "0", want: calendar.Sunday},
		{in: "6", want: calendar.Saturday},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d := NormalizeDay(tt.in)
			assert.True(t, d.Recognized)
			assert.Equal(t, tt.want, d.Weekday)
			assert.Equal(t, tt.want.String(), d.String())
		})
	}
}

func TestNormalizeDayUnrecognized(t *testing.T) {
	for _, in := range []string{"7", "Funday", " tomorrow ", "", "mo"} {
		d := NormalizeDay(in)
		assert.False(t, d.Recognized, in)
	}

	assert.Equal(t, "tomorrow", NormalizeDay(" tomorrow ").String())
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "9:00", want: "09:00"},
		{in: "9", want: "09:00"},
		{in: "9:00 AM", want: "09:00"},
		{in: "9:00am", want: "09:00"},
		{in: "9 p.m.", want: "21:00"},
		{in: "12:00 AM", want: "00:00"},
		{in: "12:15 PM", want: "12:15"},
		{in: "1:30 PM", want: "13:30"},
		{in: "9:00 ص", want: "09:00"},
		{in: "9 صباحا", want: "09:00"},
		{in: "2:00 م", want: "14:00"},
		{in: "8 مساء", want: "20:00"},
		{in: "12 م", want: "12:00"},
		{in: "١٠:٣٠", want: "10:30"},
		{in: "14:45", want: "14:45"},
		{in: " 25:00 ", want: "25:00"},
		{in: "13:00 PM", want: "13:00 PM"},
		{in: "9-10", want: "9-10"},
		{in: "noon", want: "noon"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTime(tt.in))
		})
	}
}
