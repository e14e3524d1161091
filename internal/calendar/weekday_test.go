package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWeekdayName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "monday", want: "Monday"},
		{in: "MONDAY", want: "Monday"},
		{in: "Monday", want: "Monday"},
		{in: "mOnDaY", want: "Monday"},
		{in: "x", want: "X"},
		{in: "", want: ""},
		{in: "funday", want: "Funday"},
		{in: "الاثنين", want: "الاثنين"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := NormalizeWeekdayName(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, NormalizeWeekdayName(got), "normalization must be idempotent")
		})
	}
}

func TestWeekdayNamesInLockstep(t *testing.T) {
	want := map[Weekday][2]string{
		Sunday:    {"Sunday", "الأحد"},
		Monday:    {"Monday", "الاثنين"},
		Tuesday:   {"Tuesday", "الثلاثاء"},
		Wednesday: {"Wednesday", "الأربعاء"},
		Thursday:  {"Thursday", "الخميس"},
		Friday:    {"Friday", "الجمعة"},
		Saturday:  {"Saturday", "السبت"},
	}

	for wd, names := range want {
		assert.Equal(t, names[0], wd.String())
		assert.Equal(t, names[1], wd.Arabic())
	}

	assert.Len(t, Weekdays(), 7)
	assert.Equal(t, "", Weekday(7).String())
	assert.Equal(t, "", Weekday(-1).Arabic())
}

func TestParseWeekday(t *testing.T) {
	wd, ok := ParseWeekday(" tuesday ")
	assert.True(t, ok)
	assert.Equal(t, Tuesday, wd)

	wd, ok = ParseWeekday("SATURDAY")
	assert.True(t, ok)
	assert.Equal(t, Saturday, wd)

	_, ok = ParseWeekday("tue")
	assert.False(t, ok)

	_, ok = ParseWeekday("")
	assert.False(t, ok)
}

func TestCanonicalDays(t *testing.T) {
	days, ok := CanonicalDays([]string{"monday", "WEDNESDAY", "Monday"})
	assert.True(t, ok)
	assert.Equal(t, []string{"Monday", "Wednesday"}, days)

	days, ok = CanonicalDays([]string{"sunday", "someday"})
	assert.False(t, ok)
	assert.Equal(t, []string{"Sunday"}, days)
}
