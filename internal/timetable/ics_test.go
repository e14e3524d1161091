package timetable

import (
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func icsBody(lines ...string) string {
	all := append([]string{"BEGIN:VCALENDAR", "VERSION:2.0", "PRODID:-//University//Timetable//EN"}, lines...)
	all = append(all, "END:VCALENDAR")
	return strings.Join(all, "\r\n") + "\r\n"
}

func TestParseICS(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Riyadh")
	require.NoError(t, err)

	body := icsBody(
		"BEGIN:VEVENT",
		"UID:math@uni",
		"SUMMARY:Math",
		"LOCATION:B1",
		"DTSTART;TZID=Asia/Riyadh:20240107T080000",
		"RRULE:FREQ=WEEKLY;BYDAY=SU,TU",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:physics-1@uni",
		"SUMMARY:Physics",
		"DTSTART:20240108T100000Z",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:physics-2@uni",
		"SUMMARY:Physics",
		"DTSTART:20240115T100000Z",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:holiday@uni",
		"SUMMARY:Holiday",
		"DTSTART;VALUE=DATE:20240109",
		"END:VEVENT",
	)

	res, err := ParseICS(strings.NewReader(body), loc)
	require.NoError(t, err)

	assert.Equal(t, []slot{
		{"Sunday", "08:00", "Math"},
		{"Tuesday", "08:00", "Math"},
		{"Monday", "13:00", "Physics"},
	}, slots(res))
	assert.Equal(t, "B1", res[0].Location)
	assert.Equal(t, PaletteColor(2), res[2].Color)
}

func TestParseICSEmptyCalendar(t *testing.T) {
	res, err := ParseICS(strings.NewReader(icsBody()), time.UTC)
	require.NoError(t, err)
	assert.Empty(t, res)
}
