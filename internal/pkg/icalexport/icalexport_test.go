package icalexport

import (
	"bytes"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/SergeyKozhin/student-planner-backend/internal/model"
	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	riyadh, err := time.LoadLocation("Asia/Riyadh")
	require.NoError(t, err)

	classes := []*model.Class{
		{
			ID: "c1",
			ClassCreate: model.ClassCreate{
				Name:               "Math",
				Time:               "09:00",
				Days:               []string{"Monday", "Wednesday"},
				Location:           "Hall 3",
				RepetitionInterval: 2,
				Reminders:          []int{0, 10},
				// Sunday: the first meeting is the Monday after
				StartDate: time.Date(2024, 1, 7, 12, 0, 0, 0, riyadh),
			},
		},
		{
			ID: "c2",
			ClassCreate: model.ClassCreate{
				Name:               "Art",
				Time:               "13:30",
				Days:               []string{"Thursday"},
				RepetitionInterval: 1,
				StartDate:          time.Date(2024, 1, 7, 12, 0, 0, 0, riyadh),
			},
		},
		{
			ID: "c3",
			ClassCreate: model.ClassCreate{
				Name: "Broken",
				Time: "whenever",
				Days: []string{"Monday"},
			},
		},
	}

	var buf bytes.Buffer
	now := time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC)
	require.NoError(t, Write(&buf, classes, riyadh, now, 15))

	cal, err := ical.NewDecoder(&buf).Decode()
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 2)

	math := events[0]
	uid, err := math.Props.Text(ical.PropUID)
	require.NoError(t, err)
	assert.Equal(t, "c1@student-planner", uid)

	summary, err := math.Props.Text(ical.PropSummary)
	require.NoError(t, err)
	assert.Equal(t, "Math", summary)

	start, err := math.DateTimeStart(riyadh)
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2024, 1, 8, 9, 0, 0, 0, riyadh)), "start %v", start)

	assert.Equal(t, "FREQ=WEEKLY;INTERVAL=2;WKST=SU;BYDAY=MO,WE", math.Props.Get(ical.PropRecurrenceRule).Value)
	assert.Equal(t, []string{"PT0S", "-PT10M"}, triggers(&math))

	art := events[1]
	assert.Equal(t, "FREQ=WEEKLY;INTERVAL=1;WKST=SU;BYDAY=TH", art.Props.Get(ical.PropRecurrenceRule).Value)
	assert.Equal(t, []string{"-PT15M"}, triggers(&art))
	assert.Nil(t, art.Props.Get(ical.PropLocation))
}

func TestBuildWithoutDefaultAlarm(t *testing.T) {
	cal := Build([]*model.Class{{
		ID: "c1",
		ClassCreate: model.ClassCreate{
			Name:      "Art",
			Time:      "13:30",
			Days:      []string{"Thursday"},
			StartDate: time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC),
		},
	}}, time.UTC, time.Now(), -1)

	events := cal.Events()
	require.Len(t, events, 1)
	assert.Empty(t, triggers(&events[0]))
}

func triggers(event *ical.Event) []string {
	var res []string
	for _, child := range event.Children {
		if child.Name != ical.CompAlarm {
			continue
		}
		res = append(res, child.Props.Get(ical.PropTrigger).Value)
	}
	return res
}
