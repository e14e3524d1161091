// Package icalexport renders a user's classes as an iCalendar feed that
// calendar apps can subscribe to.
package icalexport

import (
	"fmt"
	"io"
	"time"

	"github.com/SergeyKozhin/student-planner-backend/internal/calendar"
	"github.com/SergeyKozhin/student-planner-backend/internal/model"
	"github.com/emersion/go-ical"
	"github.com/teambition/rrule-go"
)

const (
	productID     = "-//Student Planner//Classes//EN"
	uidDomain     = "student-planner"
	classDuration = time.Hour
	refresh       = 12 * time.Hour
)

// Build creates one weekly recurring event per class, starting at its
// first meeting, with a DISPLAY alarm per lead time. Classes without lead
// times get defaultLead; a negative defaultLead leaves them without alarms.
// Classes whose recurrence cannot be built are left out.
func Build(classes []*model.Class, loc *time.Location, now time.Time, defaultLead int) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")
	cal.Props.SetText("X-WR-CALNAME", "Classes")
	cal.Props.SetText("X-WR-TIMEZONE", loc.String())

	refreshProp := ical.NewProp("REFRESH-INTERVAL")
	refreshProp.SetDuration(refresh)
	cal.Props.Set(refreshProp)

	for _, c := range classes {
		event, ok := buildEvent(c, loc, now, defaultLead)
		if !ok {
			continue
		}
		cal.Children = append(cal.Children, event.Component)
	}

	return cal
}

func buildEvent(c *model.Class, loc *time.Location, now time.Time, defaultLead int) (*ical.Event, bool) {
	opt, err := calendar.WeeklyOption(c, loc)
	if err != nil {
		return nil, false
	}

	rule, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, false
	}
	first := rule.After(opt.Dtstart, true)
	if first.IsZero() {
		return nil, false
	}

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, fmt.Sprintf("%s@%s", c.ID, uidDomain))
	event.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
	event.Props.SetDateTime(ical.PropDateTimeStart, first)
	event.Props.SetText(ical.PropSummary, c.Name)
	if c.Location != "" {
		event.Props.SetText(ical.PropLocation, c.Location)
	}

	durationProp := ical.NewProp(ical.PropDuration)
	durationProp.SetDuration(classDuration)
	event.Props.Set(durationProp)

	// set manually so the value carries no VALUE parameter
	ruleProp := ical.NewProp(ical.PropRecurrenceRule)
	ruleProp.Value = opt.RRuleString()
	event.Props.Set(ruleProp)

	leads := c.Reminders
	if len(leads) == 0 && defaultLead >= 0 {
		leads = []int{defaultLead}
	}
	for _, lead := range leads {
		addAlarm(event, lead, c.Name)
	}

	return event, true
}

func addAlarm(event *ical.Event, leadMinutes int, description string) {
	alarm := ical.NewComponent(ical.CompAlarm)
	alarm.Props.SetText(ical.PropAction, "DISPLAY")
	alarm.Props.SetText(ical.PropDescription, description)

	triggerProp := ical.NewProp(ical.PropTrigger)
	triggerProp.Value = trigger(leadMinutes)
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}

func trigger(leadMinutes int) string {
	if leadMinutes <= 0 {
		return "PT0S"
	}
	return fmt.Sprintf("-PT%dM", leadMinutes)
}

// Write encodes the classes' calendar to w.
func Write(w io.Writer, classes []*model.Class, loc *time.Location, now time.Time, defaultLead int) error {
	if err := ical.NewEncoder(w).Encode(Build(classes, loc, now, defaultLead)); err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}

	return nil
}
