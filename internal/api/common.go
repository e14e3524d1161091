package api

import (
	"time"

	"github.com/SergeyKozhin/student-planner-backend/internal/business/classes"
	"github.com/SergeyKozhin/student-planner-backend/internal/calendar"
	"github.com/SergeyKozhin/student-planner-backend/internal/model"
)

type userResp struct {
	ID       string `json:"id"`
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Notify   bool   `json:"notify"`
	Locale   string `json:"locale"`
	HasPush  bool   `json:"has_push_token"`
}

func mapToUserResp(user *model.User) (*userResp, error) {
	return &userResp{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Notify:   user.Notify,
		Locale:   user.Locale,
		HasPush:  user.PushToken != "",
	}, nil
}

type classResp struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Time               string    `json:"time"`
	TimeDisplay        string    `json:"time_display"`
	Days               []string  `json:"days"`
	DaysArabic         []string  `json:"days_arabic"`
	Location           string    `json:"location,omitempty"`
	RepetitionInterval int       `json:"repetition_interval"`
	Reminders          []int     `json:"reminders"`
	Color              string    `json:"color"`
	StartDate          string    `json:"start_date"`
	CreatedAt          time.Time `json:"created_at"`
}

func mapToClassResp(c *model.Class) (*classResp, error) {
	display := c.Time
	if h, m, ok := calendar.ParseClockTime(c.Time); ok {
		display = calendar.FormatClock12(h, m)
	}

	arabic := make([]string, 0, len(c.Days))
	for _, d := range c.Days {
		if wd, ok := calendar.ParseWeekday(d); ok {
			arabic = append(arabic, wd.Arabic())
		}
	}

	reminders := c.Reminders
	if reminders == nil {
		reminders = []int{}
	}

	return &classResp{
		ID:                 c.ID,
		Name:               c.Name,
		Time:               c.Time,
		TimeDisplay:        display,
		Days:               c.Days,
		DaysArabic:         arabic,
		Location:           c.Location,
		RepetitionInterval: c.RepetitionInterval,
		Reminders:          reminders,
		Color:              c.Color,
		StartDate:          calendar.FormatDateOnly(c.StartDate),
		CreatedAt:          c.CreatedAt,
	}, nil
}

func mapToClassesResp(cs []*model.Class) []*classResp {
	res, _ := mapSlice(cs, mapToClassResp)
	return res
}

type occurrenceResp struct {
	Class *classResp `json:"class"`
	Start time.Time  `json:"start"`
}

func mapToOccurrenceResp(o *model.Occurrence) (*occurrenceResp, error) {
	c, _ := mapToClassResp(o.Class)
	return &occurrenceResp{Class: c, Start: o.Start}, nil
}

type dayScheduleResp struct {
	calendar.DayDescriptor
	Classes []*classResp `json:"classes"`
}

func mapToDayScheduleResp(d *classes.DaySchedule) (*dayScheduleResp, error) {
	return &dayScheduleResp{
		DayDescriptor: d.Day,
		Classes:       mapToClassesResp(d.Classes),
	}, nil
}

type taskResp struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	DueDate       time.Time  `json:"due_date"`
	ClassID       string     `json:"class_id,omitempty"`
	Type          string     `json:"type"`
	Priority      string     `json:"priority"`
	Completed     bool       `json:"completed"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func mapToTaskResp(t *model.Task) (*taskResp, error) {
	return &taskResp{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		DueDate:       t.DueDate,
		ClassID:       t.ClassID,
		Type:          string(t.Type),
		Priority:      string(t.Priority),
		Completed:     t.Completed,
		CompletedDate: t.CompletedDate,
		CreatedAt:     t.CreatedAt,
	}, nil
}

func mapToTasksResp(ts []*model.Task) []*taskResp {
	res, _ := mapSlice(ts, mapToTaskResp)
	return res
}
