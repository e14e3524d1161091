package model

import "time"

// ClassCreate holds the user editable part of a recurring class.
// Time is stored as 24-hour HH:MM, Days as canonical English weekday names.
type ClassCreate struct {
	UserID             string
	Name               string
	Time               string
	Days               []string
	Location           string
	RepetitionInterval int
	Reminders          []int
	Color              string
	StartDate          time.Time
}

type Class struct {
	ID        string
	CreatedAt time.Time
	ClassCreate
}

type ClassesFilter struct {
	UserIDs     []string
	WithReminds bool
}

// Occurrence is a single concrete meeting of a recurring class.
type Occurrence struct {
	Class *Class
	Start time.Time
}
