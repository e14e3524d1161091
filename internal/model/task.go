package model

import "time"

type TaskType string

const (
	TaskTypeHomework   TaskType = "homework"
	TaskTypeAssignment TaskType = "assignment"
	TaskTypeExam       TaskType = "exam"
	TaskTypeProject    TaskType = "project"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

type TaskCreate struct {
	UserID      string
	Title       string
	Description string
	DueDate     time.Time
	ClassID     string
	Type        TaskType
	Priority    TaskPriority
}

type Task struct {
	ID            string
	Completed     bool
	CompletedDate *time.Time
	CreatedAt     time.Time
	TaskCreate
}

type TasksFilter struct {
	UserIDs     []string
	DueFrom     *time.Time
	DueTo       *time.Time
	OnlyPending bool
}
