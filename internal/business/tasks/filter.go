package tasks

import (
	"math"
	"time"

	"github.com/SergeyKozhin/student-planner-backend/internal/model"
)

// Overdue returns pending tasks whose due date is before now.
func Overdue(tasks []*model.Task, now time.Time) []*model.Task {
	var res []*model.Task
	for _, t := range tasks {
		if !t.Completed && t.DueDate.Before(now) {
			res = append(res, t)
		}
	}

	return res
}

// DueSoon returns pending tasks due between now and now plus days.
func DueSoon(tasks []*model.Task, now time.Time, days int) []*model.Task {
	limit := now.AddDate(0, 0, days)

	var res []*model.Task
	for _, t := range tasks {
		if t.Completed || t.DueDate.Before(now) || t.DueDate.After(limit) {
			continue
		}
		res = append(res, t)
	}

	return res
}

// CompletionPercentage is the rounded share of completed tasks, 0 for none.
func CompletionPercentage(tasks []*model.Task) int {
	if len(tasks) == 0 {
		return 0
	}

	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}

	return int(math.Round(float64(completed) * 100 / float64(len(tasks))))
}
