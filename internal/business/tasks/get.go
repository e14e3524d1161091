package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyKozhin/student-planner-backend/internal/model"
)

func (s *Service) GetTask(ctx context.Context, userID, id string) (*model.Task, error) {
	task, err := s.tasks.GetTaskByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("tasksRepository.GetTaskByID: %w", err)
	}

	if task.UserID != userID {
		return nil, model.ErrNoRecord
	}

	return task, nil
}

// ListTasks returns the user's tasks ordered by due date.
func (s *Service) ListTasks(ctx context.Context, userID string, onlyPending bool) ([]*model.Task, error) {
	tasks, err := s.tasks.GetTasks(ctx, s.db, model.TasksFilter{
		UserIDs:     []string{userID},
		OnlyPending: onlyPending,
	})
	if err != nil {
		return nil, fmt.Errorf("tasksRepository.GetTasks: %w", err)
	}

	return tasks, nil
}

func (s *Service) ListOverdue(ctx context.Context, userID string) ([]*model.Task, error) {
	tasks, err := s.ListTasks(ctx, userID, true)
	if err != nil {
		return nil, err
	}

	return Overdue(tasks, s.now()), nil
}

func (s *Service) ListDueSoon(ctx context.Context, userID string, days int) ([]*model.Task, error) {
	tasks, err := s.ListTasks(ctx, userID, true)
	if err != nil {
		return nil, err
	}

	return DueSoon(tasks, s.now(), days), nil
}

type Stats struct {
	Total      int
	Completed  int
	Overdue    int
	Percentage int
}

func (s *Service) GetStats(ctx context.Context, userID string) (*Stats, error) {
	tasks, err := s.ListTasks(ctx, userID, false)
	if err != nil {
		return nil, err
	}

	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}

	return &Stats{
		Total:      len(tasks),
		Completed:  completed,
		Overdue:    len(Overdue(tasks, s.now())),
		Percentage: CompletionPercentage(tasks),
	}, nil
}

// DeadlinesBetween returns pending tasks of the given users due in [from, to).
func (s *Service) DeadlinesBetween(ctx context.Context, userIDs []string, from, to time.Time) ([]*model.Task, error) {
	tasks, err := s.tasks.GetTasks(ctx, s.db, model.TasksFilter{
		UserIDs:     userIDs,
		DueFrom:     &from,
		DueTo:       &to,
		OnlyPending: true,
	})
	if err != nil {
		return nil, fmt.Errorf("tasksRepository.GetTasks: %w", err)
	}

	return tasks, nil
}
