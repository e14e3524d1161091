package tasks

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/student-planner-backend/internal/model"
)

// UpdateTask replaces the editable fields of a task. Completion state is
// changed only through CompleteTask and ReopenTask.
func (s *Service) UpdateTask(ctx context.Context, id string, info *model.TaskCreate) (*model.Task, error) {
	old, err := s.GetTask(ctx, info.UserID, id)
	if err != nil {
		return nil, err
	}

	if err := s.prepare(ctx, info); err != nil {
		return nil, err
	}

	task := &model.Task{
		ID:            old.ID,
		Completed:     old.Completed,
		CompletedDate: old.CompletedDate,
		CreatedAt:     old.CreatedAt,
		TaskCreate:    *info,
	}
	if err := s.tasks.UpdateTask(ctx, s.db, task); err != nil {
		return nil, fmt.Errorf("tasksRepository.UpdateTask: %w", err)
	}

	return task, nil
}

func (s *Service) CompleteTask(ctx context.Context, userID, id string) (*model.Task, error) {
	task, err := s.GetTask(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if task.Completed {
		return task, nil
	}

	now := s.now()
	task.Completed = true
	task.CompletedDate = &now

	if err := s.tasks.UpdateTask(ctx, s.db, task); err != nil {
		return nil, fmt.Errorf("tasksRepository.UpdateTask: %w", err)
	}

	return task, nil
}

func (s *Service) ReopenTask(ctx context.Context, userID, id string) (*model.Task, error) {
	task, err := s.GetTask(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	task.Completed = false
	task.CompletedDate = nil

	if err := s.tasks.UpdateTask(ctx, s.db, task); err != nil {
		return nil, fmt.Errorf("tasksRepository.UpdateTask: %w", err)
	}

	return task, nil
}
