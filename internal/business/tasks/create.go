package tasks

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/student-planner-backend/internal/model"
)

func (s *Service) CreateTask(ctx context.Context, info *model.TaskCreate) (*model.Task, error) {
	if err := s.prepare(ctx, info); err != nil {
		return nil, err
	}

	id, err := s.tasks.CreateTask(ctx, s.db, info)
	if err != nil {
		return nil, fmt.Errorf("tasksRepository.CreateTask: %w", err)
	}

	return &model.Task{
		ID:         id,
		CreatedAt:  s.now(),
		TaskCreate: *info,
	}, nil
}
