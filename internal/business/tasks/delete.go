package tasks

import (
	"context"
	"fmt"
)

func (s *Service) DeleteTask(ctx context.Context, userID, id string) error {
	if err := s.tasks.DeleteTask(ctx, s.db, userID, id); err != nil {
		return fmt.Errorf("tasksRepository.DeleteTask: %w", err)
	}

	return nil
}
