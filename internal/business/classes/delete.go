package classes

import (
	"context"
	"fmt"
)

func (s *Service) DeleteClass(ctx context.Context, userID, id string) error {
	if err := s.classes.DeleteClass(ctx, s.db, userID, id); err != nil {
		return fmt.Errorf("classesRepository.DeleteClass: %w", err)
	}

	return nil
}
