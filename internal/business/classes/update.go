package classes

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/student-planner-backend/internal/model"
)

// UpdateClass replaces the editable fields of a class owned by info.UserID.
// The start date is kept unless info sets a new one.
func (s *Service) UpdateClass(ctx context.Context, id string, info *model.ClassCreate) (*model.Class, error) {
	old, err := s.GetClass(ctx, info.UserID, id)
	if err != nil {
		return nil, err
	}

	if info.StartDate.IsZero() {
		info.StartDate = old.StartDate
	}
	if err := prepare(info, s.now().In(s.loc)); err != nil {
		return nil, err
	}
	if info.Color == "" {
		info.Color = old.Color
	}

	class := &model.Class{
		ID:          old.ID,
		CreatedAt:   old.CreatedAt,
		ClassCreate: *info,
	}
	if err := s.classes.UpdateClass(ctx, s.db, class); err != nil {
		return nil, fmt.Errorf("classesRepository.UpdateClass: %w", err)
	}

	return class, nil
}
