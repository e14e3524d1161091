package classes

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/student-planner-backend/internal/model"
	"github.com/SergeyKozhin/student-planner-backend/internal/timetable"
)

func (s *Service) CreateClass(ctx context.Context, info *model.ClassCreate) (*model.Class, error) {
	if err := prepare(info, s.now().In(s.loc)); err != nil {
		return nil, err
	}

	if info.Color == "" {
		existing, err := s.classes.GetClasses(ctx, s.db, model.ClassesFilter{UserIDs: []string{info.UserID}})
		if err != nil {
			return nil, fmt.Errorf("classesRepository.GetClasses: %w", err)
		}
		info.Color = timetable.PaletteColor(len(existing))
	}

	id, err := s.classes.CreateClass(ctx, s.db, info)
	if err != nil {
		return nil, fmt.Errorf("classesRepository.CreateClass: %w", err)
	}

	return &model.Class{
		ID:          id,
		CreatedAt:   s.now(),
		ClassCreate: *info,
	}, nil
}
