package tasks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyKozhin/student-planner-backend/internal/model"
	"github.com/SergeyKozhin/student-planner-backend/internal/pkg/validator"
)

var (
	taskTypes = []model.TaskType{
		model.TaskTypeHomework,
		model.TaskTypeAssignment,
		model.TaskTypeExam,
		model.TaskTypeProject,
	}
	taskPriorities = []model.TaskPriority{
		model.TaskPriorityLow,
		model.TaskPriorityMedium,
		model.TaskPriorityHigh,
	}
)

func (s *Service) prepare(ctx context.Context, t *model.TaskCreate) error {
	v := validator.New()

	t.Title = strings.TrimSpace(t.Title)
	t.Description = strings.TrimSpace(t.Description)
	if t.Type == "" {
		t.Type = model.TaskTypeHomework
	}
	if t.Priority == "" {
		t.Priority = model.TaskPriorityMedium
	}

	v.Check(t.Title != "", "title", "title must be provided")
	v.Check(len([]rune(t.Title)) <= 200, "title", "title must not be more than 200 characters long")
	v.Check(!t.DueDate.IsZero(), "due_date", "due date must be provided")
	v.Check(validator.In(t.Type, taskTypes...), "type", "type must be one of homework, assignment, exam, project")
	v.Check(validator.In(t.Priority, taskPriorities...), "priority", "priority must be one of low, medium, high")

	if t.ClassID != "" {
		class, err := s.classes.GetClassByID(ctx, s.db, t.ClassID)
		switch {
		case errors.Is(err, model.ErrNoRecord):
			v.AddError("class_id", "class does not exist")
		case err != nil:
			return fmt.Errorf("classesRepository.GetClassByID: %w", err)
		default:
			v.Check(class.UserID == t.UserID, "class_id", "class does not exist")
		}
	}

	if !v.Valid() {
		return &model.ValidationError{Errors: v.Errors}
	}

	return nil
}
