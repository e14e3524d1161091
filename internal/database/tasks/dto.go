package tasks

import (
	"time"

	"github.com/SergeyKozhin/student-planner-backend/internal/model"
)

type taskDTO struct {
	ID            string
	UserID        string
	Title         string
	Description   string
	DueDate       time.Time
	Completed     bool
	CompletedDate *time.Time
	ClassID       *string
	Type          string
	Priority      string
	CreatedAt     time.Time
}

func mapToTask(dto *taskDTO) *model.Task {
	var classID string
	if dto.ClassID != nil {
		classID = *dto.ClassID
	}

	return &model.Task{
		ID:            dto.ID,
		Completed:     dto.Completed,
		CompletedDate: dto.CompletedDate,
		CreatedAt:     dto.CreatedAt,
		TaskCreate: model.TaskCreate{
			UserID:      dto.UserID,
			Title:       dto.Title,
			Description: dto.Description,
			DueDate:     dto.DueDate,
			ClassID:     classID,
			Type:        model.TaskType(dto.Type),
			Priority:    model.TaskPriority(dto.Priority),
		},
	}
}

func nullableID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
