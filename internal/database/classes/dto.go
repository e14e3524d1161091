package classes

import (
	"time"

	"github.com/SergeyKozhin/student-planner-backend/internal/model"
)

type classDTO struct {
	ID                 string
	UserID             string
	Name               string
	Time               string
	Days               []string
	Location           string
	RepetitionInterval int
	Reminders          []int64
	Color              string
	StartDate          time.Time
	CreatedAt          time.Time
}

func mapToClass(dto *classDTO) *model.Class {
	reminders := make([]int, len(dto.Reminders))
	for i, r := range dto.Reminders {
		reminders[i] = int(r)
	}

	return &model.Class{
		ID:        dto.ID,
		CreatedAt: dto.CreatedAt,
		ClassCreate: model.ClassCreate{
			UserID:             dto.UserID,
			Name:               dto.Name,
			Time:               dto.Time,
			Days:               dto.Days,
			Location:           dto.Location,
			RepetitionInterval: dto.RepetitionInterval,
			Reminders:          reminders,
			Color:              dto.Color,
			StartDate:          dto.StartDate,
		},
	}
}

func mapReminders(reminders []int) []int64 {
	res := make([]int64, len(reminders))
	for i, r := range reminders {
		res[i] = int64(r)
	}
	return res
}
