package user

import (
	"github.com/SergeyKozhin/student-planner-backend/internal/model"
)

type userDTO struct {
	ID        string
	FullName  string
	Email     string
	PushToken string
	Notify    bool
	Locale    string
}

func mapToUser(dto *userDTO) *model.User {
	return &model.User{
		ID:        dto.ID,
		FullName:  dto.FullName,
		Email:     dto.Email,
		PushToken: dto.PushToken,
		Notify:    dto.Notify,
		Locale:    dto.Locale,
	}
}
