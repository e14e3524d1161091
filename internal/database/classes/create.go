package classes

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/student-planner-backend/internal/database"
	"github.com/SergeyKozhin/student-planner-backend/internal/model"
	"github.com/google/uuid"
)

func (*Repository) CreateClass(ctx context.Context, q database.Queryable, class *model.ClassCreate) (string, error) {
	qb := database.PSQL.
		Insert(database.ClassesTable).
		Columns(
			"id",
			"user_id",
			"name",
			"time",
			"days",
			"location",
			"repetition_interval",
			"reminders",
			"color",
			"start_date",
		).
		Values(
			uuid.NewString(),
			class.UserID,
			class.Name,
			class.Time,
			class.Days,
			class.Location,
			class.RepetitionInterval,
			mapReminders(class.Reminders),
			class.Color,
			class.StartDate,
		).
		Suffix("returning id")

	var id string
	if err := q.Get(ctx, &id, qb); err != nil {
		return "", fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
