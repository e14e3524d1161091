package tasks

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/student-planner-backend/internal/database"
	"github.com/SergeyKozhin/student-planner-backend/internal/model"
	"github.com/google/uuid"
)

func (*Repository) CreateTask(ctx context.Context, q database.Queryable, task *model.TaskCreate) (string, error) {
	qb := database.PSQL.
		Insert(database.TasksTable).
		Columns(
			"id",
			"user_id",
			"title",
			"description",
			"due_date",
			"class_id",
			"type",
			"priority",
		).
		Values(
			uuid.NewString(),
			task.UserID,
			task.Title,
			task.Description,
			task.DueDate,
			nullableID(task.ClassID),
			task.Type,
			task.Priority,
		).
		Suffix("returning id")

	var id string
	if err := q.Get(ctx, &id, qb); err != nil {
		return "", fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
