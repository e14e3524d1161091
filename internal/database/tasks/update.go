package tasks

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/student-planner-backend/internal/database"
	"github.com/SergeyKozhin/student-planner-backend/internal/model"
)

func (*Repository) UpdateTask(ctx context.Context, q database.Queryable, task *model.Task) error {
	qb := database.PSQL.
		Update(database.TasksTable).
		SetMap(map[string]interface{}{
			"title":          task.Title,
			"description":    task.Description,
			"due_date":       task.DueDate,
			"class_id":       nullableID(task.ClassID),
			"type":           task.Type,
			"priority":       task.Priority,
			"completed":      task.Completed,
			"completed_date": task.CompletedDate,
		}).
		Where(sq.Eq{"id": task.ID, "user_id": task.UserID})

	tag, err := q.Exec(ctx, qb)
	if err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNoRecord
	}

	return nil
}
