package classes

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/student-planner-backend/internal/database"
	"github.com/SergeyKozhin/student-planner-backend/internal/model"
)

func (*Repository) UpdateClass(ctx context.Context, q database.Queryable, class *model.Class) error {
	qb := database.PSQL.
		Update(database.ClassesTable).
		SetMap(map[string]interface{}{
			"name":                class.Name,
			"time":                class.Time,
			"days":                class.Days,
			"location":            class.Location,
			"repetition_interval": class.RepetitionInterval,
			"reminders":           mapReminders(class.Reminders),
			"color":               class.Color,
			"start_date":          class.StartDate,
		}).
		Where(sq.Eq{"id": class.ID, "user_id": class.UserID})

	tag, err := q.Exec(ctx, qb)
	if err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNoRecord
	}

	return nil
}
