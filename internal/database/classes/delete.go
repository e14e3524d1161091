package classes

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/student-planner-backend/internal/database"
	"github.com/SergeyKozhin/student-planner-backend/internal/model"
)

func (*Repository) DeleteClass(ctx context.Context, q database.Queryable, userID, id string) error {
	qb := database.PSQL.
		Delete(database.ClassesTable).
		Where(sq.Eq{"id": id, "user_id": userID})

	tag, err := q.Exec(ctx, qb)
	if err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNoRecord
	}

	return nil
}
