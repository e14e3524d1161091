package user

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/student-planner-backend/internal/database"
	"github.com/SergeyKozhin/student-planner-backend/internal/model"
)

func (*Repository) UpdateUser(ctx context.Context, q database.Queryable, id string, update *model.UserUpdate) error {
	qb := database.PSQL.
		Update(database.UsersTable).
		Where(sq.Eq{"id": id})

	set := false
	if update.PushToken != nil {
		qb = qb.Set("push_token", *update.PushToken)
		set = true
	}
	if update.Notify != nil {
		qb = qb.Set("notify", *update.Notify)
		set = true
	}
	if update.Locale != nil {
		qb = qb.Set("locale", *update.Locale)
		set = true
	}

	if !set {
		return nil
	}

	tag, err := q.Exec(ctx, qb)
	if err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNoRecord
	}

	return nil
}
