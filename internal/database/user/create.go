package user

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/student-planner-backend/internal/database"
	"github.com/SergeyKozhin/student-planner-backend/internal/model"
)

// EnsureUser inserts the user on first sight and refreshes profile fields
// carried by the token afterwards.
func (*Repository) EnsureUser(ctx context.Context, q database.Queryable, user *model.User) error {
	qb := database.PSQL.
		Insert(database.UsersTable).
		Columns("id", "full_name", "email", "locale").
		Values(user.ID, user.FullName, user.Email, user.Locale).
		Suffix(`on conflict (id) do update set
			full_name = coalesce(nullif(excluded.full_name, ''), users.full_name),
			email = coalesce(nullif(excluded.email, ''), users.email)`)

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
