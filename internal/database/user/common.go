package user

import (
	"github.com/SergeyKozhin/student-planner-backend/internal/database"
)

var baseQuery = database.PSQL.
	Select(
		"id",
		"full_name",
		"email",
		"push_token",
		"notify",
		"locale",
	).
	From(database.UsersTable)
