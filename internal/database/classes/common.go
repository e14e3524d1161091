package classes

import "github.com/SergeyKozhin/student-planner-backend/internal/database"

var baseQuery = database.PSQL.
	Select(
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
		"created_at",
	).
	From(database.ClassesTable)
