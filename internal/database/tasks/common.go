package tasks

import "github.com/SergeyKozhin/student-planner-backend/internal/database"

var baseQuery = database.PSQL.
	Select(
		"id",
		"user_id",
		"title",
		"description",
		"due_date",
		"completed",
		"completed_date",
		"class_id",
		"type",
		"priority",
		"created_at",
	).
	From(database.TasksTable)
