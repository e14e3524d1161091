package tasks

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/student-planner-backend/internal/database"
	"github.com/SergeyKozhin/student-planner-backend/internal/model"
)

func (*Repository) GetTaskByID(ctx context.Context, q database.Queryable, id string) (*model.Task, error) {
	qb := baseQuery.
		Where(sq.Eq{"id": id})

	var dto taskDTO
	if err := q.Get(ctx, &dto, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToTask(&dto), nil
}

func (*Repository) GetTasks(ctx context.Context, q database.Queryable, filter model.TasksFilter) ([]*model.Task, error) {
	qb := baseQuery.
		OrderBy("due_date", "created_at")

	if len(filter.UserIDs) != 0 {
		qb = qb.Where(sq.Eq{"user_id": filter.UserIDs})
	}
	if filter.DueFrom != nil {
		qb = qb.Where(sq.GtOrEq{"due_date": *filter.DueFrom})
	}
	if filter.DueTo != nil {
		qb = qb.Where(sq.Lt{"due_date": *filter.DueTo})
	}
	if filter.OnlyPending {
		qb = qb.Where(sq.Eq{"completed": false})
	}

	var dtos []*taskDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Task, len(dtos))
	for i, d := range dtos {
		res[i] = mapToTask(d)
	}

	return res, nil
}
