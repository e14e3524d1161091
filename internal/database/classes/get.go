package classes

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/student-planner-backend/internal/database"
	"github.com/SergeyKozhin/student-planner-backend/internal/model"
)

func (*Repository) GetClassByID(ctx context.Context, q database.Queryable, id string) (*model.Class, error) {
	qb := baseQuery.
		Where(sq.Eq{"id": id})

	var dto classDTO
	if err := q.Get(ctx, &dto, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToClass(&dto), nil
}

func (*Repository) GetClasses(ctx context.Context, q database.Queryable, filter model.ClassesFilter) ([]*model.Class, error) {
	qb := baseQuery.
		OrderBy("time", "name")

	if len(filter.UserIDs) != 0 {
		qb = qb.Where(sq.Eq{"user_id": filter.UserIDs})
	}
	if filter.WithReminds {
		qb = qb.Where("cardinality(reminders) > 0")
	}

	var dtos []*classDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Class, len(dtos))
	for i, d := range dtos {
		res[i] = mapToClass(d)
	}

	return res, nil
}
