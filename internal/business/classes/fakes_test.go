package classes

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/student-planner-backend/internal/database"
	"github.com/SergeyKozhin/student-planner-backend/internal/model"
	"github.com/jackc/pgx/v4"
)

type fakeDB struct {
	database.PGX
	commits   int
	rollbacks int
}

func (d *fakeDB) BeginTx(context.Context, *pgx.TxOptions) (database.Tx, error) {
	return &fakeTx{db: d}, nil
}

type fakeTx struct {
	database.Tx
	db *fakeDB
}

func (t *fakeTx) Commit(context.Context) error {
	t.db.commits++
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	t.db.rollbacks++
	return nil
}

type fakeClassesRepository struct {
	order   []string
	classes map[string]*model.Class
	failOn  string
}

func newFakeClassesRepository(classes ...*model.Class) *fakeClassesRepository {
	r := &fakeClassesRepository{classes: make(map[string]*model.Class)}
	for _, c := range classes {
		r.order = append(r.order, c.ID)
		r.classes[c.ID] = c
	}
	return r
}

func (r *fakeClassesRepository) CreateClass(_ context.Context, _ database.Queryable, class *model.ClassCreate) (string, error) {
	if r.failOn != "" && class.Name == r.failOn {
		return "", fmt.Errorf("insert %q failed", class.Name)
	}

	id := fmt.Sprintf("class-%d", len(r.order)+1)
	r.order = append(r.order, id)
	r.classes[id] = &model.Class{ID: id, ClassCreate: *class}
	return id, nil
}

func (r *fakeClassesRepository) GetClassByID(_ context.Context, _ database.Queryable, id string) (*model.Class, error) {
	c, ok := r.classes[id]
	if !ok {
		return nil, model.ErrNoRecord
	}
	return c, nil
}

func (r *fakeClassesRepository) GetClasses(_ context.Context, _ database.Queryable, filter model.ClassesFilter) ([]*model.Class, error) {
	var res []*model.Class
	for _, id := range r.order {
		c, ok := r.classes[id]
		if !ok {
			continue
		}
		if len(filter.UserIDs) != 0 && !contains(filter.UserIDs, c.UserID) {
			continue
		}
		res = append(res, c)
	}
	return res, nil
}

func (r *fakeClassesRepository) UpdateClass(_ context.Context, _ database.Queryable, class *model.Class) error {
	old, ok := r.classes[class.ID]
	if !ok || old.UserID != class.UserID {
		return model.ErrNoRecord
	}
	r.classes[class.ID] = class
	return nil
}

func (r *fakeClassesRepository) DeleteClass(_ context.Context, _ database.Queryable, userID, id string) error {
	old, ok := r.classes[id]
	if !ok || old.UserID != userID {
		return model.ErrNoRecord
	}
	delete(r.classes, id)
	return nil
}

func contains(list []string, s string) bool {
	for _, l := range list {
		if l == s {
			return true
		}
	}
	return false
}
