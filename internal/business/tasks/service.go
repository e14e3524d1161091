package tasks

import (
	"context"
	"time"

	"github.com/SergeyKozhin/student-planner-backend/internal/database"
	"github.com/SergeyKozhin/student-planner-backend/internal/model"
)

type Service struct {
	db      database.PGX
	tasks   tasksRepository
	classes classesRepository
	now     func() time.Time
}

type tasksRepository interface {
	CreateTask(ctx context.Context, q database.Queryable, task *model.TaskCreate) (string, error)
	GetTaskByID(ctx context.Context, q database.Queryable, id string) (*model.Task, error)
	GetTasks(ctx context.Context, q database.Queryable, filter model.TasksFilter) ([]*model.Task, error)
	UpdateTask(ctx context.Context, q database.Queryable, task *model.Task) error
	DeleteTask(ctx context.Context, q database.Queryable, userID, id string) error
}

type classesRepository interface {
	GetClassByID(ctx context.Context, q database.Queryable, id string) (*model.Class, error)
}

func NewService(db database.PGX, tasks tasksRepository, classes classesRepository) *Service {
	return &Service{
		db:      db,
		tasks:   tasks,
		classes: classes,
		now:     time.Now,
	}
}
