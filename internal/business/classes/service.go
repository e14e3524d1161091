package classes

import (
	"context"
	"time"

	"github.com/SergeyKozhin/student-planner-backend/internal/database"
	"github.com/SergeyKozhin/student-planner-backend/internal/model"
)

type Service struct {
	db      database.PGX
	classes classesRepository
	loc     *time.Location
	now     func() time.Time
}

type classesRepository interface {
	CreateClass(ctx context.Context, q database.Queryable, class *model.ClassCreate) (string, error)
	GetClassByID(ctx context.Context, q database.Queryable, id string) (*model.Class, error)
	GetClasses(ctx context.Context, q database.Queryable, filter model.ClassesFilter) ([]*model.Class, error)
	UpdateClass(ctx context.Context, q database.Queryable, class *model.Class) error
	DeleteClass(ctx context.Context, q database.Queryable, userID, id string) error
}

// NewService creates the class service. Class times are read in loc.
func NewService(db database.PGX, classes classesRepository, loc *time.Location) *Service {
	return &Service{
		db:      db,
		classes: classes,
		loc:     loc,
		now:     time.Now,
	}
}

func (s *Service) Location() *time.Location {
	return s.loc
}
