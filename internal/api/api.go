package api

import (
	"context"
	"net/http"
	"time"

	"github.com/SergeyKozhin/student-planner-backend/internal/business/classes"
	"github.com/SergeyKozhin/student-planner-backend/internal/business/tasks"
	"github.com/SergeyKozhin/student-planner-backend/internal/calendar"
	"github.com/SergeyKozhin/student-planner-backend/internal/database"
	"github.com/SergeyKozhin/student-planner-backend/internal/model"
	"github.com/SergeyKozhin/student-planner-backend/internal/pkg/fcm"
	"github.com/SergeyKozhin/student-planner-backend/internal/timetable"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Api struct {
	handler http.Handler
	logger  *zap.SugaredLogger
	conf    Config
	now     func() time.Time

	jwts jwtManager

	db             database.PGX
	users          userRepository
	classesService classesService
	tasksService   tasksService
	fcm            fcmService
}

// Config holds the request handling settings.
type Config struct {
	Location      *time.Location
	DefaultLead   int
	DefaultLocale string
	MaxUploadSize int64
}

type jwtManager interface {
	GetIdFromToken(token string) (string, error)
}

type userRepository interface {
	EnsureUser(ctx context.Context, q database.Queryable, user *model.User) error
	GetUserByID(ctx context.Context, q database.Queryable, id string) (*model.User, error)
	UpdateUser(ctx context.Context, q database.Queryable, id string, update *model.UserUpdate) error
}

type classesService interface {
	CreateClass(ctx context.Context, info *model.ClassCreate) (*model.Class, error)
	GetClass(ctx context.Context, userID, id string) (*model.Class, error)
	ListClasses(ctx context.Context, userID string) ([]*model.Class, error)
	UpdateClass(ctx context.Context, id string, info *model.ClassCreate) (*model.Class, error)
	DeleteClass(ctx context.Context, userID, id string) error
	ClassesOnDate(ctx context.Context, userID string, date time.Time, bucket calendar.TimeBucket) ([]*model.Class, error)
	WeekView(ctx context.Context, userID string, ref time.Time) ([]*classes.DaySchedule, error)
	Occurrences(ctx context.Context, userID string, from, to time.Time) ([]*model.Occurrence, error)
	NextClass(ctx context.Context, userID string) (*model.Occurrence, error)
	ImportCandidates(ctx context.Context, userID string, candidates []timetable.Candidate, leads []int) (*classes.ImportResult, error)
}

type tasksService interface {
	CreateTask(ctx context.Context, info *model.TaskCreate) (*model.Task, error)
	GetTask(ctx context.Context, userID, id string) (*model.Task, error)
	ListTasks(ctx context.Context, userID string, onlyPending bool) ([]*model.Task, error)
	UpdateTask(ctx context.Context, id string, info *model.TaskCreate) (*model.Task, error)
	CompleteTask(ctx context.Context, userID, id string) (*model.Task, error)
	ReopenTask(ctx context.Context, userID, id string) (*model.Task, error)
	DeleteTask(ctx context.Context, userID, id string) error
	ListOverdue(ctx context.Context, userID string) ([]*model.Task, error)
	ListDueSoon(ctx context.Context, userID string, days int) ([]*model.Task, error)
	GetStats(ctx context.Context, userID string) (*tasks.Stats, error)
}

type fcmService interface {
	SendMessage(ctx context.Context, m *fcm.Message) error
}

func NewApi(
	logger *zap.SugaredLogger,
	conf Config,
	jwts jwtManager,
	db database.PGX,
	users userRepository,
	classesService classesService,
	tasksService tasksService,
	fcm fcmService,
) (*Api, error) {
	a := &Api{
		logger:         logger,
		conf:           conf,
		now:            time.Now,
		jwts:           jwts,
		db:             db,
		users:          users,
		classesService: classesService,
		tasksService:   tasksService,
		fcm:            fcm,
	}
	a.setupHandler()

	return a, nil
}

func (a *Api) setupHandler() {
	middleware.DefaultLogger = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(middleware.Logger, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.With(a.auth, a.userCtx).Route("/", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Get("/", a.getUserHandler)
			r.Put("/", a.updateUserHandler)
			r.Post("/test-notification", a.sendTestNotificationHandler)
		})

		r.Route("/classes", func(r chi.Router) {
			r.Get("/", a.getClassesHandler)
			r.Post("/", a.createClassHandler)
			r.Get("/{classID}", a.getClassHandler)
			r.Put("/{classID}", a.updateClassHandler)
			r.Delete("/{classID}", a.deleteClassHandler)
		})

		r.Route("/schedule", func(r chi.Router) {
			r.Get("/day", a.getDayScheduleHandler)
			r.Get("/week", a.getWeekScheduleHandler)
			r.Get("/next", a.getNextClassHandler)
			r.Get("/occurrences", a.getOccurrencesHandler)
		})

		r.Route("/timetable", func(r chi.Router) {
			r.Post("/parse", a.parseTimetableHandler)
			r.Post("/ics", a.parseICSHandler)
			r.Post("/import", a.importTimetableHandler)
		})

		r.Get("/calendar.ics", a.getCalendarFeedHandler)

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", a.getTasksHandler)
			r.Post("/", a.createTaskHandler)
			r.Get("/overdue", a.getOverdueTasksHandler)
			r.Get("/due-soon", a.getDueSoonTasksHandler)
			r.Get("/stats", a.getTaskStatsHandler)
			r.Get("/{taskID}", a.getTaskHandler)
			r.Put("/{taskID}", a.updateTaskHandler)
			r.Delete("/{taskID}", a.deleteTaskHandler)
			r.Post("/{taskID}/complete", a.completeTaskHandler)
			r.Post("/{taskID}/reopen", a.reopenTaskHandler)
		})
	})

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}
