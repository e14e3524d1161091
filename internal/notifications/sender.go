package notifications

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/SergeyKozhin/student-planner-backend/internal/database"
	"github.com/SergeyKozhin/student-planner-backend/internal/model"
	"github.com/SergeyKozhin/student-planner-backend/internal/pkg/fcm"
	"github.com/SergeyKozhin/student-planner-backend/internal/reminder"
	"github.com/robfig/cron/v3"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

// maxCatchUp bounds how far back a tick looks after the sender was idle.
const maxCatchUp = 10 * time.Minute

type Config struct {
	// DefaultLead applies to classes without their own lead times.
	// A negative value disables reminders for such classes.
	DefaultLead int
	TaskLead    time.Duration
	LogTTL      time.Duration
	Location    *time.Location
}

type Sender struct {
	db       database.PGX
	logger   *zap.SugaredLogger
	users    usersRepository
	classes  classesRepository
	tasks    tasksService
	sent     sentLog
	fcm      fcmService
	messages *Messages
	conf     Config
	now      func() time.Time

	mu   sync.Mutex
	last time.Time
}

type usersRepository interface {
	GetNotifiableUsers(ctx context.Context, q database.Queryable) ([]*model.User, error)
}

type classesRepository interface {
	GetClasses(ctx context.Context, q database.Queryable, filter model.ClassesFilter) ([]*model.Class, error)
}

type tasksService interface {
	DeadlinesBetween(ctx context.Context, userIDs []string, from, to time.Time) ([]*model.Task, error)
}

type sentLog interface {
	MarkSent(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

type fcmService interface {
	SendMessageBatch(ctx context.Context, ms []*fcm.Message) (int, error)
}

func NewSender(
	db database.PGX,
	logger *zap.SugaredLogger,
	users usersRepository,
	classes classesRepository,
	tasks tasksService,
	sent sentLog,
	fcm fcmService,
	messages *Messages,
	conf Config,
) *Sender {
	return &Sender{
		db:       db,
		logger:   logger,
		users:    users,
		classes:  classes,
		tasks:    tasks,
		sent:     sent,
		fcm:      fcm,
		messages: messages,
		conf:     conf,
		now:      time.Now,
	}
}

// Start schedules Tick with the cron spec and runs a first tick right away.
// The scheduler is stopped through closer.
func (s *Sender) Start(ctx context.Context, spec string) error {
	c := cron.New(
		cron.WithLocation(s.conf.Location),
		cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(zap.NewStdLog(s.logger.Desugar())))),
	)

	if _, err := c.AddFunc(spec, func() { s.Tick(ctx) }); err != nil {
		return fmt.Errorf("schedule reminders %q: %w", spec, err)
	}

	// initial send
	go s.Tick(ctx)

	c.Start()
	closer.Bind(func() {
		<-c.Stop().Done()
	})

	return nil
}

// Tick sends everything firing between the end of the previous window and
// the end of the current minute.
func (s *Sender) Tick(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().In(s.conf.Location)
	to := now.Truncate(time.Minute).Add(time.Minute)

	from := s.last
	if from.IsZero() || to.Sub(from) > maxCatchUp {
		from = now.Truncate(time.Minute)
	}
	if !from.Before(to) {
		return
	}

	if err := s.findAndSendNotifications(ctx, from, to); err != nil {
		s.logger.Errorw("failed to send notifications", "from", from, "to", to, "err", err)
		return
	}

	s.last = to
}

type notification struct {
	user     *model.User
	key      string
	kind     notificationKind
	reminder *reminder.Reminder
	task     *model.Task
}

func (s *Sender) findAndSendNotifications(ctx context.Context, from, to time.Time) error {
	s.logger.Debugw("sending notifications", "from", from, "to", to)

	users, err := s.users.GetNotifiableUsers(ctx, s.db)
	if err != nil {
		return fmt.Errorf("get users: %w", err)
	}
	if len(users) == 0 {
		return nil
	}

	userIDs := make([]string, len(users))
	for i, u := range users {
		userIDs[i] = u.ID
	}

	classes, err := s.classes.GetClasses(ctx, s.db, model.ClassesFilter{
		UserIDs:     userIDs,
		WithReminds: s.conf.DefaultLead < 0,
	})
	if err != nil {
		return fmt.Errorf("get classes: %w", err)
	}

	tasks, err := s.tasks.DeadlinesBetween(ctx, userIDs, from.Add(s.conf.TaskLead), to.Add(s.conf.TaskLead))
	if err != nil {
		return fmt.Errorf("get tasks: %w", err)
	}

	notifications := getPossibleNotifications(users, classes, tasks, from, to, s.conf.DefaultLead)

	messages := make([]*fcm.Message, 0, len(notifications))
	for _, n := range notifications {
		fresh, err := s.sent.MarkSent(ctx, n.key, s.conf.LogTTL)
		if err != nil {
			s.logger.Warnw("reminder log unavailable, sending anyway", "key", n.key, "err", err)
		} else if !fresh {
			continue
		}

		messages = append(messages, s.buildMessage(n))
	}

	if len(messages) == 0 {
		return nil
	}

	failed, err := s.fcm.SendMessageBatch(ctx, messages)
	if err != nil {
		return fmt.Errorf("send batch: %w", err)
	}

	s.logger.Infow("notifications sent", "count", len(messages), "failed", failed)

	return nil
}

// getPossibleNotifications lists class reminders firing in [from, to) and
// deadline reminders for the given pending tasks.
func getPossibleNotifications(
	users []*model.User,
	classes []*model.Class,
	tasks []*model.Task,
	from, to time.Time,
	defaultLead int,
) []*notification {
	byUser := make(map[string][]*model.Class)
	for _, c := range classes {
		byUser[c.UserID] = append(byUser[c.UserID], c)
	}

	tasksByUser := make(map[string][]*model.Task)
	for _, t := range tasks {
		tasksByUser[t.UserID] = append(tasksByUser[t.UserID], t)
	}

	var res []*notification
	for _, u := range users {
		if !u.Notify || u.PushToken == "" {
			continue
		}

		for _, r := range reminder.Due(byUser[u.ID], from, to, defaultLead) {
			res = append(res, &notification{
				user:     u,
				key:      fmt.Sprintf("class:%s:%d:%d", r.Class.ID, r.LeadMinutes, r.ClassStart.Unix()),
				kind:     mapToKind(r.LeadMinutes),
				reminder: r,
			})
		}

		for _, t := range tasksByUser[u.ID] {
			res = append(res, &notification{
				user: u,
				key:  fmt.Sprintf("task:%s:%d", t.ID, t.DueDate.Unix()),
				kind: kindTaskDeadline,
				task: t,
			})
		}
	}

	return res
}

func (s *Sender) buildMessage(n *notification) *fcm.Message {
	m := &fcm.Message{
		Token: n.user.PushToken,
		Data: map[string]string{
			"kind": string(n.kind),
		},
	}

	switch {
	case n.reminder != nil:
		r := n.reminder
		m.Title, m.Body = s.messages.ClassReminder(n.user.Locale, r)
		m.Data["class_id"] = r.Class.ID
		m.Data["day"] = r.Day.String()
		m.Data["lead_minutes"] = strconv.Itoa(r.LeadMinutes)
		m.Data["starts_at"] = r.ClassStart.Format(time.RFC3339)
	case n.task != nil:
		m.Title, m.Body = s.messages.TaskDeadline(n.user.Locale, n.task, s.conf.Location)
		m.Data["task_id"] = n.task.ID
		m.Data["due_at"] = n.task.DueDate.In(s.conf.Location).Format(time.RFC3339)
	}

	return m
}
