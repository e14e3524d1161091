package main

import (
	"context"
	"log"
	"net/http"

	"github.com/SergeyKozhin/student-planner-backend/internal/api"
	classes_service "github.com/SergeyKozhin/student-planner-backend/internal/business/classes"
	tasks_service "github.com/SergeyKozhin/student-planner-backend/internal/business/tasks"
	"github.com/SergeyKozhin/student-planner-backend/internal/config"
	"github.com/SergeyKozhin/student-planner-backend/internal/database"
	"github.com/SergeyKozhin/student-planner-backend/internal/database/classes"
	"github.com/SergeyKozhin/student-planner-backend/internal/database/tasks"
	"github.com/SergeyKozhin/student-planner-backend/internal/database/user"
	"github.com/SergeyKozhin/student-planner-backend/internal/notifications"
	"github.com/SergeyKozhin/student-planner-backend/internal/pkg/fcm"
	"github.com/SergeyKozhin/student-planner-backend/internal/pkg/jwt"
	"github.com/SergeyKozhin/student-planner-backend/internal/redis"
	"github.com/SergeyKozhin/student-planner-backend/internal/reminder"
	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	closer.Bind(cancel)

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("unable to initializae logger: %v", err)
	}

	if config.DefaultLeadMinutes() > reminder.MaxLeadMinutes {
		logger.Fatalw("default lead time is too long", "minutes", config.DefaultLeadMinutes(), "max", reminder.MaxLeadMinutes)
	}

	jwts := jwt.NewManager(config.JwtSecret(), config.JwtTTL())

	redisPool := redis.NewRedisPool(logger)
	reminderLog := redis.NewReminderLog(redisPool)

	db, err := database.NewPGX(ctx)
	if err != nil {
		logger.Fatalw("unable to initializae db", "err", err)
	}
	if err := database.EnsureSchema(ctx, db); err != nil {
		logger.Fatalw("unable to prepare db schema", "err", err)
	}

	usersRepository := user.NewRepository()
	classesRepository := classes.NewRepository()
	tasksRepository := tasks.NewRepository()

	classesService := classes_service.NewService(db, classesRepository, config.Location())
	tasksService := tasks_service.NewService(db, tasksRepository, classesRepository)

	fcmService, err := fcm.NewService(ctx)
	if err != nil {
		logger.Fatalw("unable to initializae fcm service", "err", err)
	}

	messages, err := notifications.NewMessages(config.DefaultLocale())
	if err != nil {
		logger.Fatalw("unable to load notification messages", "err", err)
	}

	sender := notifications.NewSender(
		db,
		logger,
		usersRepository,
		classesRepository,
		tasksService,
		reminderLog,
		fcmService,
		messages,
		notifications.Config{
			DefaultLead: config.DefaultLeadMinutes(),
			TaskLead:    config.TaskDeadlineLead(),
			LogTTL:      config.ReminderLogTTL(),
			Location:    config.Location(),
		},
	)
	if err := sender.Start(ctx, config.ReminderCron()); err != nil {
		logger.Fatalw("unable to start reminder sender", "err", err)
	}

	api, err := api.NewApi(
		logger,
		api.Config{
			Location:      config.Location(),
			DefaultLead:   config.DefaultLeadMinutes(),
			DefaultLocale: config.DefaultLocale(),
			MaxUploadSize: config.MaxUploadSize(),
		},
		jwts,
		db,
		usersRepository,
		classesService,
		tasksService,
		fcmService,
	)
	if err != nil {
		logger.Fatalw("unable to initializae api", "err", err)
	}

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		logger.Fatalw("error initiating server logger", "err", err)
	}

	server := &http.Server{
		Addr:     ":" + config.Port(),
		Handler:  api,
		ErrorLog: errLogger,
	}

	go func() {
		logger.Infow("Started server", "port", config.Port(), "timezone", config.Location().String())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorw("server error", "err", err)
			closer.Close()
		}
	}()

	closer.Hold()
}

func initLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if config.Production() {
		logger, err = zap.NewProduction()
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}

	if err != nil {
		return nil, err
	}

	if path := config.LogFile(); path != "" {
		file := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    100,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		}
		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(file),
			zap.InfoLevel,
		)
		logger = logger.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, fileCore)
		}))
		closer.Bind(func() {
			_ = file.Close()
		})
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}
