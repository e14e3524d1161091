package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
)

type config struct {
	Production         bool          `env:"PRODUCTION" envDefault:"false"`
	Port               string        `env:"PORT" envDefault:"80"`
	PostgresUrl        string        `env:"POSTGRES_URL,required"`
	RedisUrl           string        `env:"REDIS_URL" envDefault:"redis:6379"`
	JwtSecret          string        `env:"JWT_SECRET,required"`
	JwtTTL             time.Duration `env:"JWT_TTL" envDefault:"24h"`
	Timezone           string        `env:"TIMEZONE" envDefault:"Asia/Riyadh"`
	DefaultLeadMinutes int           `env:"DEFAULT_LEAD_MINUTES" envDefault:"15"`
	ReminderCron       string        `env:"REMINDER_CRON" envDefault:"* * * * *"`
	ReminderLogTTL     time.Duration `env:"REMINDER_LOG_TTL" envDefault:"48h"`
	TaskDeadlineLead   time.Duration `env:"TASK_DEADLINE_LEAD" envDefault:"24h"`
	LogFile            string        `env:"LOG_FILE" envDefault:""`
	MaxUploadSize      int64         `env:"MAX_UPLOAD_SIZE" envDefault:"5242880"`
	DefaultLocale      string        `env:"DEFAULT_LOCALE" envDefault:"ar"`
}

var (
	conf     config
	location *time.Location
)

func init() {
	if err := env.Parse(&conf); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	loc, err := time.LoadLocation(conf.Timezone)
	if err != nil {
		panic(fmt.Sprintf("failed to load timezone %q: %v", conf.Timezone, err))
	}
	location = loc
}

func Production() bool {
	return conf.Production
}

func Port() string {
	return conf.Port
}

func PostgresURL() string {
	return conf.PostgresUrl
}

func RedisURL() string {
	return conf.RedisUrl
}

func JwtSecret() string {
	return conf.JwtSecret
}

func JwtTTL() time.Duration {
	return conf.JwtTTL
}

// Location is the wall clock of the institution; class times are read in it.
func Location() *time.Location {
	return location
}

func DefaultLeadMinutes() int {
	return conf.DefaultLeadMinutes
}

func ReminderCron() string {
	return conf.ReminderCron
}

func ReminderLogTTL() time.Duration {
	return conf.ReminderLogTTL
}

func TaskDeadlineLead() time.Duration {
	return conf.TaskDeadlineLead
}

func LogFile() string {
	return conf.LogFile
}

func MaxUploadSize() int64 {
	return conf.MaxUploadSize
}

func DefaultLocale() string {
	return conf.DefaultLocale
}
