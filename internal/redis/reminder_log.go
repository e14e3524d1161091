package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
)

const reminderKeyPrefix = "reminder:sent:"

type pool interface {
	GetContext(ctx context.Context) (redis.Conn, error)
}

// ReminderLog remembers which reminders were already pushed, so a restarted
// or second sender does not push them again.
type ReminderLog struct {
	pool pool
}

func NewReminderLog(pool *redis.Pool) *ReminderLog {
	return &ReminderLog{pool: pool}
}

// MarkSent records key for ttl and reports whether it was not recorded before.
func (l *ReminderLog) MarkSent(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	conn, err := l.pool.GetContext(ctx)
	if err != nil {
		return false, fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	seconds := int64(ttl / time.Second)
	if seconds < 1 {
		seconds = 1
	}

	_, err = redis.String(conn.Do("SET", reminderKeyPrefix+key, 1, "NX", "EX", seconds))
	switch {
	case errors.Is(err, redis.ErrNil):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("SET: %w", err)
	}

	return true, nil
}
