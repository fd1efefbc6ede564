package ports

import (
	"contacts-web-server/internal/model"
	"context"
	"time"
)

// SessionCache : Redis слой, снимки пользователей по email
type SessionCache interface {
	GetUser(ctx context.Context, email string) (*model.User, error)
	SetUser(ctx context.Context, user *model.User) error
}

// RateLimiter : счётчик запросов в фиксированном окне
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (allowed bool, retryAfter time.Duration, err error)
}
