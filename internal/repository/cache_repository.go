package repository

import (
	"contacts-web-server/config"
	"contacts-web-server/internal/model"
	"contacts-web-server/internal/util"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheRepository : снимки пользователей в Redis по ключу user:<email>.
// Снимок не содержит хэша пароля и refresh токена.
type CacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb, ttl}
}

func (r *CacheRepository) SetUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return util.LogError("ошибка сериализации пользователя", err)
	}

	cmd := r.client.Client.Set(ctx, r.key(user.Email), data, r.ttl)
	if err = cmd.Err(); err != nil {
		return fmt.Errorf("ошибка сохранения в Redis: %w", err)
	}
	if cmd.Val() != "OK" {
		return fmt.Errorf("неожиданный ответ Redis: %s", cmd.Val())
	}

	return nil
}

// GetUser : nil, nil при промахе
func (r *CacheRepository) GetUser(ctx context.Context, email string) (*model.User, error) {
	val, err := r.client.Client.Get(ctx, r.key(email)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // нет в кэше
	} else if err != nil {
		return nil, fmt.Errorf("ошибка получения пользователя из Redis: %w", err)
	}

	var user model.User
	if err := json.Unmarshal(val, &user); err != nil {
		return nil, fmt.Errorf("ошибка десериализации пользователя из кэша: %w", err)
	}
	return &user, nil
}

func (r *CacheRepository) key(email string) string {
	return fmt.Sprintf("user:%s", email)
}
