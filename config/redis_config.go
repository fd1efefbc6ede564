package config

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RedisClient struct {
	Client *redis.Client
}

func NewRedisClient(cfg *RedisConfig) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ошибка пинга Redis: %w", err)
	}

	zap.L().Info("подключение к Redis успешно выполнено", zap.String("addr", cfg.Addr))
	return &RedisClient{Client: client}, nil
}

func (r *RedisClient) Close() error {
	if err := r.Client.Close(); err != nil {
		return fmt.Errorf("ошибка закрытия соединения с Redis: %w", err)
	}
	return nil
}
