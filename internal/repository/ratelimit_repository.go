package repository

import (
	"contacts-web-server/config"
	"context"
	"fmt"
	"time"
)

// RateLimitRepository : фиксированное окно на INCR, окно открывается первым запросом ключа
type RateLimitRepository struct {
	client *config.RedisClient
	prefix string
}

func NewRateLimitRepository(rdb *config.RedisClient) *RateLimitRepository {
	return &RateLimitRepository{client: rdb, prefix: "ratelimit"}
}

// Allow : увеличивает счётчик key и сообщает, укладывается ли запрос в limit за window
func (r *RateLimitRepository) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	redisKey := fmt.Sprintf("%s:%s", r.prefix, key)

	pipe := r.client.Client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	ttl := pipe.PTTL(ctx, redisKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("[RateLimitRepo] ошибка счётчика Redis: %w", err)
	}

	retryAfter := ttl.Val()
	// ключ без срока жизни: окно только что открыто
	if retryAfter < 0 {
		if err := r.client.Client.PExpire(ctx, redisKey, window).Err(); err != nil {
			return false, 0, fmt.Errorf("[RateLimitRepo] ошибка установки окна: %w", err)
		}
		retryAfter = window
	}

	if incr.Val() <= int64(limit) {
		return true, 0, nil
	}

	return false, retryAfter, nil
}
