package middleware

import (
	"contacts-web-server/internal/ports"
	"contacts-web-server/internal/util"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Limit : лимит запросов маршрута за окно
type Limit struct {
	Name   string
	Times  int
	Window time.Duration
}

// RateLimit : фиксированное окно на маршрут и IP клиента. Недоступный Redis не блокирует запросы
func RateLimit(limiter ports.RateLimiter, limit Limit) func(http.Handler) http.Handler {
	logger := zap.L().With(zap.String("component", "ratelimit"), zap.String("route", limit.Name))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := limit.Name + ":" + ClientIP(r)

			allowed, retryAfter, err := limiter.Allow(r.Context(), key, limit.Times, limit.Window)
			if err != nil {
				logger.Warn("лимитер недоступен, запрос пропущен", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				seconds := int(math.Ceil(retryAfter.Seconds()))
				if seconds < 1 {
					seconds = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(seconds))
				util.HandleError(w, "Too many requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP : адрес клиента без порта; X-Forwarded-For разбирает chi RealIP до нас
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
