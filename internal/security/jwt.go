package security

import (
	"contacts-web-server/config"
	"contacts-web-server/internal/model"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Claims struct {
	Scope model.Scope `json:"scope"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secretKey []byte
	method    *jwt.SigningMethodHMAC
	ttl       map[model.Scope]time.Duration
	now       func() time.Time
}

type JWTOption func(*JWTService)

// WithClock : подменяет источник времени (для тестов)
func WithClock(now func() time.Time) JWTOption {
	return func(s *JWTService) {
		s.now = now
	}
}

// NewJWTService : алгоритм подписи проверяется здесь, а не при каждом вызове
func NewJWTService(cfg *config.JWTConfig, opts ...JWTOption) (*JWTService, error) {
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("[JWTService] пустой секрет")
	}

	var method *jwt.SigningMethodHMAC
	switch cfg.Algorithm {
	case jwt.SigningMethodHS256.Alg():
		method = jwt.SigningMethodHS256
	case jwt.SigningMethodHS512.Alg():
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("[JWTService] неподдерживаемый алгоритм %q", cfg.Algorithm)
	}

	service := &JWTService{
		secretKey: []byte(cfg.SecretKey),
		method:    method,
		ttl: map[model.Scope]time.Duration{
			model.ScopeAccess:  cfg.AccessTokenTTL,
			model.ScopeRefresh: cfg.RefreshTokenTTL,
			model.ScopeEmail:   cfg.EmailTokenTTL,
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}

	return service, nil
}

// TTL : время жизни токена данного scope из конфигурации
func (s *JWTService) TTL(scope model.Scope) time.Duration {
	if ttl, ok := s.ttl[scope]; ok && ttl > 0 {
		return ttl
	}
	return scope.DefaultTTL()
}

// Issue подписывает токен с claims sub, scope, iat, exp и уникальным jti.
// При ttl <= 0 берётся время жизни scope из конфигурации.
func (s *JWTService) Issue(subject string, scope model.Scope, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.TTL(scope)
	}
	if ttl <= 0 {
		return "", fmt.Errorf("[JWTService] неизвестный scope %q", scope)
	}

	now := s.now()
	claims := Claims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("[JWTService] ошибка подписи токена: %w", err)
	}

	return token, nil
}

// Decode проверяет подпись и срок действия и возвращает subject.
// Пустой expectedScope отключает проверку scope.
func (s *JWTService) Decode(tokenStr string, expectedScope model.Scope) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: %v", model.ErrInvalidToken, err)
	}

	if expectedScope != "" && claims.Scope != expectedScope {
		return "", model.ErrWrongScope
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: пустой subject", model.ErrInvalidToken)
	}

	return claims.Subject, nil
}
