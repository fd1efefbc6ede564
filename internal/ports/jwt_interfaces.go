package ports

import (
	"contacts-web-server/internal/model"
	"time"
)

// TokenService : выпуск и разбор подписанных токенов с claim scope
type TokenService interface {
	Issue(subject string, scope model.Scope, ttl time.Duration) (string, error)
	Decode(token string, expectedScope model.Scope) (string, error)
}

// PasswordHasher : хэширование и проверка паролей
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}
