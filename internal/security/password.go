package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher : хэширование паролей, соль генерируется на каждый вызов
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("[BcryptHasher] ошибка хэширования: %w", err)
	}
	return string(digest), nil
}

// Verify : некорректный хэш считается несовпадением
func (h *BcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
