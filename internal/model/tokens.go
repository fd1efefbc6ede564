package model

import "time"

// Scope : назначение токена, зашивается в claim "scope"
type Scope string

const (
	ScopeAccess  Scope = "access_token"
	ScopeRefresh Scope = "refresh_token"
	ScopeEmail   Scope = "email_token"
)

// DefaultTTL : время жизни токена по умолчанию для данного scope
func (s Scope) DefaultTTL() time.Duration {
	switch s {
	case ScopeAccess:
		return 16 * time.Minute
	case ScopeRefresh:
		return 7 * 24 * time.Hour
	case ScopeEmail:
		return 2 * 24 * time.Hour
	default:
		return 0
	}
}

// TokensPair содержит пару access и refresh токенов
// swagger:model
type TokensPair struct {
	// Access токен (JWT)
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"access_token"`

	// Refresh токен (для получения новой пары)
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	RefreshToken string `json:"refresh_token"`

	TokenType string `json:"token_type"`
}
