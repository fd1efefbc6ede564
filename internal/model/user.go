package model

import "time"

// Role : роль пользователя, от которой зависит доступ к расширенным маршрутам
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleUser      Role = "user"
)

// Valid : true, если роль входит в закрытый набор ролей
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleModerator, RoleUser:
		return true
	default:
		return false
	}
}

type User struct {
	UUID         string    `db:"uuid" json:"uuid"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	Confirmed    bool      `db:"confirmed" json:"confirmed"`
	RefreshToken *string   `db:"refresh_token" json:"-"`
	Avatar       *string   `db:"avatar" json:"avatar"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
