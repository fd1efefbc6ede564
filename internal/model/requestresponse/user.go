package requestresponse

import (
	"contacts-web-server/internal/model"
	"time"
)

// ErrorDetail : детальная информация об ошибке
type ErrorDetail struct {
	Code int    `json:"code" example:"400"`
	Text string `json:"text" example:"invalid request body"`
}

// ErrorResponse : стандартная структура ошибки
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// UserResponse : данные пользователя без секретов
type UserResponse struct {
	UUID      string    `json:"uuid" example:"123e4567-e89b-12d3-a456-426614174000"`
	Username  string    `json:"username" example:"john_doe"`
	Email     string    `json:"email" example:"user@example.com"`
	Role      string    `json:"role" example:"user"`
	Avatar    *string   `json:"avatar" example:"https://cdn.example.com/contacts-app/user@example.com"`
	Confirmed bool      `json:"confirmed" example:"true"`
	CreatedAt time.Time `json:"created_at"`
}

// UserResponseFromModel : конвертирует model.User в UserResponse
func UserResponseFromModel(user *model.User) UserResponse {
	return UserResponse{
		UUID:      user.UUID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		Avatar:    user.Avatar,
		Confirmed: user.Confirmed,
		CreatedAt: user.CreatedAt,
	}
}
