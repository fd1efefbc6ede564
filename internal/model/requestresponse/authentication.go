package requestresponse

// LoginRequest : тело запроса на аутентификацию (JSON-вариант, форма использует username/password)
type LoginRequest struct {
	Email    string `json:"email" example:"user@example.com" validate:"required,email"`
	Password string `json:"password" example:"P@ssw0rd123" validate:"required"`
}

// SignupRequest : тело запроса регистрации
type SignupRequest struct {
	Username string `json:"username" example:"john_doe" validate:"required,min=4,max=50"`
	Email    string `json:"email" example:"user@example.com" validate:"required,email,max=150"`
	Password string `json:"password" example:"P@ssw0rd123" validate:"required,min=6,max=72"`
}

// RequestEmail : запрос на повторную отправку письма подтверждения
type RequestEmail struct {
	Email string `json:"email" example:"user@example.com" validate:"required,email"`
}

// TokenResponse : пара токенов в ответ на login/refresh
type TokenResponse struct {
	AccessToken  string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType    string `json:"token_type" example:"bearer"`
}

// MessageResponse : ответ с текстовым сообщением
type MessageResponse struct {
	Message string `json:"message" example:"Email confirmed"`
}
