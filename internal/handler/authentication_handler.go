package handler

import (
	"contacts-web-server/internal/model"
	"contacts-web-server/internal/model/requestresponse"
	"contacts-web-server/internal/ports"
	"contacts-web-server/internal/security"
	"errors"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type AuthenticationHandler struct {
	ports.AuthenticationService
	publicBaseURL string
}

func NewAuthenticationHandler(authenticationService ports.AuthenticationService) *AuthenticationHandler {
	return &AuthenticationHandler{AuthenticationService: authenticationService}
}

// WithPublicBaseURL : фиксированный адрес для ссылок в письмах вместо Host запроса
func (h *AuthenticationHandler) WithPublicBaseURL(publicBaseURL string) *AuthenticationHandler {
	h.publicBaseURL = publicBaseURL
	return h
}

func (h *AuthenticationHandler) linkBaseURL(r *http.Request) string {
	if h.publicBaseURL != "" {
		return h.publicBaseURL
	}
	return baseURL(r)
}

// Signup godoc
// @Summary Регистрация пользователя
// @Description Создаёт пользователя и отправляет письмо со ссылкой подтверждения почты
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.SignupRequest true "Тело запроса"
// @Success 201 {object} requestresponse.UserResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON"
// @Failure 409 {object} requestresponse.ErrorResponse "Email уже зарегистрирован"
// @Failure 422 {object} requestresponse.ErrorResponse "Невалидные поля"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/auth/signup [post]
func (h *AuthenticationHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.SignupRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user := &model.User{Username: req.Username, Email: req.Email}
	created, err := h.AuthenticationService.Signup(r.Context(), user, req.Password, h.linkBaseURL(r))
	if errors.Is(err, model.ErrAlreadyExists) {
		sendErrorResponse(w, http.StatusConflict, "Account already exists")
		return
	}
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, requestresponse.UserResponseFromModel(created))
}

// Login godoc
// @Summary Аутентификация пользователя
// @Description Выдаёт пару access/refresh токенов. Принимает форму OAuth2 (username = email) или JSON
// @Tags Authentication
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param body body requestresponse.LoginRequest false "JSON вариант"
// @Success 200 {object} requestresponse.TokenResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Неверные данные или почта не подтверждена"
// @Failure 422 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.LoginRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseForm(); err != nil {
			sendErrorResponse(w, http.StatusBadRequest, "invalid form")
			return
		}
		req.Email = r.PostFormValue("username")
		req.Password = r.PostFormValue("password")
		if err := requestresponse.Validate(&req); err != nil {
			sendErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
	default:
		if !decodeAndValidate(w, r, &req) {
			return
		}
	}

	tokens, err := h.AuthenticationService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, requestresponse.TokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		TokenType:    tokens.TokenType,
	})
}

// RefreshToken godoc
// @Summary Обновление токенов
// @Description Выдаёт новую пару по refresh токену из заголовка Authorization. Повтор старого токена отзывает сессию
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <refresh_token>)
// @Success 200 {object} requestresponse.TokenResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/auth/refresh_token [get]
func (h *AuthenticationHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	refreshToken, ok := security.BearerToken(r)
	if !ok {
		security.WriteUnauthenticated(w, "Not authenticated")
		return
	}

	tokens, err := h.AuthenticationService.Refresh(r.Context(), refreshToken)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, requestresponse.TokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		TokenType:    tokens.TokenType,
	})
}

// ConfirmedEmail godoc
// @Summary Подтверждение почты
// @Description Переход по ссылке из письма
// @Tags Authentication
// @Produce json
// @Param token path string true "Email токен"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Verification error"
// @Failure 422 {object} requestresponse.ErrorResponse "Invalid token for email verification"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/auth/confirmed_email/{token} [get]
func (h *AuthenticationHandler) ConfirmedEmail(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	alreadyConfirmed, err := h.AuthenticationService.ConfirmEmail(r.Context(), token)
	switch {
	case errors.Is(err, model.ErrInvalidToken):
		sendErrorResponse(w, http.StatusUnprocessableEntity, "Invalid token for email verification")
		return
	case errors.Is(err, model.ErrEmailVerification):
		sendErrorResponse(w, http.StatusBadRequest, "Verification error")
		return
	case err != nil:
		handleServiceError(w, err)
		return
	}

	message := "Email confirmed"
	if alreadyConfirmed {
		message = "Your email is already confirmed"
	}
	sendJSON(w, http.StatusOK, requestresponse.MessageResponse{Message: message})
}

// RequestEmail godoc
// @Summary Повторная отправка письма подтверждения
// @Description Ответ не зависит от того, зарегистрирован ли email
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RequestEmail true "Тело запроса"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 422 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/auth/request_email [post]
func (h *AuthenticationHandler) RequestEmail(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RequestEmail
	if !decodeAndValidate(w, r, &req) {
		return
	}

	alreadyConfirmed, err := h.AuthenticationService.RequestEmail(r.Context(), req.Email, h.linkBaseURL(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	message := "Check your email for confirmation."
	if alreadyConfirmed {
		message = "Your email is already confirmed"
	}
	sendJSON(w, http.StatusOK, requestresponse.MessageResponse{Message: message})
}
