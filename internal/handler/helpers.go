package handler

import (
	"contacts-web-server/internal/model"
	"contacts-web-server/internal/model/requestresponse"
	"contacts-web-server/internal/security"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

func sendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	sendJSON(w, statusCode, requestresponse.ErrorResponse{
		Error: requestresponse.ErrorDetail{
			Code: statusCode,
			Text: message,
		},
	})
}

func sendJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Warn("ошибка кодирования ответа", zap.Error(err))
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, target interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return err
	}
	return nil
}

// decodeAndValidate : 400 на битый JSON, 422 на невалидные поля
func decodeAndValidate(w http.ResponseWriter, r *http.Request, target interface{}) bool {
	if err := decodeJSON(w, r, target); err != nil {
		return false
	}
	if err := requestresponse.Validate(target); err != nil {
		sendErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return false
	}
	return true
}

// currentUser : пользователь, положенный в контекст JWTMiddleware
func currentUser(w http.ResponseWriter, r *http.Request) (*model.User, bool) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		security.WriteUnauthenticated(w, "Not authenticated")
		return nil, false
	}
	return user, true
}

// handleServiceError : переводит ошибки сервисов в HTTP ответ
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrEmailNotConfirmed):
		security.WriteUnauthenticated(w, "Email not confirmed")
	case errors.Is(err, model.ErrUnauthenticated),
		errors.Is(err, model.ErrInvalidToken),
		errors.Is(err, model.ErrWrongScope):
		security.WriteUnauthenticated(w, "Could not validate credentials")
	case errors.Is(err, model.ErrForbidden):
		sendErrorResponse(w, http.StatusForbidden, "Operation forbidden")
	case errors.Is(err, model.ErrNotFound):
		sendErrorResponse(w, http.StatusNotFound, "Not found")
	case errors.Is(err, model.ErrAlreadyExists):
		sendErrorResponse(w, http.StatusConflict, "Already exists")
	case errors.Is(err, model.ErrValidation):
		sendErrorResponse(w, http.StatusUnprocessableEntity, "Validation error")
	default:
		zap.L().Error("внутренняя ошибка", zap.Error(err))
		sendErrorResponse(w, http.StatusInternalServerError, "Internal server error")
	}
}

// intParam : целое из строки с проверкой нижней границы
func intParam(raw string, fallback, minimum int) (int, bool) {
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < minimum {
		return 0, false
	}
	return value, true
}

// baseURL : адрес сервиса для ссылок в письмах, всегда со слэшем на конце
func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host + "/"
}
