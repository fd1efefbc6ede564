package handler

import (
	"contacts-web-server/internal/model/requestresponse"
	"contacts-web-server/internal/ports"
	"net/http"
	"strings"
)

const defaultMaxAvatarSize = 5 << 20

type UserHandler struct {
	ports.UserService
	maxAvatarSize int64
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService, defaultMaxAvatarSize}
}

// GetCurrentUser godoc
// @Summary Текущий пользователь
// @Description Данные пользователя по access токену. Могут отставать от БД на время жизни кэша сессий
// @Tags Users
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.UserResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 429 {object} requestresponse.ErrorResponse
// @Router /api/users/me [get]
func (h *UserHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	sendJSON(w, http.StatusOK, requestresponse.UserResponseFromModel(user))
}

// UpdateAvatar godoc
// @Summary Загрузка аватара
// @Description Загружает изображение в хранилище и сохраняет ссылку у пользователя
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Param file formData file true "Изображение"
// @Success 200 {object} requestresponse.UserResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 422 {object} requestresponse.ErrorResponse
// @Failure 429 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/users/avatar [patch]
func (h *UserHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxAvatarSize+1<<20)
	if err := r.ParseMultipartForm(h.maxAvatarSize); err != nil {
		sendErrorResponse(w, http.StatusUnprocessableEntity, "invalid multipart form")
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		sendErrorResponse(w, http.StatusUnprocessableEntity, "file: field required")
		return
	}
	defer file.Close()

	if header.Size > h.maxAvatarSize {
		sendErrorResponse(w, http.StatusUnprocessableEntity, "file: too large")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		sendErrorResponse(w, http.StatusUnprocessableEntity, "file: must be an image")
		return
	}

	updated, err := h.UserService.UpdateAvatar(r.Context(), user, file, header.Size, contentType)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, requestresponse.UserResponseFromModel(updated))
}
