package handler

import (
	"contacts-web-server/internal/model"
	"contacts-web-server/internal/model/requestresponse"
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type ownedSearch func(ctx context.Context, user *model.User, value string) ([]model.Contact, error)

func (h *ContactHandler) searchOwned(w http.ResponseWriter, r *http.Request, search ownedSearch) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	value, ok := searchValue(w, r)
	if !ok {
		return
	}

	contacts, err := search(r.Context(), user, value)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, requestresponse.ContactsResponseFromModel(contacts))
}

func searchValue(w http.ResponseWriter, r *http.Request) (string, bool) {
	value, err := url.PathUnescape(chi.URLParam(r, "value"))
	if err != nil || value == "" {
		sendErrorResponse(w, http.StatusUnprocessableEntity, "value: field required")
		return "", false
	}
	return value, true
}

// SearchByFirstName godoc
// @Summary Поиск своих контактов по имени
// @Tags Search
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Param value path string true "Подстрока имени"
// @Success 200 {array} requestresponse.ContactResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/search/by_firstname/{value} [get]
func (h *ContactHandler) SearchByFirstName(w http.ResponseWriter, r *http.Request) {
	h.searchOwned(w, r, h.ContactService.SearchByFirstName)
}

// SearchByLastName godoc
// @Summary Поиск своих контактов по фамилии
// @Tags Search
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Param value path string true "Подстрока фамилии"
// @Success 200 {array} requestresponse.ContactResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/search/by_lastname/{value} [get]
func (h *ContactHandler) SearchByLastName(w http.ResponseWriter, r *http.Request) {
	h.searchOwned(w, r, h.ContactService.SearchByLastName)
}

// SearchByEmail godoc
// @Summary Поиск своих контактов по email
// @Tags Search
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Param value path string true "Подстрока email"
// @Success 200 {array} requestresponse.ContactResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/search/by_email/{value} [get]
func (h *ContactHandler) SearchByEmail(w http.ResponseWriter, r *http.Request) {
	h.searchOwned(w, r, h.ContactService.SearchByEmail)
}

// SearchComplex godoc
// @Summary Поиск по всем контактам
// @Description Подстрока в имени, фамилии или email. Только для admin и moderator
// @Tags Search
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Param value path string true "Подстрока"
// @Success 200 {array} requestresponse.ContactResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Router /api/search/by_complex/{value} [get]
func (h *ContactHandler) SearchComplex(w http.ResponseWriter, r *http.Request) {
	value, ok := searchValue(w, r)
	if !ok {
		return
	}

	contacts, err := h.ContactService.SearchComplex(r.Context(), value)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, requestresponse.ContactsResponseFromModel(contacts))
}

// UpcomingBirthdays godoc
// @Summary Ближайшие дни рождения
// @Description Контакты с днём рождения в ближайшие shift_days дней, включая сегодня. Только для admin и moderator
// @Tags Birthday
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Param shift_days path int true "0..364"
// @Success 200 {array} requestresponse.ContactResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 422 {object} requestresponse.ErrorResponse
// @Router /api/birthday/{shift_days} [get]
func (h *ContactHandler) UpcomingBirthdays(w http.ResponseWriter, r *http.Request) {
	shiftDays, err := strconv.Atoi(chi.URLParam(r, "shift_days"))
	if err != nil || shiftDays < 0 || shiftDays > 364 {
		sendErrorResponse(w, http.StatusUnprocessableEntity, "shift_days: must be between 0 and 364")
		return
	}

	contacts, err := h.ContactService.UpcomingBirthdays(r.Context(), shiftDays)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, requestresponse.ContactsResponseFromModel(contacts))
}
