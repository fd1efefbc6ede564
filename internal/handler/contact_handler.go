package handler

import (
	"contacts-web-server/internal/model"
	"contacts-web-server/internal/model/requestresponse"
	"contacts-web-server/internal/ports"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const (
	defaultLimit = 10
	minLimit     = 10
	maxLimit     = 500
)

type ContactHandler struct {
	ports.ContactService
}

func NewContactHandler(contactService ports.ContactService) *ContactHandler {
	return &ContactHandler{contactService}
}

// pageParams : limit 10..500, offset >= 0
func pageParams(w http.ResponseWriter, r *http.Request) (model.Page, bool) {
	query := r.URL.Query()

	limit, ok := intParam(query.Get("limit"), defaultLimit, minLimit)
	if !ok || limit > maxLimit {
		sendErrorResponse(w, http.StatusUnprocessableEntity, "limit: must be between 10 and 500")
		return model.Page{}, false
	}

	offset, ok := intParam(query.Get("offset"), 0, 0)
	if !ok {
		sendErrorResponse(w, http.StatusUnprocessableEntity, "offset: must be greater than or equal to 0")
		return model.Page{}, false
	}

	return model.Page{Limit: limit, Offset: offset}, true
}

func contactID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := intParam(chi.URLParam(r, "contact_id"), 0, 1)
	if !ok || id == 0 {
		sendErrorResponse(w, http.StatusUnprocessableEntity, "contact_id: must be greater than or equal to 1")
		return 0, false
	}
	return int64(id), true
}

// ListContacts godoc
// @Summary Контакты текущего пользователя
// @Tags Contacts
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Param limit query int false "10..500" default(10)
// @Param offset query int false ">= 0" default(0)
// @Success 200 {array} requestresponse.ContactResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 422 {object} requestresponse.ErrorResponse
// @Failure 429 {object} requestresponse.ErrorResponse
// @Router /api/contacts [get]
func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	page, ok := pageParams(w, r)
	if !ok {
		return
	}

	contacts, err := h.ContactService.List(r.Context(), user, page)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, requestresponse.ContactsResponseFromModel(contacts))
}

// ListAllContacts godoc
// @Summary Все контакты
// @Description Только для ролей admin и moderator
// @Tags Contacts
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Param limit query int false "10..500" default(10)
// @Param offset query int false ">= 0" default(0)
// @Success 200 {array} requestresponse.ContactResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 422 {object} requestresponse.ErrorResponse
// @Router /api/contacts/all [get]
func (h *ContactHandler) ListAllContacts(w http.ResponseWriter, r *http.Request) {
	page, ok := pageParams(w, r)
	if !ok {
		return
	}

	contacts, err := h.ContactService.ListAll(r.Context(), page)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, requestresponse.ContactsResponseFromModel(contacts))
}

// GetContact godoc
// @Summary Контакт по id
// @Tags Contacts
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Param contact_id path int true "ID контакта"
// @Success 200 {object} requestresponse.ContactResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 422 {object} requestresponse.ErrorResponse
// @Router /api/contacts/{contact_id} [get]
func (h *ContactHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := contactID(w, r)
	if !ok {
		return
	}

	contact, err := h.ContactService.Get(r.Context(), user, id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, requestresponse.ContactResponseFromModel(contact))
}

// CreateContact godoc
// @Summary Создание контакта
// @Tags Contacts
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Param body body requestresponse.ContactRequest true "Контакт"
// @Success 201 {object} requestresponse.ContactResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 409 {object} requestresponse.ErrorResponse
// @Failure 422 {object} requestresponse.ErrorResponse
// @Router /api/contacts [post]
func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	contact, ok := contactFromRequest(w, r)
	if !ok {
		return
	}

	created, err := h.ContactService.Create(r.Context(), user, contact)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, requestresponse.ContactResponseFromModel(created))
}

// UpdateContact godoc
// @Summary Обновление контакта
// @Tags Contacts
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Param contact_id path int true "ID контакта"
// @Param body body requestresponse.ContactRequest true "Контакт"
// @Success 200 {object} requestresponse.ContactResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 422 {object} requestresponse.ErrorResponse
// @Router /api/contacts/{contact_id} [put]
func (h *ContactHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := contactID(w, r)
	if !ok {
		return
	}
	contact, ok := contactFromRequest(w, r)
	if !ok {
		return
	}

	updated, err := h.ContactService.Update(r.Context(), user, id, contact)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, requestresponse.ContactResponseFromModel(updated))
}

// DeleteContact godoc
// @Summary Удаление контакта
// @Tags Contacts
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Param contact_id path int true "ID контакта"
// @Success 204
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 422 {object} requestresponse.ErrorResponse
// @Router /api/contacts/{contact_id} [delete]
func (h *ContactHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := contactID(w, r)
	if !ok {
		return
	}

	if err := h.ContactService.Delete(r.Context(), user, id); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func contactFromRequest(w http.ResponseWriter, r *http.Request) (*model.Contact, bool) {
	var req requestresponse.ContactRequest
	if !decodeAndValidate(w, r, &req) {
		return nil, false
	}

	contact, err := req.ToModel()
	if err != nil {
		sendErrorResponse(w, http.StatusUnprocessableEntity, "birth_date: failed on 'datetime'")
		return nil, false
	}
	return contact, true
}
