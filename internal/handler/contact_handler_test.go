package handler_test

import (
	"contacts-web-server/internal/handler"
	"contacts-web-server/internal/model"
	"contacts-web-server/internal/model/requestresponse"
	"contacts-web-server/internal/security"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testUser = &model.User{UUID: "u1", Email: "user@example.com", Role: model.RoleUser}

const validContact = `{"first_name":"Alice","last_name":"Smith","email":"alice@example.com","phone_number":"380501234567","birth_date":"1990-03-15"}`

// withUser : подкладывает пользователя в контекст, как это делает JWTMiddleware
func withUser(user *model.User) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(security.WithUser(r.Context(), user)))
		})
	}
}

func newContactRouter(svc *MockContactService) http.Handler {
	h := handler.NewContactHandler(svc)
	r := chi.NewRouter()
	r.Use(withUser(testUser))
	r.Get("/api/contacts", h.ListContacts)
	r.Get("/api/contacts/all", h.ListAllContacts)
	r.Get("/api/contacts/{contact_id}", h.GetContact)
	r.Post("/api/contacts", h.CreateContact)
	r.Put("/api/contacts/{contact_id}", h.UpdateContact)
	r.Delete("/api/contacts/{contact_id}", h.DeleteContact)
	r.Get("/api/search/by_firstname/{value}", h.SearchByFirstName)
	r.Get("/api/search/by_complex/{value}", h.SearchComplex)
	r.Get("/api/birthday/{shift_days}", h.UpcomingBirthdays)
	return r
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, target, nil)
	} else {
		request = httptest.NewRequest(method, target, strings.NewReader(body))
		request.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestListContactsHandler(t *testing.T) {
	svc := new(MockContactService)
	svc.On("List", mock.Anything, testUser, model.Page{Limit: 10, Offset: 0}).
		Return([]model.Contact{{ID: 1, FirstName: "Alice", BirthDate: time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC)}}, nil)
	svc.On("List", mock.Anything, testUser, model.Page{Limit: 50, Offset: 100}).
		Return([]model.Contact{}, nil)
	router := newContactRouter(svc)

	recorder := serve(router, http.MethodGet, "/api/contacts", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	var resp []requestresponse.ContactResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "1990-03-15", resp[0].BirthDate)

	recorder = serve(router, http.MethodGet, "/api/contacts?limit=50&offset=100", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `[]`, recorder.Body.String())

	for _, query := range []string{"limit=9", "limit=501", "limit=abc", "offset=-1"} {
		recorder = serve(router, http.MethodGet, "/api/contacts?"+query, "")
		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code, query)
	}
	svc.AssertExpectations(t)
}

func TestGetContactHandler(t *testing.T) {
	svc := new(MockContactService)
	svc.On("Get", mock.Anything, testUser, int64(7)).Return(&model.Contact{ID: 7}, nil)
	svc.On("Get", mock.Anything, testUser, int64(8)).Return(nil, model.ErrNotFound)
	router := newContactRouter(svc)

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api/contacts/7", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/api/contacts/8", "").Code)
	assert.Equal(t, http.StatusUnprocessableEntity, serve(router, http.MethodGet, "/api/contacts/0", "").Code)
	assert.Equal(t, http.StatusUnprocessableEntity, serve(router, http.MethodGet, "/api/contacts/abc", "").Code)
}

func TestCreateContactHandler(t *testing.T) {
	svc := new(MockContactService)
	svc.On("Create", mock.Anything, testUser, mock.MatchedBy(func(c *model.Contact) bool {
		return c.FirstName == "Alice" && c.CRMStatus == model.CRMStatusOperational && c.BirthDate.Day() == 15
	})).Return(&model.Contact{ID: 1, FirstName: "Alice"}, nil)
	router := newContactRouter(svc)

	recorder := serve(router, http.MethodPost, "/api/contacts", validContact)
	assert.Equal(t, http.StatusCreated, recorder.Code)

	recorder = serve(router, http.MethodPost, "/api/contacts", `{"first_name":"Al"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	svc.AssertNumberOfCalls(t, "Create", 1)
}

func TestUpdateContactHandler(t *testing.T) {
	svc := new(MockContactService)
	svc.On("Update", mock.Anything, testUser, int64(3), mock.Anything).Return(&model.Contact{ID: 3}, nil)
	svc.On("Update", mock.Anything, testUser, int64(4), mock.Anything).Return(nil, model.ErrNotFound)
	router := newContactRouter(svc)

	assert.Equal(t, http.StatusOK, serve(router, http.MethodPut, "/api/contacts/3", validContact).Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodPut, "/api/contacts/4", validContact).Code)
}

func TestDeleteContactHandler(t *testing.T) {
	svc := new(MockContactService)
	svc.On("Delete", mock.Anything, testUser, int64(3)).Return(nil)

	recorder := serve(newContactRouter(svc), http.MethodDelete, "/api/contacts/3", "")
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.String())
}

func TestSearchHandlers(t *testing.T) {
	svc := new(MockContactService)
	svc.On("SearchByFirstName", mock.Anything, testUser, "ali").Return([]model.Contact{{ID: 1}}, nil)
	svc.On("SearchComplex", mock.Anything, "smi").Return([]model.Contact{{ID: 1}, {ID: 2}}, nil)
	router := newContactRouter(svc)

	recorder := serve(router, http.MethodGet, "/api/search/by_firstname/ali", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	var resp []requestresponse.ContactResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)

	recorder = serve(router, http.MethodGet, "/api/search/by_complex/smi", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestBirthdayHandler(t *testing.T) {
	svc := new(MockContactService)
	svc.On("UpcomingBirthdays", mock.Anything, 7).Return([]model.Contact{{ID: 1}}, nil)
	router := newContactRouter(svc)

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api/birthday/7", "").Code)
	for _, shift := range []string{"-1", "365", "week"} {
		assert.Equal(t, http.StatusUnprocessableEntity, serve(router, http.MethodGet, "/api/birthday/"+shift, "").Code, shift)
	}
	svc.AssertNumberOfCalls(t, "UpcomingBirthdays", 1)
}
