package requestresponse

import (
	"contacts-web-server/internal/model"
	"time"
)

const dateLayout = "2006-01-02"

// ContactRequest : тело запроса на создание и обновление контакта
type ContactRequest struct {
	FirstName   string `json:"first_name" example:"Taras" validate:"required,min=3,max=32"`
	LastName    string `json:"last_name" example:"Shevchenko" validate:"required,min=3,max=32"`
	Email       string `json:"email" example:"taras@example.com" validate:"required,email,min=8,max=64"`
	PhoneNumber string `json:"phone_number" example:"380501234567" validate:"required,numeric,max=24"`
	BirthDate   string `json:"birth_date" example:"1990-03-09" validate:"required,datetime=2006-01-02"`
	CRMStatus   string `json:"crm_status" example:"operational" validate:"omitempty,oneof=operational analitic corporative"`
}

// ToModel : переводит запрос в модель; вызывать после успешной валидации
func (r ContactRequest) ToModel() (*model.Contact, error) {
	birthDate, err := time.Parse(dateLayout, r.BirthDate)
	if err != nil {
		return nil, err
	}

	status := model.CRMStatus(r.CRMStatus)
	if status == "" {
		status = model.CRMStatusOperational
	}

	return &model.Contact{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		BirthDate:   birthDate,
		CRMStatus:   status,
	}, nil
}

// ContactResponse : описывает контакт для JSON-ответа
type ContactResponse struct {
	ID          int64      `json:"id" example:"1"`
	FirstName   string     `json:"first_name" example:"Taras"`
	LastName    string     `json:"last_name" example:"Shevchenko"`
	Email       string     `json:"email" example:"taras@example.com"`
	PhoneNumber string     `json:"phone_number" example:"380501234567"`
	BirthDate   string     `json:"birth_date" example:"1990-03-09"`
	CRMStatus   string     `json:"crm_status" example:"operational"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// ContactResponseFromModel : конвертирует model.Contact в ContactResponse
func ContactResponseFromModel(contact *model.Contact) ContactResponse {
	resp := ContactResponse{
		ID:          contact.ID,
		FirstName:   contact.FirstName,
		LastName:    contact.LastName,
		Email:       contact.Email,
		PhoneNumber: contact.PhoneNumber,
		BirthDate:   contact.BirthDate.Format(dateLayout),
		CRMStatus:   string(contact.CRMStatus),
	}
	if !contact.CreatedAt.IsZero() {
		createdAt := contact.CreatedAt
		resp.CreatedAt = &createdAt
	}
	if !contact.UpdatedAt.IsZero() {
		updatedAt := contact.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

// ContactsResponseFromModel : конвертирует список контактов
func ContactsResponseFromModel(contacts []model.Contact) []ContactResponse {
	resp := make([]ContactResponse, 0, len(contacts))
	for i := range contacts {
		resp = append(resp, ContactResponseFromModel(&contacts[i]))
	}
	return resp
}
