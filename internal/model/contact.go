package model

import "time"

// CRMStatus : статус контакта в CRM
type CRMStatus string

const (
	CRMStatusOperational CRMStatus = "operational"
	CRMStatusAnalitic    CRMStatus = "analitic"
	CRMStatusCorporative CRMStatus = "corporative"
)

type Contact struct {
	ID          int64     `db:"id" json:"id"`
	FirstName   string    `db:"first_name" json:"first_name"`
	LastName    string    `db:"last_name" json:"last_name"`
	Email       string    `db:"email" json:"email"`
	PhoneNumber string    `db:"phone_number" json:"phone_number"`
	BirthDate   time.Time `db:"birth_date" json:"birth_date"`
	CRMStatus   CRMStatus `db:"crm_status" json:"crm_status"`
	UserUUID    string    `db:"user_uuid" json:"-"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Page : параметры постраничной выборки
type Page struct {
	Limit  int
	Offset int
}
