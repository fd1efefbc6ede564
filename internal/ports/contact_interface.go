package ports

import (
	"contacts-web-server/internal/model"
	"context"
)

// ContactRepository : SQL слой
type ContactRepository interface {
	List(ctx context.Context, userUUID string, page model.Page) ([]model.Contact, error)
	ListAll(ctx context.Context, page model.Page) ([]model.Contact, error)
	GetByID(ctx context.Context, id int64, userUUID string) (*model.Contact, error)
	Create(ctx context.Context, contact *model.Contact) (*model.Contact, error)
	Update(ctx context.Context, contact *model.Contact) (*model.Contact, error)
	Delete(ctx context.Context, id int64, userUUID string) (bool, error)
	SearchByFirstName(ctx context.Context, userUUID, value string) ([]model.Contact, error)
	SearchByLastName(ctx context.Context, userUUID, value string) ([]model.Contact, error)
	SearchByEmail(ctx context.Context, userUUID, value string) ([]model.Contact, error)
	SearchComplex(ctx context.Context, value string) ([]model.Contact, error)
	ListByBirthdayWindow(ctx context.Context, fromMMDD, toMMDD string) ([]model.Contact, error)
}

type ContactService interface {
	List(ctx context.Context, user *model.User, page model.Page) ([]model.Contact, error)
	ListAll(ctx context.Context, page model.Page) ([]model.Contact, error)
	Get(ctx context.Context, user *model.User, id int64) (*model.Contact, error)
	Create(ctx context.Context, user *model.User, contact *model.Contact) (*model.Contact, error)
	Update(ctx context.Context, user *model.User, id int64, contact *model.Contact) (*model.Contact, error)
	Delete(ctx context.Context, user *model.User, id int64) error
	SearchByFirstName(ctx context.Context, user *model.User, value string) ([]model.Contact, error)
	SearchByLastName(ctx context.Context, user *model.User, value string) ([]model.Contact, error)
	SearchByEmail(ctx context.Context, user *model.User, value string) ([]model.Contact, error)
	SearchComplex(ctx context.Context, value string) ([]model.Contact, error)
	UpcomingBirthdays(ctx context.Context, shiftDays int) ([]model.Contact, error)
}
