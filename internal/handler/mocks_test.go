package handler_test

import (
	"contacts-web-server/internal/model"
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockAuthenticationService
type MockAuthenticationService struct {
	mock.Mock
}

func (m *MockAuthenticationService) Authenticate(ctx context.Context, accessToken string) (*model.User, error) {
	args := m.Called(ctx, accessToken)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthenticationService) Refresh(ctx context.Context, refreshToken string) (*model.TokensPair, error) {
	args := m.Called(ctx, refreshToken)
	if p, ok := args.Get(0).(*model.TokensPair); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthenticationService) Login(ctx context.Context, email, password string) (*model.TokensPair, error) {
	args := m.Called(ctx, email, password)
	if p, ok := args.Get(0).(*model.TokensPair); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthenticationService) Signup(ctx context.Context, user *model.User, password, baseURL string) (*model.User, error) {
	args := m.Called(ctx, user, password, baseURL)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthenticationService) ConfirmEmail(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

func (m *MockAuthenticationService) RequestEmail(ctx context.Context, email, baseURL string) (bool, error) {
	args := m.Called(ctx, email, baseURL)
	return args.Bool(0), args.Error(1)
}

// MockUserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) UpdateAvatar(ctx context.Context, user *model.User, file io.Reader, size int64, contentType string) (*model.User, error) {
	args := m.Called(ctx, user, file, size, contentType)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockContactService
type MockContactService struct {
	mock.Mock
}

func contacts(args mock.Arguments) ([]model.Contact, error) {
	if c, ok := args.Get(0).([]model.Contact); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func contact(args mock.Arguments) (*model.Contact, error) {
	if c, ok := args.Get(0).(*model.Contact); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockContactService) List(ctx context.Context, user *model.User, page model.Page) ([]model.Contact, error) {
	return contacts(m.Called(ctx, user, page))
}

func (m *MockContactService) ListAll(ctx context.Context, page model.Page) ([]model.Contact, error) {
	return contacts(m.Called(ctx, page))
}

func (m *MockContactService) Get(ctx context.Context, user *model.User, id int64) (*model.Contact, error) {
	return contact(m.Called(ctx, user, id))
}

func (m *MockContactService) Create(ctx context.Context, user *model.User, c *model.Contact) (*model.Contact, error) {
	return contact(m.Called(ctx, user, c))
}

func (m *MockContactService) Update(ctx context.Context, user *model.User, id int64, c *model.Contact) (*model.Contact, error) {
	return contact(m.Called(ctx, user, id, c))
}

func (m *MockContactService) Delete(ctx context.Context, user *model.User, id int64) error {
	return m.Called(ctx, user, id).Error(0)
}

func (m *MockContactService) SearchByFirstName(ctx context.Context, user *model.User, value string) ([]model.Contact, error) {
	return contacts(m.Called(ctx, user, value))
}

func (m *MockContactService) SearchByLastName(ctx context.Context, user *model.User, value string) ([]model.Contact, error) {
	return contacts(m.Called(ctx, user, value))
}

func (m *MockContactService) SearchByEmail(ctx context.Context, user *model.User, value string) ([]model.Contact, error) {
	return contacts(m.Called(ctx, user, value))
}

func (m *MockContactService) SearchComplex(ctx context.Context, value string) ([]model.Contact, error) {
	return contacts(m.Called(ctx, value))
}

func (m *MockContactService) UpcomingBirthdays(ctx context.Context, shiftDays int) ([]model.Contact, error) {
	return contacts(m.Called(ctx, shiftDays))
}
