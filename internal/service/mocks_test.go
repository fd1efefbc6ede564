package service_test

import (
	"contacts-web-server/internal/model"
	"context"
	"io"
	"sync"

	"github.com/stretchr/testify/mock"
)

// ===== MOCKS =====

// MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) SetRefreshToken(ctx context.Context, email string, token *string) error {
	args := m.Called(ctx, email, token)
	return args.Error(0)
}

func (m *MockUserRepository) MarkConfirmed(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockUserRepository) SetAvatarURL(ctx context.Context, email, url string) (*model.User, error) {
	args := m.Called(ctx, email, url)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockSessionCache
type MockSessionCache struct {
	mock.Mock
}

func (m *MockSessionCache) GetUser(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSessionCache) SetUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockAvatarStorage
type MockAvatarStorage struct {
	mock.Mock
}

func (m *MockAvatarStorage) UploadAvatar(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, key, body, size, contentType)
	return args.String(0), args.Error(1)
}

// MockContactRepository
type MockContactRepository struct {
	mock.Mock
}

func contactsResult(args mock.Arguments) ([]model.Contact, error) {
	if c, ok := args.Get(0).([]model.Contact); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func contactResult(args mock.Arguments) (*model.Contact, error) {
	if c, ok := args.Get(0).(*model.Contact); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockContactRepository) List(ctx context.Context, userUUID string, page model.Page) ([]model.Contact, error) {
	return contactsResult(m.Called(ctx, userUUID, page))
}

func (m *MockContactRepository) ListAll(ctx context.Context, page model.Page) ([]model.Contact, error) {
	return contactsResult(m.Called(ctx, page))
}

func (m *MockContactRepository) GetByID(ctx context.Context, id int64, userUUID string) (*model.Contact, error) {
	return contactResult(m.Called(ctx, id, userUUID))
}

func (m *MockContactRepository) Create(ctx context.Context, contact *model.Contact) (*model.Contact, error) {
	return contactResult(m.Called(ctx, contact))
}

func (m *MockContactRepository) Update(ctx context.Context, contact *model.Contact) (*model.Contact, error) {
	return contactResult(m.Called(ctx, contact))
}

func (m *MockContactRepository) Delete(ctx context.Context, id int64, userUUID string) (bool, error) {
	args := m.Called(ctx, id, userUUID)
	return args.Bool(0), args.Error(1)
}

func (m *MockContactRepository) SearchByFirstName(ctx context.Context, userUUID, value string) ([]model.Contact, error) {
	return contactsResult(m.Called(ctx, userUUID, value))
}

func (m *MockContactRepository) SearchByLastName(ctx context.Context, userUUID, value string) ([]model.Contact, error) {
	return contactsResult(m.Called(ctx, userUUID, value))
}

func (m *MockContactRepository) SearchByEmail(ctx context.Context, userUUID, value string) ([]model.Contact, error) {
	return contactsResult(m.Called(ctx, userUUID, value))
}

func (m *MockContactRepository) SearchComplex(ctx context.Context, value string) ([]model.Contact, error) {
	return contactsResult(m.Called(ctx, value))
}

func (m *MockContactRepository) ListByBirthdayWindow(ctx context.Context, fromMMDD, toMMDD string) ([]model.Contact, error) {
	return contactsResult(m.Called(ctx, fromMMDD, toMMDD))
}

// ===== FAKES =====

// memoryUsers : хранилище пользователей в памяти
type memoryUsers struct {
	mu    sync.Mutex
	users map[string]model.User
	err   error
}

func newMemoryUsers(users ...model.User) *memoryUsers {
	repo := &memoryUsers{users: make(map[string]model.User)}
	for _, u := range users {
		repo.users[u.Email] = u
	}
	return repo
}

func (r *memoryUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[email]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &u, nil
}

func (r *memoryUsers) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Email]; ok {
		return nil, model.ErrAlreadyExists
	}
	r.users[user.Email] = *user
	created := *user
	return &created, nil
}

func (r *memoryUsers) SetRefreshToken(_ context.Context, email string, token *string) error {
	return r.update(email, func(u *model.User) {
		if token == nil {
			u.RefreshToken = nil
			return
		}
		value := *token
		u.RefreshToken = &value
	})
}

func (r *memoryUsers) MarkConfirmed(_ context.Context, email string) error {
	return r.update(email, func(u *model.User) { u.Confirmed = true })
}

func (r *memoryUsers) SetAvatarURL(_ context.Context, email, url string) (*model.User, error) {
	if err := r.update(email, func(u *model.User) { u.Avatar = &url }); err != nil {
		return nil, err
	}
	u := r.get(email)
	return &u, nil
}

func (r *memoryUsers) update(email string, apply func(u *model.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return model.ErrNotFound
	}
	apply(&u)
	r.users[email] = u
	return nil
}

func (r *memoryUsers) get(email string) model.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[email]
}

// memoryCache : кэш сессий в памяти, хранит снимок без секретов
type memoryCache struct {
	mu      sync.Mutex
	entries map[string]model.User
	getErr  error
	setErr  error
	block   bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]model.User)}
}

func (c *memoryCache) GetUser(ctx context.Context, email string) (*model.User, error) {
	if c.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	u, ok := c.entries[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (c *memoryCache) SetUser(ctx context.Context, user *model.User) error {
	if c.block {
		<-ctx.Done()
		return ctx.Err()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	snapshot := *user
	snapshot.PasswordHash = ""
	snapshot.RefreshToken = nil
	c.entries[user.Email] = snapshot
	return nil
}

func (c *memoryCache) expire(email string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, email)
}

func (c *memoryCache) has(email string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[email]
	return ok
}

type sentMail struct {
	to, subject, body string
}

// recordingMailer : складывает письма в канал
type recordingMailer struct {
	sent chan sentMail
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{sent: make(chan sentMail, 8)}
}

func (m *recordingMailer) Send(_ context.Context, to, subject, body string) error {
	m.sent <- sentMail{to: to, subject: subject, body: body}
	return nil
}
