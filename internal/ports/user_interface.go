package ports

import (
	"contacts-web-server/internal/model"
	"context"
	"io"
)

// UserRepository : хранилище пользователей (источник истины)
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	SetRefreshToken(ctx context.Context, email string, token *string) error
	MarkConfirmed(ctx context.Context, email string) error
	SetAvatarURL(ctx context.Context, email, url string) (*model.User, error)
}

type UserService interface {
	UpdateAvatar(ctx context.Context, user *model.User, file io.Reader, size int64, contentType string) (*model.User, error)
}
