package ports

import (
	"contacts-web-server/internal/model"
	"context"
)

type AuthenticationService interface {
	Authenticate(ctx context.Context, accessToken string) (*model.User, error)
	Refresh(ctx context.Context, refreshToken string) (*model.TokensPair, error)
	Login(ctx context.Context, email, password string) (*model.TokensPair, error)
	Signup(ctx context.Context, user *model.User, password, baseURL string) (*model.User, error)
	ConfirmEmail(ctx context.Context, token string) (alreadyConfirmed bool, err error)
	RequestEmail(ctx context.Context, email, baseURL string) (alreadyConfirmed bool, err error)
}
