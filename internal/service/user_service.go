package service

import (
	"contacts-web-server/internal/model"
	"contacts-web-server/internal/ports"
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

// avatarPrefix : каталог аватаров в бакете, ключ contacts-app/<email>
const avatarPrefix = "contacts-app/"

type UserService struct {
	userRepository ports.UserRepository
	sessionCache   ports.SessionCache
	avatarStorage  ports.AvatarStorage
	cacheTimeout   time.Duration
	log            *zap.Logger
}

func NewUserService(
	userRepository ports.UserRepository,
	sessionCache ports.SessionCache,
	avatarStorage ports.AvatarStorage,
	cacheTimeout time.Duration,
) *UserService {
	if cacheTimeout <= 0 {
		cacheTimeout = defaultCacheTimeout
	}
	return &UserService{
		userRepository: userRepository,
		sessionCache:   sessionCache,
		avatarStorage:  avatarStorage,
		cacheTimeout:   cacheTimeout,
		log:            zap.L().With(zap.String("component", "service.user")),
	}
}

// UpdateAvatar загружает файл в хранилище, сохраняет ссылку в БД
// и перезаписывает запись пользователя в кэше сессий.
func (s *UserService) UpdateAvatar(ctx context.Context, user *model.User, file io.Reader, size int64, contentType string) (*model.User, error) {
	if user == nil {
		return nil, model.ErrUnauthenticated
	}

	avatarURL, err := s.avatarStorage.UploadAvatar(ctx, avatarPrefix+user.Email, file, size, contentType)
	if err != nil {
		return nil, fmt.Errorf("[UserService] не удалось загрузить аватар: %w", err)
	}

	updated, err := s.userRepository.SetAvatarURL(ctx, user.Email, avatarURL)
	if err != nil {
		return nil, fmt.Errorf("[UserService] не удалось сохранить аватар: %w", err)
	}

	s.cacheUser(ctx, updated)
	return updated, nil
}

// cacheUser : без кэша сессий (nil) запись пропускается
func (s *UserService) cacheUser(ctx context.Context, user *model.User) {
	if s.sessionCache == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.cacheTimeout)
	defer cancel()
	if err := s.sessionCache.SetUser(ctx, user); err != nil {
		s.log.Warn("не удалось обновить пользователя в кэше", zap.String("email", user.Email), zap.Error(err))
	}
}
