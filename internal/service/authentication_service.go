package service

import (
	"contacts-web-server/internal/model"
	"contacts-web-server/internal/ports"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	confirmationSubject = "Confirm your email"
	defaultCacheTimeout = 500 * time.Millisecond
)

type AuthenticationService struct {
	userRepository ports.UserRepository
	sessionCache   ports.SessionCache
	tokenService   ports.TokenService
	passwordHasher ports.PasswordHasher
	mailer         ports.Mailer
	cacheTimeout   time.Duration
	log            *zap.Logger
}

func NewAuthenticationService(
	userRepository ports.UserRepository,
	sessionCache ports.SessionCache,
	tokenService ports.TokenService,
	passwordHasher ports.PasswordHasher,
	mailer ports.Mailer,
	cacheTimeout time.Duration,
) *AuthenticationService {
	if cacheTimeout <= 0 {
		cacheTimeout = defaultCacheTimeout
	}
	return &AuthenticationService{
		userRepository: userRepository,
		sessionCache:   sessionCache,
		tokenService:   tokenService,
		passwordHasher: passwordHasher,
		mailer:         mailer,
		cacheTimeout:   cacheTimeout,
		log:            zap.L().With(zap.String("component", "service.authentication")),
	}
}

// Authenticate проверяет access токен и возвращает пользователя.
// Сначала читается кэш сессий, при промахе или сбое кэша пользователь
// берётся из БД и записывается в кэш. Роль и прочие поля могут отставать
// от БД на время жизни записи в кэше.
//
// Возвращает:
//   - model.ErrUnauthenticated, если токен невалиден, выпущен не для доступа
//     или пользователь не найден
//   - обёрнутую ошибку БД, если хранилище пользователей недоступно
func (s *AuthenticationService) Authenticate(ctx context.Context, accessToken string) (*model.User, error) {
	email, err := s.tokenService.Decode(accessToken, model.ScopeAccess)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUnauthenticated, err)
	}

	if user := s.cachedUser(ctx, email); user != nil {
		return user, nil
	}

	user, err := s.userRepository.FindByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return nil, fmt.Errorf("%w: пользователь %s не найден", model.ErrUnauthenticated, email)
	}
	if err != nil {
		return nil, fmt.Errorf("[AuthenticationService] ошибка чтения пользователя: %w", err)
	}

	s.cacheUser(ctx, user)
	return user, nil
}

// Refresh выдаёт новую пару токенов по действующему refresh токену.
// Токен должен совпадать с сохранённым у пользователя. При несовпадении
// сохранённый токен отзывается, и повторно воспользоваться ни старым,
// ни последним выданным refresh токеном нельзя.
func (s *AuthenticationService) Refresh(ctx context.Context, refreshToken string) (*model.TokensPair, error) {
	email, err := s.tokenService.Decode(refreshToken, model.ScopeRefresh)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUnauthenticated, err)
	}

	user, err := s.userRepository.FindByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return nil, fmt.Errorf("%w: пользователь %s не найден", model.ErrUnauthenticated, email)
	}
	if err != nil {
		return nil, fmt.Errorf("[AuthenticationService] ошибка чтения пользователя: %w", err)
	}

	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		if err := s.userRepository.SetRefreshToken(ctx, email, nil); err != nil {
			s.log.Error("не удалось отозвать refresh токен", zap.String("email", email), zap.Error(err))
		}
		s.log.Warn("предъявлен устаревший refresh токен", zap.String("email", email))
		return nil, fmt.Errorf("%w: refresh токен не совпадает с сохранённым", model.ErrUnauthenticated)
	}

	return s.issueTokens(ctx, email)
}

// Login : пароль проверяется только для подтверждённых пользователей
func (s *AuthenticationService) Login(ctx context.Context, email, password string) (*model.TokensPair, error) {
	user, err := s.userRepository.FindByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return nil, fmt.Errorf("%w: пользователь %s не найден", model.ErrUnauthenticated, email)
	}
	if err != nil {
		return nil, fmt.Errorf("[AuthenticationService] ошибка чтения пользователя: %w", err)
	}

	if !user.Confirmed {
		return nil, model.ErrEmailNotConfirmed
	}

	if !s.passwordHasher.Verify(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: неверный пароль", model.ErrUnauthenticated)
	}

	return s.issueTokens(ctx, user.Email)
}

// Signup регистрирует пользователя и в фоне отправляет письмо
// со ссылкой <baseURL>api/auth/confirmed_email/<token>.
func (s *AuthenticationService) Signup(ctx context.Context, user *model.User, password, baseURL string) (*model.User, error) {
	_, err := s.userRepository.FindByEmail(ctx, user.Email)
	if err == nil {
		return nil, fmt.Errorf("[AuthenticationService] email %s: %w", user.Email, model.ErrAlreadyExists)
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, fmt.Errorf("[AuthenticationService] ошибка чтения пользователя: %w", err)
	}

	hash, err := s.passwordHasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("[AuthenticationService] не удалось создать хэш пароля: %w", err)
	}

	user.UUID = uuid.New().String()
	user.PasswordHash = hash
	user.Confirmed = false
	if !user.Role.Valid() {
		user.Role = model.RoleUser
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("[AuthenticationService] ошибка создания пользователя: %w", err)
	}

	s.sendConfirmation(ctx, created, baseURL)
	return created, nil
}

// ConfirmEmail : alreadyConfirmed = true, если почта была подтверждена раньше
func (s *AuthenticationService) ConfirmEmail(ctx context.Context, token string) (bool, error) {
	email, err := s.tokenService.Decode(token, model.ScopeEmail)
	if err != nil {
		return false, fmt.Errorf("%w: %v", model.ErrInvalidToken, err)
	}

	user, err := s.userRepository.FindByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return false, model.ErrEmailVerification
	}
	if err != nil {
		return false, fmt.Errorf("[AuthenticationService] ошибка чтения пользователя: %w", err)
	}

	if user.Confirmed {
		return true, nil
	}

	if err := s.userRepository.MarkConfirmed(ctx, email); err != nil {
		return false, fmt.Errorf("[AuthenticationService] не удалось подтвердить почту: %w", err)
	}
	return false, nil
}

// RequestEmail повторно отправляет письмо подтверждения.
// Для неизвестного email ничего не отправляется и ошибки нет.
func (s *AuthenticationService) RequestEmail(ctx context.Context, email, baseURL string) (bool, error) {
	user, err := s.userRepository.FindByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("[AuthenticationService] ошибка чтения пользователя: %w", err)
	}

	if user.Confirmed {
		return true, nil
	}

	s.sendConfirmation(ctx, user, baseURL)
	return false, nil
}

// issueTokens : выпускает пару и перезаписывает сохранённый refresh токен
func (s *AuthenticationService) issueTokens(ctx context.Context, email string) (*model.TokensPair, error) {
	accessToken, err := s.tokenService.Issue(email, model.ScopeAccess, 0)
	if err != nil {
		return nil, fmt.Errorf("[AuthenticationService] ошибка генерации access токена: %w", err)
	}

	refreshToken, err := s.tokenService.Issue(email, model.ScopeRefresh, 0)
	if err != nil {
		return nil, fmt.Errorf("[AuthenticationService] ошибка генерации refresh токена: %w", err)
	}

	if err := s.userRepository.SetRefreshToken(ctx, email, &refreshToken); err != nil {
		return nil, fmt.Errorf("[AuthenticationService] не удалось сохранить refresh токен: %w", err)
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

// cachedUser : любая ошибка кэша считается промахом
func (s *AuthenticationService) cachedUser(ctx context.Context, email string) *model.User {
	if s.sessionCache == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.cacheTimeout)
	defer cancel()

	user, err := s.sessionCache.GetUser(ctx, email)
	if err != nil {
		s.log.Warn("кэш сессий недоступен, чтение из БД", zap.String("email", email), zap.Error(err))
		return nil
	}
	return user
}

func (s *AuthenticationService) cacheUser(ctx context.Context, user *model.User) {
	if s.sessionCache == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.cacheTimeout)
	defer cancel()

	if err := s.sessionCache.SetUser(ctx, user); err != nil {
		s.log.Warn("не удалось записать пользователя в кэш", zap.String("email", user.Email), zap.Error(err))
	}
}

// sendConfirmation : письмо уходит в фоне, запрос его не ждёт
func (s *AuthenticationService) sendConfirmation(ctx context.Context, user *model.User, baseURL string) {
	token, err := s.tokenService.Issue(user.Email, model.ScopeEmail, 0)
	if err != nil {
		s.log.Error("ошибка генерации email токена", zap.String("email", user.Email), zap.Error(err))
		return
	}

	body, err := renderConfirmationEmail(user.Username, baseURL, token)
	if err != nil {
		s.log.Error("ошибка формирования письма", zap.Error(err))
		return
	}

	ctx = context.WithoutCancel(ctx)
	go func() {
		if err := s.mailer.Send(ctx, user.Email, confirmationSubject, body); err != nil {
			s.log.Error("ошибка отправки письма подтверждения", zap.String("email", user.Email), zap.Error(err))
		}
	}()
}
