package repository

import (
	"contacts-web-server/config"
	"contacts-web-server/internal/model"
	"contacts-web-server/internal/util"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

const userColumns = `uuid, username, email, password_hash, role, confirmed, refresh_token, avatar, created_at, updated_at`

// uniqueViolation : код ошибки postgres при нарушении UNIQUE
const uniqueViolation = "23505"

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// CreateUser : сохраняет нового пользователя, роль и confirmed берутся из user
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (uuid, username, email, password_hash, role, confirmed)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + userColumns

	var createdUser model.User
	err := r.QueryRowxContext(ctx, query,
		user.UUID, user.Username, user.Email, user.PasswordHash, user.Role, user.Confirmed,
	).StructScan(&createdUser)
	if isUniqueViolation(err) {
		return nil, fmt.Errorf("[UserRepo] email %s: %w", user.Email, model.ErrAlreadyExists)
	}
	if err != nil {
		return nil, util.LogError("[UserRepo] ошибка вставки данных в БД", err)
	}

	return &createdUser, nil
}

// FindByEmail : ищет пользователя по email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user model.User
	err := r.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("[UserRepo] пользователь %s: %w", email, model.ErrNotFound)
	}
	if err != nil {
		return nil, util.LogError("[UserRepo] не удалось найти пользователя по email", err)
	}
	return &user, nil
}

// SetRefreshToken : перезаписывает refresh токен, nil отзывает текущий
func (r *UserRepository) SetRefreshToken(ctx context.Context, email string, token *string) error {
	query := `UPDATE users SET refresh_token = $2, updated_at = NOW() WHERE email = $1`
	return r.execAffectingOne(ctx, "не удалось сохранить refresh токен", query, email, token)
}

// MarkConfirmed : помечает почту пользователя подтверждённой
func (r *UserRepository) MarkConfirmed(ctx context.Context, email string) error {
	query := `UPDATE users SET confirmed = TRUE, updated_at = NOW() WHERE email = $1`
	return r.execAffectingOne(ctx, "не удалось подтвердить почту", query, email)
}

// SetAvatarURL : сохраняет ссылку на аватар и возвращает обновлённого пользователя
func (r *UserRepository) SetAvatarURL(ctx context.Context, email, url string) (*model.User, error) {
	query := `UPDATE users SET avatar = $2, updated_at = NOW() WHERE email = $1 RETURNING ` + userColumns

	var user model.User
	err := r.GetContext(ctx, &user, query, email, url)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("[UserRepo] пользователь %s: %w", email, model.ErrNotFound)
	}
	if err != nil {
		return nil, util.LogError("[UserRepo] не удалось обновить аватар", err)
	}
	return &user, nil
}

func (r *UserRepository) execAffectingOne(ctx context.Context, message, query string, args ...interface{}) error {
	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		return util.LogError("[UserRepo] "+message, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[UserRepo] "+message, err)
	}
	if affected == 0 {
		return fmt.Errorf("[UserRepo] %s: %w", message, model.ErrNotFound)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
