package security

import (
	"contacts-web-server/internal/model"
	"contacts-web-server/internal/util"
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type contextKey string

const (
	UserContextKey contextKey = "user"
)

type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*model.User, error)
}

// BearerToken : достаёт токен из заголовка "Authorization: Bearer <token>"
func BearerToken(request *http.Request) (string, bool) {
	parts := strings.Fields(request.Header.Get("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// WriteUnauthenticated : 401 с заголовком WWW-Authenticate
func WriteUnauthenticated(writer http.ResponseWriter, message string) {
	writer.Header().Set("WWW-Authenticate", "Bearer")
	util.HandleError(writer, message, http.StatusUnauthorized)
}

func JWTMiddleware(authenticator Authenticator) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(handleAuthentication(authenticator, next))
	}
}

func handleAuthentication(authenticator Authenticator, next http.Handler) func(writer http.ResponseWriter, request *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		token, ok := BearerToken(request)
		if !ok {
			WriteUnauthenticated(writer, "Not authenticated")
			return
		}

		user, err := authenticator.Authenticate(request.Context(), token)
		switch {
		case err == nil:
		case errors.Is(err, model.ErrUnauthenticated):
			WriteUnauthenticated(writer, "Could not validate credentials")
			return
		default:
			zap.L().Error("ошибка аутентификации", zap.Error(err))
			util.HandleError(writer, "internal server error", http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(writer, request.WithContext(WithUser(request.Context(), user)))
	}
}

// RequireRoles : пропускает только пользователей с одной из ролей
func RequireRoles(roles ...model.Role) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			user, err := GetUserFromContext(request.Context())
			if err != nil {
				WriteUnauthenticated(writer, "Not authenticated")
				return
			}
			if err := CheckRole(user, roles...); err != nil {
				util.HandleError(writer, "Operation forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}

func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}

func GetUserFromContext(ctx context.Context) (*model.User, error) {
	user, ok := ctx.Value(UserContextKey).(*model.User)
	if !ok || user == nil {
		return nil, model.ErrUnauthenticated
	}
	return user, nil
}
