package security

import (
	"contacts-web-server/internal/model"
	"slices"
)

// CheckRole : роль пользователя должна входить в allowed, иерархии ролей нет
func CheckRole(user *model.User, allowed ...model.Role) error {
	if user == nil || !slices.Contains(allowed, user.Role) {
		return model.ErrForbidden
	}
	return nil
}
