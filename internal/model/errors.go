package model

import "errors"

var (
	// ErrUnauthenticated : не удалось установить личность вызывающего
	ErrUnauthenticated = errors.New("could not validate credentials")
	// ErrEmailNotConfirmed : почта пользователя ещё не подтверждена
	ErrEmailNotConfirmed = errors.New("email not confirmed")
	// ErrForbidden : роль пользователя не входит в разрешённые для маршрута
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidToken : подпись или срок действия токена не прошли проверку
	ErrInvalidToken = errors.New("invalid token")
	// ErrWrongScope : токен выпущен для другого назначения
	ErrWrongScope = errors.New("invalid scope for token")

	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrValidation        = errors.New("validation failed")
	ErrEmailVerification = errors.New("verification error")
)
