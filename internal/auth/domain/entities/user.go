package entities

import (
	"errors"
	"time"
)

// Определяем ошибки домена пользователя как константы.
var (
	ErrEmptyUsername = errors.New("username cannot be empty")
	ErrEmptyPassword = errors.New("password cannot be empty")
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = errors.New("user with this username already exists")
	ErrUserInactive  = errors.New("user is inactive")
)

// User представляет основную сущность домена пользователя.
// Username уникален и неизменяем после создания; PasswordHash никогда
// не покидает границы сервиса.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
}
