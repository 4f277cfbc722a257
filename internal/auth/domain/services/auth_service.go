package services

import (
	"errors"
	"time"
)

// Ошибки домена аутентификации.
var (
	// ErrInvalidCredentials намеренно не различает неизвестное имя пользователя
	// и неверный пароль, чтобы исключить перебор имен.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUnauthorized       = errors.New("unauthorized")
)

// AccessToken представляет выданный токен доступа.
type AccessToken struct {
	Token     string
	TokenType string
	ExpiresAt time.Time
}

// BearerTokenType - тип токена, отдаваемый клиенту.
const BearerTokenType = "bearer"
