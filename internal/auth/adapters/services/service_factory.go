// Package services предоставляет реализации сервисов аутентификации:
// хэширование паролей и выдачу/проверку JWT токенов.
package services

import (
	"fmt"
	"time"

	"gonotes/internal/auth/ports/services"
)

// ServiceFactory создает все необходимые сервисы для аутентификации.
type ServiceFactory struct {
	passwordService services.PasswordService
	tokenService    services.TokenService
}

// NewServiceFactory создает новую фабрику сервисов.
func NewServiceFactory(
	jwtSecretKey, jwtAlgorithm string,
	accessTokenTTL time.Duration,
	bcryptCost int,
) (*ServiceFactory, error) {
	tokenService, err := NewJWT(jwtSecretKey, jwtAlgorithm, accessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("creating token service: %w", err)
	}
	return &ServiceFactory{
		passwordService: NewBcrypt(bcryptCost),
		tokenService:    tokenService,
	}, nil
}

// PasswordService возвращает сервис для работы с паролями.
func (f *ServiceFactory) PasswordService() services.PasswordService {
	return f.passwordService
}

// TokenService возвращает сервис для работы с токенами.
func (f *ServiceFactory) TokenService() services.TokenService {
	return f.tokenService
}
