package api

import (
	"context"

	"gonotes/internal/auth/domain/entities"
	"gonotes/internal/auth/domain/services"
)

// AuthUseCase определяет интерфейс сценариев аутентификации.
type AuthUseCase interface {
	// Login проверяет учетные данные и выдает токен доступа.
	Login(ctx context.Context, username, password string) (*services.AccessToken, error)

	// CreateUser создает нового пользователя с хэшированным паролем.
	CreateUser(ctx context.Context, username, password string) (*entities.User, error)

	// EnsureAdminUser создает пользователя admin, если тот отсутствует.
	// Явный шаг начальной инициализации для разработки.
	EnsureAdminUser(ctx context.Context, username, password string) error
}

// AuthGate разрешает bearer токен в аутентифицированного пользователя.
// Единственная точка, через которую проходят все защищенные операции.
type AuthGate interface {
	Authenticate(ctx context.Context, token string) (*entities.User, error)
}
