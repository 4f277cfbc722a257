package repositories

import (
	"context"

	"gonotes/internal/auth/domain/entities"
)

// UserRepository определяет интерфейс для операций сохранения данных пользователя.
// FindByUsername возвращает entities.ErrUserNotFound для отсутствующего имени;
// Create возвращает entities.ErrDuplicateUser при коллизии имени, уникальность
// гарантируется ограничением хранилища, а не проверкой перед вставкой.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*entities.User, error)

	Create(ctx context.Context, user *entities.User) (*entities.User, error)
}
