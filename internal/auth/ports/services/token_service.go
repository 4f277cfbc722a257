package services

import (
	"context"
	"time"
)

// TokenService определяет интерфейс для операций с токенами JWT.
// ValidateAccessToken возвращает имя пользователя из claim sub.
type TokenService interface {
	IssueAccessToken(ctx context.Context, username string) (string, time.Time, error)

	ValidateAccessToken(ctx context.Context, token string) (string, error)
}
