package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"gonotes/internal/auth/domain/entities"
	"gonotes/internal/auth/domain/services"
	"gonotes/internal/auth/ports/api"
	"gonotes/internal/auth/ports/repositories"
	svc "gonotes/internal/auth/ports/services"
	"gonotes/pkg/logger"
)

const (
	methodAuthenticate = "Authenticate"

	msgAuthenticating      = "authenticating bearer token"
	msgTokenRejected       = "token validation failed"
	msgSubjectNotFound     = "token subject no longer resolves to a user"
	msgSubjectInactive     = "token subject is inactive"
	msgAuthenticated       = "request authenticated"
	msgErrResolvingSubject = "error resolving token subject"

	errCtxUnauthorized = "authenticating request"
)

// AuthGateImpl реализует интерфейс api.AuthGate. Токен проверяется
// криптографически, после чего subject заново разрешается в хранилище:
// токен сам по себе не доказывает, что пользователь все еще существует
// и активен.
type AuthGateImpl struct {
	userRepo repositories.UserRepository
	tokenSvc svc.TokenService
}

// NewAuthGate создает новый экземпляр шлюза авторизации.
func NewAuthGate(userRepo repositories.UserRepository, tokenSvc svc.TokenService) api.AuthGate {
	return &AuthGateImpl{
		userRepo: userRepo,
		tokenSvc: tokenSvc,
	}
}

// Authenticate разрешает bearer токен в пользователя. Любая причина отказа -
// отсутствующий, битый или истекший токен, неизвестный или деактивированный
// subject - сворачивается в services.ErrUnauthorized; различия остаются в логах.
func (g *AuthGateImpl) Authenticate(ctx context.Context, token string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAuthenticate))
	log.Debug(ctx, msgAuthenticating)

	if token == "" {
		return nil, fmt.Errorf("%s: %w", errCtxUnauthorized, services.ErrUnauthorized)
	}

	username, err := g.tokenSvc.ValidateAccessToken(ctx, token)
	if err != nil {
		log.Debug(ctx, msgTokenRejected, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUnauthorized, services.ErrUnauthorized)
	}

	user, err := g.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgSubjectNotFound, zap.String("username", username))
			return nil, fmt.Errorf("%s: %w", errCtxUnauthorized, services.ErrUnauthorized)
		}
		log.Error(ctx, msgErrResolvingSubject, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUnauthorized, services.ErrUnauthorized)
	}

	if !user.IsActive {
		log.Debug(ctx, msgSubjectInactive, zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxUnauthorized, services.ErrUnauthorized)
	}

	log.Debug(ctx, msgAuthenticated, zap.String("userID", user.ID))
	return user, nil
}
