// Package app реализует сценарии аутентификации.
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
	methodLogin       = "Login"
	methodCreateUser  = "CreateUser"
	methodEnsureAdmin = "EnsureAdminUser"

	msgLoginAttempt        = "login attempt"
	msgLoginNonExistent    = "login attempt with non-existent username"
	msgInvalidPasswordAuth = "invalid password provided"
	msgUserLoggedIn        = "user logged in successfully"
	msgTokenIssued         = "access token issued for user"
	msgCreatingUser        = "creating user"
	msgUserCreated         = "user created successfully"
	msgAdminExists         = "admin user already exists, skipping bootstrap"
	msgAdminCreated        = "admin user created"

	msgErrFindingUser      = "error finding user by username"
	msgErrVerifyPassword   = "error verifying password"
	msgErrIssueToken       = "failed to issue access token"
	msgErrHashPassword     = "failed to hash password"
	msgErrCreateUser       = "failed to create user"
	msgErrCheckingAdmin    = "failed to check for existing admin user"
	msgErrBootstrapAdmin   = "failed to bootstrap admin user"
	msgAdminCreateRaced    = "admin user created concurrently, nothing to do"
	errCtxInvalidCreds     = "invalid credentials"
	errCtxFindingUser      = "finding user"
	errCtxVerifyPassword   = "verifying password"
	errCtxIssuingToken     = "issuing token"
	errCtxHashingPassword  = "hashing password"
	errCtxCreatingUser     = "creating user"
	errCtxCheckingAdmin    = "checking admin user"
	errCtxBootstrapAdmin   = "bootstrapping admin user"
	errCtxValidatingInput  = "validating input"
)

// AuthUseCaseImpl реализует интерфейс api.AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
}

// NewAuthUseCase создает новый экземпляр сценариев аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

// Login аутентифицирует пользователя по имени и паролю и выдает токен доступа.
// Неизвестное имя и неверный пароль дают одинаковую ошибку ErrInvalidCredentials.
func (a *AuthUseCaseImpl) Login(ctx context.Context, username, password string) (*services.AccessToken, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("username", username))
	log.Debug(ctx, msgLoginAttempt)

	user, err := a.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return nil, fmt.Errorf("%s: %w", errCtxInvalidCreds, services.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyPassword, zap.Error(err), zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCreds, services.ErrInvalidCredentials)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPasswordAuth, zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCreds, services.ErrInvalidCredentials)
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("userID", user.ID))

	token, expiresAt, err := a.tokenSvc.IssueAccessToken(ctx, user.Username)
	if err != nil {
		log.Error(ctx, msgErrIssueToken, zap.Error(err), zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxIssuingToken, err)
	}

	log.Info(ctx, msgTokenIssued, zap.String("userID", user.ID))
	return &services.AccessToken{
		Token:     token,
		TokenType: services.BearerTokenType,
		ExpiresAt: expiresAt,
	}, nil
}

// CreateUser создает нового пользователя, сохраняя только хэш пароля.
func (a *AuthUseCaseImpl) CreateUser(ctx context.Context, username, password string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateUser), zap.String("username", username))
	log.Debug(ctx, msgCreatingUser)

	if username == "" {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingInput, entities.ErrEmptyUsername)
	}
	if password == "" {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingInput, entities.ErrEmptyPassword)
	}

	hashedPassword, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	createdUser, err := a.userRepo.Create(ctx, &entities.User{
		Username:     username,
		PasswordHash: hashedPassword,
		IsActive:     true,
	})
	if err != nil {
		if !errors.Is(err, entities.ErrDuplicateUser) {
			log.Error(ctx, msgErrCreateUser, zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserCreated, zap.String("userID", createdUser.ID))
	return createdUser, nil
}

// EnsureAdminUser создает пользователя admin при старте процесса, если его нет.
// Конкурентное создание другим экземпляром не считается ошибкой.
func (a *AuthUseCaseImpl) EnsureAdminUser(ctx context.Context, username, password string) error {
	log := logger.Log(ctx).With(zap.String("method", methodEnsureAdmin), zap.String("username", username))

	_, err := a.userRepo.FindByUsername(ctx, username)
	if err == nil {
		log.Debug(ctx, msgAdminExists)
		return nil
	}
	if !errors.Is(err, entities.ErrUserNotFound) {
		log.Error(ctx, msgErrCheckingAdmin, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxCheckingAdmin, err)
	}

	if _, err := a.CreateUser(ctx, username, password); err != nil {
		if errors.Is(err, entities.ErrDuplicateUser) {
			log.Debug(ctx, msgAdminCreateRaced)
			return nil
		}
		log.Error(ctx, msgErrBootstrapAdmin, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxBootstrapAdmin, err)
	}

	log.Info(ctx, msgAdminCreated)
	return nil
}
