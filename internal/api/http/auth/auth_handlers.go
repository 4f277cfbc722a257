// Package auth содержит HTTP-обработчики аутентификации.
package auth

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/internal/api/dto"
	"gonotes/internal/api/http/middleware"
	"gonotes/internal/auth/domain/services"
	"gonotes/internal/auth/ports/api"
	"gonotes/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerLogin = "handling token request"

	ErrMsgMissingCredentials = "username and password are required"
	ErrMsgInvalidCredentials = "incorrect username or password"
	ErrMsgInternal           = "internal server error"
)

// Handler обработчик HTTP-запросов аутентификации.
type Handler struct {
	authUseCase api.AuthUseCase
}

// NewHandler создает новый экземпляр обработчика аутентификации.
func NewHandler(authUseCase api.AuthUseCase) *Handler {
	return &Handler{
		authUseCase: authUseCase,
	}
}

// Login обрабатывает POST /token: принимает form-encoded учетные данные
// и выдает bearer токен. Неизвестное имя и неверный пароль дают один и
// тот же ответ, чтобы исключить перебор имен пользователей.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Login"))
	log.Debug(requestCtx, LogHandlerLogin)

	username := ctx.FormValue("username")
	password := ctx.FormValue("password")

	if username == "" || password == "" {
		if err := ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ErrMsgMissingCredentials,
		}); err != nil {
			return fmt.Errorf("failed to send bad request response: %w", err)
		}
		return nil
	}

	token, err := h.authUseCase.Login(requestCtx, username, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ctx.Set(middleware.HeaderWWWAuthenticate, middleware.BearerChallenge)
			if err := ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrMsgInvalidCredentials,
			}); err != nil {
				return fmt.Errorf("failed to send unauthorized response: %w", err)
			}
			return nil
		}
		log.Error(requestCtx, "login failed", zap.Error(err))
		if err := ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": ErrMsgInternal,
		}); err != nil {
			return fmt.Errorf("failed to send error response: %w", err)
		}
		return nil
	}

	if err := ctx.JSON(dto.TokenResponse{
		AccessToken: token.Token,
		TokenType:   token.TokenType,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
