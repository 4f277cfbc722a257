package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/internal/auth/domain/entities"
	"gonotes/internal/auth/ports/api"
	"gonotes/pkg/logger"
)

// Константы для проверки авторизации.
const (
	HeaderAuthorization   = "Authorization"
	HeaderWWWAuthenticate = "WWW-Authenticate"
	BearerPrefix          = "Bearer "
	BearerChallenge       = "Bearer"

	msgUnauthorized = "invalid credentials"

	logNoAuthHeader   = "no authorization header provided"
	logInvalidFormat  = "authorization header is not a bearer token"
	logAuthRejected   = "request authentication rejected"
	logAuthMiddleware = "auth middleware"
)

// NewAuthMiddleware создает промежуточное ПО, пропускающее запрос только
// после разрешения bearer токена в пользователя. Любая причина отказа
// выглядит для клиента одинаково: 401 с заголовком WWW-Authenticate.
func NewAuthMiddleware(gate api.AuthGate) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := RequestContext(ctx)
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, logAuthMiddleware)

		authHeader := ctx.Get(HeaderAuthorization)
		if authHeader == "" {
			log.Debug(requestCtx, logNoAuthHeader)
			return unauthorized(ctx)
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			log.Debug(requestCtx, logInvalidFormat)
			return unauthorized(ctx)
		}

		token := strings.TrimPrefix(authHeader, BearerPrefix)

		user, err := gate.Authenticate(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, logAuthRejected, zap.Error(err))
			return unauthorized(ctx)
		}

		ctx.Locals(LocalsCurrentUser, user)

		return ctx.Next()
	}
}

// CurrentUser извлекает аутентифицированного пользователя из запроса.
func CurrentUser(ctx fiber.Ctx) (*entities.User, bool) {
	user, ok := ctx.Locals(LocalsCurrentUser).(*entities.User)
	return user, ok
}

// unauthorized отправляет единый 401 ответ.
func unauthorized(ctx fiber.Ctx) error {
	ctx.Set(HeaderWWWAuthenticate, BearerChallenge)
	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": msgUnauthorized,
	})
}
