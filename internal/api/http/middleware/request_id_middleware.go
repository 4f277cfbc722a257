// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"gonotes/pkg/logger"
)

// Ключи Locals.
const (
	LocalsRequestContext = "requestContext"
	LocalsCurrentUser    = "currentUser"
)

// HeaderRequestID - заголовок с клиентским идентификатором запроса.
const HeaderRequestID = "X-Request-ID"

// NewRequestIDMiddleware снабжает каждый запрос контекстом с request id.
// Идентификатор берется из заголовка или генерируется.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := logger.NewRequestIDContext(ctx.Context(), ctx.Get(HeaderRequestID))
		ctx.Locals(LocalsRequestContext, requestCtx)

		if id, ok := logger.GetRequestID(requestCtx); ok {
			ctx.Set(HeaderRequestID, id)
		}

		return ctx.Next()
	}
}

// RequestContext извлекает контекст запроса, подготовленный middleware.
func RequestContext(ctx fiber.Ctx) context.Context {
	if requestCtx, ok := ctx.Locals(LocalsRequestContext).(context.Context); ok {
		return requestCtx
	}
	return ctx.Context()
}
