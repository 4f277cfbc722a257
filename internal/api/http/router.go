// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	"gonotes/internal/api/http/auth"
	"gonotes/internal/api/http/middleware"
	"gonotes/internal/api/http/notes"
	authapi "gonotes/internal/auth/ports/api"
	notesapi "gonotes/internal/notes/ports/api"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
// Маршруты повторяют публичный контракт сервиса: /token открыт,
// все операции с заметками проходят через шлюз авторизации.
func SetupRouter(
	app *fiber.App,
	authUseCase authapi.AuthUseCase,
	gate authapi.AuthGate,
	noteUseCase notesapi.NoteUseCase,
	allowedOrigins []string,
) {
	authHandler := auth.NewHandler(authUseCase)
	notesHandler := notes.NewHandler(noteUseCase)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: true,
	}))

	// Выдача токена (публичный маршрут).
	app.Post("/token", authHandler.Login)

	// Маршруты заметок (требуют авторизации).
	notesRoutes := app.Group("/notes")
	notesRoutes.Use(middleware.NewAuthMiddleware(gate))
	notesRoutes.Get("/", notesHandler.ListNotes)
	notesRoutes.Post("/", notesHandler.CreateNote)
	notesRoutes.Get("/:note_id", notesHandler.GetNote)
	notesRoutes.Put("/:note_id", notesHandler.UpdateNote)
	notesRoutes.Delete("/:note_id", notesHandler.DeleteNote)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "route not found",
		})
	})
}
