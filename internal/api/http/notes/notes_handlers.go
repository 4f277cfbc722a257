// Package notes содержит HTTP-обработчики для управления заметками.
package notes

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/internal/api/dto"
	"gonotes/internal/api/http/middleware"
	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/ports/api"
	"gonotes/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerCreateNote = "handling create note request"
	LogHandlerGetNote    = "handling get note request"
	LogHandlerListNotes  = "handling list notes request"
	LogHandlerUpdateNote = "handling update note request"
	LogHandlerDeleteNote = "handling delete note request"

	ErrMsgNoteNotFound       = "note not found"
	ErrMsgInvalidPagination  = "invalid pagination parameters"
	ErrMsgInvalidRequestBody = "invalid request body"
	ErrMsgInternal           = "internal server error"

	MsgNoteDeleted = "note deleted successfully"
)

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	noteUseCase api.NoteUseCase
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(noteUseCase api.NoteUseCase) *Handler {
	return &Handler{
		noteUseCase: noteUseCase,
	}
}

// CreateNote обрабатывает запрос на создание новой заметки. Владелец -
// всегда аутентифицированный пользователь из middleware, а не данные клиента.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(requestCtx, LogHandlerCreateNote)

	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req dto.CreateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return badRequest(ctx, ErrMsgInvalidRequestBody)
	}

	note, err := h.noteUseCase.CreateNote(requestCtx, user.ID, req.Title, req.Content)
	if err != nil {
		log.Error(requestCtx, "failed to create note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.NoteFromEntity(note)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// GetNote обрабатывает запрос на получение заметки по ID.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.GetNote"))
	log.Debug(requestCtx, LogHandlerGetNote)

	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	note, err := h.noteUseCase.GetNote(requestCtx, user.ID, ctx.Params("note_id"))
	if err != nil {
		if !errors.Is(err, entities.ErrNoteNotFound) {
			log.Error(requestCtx, "failed to get note", zap.Error(err))
		}
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.NoteFromEntity(note)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// ListNotes обрабатывает запрос на получение списка заметок с пагинацией skip/limit.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(requestCtx, LogHandlerListNotes)

	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	skip, err := strconv.Atoi(ctx.Query("skip", "0"))
	if err != nil {
		log.Debug(requestCtx, ErrMsgInvalidPagination, zap.Error(err))
		return badRequest(ctx, ErrMsgInvalidPagination)
	}

	limit, err := strconv.Atoi(ctx.Query("limit", "100"))
	if err != nil {
		log.Debug(requestCtx, ErrMsgInvalidPagination, zap.Error(err))
		return badRequest(ctx, ErrMsgInvalidPagination)
	}

	notes, err := h.noteUseCase.ListNotes(requestCtx, user.ID, skip, limit)
	if err != nil {
		log.Error(requestCtx, "failed to list notes", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.NotesFromEntities(notes)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// UpdateNote обрабатывает запрос на частичное обновление заметки.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.UpdateNote"))
	log.Debug(requestCtx, LogHandlerUpdateNote)

	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req dto.UpdateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return badRequest(ctx, ErrMsgInvalidRequestBody)
	}

	note, err := h.noteUseCase.UpdateNote(requestCtx, user.ID, ctx.Params("note_id"), req.Title, req.Content)
	if err != nil {
		if !errors.Is(err, entities.ErrNoteNotFound) {
			log.Error(requestCtx, "failed to update note", zap.Error(err))
		}
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.NoteFromEntity(note)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// DeleteNote обрабатывает запрос на удаление заметки.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.DeleteNote"))
	log.Debug(requestCtx, LogHandlerDeleteNote)

	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	if _, err := h.noteUseCase.DeleteNote(requestCtx, user.ID, ctx.Params("note_id")); err != nil {
		if !errors.Is(err, entities.ErrNoteNotFound) {
			log.Error(requestCtx, "failed to delete note", zap.Error(err))
		}
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.DeleteNoteResponse{Message: MsgNoteDeleted}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// handleError транслирует доменные ошибки в HTTP-статусы.
func handleError(ctx fiber.Ctx, err error) error {
	if errors.Is(err, entities.ErrNoteNotFound) {
		if err := ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": ErrMsgNoteNotFound,
		}); err != nil {
			return fmt.Errorf("failed to send not found response: %w", err)
		}
		return nil
	}

	if err := ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": ErrMsgInternal,
	}); err != nil {
		return fmt.Errorf("error sending 500 response: %w", err)
	}
	return nil
}

// badRequest отправляет 400 ответ с сообщением.
func badRequest(ctx fiber.Ctx, msg string) error {
	if err := ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": msg,
	}); err != nil {
		return fmt.Errorf("failed to send bad request response: %w", err)
	}
	return nil
}

// unauthorized отправляет единый 401 ответ, если middleware не положило
// пользователя в контекст запроса.
func unauthorized(ctx fiber.Ctx) error {
	ctx.Set(middleware.HeaderWWWAuthenticate, middleware.BearerChallenge)
	if err := ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "invalid credentials",
	}); err != nil {
		return fmt.Errorf("failed to send unauthorized response: %w", err)
	}
	return nil
}
