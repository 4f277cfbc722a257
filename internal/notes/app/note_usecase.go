// Package app реализует бизнес-логику сервиса заметок.
package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/ports/api"
	"gonotes/internal/notes/ports/cache"
	"gonotes/internal/notes/ports/repositories"
	"gonotes/pkg/logger"
)

const (
	defaultListLimit = 100
	noteCacheKey     = "note:%s"

	msgCacheHit          = "note served from cache"
	msgCacheReadFailed   = "cache read failed, falling back to repository"
	msgCacheWriteFailed  = "failed to cache note"
	msgCacheInvalidation = "failed to invalidate cached note"
	msgMalformedNoteID   = "malformed note id treated as not found"
)

// NoteUseCase реализует интерфейс api.NoteUseCase. Кэш опционален (nil -
// кэширование выключено) и используется только на чтении по идентификатору;
// запись и удаление инвалидируют ключ.
type NoteUseCase struct {
	noteRepo        repositories.NoteRepository
	cache           cache.Cache
	strictOwnership bool
	defaultLimit    int
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(noteRepo repositories.NoteRepository, noteCache cache.Cache, strictOwnership bool, defaultLimit int) api.NoteUseCase {
	if defaultLimit <= 0 {
		defaultLimit = defaultListLimit
	}
	return &NoteUseCase{
		noteRepo:        noteRepo,
		cache:           noteCache,
		strictOwnership: strictOwnership,
		defaultLimit:    defaultLimit,
	}
}

// ownerFilter возвращает фильтр владельца для операций чтения и изменения.
// Вне строгого режима любой аутентифицированный пользователь работает
// со всеми заметками.
func (uc *NoteUseCase) ownerFilter(callerID string) string {
	if uc.strictOwnership {
		return callerID
	}
	return ""
}

// CreateNote создает новую заметку. Владелец - всегда аутентифицированный
// пользователь, переданный шлюзом авторизации.
func (uc *NoteUseCase) CreateNote(ctx context.Context, ownerID, title, content string) (*entities.Note, error) {
	note, err := uc.noteRepo.Create(ctx, entities.NewNote(ownerID, title, content))
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return note, nil
}

// GetNote возвращает заметку по ID.
func (uc *NoteUseCase) GetNote(ctx context.Context, callerID, noteID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.GetNote"))

	if !isValidNoteID(noteID) {
		log.Debug(ctx, msgMalformedNoteID, zap.String("noteID", noteID))
		return nil, entities.ErrNoteNotFound
	}

	if cached := uc.cachedNote(ctx, noteID, callerID); cached != nil {
		log.Debug(ctx, msgCacheHit, zap.String("noteID", noteID))
		return cached, nil
	}

	note, err := uc.noteRepo.GetByID(ctx, noteID, uc.ownerFilter(callerID))
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	uc.storeInCache(ctx, note)
	return note, nil
}

// ListNotes возвращает заметки с пагинацией skip/limit.
func (uc *NoteUseCase) ListNotes(ctx context.Context, callerID string, skip, limit int) ([]*entities.Note, error) {
	if limit <= 0 {
		limit = uc.defaultLimit
	}
	if skip < 0 {
		skip = 0
	}

	notes, err := uc.noteRepo.List(ctx, uc.ownerFilter(callerID), skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	return notes, nil
}

// UpdateNote изменяет только переданные поля существующей заметки.
func (uc *NoteUseCase) UpdateNote(ctx context.Context, callerID, noteID string, title, content *string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.UpdateNote"))

	if !isValidNoteID(noteID) {
		log.Debug(ctx, msgMalformedNoteID, zap.String("noteID", noteID))
		return nil, entities.ErrNoteNotFound
	}

	if title == nil && content == nil {
		return uc.GetNote(ctx, callerID, noteID)
	}

	note, err := uc.noteRepo.Update(ctx, noteID, uc.ownerFilter(callerID), title, content)
	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	uc.invalidateCache(ctx, noteID)
	return note, nil
}

// DeleteNote удаляет заметку и возвращает удаленную запись.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, callerID, noteID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.DeleteNote"))

	if !isValidNoteID(noteID) {
		log.Debug(ctx, msgMalformedNoteID, zap.String("noteID", noteID))
		return nil, entities.ErrNoteNotFound
	}

	note, err := uc.noteRepo.Delete(ctx, noteID, uc.ownerFilter(callerID))
	if err != nil {
		return nil, fmt.Errorf("failed to delete note: %w", err)
	}

	uc.invalidateCache(ctx, noteID)
	return note, nil
}

// isValidNoteID проверяет, что идентификатор имеет форму UUID.
func isValidNoteID(noteID string) bool {
	_, err := uuid.Parse(noteID)
	return err == nil
}

// cachedNote пытается отдать заметку из кэша. Ошибки кэша не фатальны:
// запрос уходит в репозиторий. В строгом режиме чужая закэшированная
// заметка не отдается.
func (uc *NoteUseCase) cachedNote(ctx context.Context, noteID, callerID string) *entities.Note {
	if uc.cache == nil {
		return nil
	}
	log := logger.Log(ctx)

	raw, err := uc.cache.Get(ctx, fmt.Sprintf(noteCacheKey, noteID))
	if err != nil {
		log.Warn(ctx, msgCacheReadFailed, zap.Error(err))
		return nil
	}
	if raw == "" {
		return nil
	}

	var note entities.Note
	if err := json.Unmarshal([]byte(raw), &note); err != nil {
		return nil
	}
	if uc.strictOwnership && note.OwnerID != callerID {
		return nil
	}
	return &note
}

// storeInCache сохраняет заметку в кэш, ошибки только логируются.
func (uc *NoteUseCase) storeInCache(ctx context.Context, note *entities.Note) {
	if uc.cache == nil || note == nil {
		return
	}

	raw, err := json.Marshal(note)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, fmt.Sprintf(noteCacheKey, note.ID), string(raw), 0); err != nil {
		logger.Log(ctx).Warn(ctx, msgCacheWriteFailed, zap.Error(err))
	}
}

// invalidateCache удаляет закэшированную заметку после изменения или удаления.
func (uc *NoteUseCase) invalidateCache(ctx context.Context, noteID string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Delete(ctx, fmt.Sprintf(noteCacheKey, noteID)); err != nil {
		logger.Log(ctx).Warn(ctx, msgCacheInvalidation, zap.Error(err))
	}
}
