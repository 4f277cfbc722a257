package api

import (
	"context"

	"gonotes/internal/notes/domain/entities"
)

// NoteUseCase определяет сценарии работы с заметками. Каждая операция
// принимает идентификатор уже аутентифицированного пользователя,
// разрешенный шлюзом авторизации; обработчики не передают сюда
// идентификаторы, пришедшие от клиента.
type NoteUseCase interface {
	CreateNote(ctx context.Context, ownerID, title, content string) (*entities.Note, error)

	GetNote(ctx context.Context, callerID, noteID string) (*entities.Note, error)

	ListNotes(ctx context.Context, callerID string, skip, limit int) ([]*entities.Note, error)

	UpdateNote(ctx context.Context, callerID, noteID string, title, content *string) (*entities.Note, error)

	DeleteNote(ctx context.Context, callerID, noteID string) (*entities.Note, error)
}
