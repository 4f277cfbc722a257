// Package repositories определяет интерфейсы хранилища для сервиса заметок.
package repositories

import (
	"context"

	"gonotes/internal/notes/domain/entities"
)

// NoteRepository определяет интерфейс для работы с хранилищем заметок.
// Отсутствующая заметка - entities.ErrNoteNotFound во всех операциях.
// ownerID, равный пустой строке, означает отсутствие фильтра по владельцу.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)

	GetByID(ctx context.Context, noteID, ownerID string) (*entities.Note, error)

	List(ctx context.Context, ownerID string, skip, limit int) ([]*entities.Note, error)

	// Update изменяет только переданные поля: nil означает "оставить как есть",
	// указатель на пустую строку - настоящее значение.
	Update(ctx context.Context, noteID, ownerID string, title, content *string) (*entities.Note, error)

	// Delete возвращает удаленную запись для подтверждения.
	Delete(ctx context.Context, noteID, ownerID string) (*entities.Note, error)
}
