// Package entities определяет доменные сущности сервиса заметок.
package entities

import (
	"errors"
	"time"
)

// ErrNoteNotFound возвращается для отсутствующей заметки. Некорректный
// идентификатор также считается отсутствующей заметкой, не ошибкой.
var ErrNoteNotFound = errors.New("note not found")

// Note представляет собой заметку пользователя. OwnerID устанавливается
// при создании из аутентифицированной личности и не изменяется.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewNote создает новую заметку с указанным владельцем, заголовком и содержимым.
// Временные метки не заполняются: их выставляет база данных при вставке.
func NewNote(ownerID, title, content string) *Note {
	return &Note{
		OwnerID: ownerID,
		Title:   title,
		Content: content,
	}
}
