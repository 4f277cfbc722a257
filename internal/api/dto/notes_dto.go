package dto

import (
	"gonotes/internal/notes/domain/entities"
)

// CreateNoteRequest содержит данные для создания заметки.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateNoteRequest содержит данные для частичного обновления заметки.
// nil означает "поле не передано": пустая строка - настоящее значение.
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// Note представляет заметку в ответах API.
type Note struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	OwnerID string `json:"owner_id"`
}

// DeleteNoteResponse содержит подтверждение удаления.
type DeleteNoteResponse struct {
	Message string `json:"message"`
}

// NoteFromEntity преобразует доменную заметку в ответ API.
func NoteFromEntity(note *entities.Note) *Note {
	return &Note{
		ID:      note.ID,
		Title:   note.Title,
		Content: note.Content,
		OwnerID: note.OwnerID,
	}
}

// NotesFromEntities преобразует список доменных заметок в ответ API.
func NotesFromEntities(notes []*entities.Note) []*Note {
	result := make([]*Note, 0, len(notes))
	for _, note := range notes {
		result = append(result, NoteFromEntity(note))
	}
	return result
}
