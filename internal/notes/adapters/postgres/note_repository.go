// Package postgres реализует репозиторий заметок поверх pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/ports/repositories"
	"gonotes/pkg/logger"
)

// PgxPoolInterface описывает используемое подмножество pgxpool.Pool,
// чтобы репозиторий можно было тестировать через pgxmock.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// NoteRepository реализует интерфейс repositories.NoteRepository.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// Create сохраняет новую заметку в БД.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Create"))
	log.Debug(ctx, "creating new note", zap.String("ownerID", note.OwnerID))

	var created entities.Note
	err := r.pool.QueryRow(ctx,
		`INSERT INTO notes (owner_id, title, content)
         VALUES ($1, $2, $3)
         RETURNING id, title, content, owner_id, created_at, updated_at`,
		note.OwnerID, note.Title, note.Content,
	).Scan(&created.ID, &created.Title, &created.Content, &created.OwnerID, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	log.Debug(ctx, "note created", zap.String("noteID", created.ID))
	return &created, nil
}

// GetByID получает заметку по ID. Пустой ownerID отключает фильтр по владельцу.
func (r *NoteRepository) GetByID(ctx context.Context, noteID, ownerID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.GetByID"))
	log.Debug(ctx, "getting note", zap.String("noteID", noteID))

	var note entities.Note
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, content, owner_id, created_at, updated_at
         FROM notes
         WHERE id = $1 AND ($2 = '' OR owner_id = $2::uuid)`,
		noteID, ownerID,
	).Scan(&note.ID, &note.Title, &note.Content, &note.OwnerID, &note.CreatedAt, &note.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.String("noteID", noteID))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to get note", zap.Error(err))
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return &note, nil
}

// List получает заметки с пагинацией skip/limit в порядке создания.
func (r *NoteRepository) List(ctx context.Context, ownerID string, skip, limit int) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.List"))
	log.Debug(ctx, "listing notes", zap.Int("skip", skip), zap.Int("limit", limit))

	rows, err := r.pool.Query(ctx,
		`SELECT id, title, content, owner_id, created_at, updated_at
         FROM notes
         WHERE ($1 = '' OR owner_id = $1::uuid)
         ORDER BY created_at, id
         LIMIT $2 OFFSET $3`,
		ownerID, limit, skip,
	)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var note entities.Note
		err := rows.Scan(&note.ID, &note.Title, &note.Content, &note.OwnerID, &note.CreatedAt, &note.UpdatedAt)
		if err != nil {
			log.Error(ctx, "failed to scan note", zap.Error(err))
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return notes, nil
}

// Update изменяет только переданные поля заметки: nil оставляет поле нетронутым.
func (r *NoteRepository) Update(ctx context.Context, noteID, ownerID string, title, content *string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Update"))
	log.Debug(ctx, "updating note", zap.String("noteID", noteID))

	var note entities.Note
	err := r.pool.QueryRow(ctx,
		`UPDATE notes
         SET title = COALESCE($3, title),
             content = COALESCE($4, content),
             updated_at = now()
         WHERE id = $1 AND ($2 = '' OR owner_id = $2::uuid)
         RETURNING id, title, content, owner_id, created_at, updated_at`,
		noteID, ownerID, title, content,
	).Scan(&note.ID, &note.Title, &note.Content, &note.OwnerID, &note.CreatedAt, &note.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found for update", zap.String("noteID", noteID))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to update note", zap.Error(err))
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return &note, nil
}

// Delete удаляет заметку и возвращает удаленную запись.
func (r *NoteRepository) Delete(ctx context.Context, noteID, ownerID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Delete"))
	log.Debug(ctx, "deleting note", zap.String("noteID", noteID))

	var note entities.Note
	err := r.pool.QueryRow(ctx,
		`DELETE FROM notes
         WHERE id = $1 AND ($2 = '' OR owner_id = $2::uuid)
         RETURNING id, title, content, owner_id, created_at, updated_at`,
		noteID, ownerID,
	).Scan(&note.ID, &note.Title, &note.Content, &note.OwnerID, &note.CreatedAt, &note.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found for deletion", zap.String("noteID", noteID))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return nil, fmt.Errorf("failed to delete note: %w", err)
	}

	return &note, nil
}
