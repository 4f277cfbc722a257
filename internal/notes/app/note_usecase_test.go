package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gonotes/internal/notes/app"
	"gonotes/internal/notes/domain/entities"
)

const (
	msgErrUnexpectedError = "не ожидалась ошибка"
	msgErrExpectedError   = "ожидалась ошибка"
	msgErrWrongError      = "получена не та ошибка"

	noteID      = "3d6f0e9a-5b4c-4d2e-8f1a-7c6b5a4d3e2f"
	callerID    = "8f2b5c1e-0a7d-4f3b-9c6e-1d2a3b4c5d6e"
	malformedID = "not-a-uuid"
)

type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) GetByID(ctx context.Context, noteID, ownerID string) (*entities.Note, error) {
	args := m.Called(ctx, noteID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) List(ctx context.Context, ownerID string, skip, limit int) ([]*entities.Note, error) {
	args := m.Called(ctx, ownerID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) Update(ctx context.Context, noteID, ownerID string, title, content *string) (*entities.Note, error) {
	args := m.Called(ctx, noteID, ownerID, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) Delete(ctx context.Context, noteID, ownerID string) (*entities.Note, error) {
	args := m.Called(ctx, noteID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockCache) Close() error {
	args := m.Called()
	return args.Error(0)
}

func sampleNote() *entities.Note {
	return &entities.Note{
		ID:      noteID,
		Title:   "shopping",
		Content: "milk, eggs",
		OwnerID: callerID,
	}
}

func TestCreateNote(t *testing.T) {
	ctx := context.Background()

	t.Run("Владелец заметки берется из аутентифицированного пользователя", func(t *testing.T) {
		repo := new(mockNoteRepository)
		// Временные метки выставляет база данных, а не доменный слой.
		repo.On("Create", ctx, mock.MatchedBy(func(n *entities.Note) bool {
			return n.OwnerID == callerID && n.Title == "shopping" && n.Content == "milk, eggs" &&
				n.CreatedAt.IsZero() && n.UpdatedAt.IsZero()
		})).Return(sampleNote(), nil)

		uc := app.NewNoteUseCase(repo, nil, false, 100)
		note, err := uc.CreateNote(ctx, callerID, "shopping", "milk, eggs")

		require.NoError(t, err, msgErrUnexpectedError)
		assert.Equal(t, noteID, note.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Ошибка репозитория пробрасывается наружу", func(t *testing.T) {
		repo := new(mockNoteRepository)
		dbErr := errors.New("connection refused")
		repo.On("Create", ctx, mock.Anything).Return(nil, dbErr)

		uc := app.NewNoteUseCase(repo, nil, false, 100)
		_, err := uc.CreateNote(ctx, callerID, "shopping", "milk, eggs")

		require.Error(t, err, msgErrExpectedError)
		assert.ErrorIs(t, err, dbErr, msgErrWrongError)
	})
}

func TestGetNote(t *testing.T) {
	ctx := context.Background()

	t.Run("Без строгого режима фильтр владельца пуст", func(t *testing.T) {
		repo := new(mockNoteRepository)
		repo.On("GetByID", ctx, noteID, "").Return(sampleNote(), nil)

		uc := app.NewNoteUseCase(repo, nil, false, 100)
		note, err := uc.GetNote(ctx, callerID, noteID)

		require.NoError(t, err, msgErrUnexpectedError)
		assert.Equal(t, noteID, note.ID)
		repo.AssertExpectations(t)
	})

	t.Run("В строгом режиме фильтр владельца равен вызывающему", func(t *testing.T) {
		repo := new(mockNoteRepository)
		repo.On("GetByID", ctx, noteID, callerID).Return(sampleNote(), nil)

		uc := app.NewNoteUseCase(repo, nil, true, 100)
		_, err := uc.GetNote(ctx, callerID, noteID)

		require.NoError(t, err, msgErrUnexpectedError)
		repo.AssertExpectations(t)
	})

	t.Run("Невалидный идентификатор дает ErrNoteNotFound без похода в БД", func(t *testing.T) {
		repo := new(mockNoteRepository)

		uc := app.NewNoteUseCase(repo, nil, false, 100)
		note, err := uc.GetNote(ctx, callerID, malformedID)

		require.Error(t, err, msgErrExpectedError)
		assert.ErrorIs(t, err, entities.ErrNoteNotFound, msgErrWrongError)
		assert.Nil(t, note)
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Попадание в кэш не обращается к репозиторию", func(t *testing.T) {
		repo := new(mockNoteRepository)
		noteCache := new(mockCache)

		raw, err := json.Marshal(sampleNote())
		require.NoError(t, err)
		noteCache.On("Get", ctx, "note:"+noteID).Return(string(raw), nil)

		uc := app.NewNoteUseCase(repo, noteCache, false, 100)
		note, err := uc.GetNote(ctx, callerID, noteID)

		require.NoError(t, err, msgErrUnexpectedError)
		assert.Equal(t, "shopping", note.Title)
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Промах кэша сохраняет заметку после чтения из БД", func(t *testing.T) {
		repo := new(mockNoteRepository)
		noteCache := new(mockCache)

		noteCache.On("Get", ctx, "note:"+noteID).Return("", nil)
		repo.On("GetByID", ctx, noteID, "").Return(sampleNote(), nil)
		noteCache.On("Set", ctx, "note:"+noteID, mock.Anything, time.Duration(0)).Return(nil)

		uc := app.NewNoteUseCase(repo, noteCache, false, 100)
		_, err := uc.GetNote(ctx, callerID, noteID)

		require.NoError(t, err, msgErrUnexpectedError)
		noteCache.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("Ошибка кэша не фатальна, запрос уходит в репозиторий", func(t *testing.T) {
		repo := new(mockNoteRepository)
		noteCache := new(mockCache)

		noteCache.On("Get", ctx, "note:"+noteID).Return("", errors.New("redis down"))
		repo.On("GetByID", ctx, noteID, "").Return(sampleNote(), nil)
		noteCache.On("Set", ctx, "note:"+noteID, mock.Anything, time.Duration(0)).Return(errors.New("redis down"))

		uc := app.NewNoteUseCase(repo, noteCache, false, 100)
		note, err := uc.GetNote(ctx, callerID, noteID)

		require.NoError(t, err, msgErrUnexpectedError)
		assert.Equal(t, noteID, note.ID)
	})

	t.Run("В строгом режиме чужая закэшированная заметка не отдается", func(t *testing.T) {
		repo := new(mockNoteRepository)
		noteCache := new(mockCache)

		foreign := sampleNote()
		foreign.OwnerID = "4e7f1a0b-6c5d-4e3f-9a2b-8d7c6b5a4e3d"
		raw, err := json.Marshal(foreign)
		require.NoError(t, err)

		noteCache.On("Get", ctx, "note:"+noteID).Return(string(raw), nil)
		repo.On("GetByID", ctx, noteID, callerID).Return(nil, entities.ErrNoteNotFound)

		uc := app.NewNoteUseCase(repo, noteCache, true, 100)
		_, err = uc.GetNote(ctx, callerID, noteID)

		require.Error(t, err, msgErrExpectedError)
		assert.ErrorIs(t, err, entities.ErrNoteNotFound, msgErrWrongError)
		repo.AssertExpectations(t)
	})
}

func TestListNotes(t *testing.T) {
	ctx := context.Background()

	t.Run("Пагинация передается в репозиторий", func(t *testing.T) {
		repo := new(mockNoteRepository)
		repo.On("List", ctx, "", 20, 10).Return([]*entities.Note{sampleNote()}, nil)

		uc := app.NewNoteUseCase(repo, nil, false, 100)
		notes, err := uc.ListNotes(ctx, callerID, 20, 10)

		require.NoError(t, err, msgErrUnexpectedError)
		require.Len(t, notes, 1)
		repo.AssertExpectations(t)
	})

	t.Run("Нулевой limit заменяется значением по умолчанию", func(t *testing.T) {
		repo := new(mockNoteRepository)
		repo.On("List", ctx, "", 0, 100).Return([]*entities.Note{}, nil)

		uc := app.NewNoteUseCase(repo, nil, false, 100)
		_, err := uc.ListNotes(ctx, callerID, 0, 0)

		require.NoError(t, err, msgErrUnexpectedError)
		repo.AssertExpectations(t)
	})

	t.Run("Отрицательный skip нормализуется в ноль", func(t *testing.T) {
		repo := new(mockNoteRepository)
		repo.On("List", ctx, "", 0, 10).Return([]*entities.Note{}, nil)

		uc := app.NewNoteUseCase(repo, nil, false, 100)
		_, err := uc.ListNotes(ctx, callerID, -5, 10)

		require.NoError(t, err, msgErrUnexpectedError)
		repo.AssertExpectations(t)
	})
}

func TestUpdateNote(t *testing.T) {
	ctx := context.Background()

	t.Run("Частичное обновление передает указатели как есть", func(t *testing.T) {
		repo := new(mockNoteRepository)
		newTitle := "renamed"
		var nilContent *string

		updated := sampleNote()
		updated.Title = newTitle
		repo.On("Update", ctx, noteID, "", &newTitle, nilContent).Return(updated, nil)

		uc := app.NewNoteUseCase(repo, nil, false, 100)
		note, err := uc.UpdateNote(ctx, callerID, noteID, &newTitle, nil)

		require.NoError(t, err, msgErrUnexpectedError)
		assert.Equal(t, "renamed", note.Title)
		repo.AssertExpectations(t)
	})

	t.Run("Обновление без полей возвращает текущую запись", func(t *testing.T) {
		repo := new(mockNoteRepository)
		repo.On("GetByID", ctx, noteID, "").Return(sampleNote(), nil)

		uc := app.NewNoteUseCase(repo, nil, false, 100)
		note, err := uc.UpdateNote(ctx, callerID, noteID, nil, nil)

		require.NoError(t, err, msgErrUnexpectedError)
		assert.Equal(t, noteID, note.ID)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Невалидный идентификатор дает ErrNoteNotFound", func(t *testing.T) {
		repo := new(mockNoteRepository)
		newTitle := "renamed"

		uc := app.NewNoteUseCase(repo, nil, false, 100)
		_, err := uc.UpdateNote(ctx, callerID, malformedID, &newTitle, nil)

		require.Error(t, err, msgErrExpectedError)
		assert.ErrorIs(t, err, entities.ErrNoteNotFound, msgErrWrongError)
	})

	t.Run("Обновление инвалидирует кэш", func(t *testing.T) {
		repo := new(mockNoteRepository)
		noteCache := new(mockCache)
		newTitle := "renamed"
		var nilContent *string

		repo.On("Update", ctx, noteID, "", &newTitle, nilContent).Return(sampleNote(), nil)
		noteCache.On("Delete", ctx, "note:"+noteID).Return(nil)

		uc := app.NewNoteUseCase(repo, noteCache, false, 100)
		_, err := uc.UpdateNote(ctx, callerID, noteID, &newTitle, nil)

		require.NoError(t, err, msgErrUnexpectedError)
		noteCache.AssertExpectations(t)
	})
}

func TestDeleteNote(t *testing.T) {
	ctx := context.Background()

	t.Run("Удаление возвращает удаленную запись", func(t *testing.T) {
		repo := new(mockNoteRepository)
		repo.On("Delete", ctx, noteID, "").Return(sampleNote(), nil)

		uc := app.NewNoteUseCase(repo, nil, false, 100)
		note, err := uc.DeleteNote(ctx, callerID, noteID)

		require.NoError(t, err, msgErrUnexpectedError)
		assert.Equal(t, noteID, note.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Невалидный идентификатор дает ErrNoteNotFound без похода в БД", func(t *testing.T) {
		repo := new(mockNoteRepository)

		uc := app.NewNoteUseCase(repo, nil, false, 100)
		_, err := uc.DeleteNote(ctx, callerID, malformedID)

		require.Error(t, err, msgErrExpectedError)
		assert.ErrorIs(t, err, entities.ErrNoteNotFound, msgErrWrongError)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Удаление инвалидирует кэш", func(t *testing.T) {
		repo := new(mockNoteRepository)
		noteCache := new(mockCache)

		repo.On("Delete", ctx, noteID, "").Return(sampleNote(), nil)
		noteCache.On("Delete", ctx, "note:"+noteID).Return(nil)

		uc := app.NewNoteUseCase(repo, noteCache, false, 100)
		_, err := uc.DeleteNote(ctx, callerID, noteID)

		require.NoError(t, err, msgErrUnexpectedError)
		noteCache.AssertExpectations(t)
	})
}
