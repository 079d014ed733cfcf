package repositories

import (
	"context"

	"keepnote/internal/keepnote/domain/entities"
)

// NoteRepository определяет интерфейс для работы с хранилищем заметок.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) error
	GetByID(ctx context.Context, id int) (*entities.Note, error)
	Update(ctx context.Context, note *entities.Note) (*entities.Note, error)
	Delete(ctx context.Context, id int) error
	ListByCreator(ctx context.Context, userID string) ([]*entities.Note, error)
}
