package repositories

import (
	"context"

	"keepnote/internal/keepnote/domain/entities"
)

// CategoryRepository определяет интерфейс для работы с хранилищем категорий.
type CategoryRepository interface {
	Create(ctx context.Context, category *entities.Category) error
	GetByID(ctx context.Context, id int) (*entities.Category, error)
	Update(ctx context.Context, category *entities.Category) (*entities.Category, error)
	Delete(ctx context.Context, id int) error
	ListByCreator(ctx context.Context, userID string) ([]*entities.Category, error)
}
