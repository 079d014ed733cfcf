package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"keepnote/internal/keepnote/domain/entities"
	"keepnote/internal/keepnote/ports/repositories"
	"keepnote/pkg/logger"
)

// CategoryUseCase реализует операции реестра категорий.
type CategoryUseCase struct {
	categories repositories.CategoryRepository
}

// NewCategoryUseCase создает новый экземпляр CategoryUseCase.
func NewCategoryUseCase(categories repositories.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories}
}

// Create сохраняет новую категорию. Дата создания назначается сервером.
// Дубликат идентификатора возвращает entities.ErrCategoryConflict.
func (uc *CategoryUseCase) Create(ctx context.Context, category *entities.Category) error {
	log := logger.Log(ctx).With(zap.String("method", "CategoryUseCase.Create"))
	log.Debug(ctx, "creating category", zap.Int("categoryID", category.ID))

	category.CreationDate = time.Now().UTC()
	if err := uc.categories.Create(ctx, category); err != nil {
		return fmt.Errorf("creating category: %w", err)
	}

	return nil
}

// GetByID возвращает категорию по идентификатору.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int) (*entities.Category, error) {
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting category: %w", err)
	}
	return category, nil
}

// Update перезаписывает существующую категорию под указанным
// идентификатором. Дата создания сохраняется.
func (uc *CategoryUseCase) Update(ctx context.Context, category *entities.Category, id int) (*entities.Category, error) {
	log := logger.Log(ctx).With(zap.String("method", "CategoryUseCase.Update"))
	log.Debug(ctx, "updating category", zap.Int("categoryID", id))

	category.ID = id
	updated, err := uc.categories.Update(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("updating category: %w", err)
	}

	return updated, nil
}

// Delete удаляет категорию по идентификатору.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int) error {
	log := logger.Log(ctx).With(zap.String("method", "CategoryUseCase.Delete"))
	log.Debug(ctx, "deleting category", zap.Int("categoryID", id))

	if err := uc.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	return nil
}

// ListByCreator возвращает категории пользователя. Отсутствие записей -
// пустой список, не ошибка.
func (uc *CategoryUseCase) ListByCreator(ctx context.Context, userID string) ([]*entities.Category, error) {
	categories, err := uc.categories.ListByCreator(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	return categories, nil
}
