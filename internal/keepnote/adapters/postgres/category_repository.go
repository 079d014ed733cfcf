package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"keepnote/internal/keepnote/domain/entities"
	"keepnote/internal/keepnote/ports/repositories"
	"keepnote/pkg/logger"
)

// CategoryRepository реализует интерфейс repositories.CategoryRepository.
type CategoryRepository struct {
	pool PgxPoolInterface
}

// NewCategoryRepository создает новый репозиторий категорий.
func NewCategoryRepository(pool PgxPoolInterface) repositories.CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// Create сохраняет новую категорию. Дубликат клиентского идентификатора
// возвращает entities.ErrCategoryConflict.
func (r *CategoryRepository) Create(ctx context.Context, category *entities.Category) error {
	log := logger.Log(ctx).With(zap.String("repository", "category"), zap.String("method", "Create"))
	log.Debug(ctx, "creating category", zap.Int("categoryID", category.ID))

	query := `
        INSERT INTO categories (category_id, category_name, category_descr, category_creation_date, category_creator)
        VALUES ($1, $2, $3, $4, $5)
    `

	_, err := r.pool.Exec(ctx, query,
		category.ID,
		category.Name,
		category.Description,
		category.CreationDate,
		category.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			log.Debug(ctx, "category already exists", zap.Int("categoryID", category.ID))
			return entities.ErrCategoryConflict
		}
		log.Error(ctx, "error creating category", zap.Error(err))
		return fmt.Errorf("error creating category: %w", err)
	}

	return nil
}

// GetByID находит категорию по идентификатору.
func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*entities.Category, error) {
	log := logger.Log(ctx).With(zap.String("repository", "category"), zap.String("method", "GetByID"))

	query := `
        SELECT category_id, category_name, category_descr, category_creation_date, category_creator
        FROM categories
        WHERE category_id = $1
    `

	var category entities.Category
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.CreationDate,
		&category.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "category not found", zap.Int("categoryID", id))
			return nil, entities.ErrCategoryNotFound
		}
		log.Error(ctx, "error querying category", zap.Error(err))
		return nil, fmt.Errorf("error querying category: %w", err)
	}

	return &category, nil
}

// Update перезаписывает существующую категорию. Дата создания неизменна.
func (r *CategoryRepository) Update(ctx context.Context, category *entities.Category) (*entities.Category, error) {
	log := logger.Log(ctx).With(zap.String("repository", "category"), zap.String("method", "Update"))

	query := `
        UPDATE categories
        SET category_name = $2, category_descr = $3, category_creator = $4
        WHERE category_id = $1
        RETURNING category_id, category_name, category_descr, category_creation_date, category_creator
    `

	var updated entities.Category
	err := r.pool.QueryRow(ctx, query,
		category.ID,
		category.Name,
		category.Description,
		category.CreatedBy,
	).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Description,
		&updated.CreationDate,
		&updated.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "category not found for update", zap.Int("categoryID", category.ID))
			return nil, entities.ErrCategoryNotFound
		}
		log.Error(ctx, "error updating category", zap.Error(err))
		return nil, fmt.Errorf("error updating category: %w", err)
	}

	return &updated, nil
}

// Delete удаляет категорию по идентификатору.
func (r *CategoryRepository) Delete(ctx context.Context, id int) error {
	log := logger.Log(ctx).With(zap.String("repository", "category"), zap.String("method", "Delete"))

	result, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE category_id = $1`, id)
	if err != nil {
		log.Error(ctx, "error deleting category", zap.Error(err))
		return fmt.Errorf("error deleting category: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "category not found for deletion", zap.Int("categoryID", id))
		return entities.ErrCategoryNotFound
	}

	return nil
}

// ListByCreator возвращает все категории, созданные пользователем.
func (r *CategoryRepository) ListByCreator(ctx context.Context, userID string) ([]*entities.Category, error) {
	log := logger.Log(ctx).With(zap.String("repository", "category"), zap.String("method", "ListByCreator"))

	query := `
        SELECT category_id, category_name, category_descr, category_creation_date, category_creator
        FROM categories
        WHERE category_creator = $1
        ORDER BY category_id
    `

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		log.Error(ctx, "error listing categories", zap.Error(err))
		return nil, fmt.Errorf("error listing categories: %w", err)
	}
	defer rows.Close()

	categories := make([]*entities.Category, 0)
	for rows.Next() {
		var category entities.Category
		if err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Description,
			&category.CreationDate,
			&category.CreatedBy,
		); err != nil {
			log.Error(ctx, "error scanning category", zap.Error(err))
			return nil, fmt.Errorf("error scanning category: %w", err)
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return categories, nil
}
