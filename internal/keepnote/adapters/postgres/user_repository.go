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

// UserRepository реализует интерфейс repositories.UserRepository.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository создает новый репозиторий пользователей.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

// Create сохраняет нового пользователя. Повторная регистрация
// существующего идентификатора возвращает entities.ErrUserConflict.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))
	log.Debug(ctx, "creating user", zap.String("userID", user.ID))

	query := `
        INSERT INTO users (user_id, user_name, user_password, user_mobile, user_added_date)
        VALUES ($1, $2, $3, $4, $5)
    `

	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Password,
		user.Mobile,
		user.AddedDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			log.Debug(ctx, "user already exists", zap.String("userID", user.ID))
			return entities.ErrUserConflict
		}
		log.Error(ctx, "error creating user", zap.Error(err))
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID находит пользователя по идентификатору.
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "GetByID"))

	query := `
        SELECT user_id, user_name, user_password, user_mobile, user_added_date
        FROM users
        WHERE user_id = $1
    `

	var user entities.User
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&user.ID,
		&user.Name,
		&user.Password,
		&user.Mobile,
		&user.AddedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("userID", userID))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error querying user", zap.Error(err))
		return nil, fmt.Errorf("error querying user: %w", err)
	}

	return &user, nil
}

// Update перезаписывает данные пользователя. Дата регистрации неизменна.
func (r *UserRepository) Update(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Update"))

	query := `
        UPDATE users
        SET user_name = $2, user_password = $3, user_mobile = $4
        WHERE user_id = $1
        RETURNING user_id, user_name, user_password, user_mobile, user_added_date
    `

	var updated entities.User
	err := r.pool.QueryRow(ctx, query,
		user.ID,
		user.Name,
		user.Password,
		user.Mobile,
	).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Password,
		&updated.Mobile,
		&updated.AddedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found for update", zap.String("userID", user.ID))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error updating user", zap.Error(err))
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	return &updated, nil
}

// Delete удаляет пользователя по идентификатору.
func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Delete"))

	result, err := r.pool.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, userID)
	if err != nil {
		log.Error(ctx, "error deleting user", zap.Error(err))
		return fmt.Errorf("error deleting user: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "user not found for deletion", zap.String("userID", userID))
		return entities.ErrUserNotFound
	}

	return nil
}
