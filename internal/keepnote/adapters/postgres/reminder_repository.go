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

// ReminderRepository реализует интерфейс repositories.ReminderRepository.
type ReminderRepository struct {
	pool PgxPoolInterface
}

// NewReminderRepository создает новый репозиторий напоминаний.
func NewReminderRepository(pool PgxPoolInterface) repositories.ReminderRepository {
	return &ReminderRepository{pool: pool}
}

// Create сохраняет новое напоминание. Дубликат клиентского идентификатора
// возвращает entities.ErrReminderConflict.
func (r *ReminderRepository) Create(ctx context.Context, reminder *entities.Reminder) error {
	log := logger.Log(ctx).With(zap.String("repository", "reminder"), zap.String("method", "Create"))
	log.Debug(ctx, "creating reminder", zap.Int("reminderID", reminder.ID))

	query := `
        INSERT INTO reminders (reminder_id, reminder_name, reminder_descr, reminder_type, reminder_creation_date, reminder_creator)
        VALUES ($1, $2, $3, $4, $5, $6)
    `

	_, err := r.pool.Exec(ctx, query,
		reminder.ID,
		reminder.Name,
		reminder.Description,
		reminder.Type,
		reminder.CreationDate,
		reminder.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			log.Debug(ctx, "reminder already exists", zap.Int("reminderID", reminder.ID))
			return entities.ErrReminderConflict
		}
		log.Error(ctx, "error creating reminder", zap.Error(err))
		return fmt.Errorf("error creating reminder: %w", err)
	}

	return nil
}

// GetByID находит напоминание по идентификатору.
func (r *ReminderRepository) GetByID(ctx context.Context, id int) (*entities.Reminder, error) {
	log := logger.Log(ctx).With(zap.String("repository", "reminder"), zap.String("method", "GetByID"))

	query := `
        SELECT reminder_id, reminder_name, reminder_descr, reminder_type, reminder_creation_date, reminder_creator
        FROM reminders
        WHERE reminder_id = $1
    `

	var reminder entities.Reminder
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&reminder.ID,
		&reminder.Name,
		&reminder.Description,
		&reminder.Type,
		&reminder.CreationDate,
		&reminder.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "reminder not found", zap.Int("reminderID", id))
			return nil, entities.ErrReminderNotFound
		}
		log.Error(ctx, "error querying reminder", zap.Error(err))
		return nil, fmt.Errorf("error querying reminder: %w", err)
	}

	return &reminder, nil
}

// Update перезаписывает существующее напоминание. Дата создания неизменна.
func (r *ReminderRepository) Update(ctx context.Context, reminder *entities.Reminder) (*entities.Reminder, error) {
	log := logger.Log(ctx).With(zap.String("repository", "reminder"), zap.String("method", "Update"))

	query := `
        UPDATE reminders
        SET reminder_name = $2, reminder_descr = $3, reminder_type = $4, reminder_creator = $5
        WHERE reminder_id = $1
        RETURNING reminder_id, reminder_name, reminder_descr, reminder_type, reminder_creation_date, reminder_creator
    `

	var updated entities.Reminder
	err := r.pool.QueryRow(ctx, query,
		reminder.ID,
		reminder.Name,
		reminder.Description,
		reminder.Type,
		reminder.CreatedBy,
	).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Description,
		&updated.Type,
		&updated.CreationDate,
		&updated.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "reminder not found for update", zap.Int("reminderID", reminder.ID))
			return nil, entities.ErrReminderNotFound
		}
		log.Error(ctx, "error updating reminder", zap.Error(err))
		return nil, fmt.Errorf("error updating reminder: %w", err)
	}

	return &updated, nil
}

// Delete удаляет напоминание по идентификатору.
func (r *ReminderRepository) Delete(ctx context.Context, id int) error {
	log := logger.Log(ctx).With(zap.String("repository", "reminder"), zap.String("method", "Delete"))

	result, err := r.pool.Exec(ctx, `DELETE FROM reminders WHERE reminder_id = $1`, id)
	if err != nil {
		log.Error(ctx, "error deleting reminder", zap.Error(err))
		return fmt.Errorf("error deleting reminder: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "reminder not found for deletion", zap.Int("reminderID", id))
		return entities.ErrReminderNotFound
	}

	return nil
}

// ListByCreator возвращает все напоминания, созданные пользователем.
func (r *ReminderRepository) ListByCreator(ctx context.Context, userID string) ([]*entities.Reminder, error) {
	log := logger.Log(ctx).With(zap.String("repository", "reminder"), zap.String("method", "ListByCreator"))

	query := `
        SELECT reminder_id, reminder_name, reminder_descr, reminder_type, reminder_creation_date, reminder_creator
        FROM reminders
        WHERE reminder_creator = $1
        ORDER BY reminder_id
    `

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		log.Error(ctx, "error listing reminders", zap.Error(err))
		return nil, fmt.Errorf("error listing reminders: %w", err)
	}
	defer rows.Close()

	reminders := make([]*entities.Reminder, 0)
	for rows.Next() {
		var reminder entities.Reminder
		if err := rows.Scan(
			&reminder.ID,
			&reminder.Name,
			&reminder.Description,
			&reminder.Type,
			&reminder.CreationDate,
			&reminder.CreatedBy,
		); err != nil {
			log.Error(ctx, "error scanning reminder", zap.Error(err))
			return nil, fmt.Errorf("error scanning reminder: %w", err)
		}
		reminders = append(reminders, &reminder)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return reminders, nil
}
