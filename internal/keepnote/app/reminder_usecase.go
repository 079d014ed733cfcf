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

// ReminderUseCase реализует операции реестра напоминаний.
type ReminderUseCase struct {
	reminders repositories.ReminderRepository
}

// NewReminderUseCase создает новый экземпляр ReminderUseCase.
func NewReminderUseCase(reminders repositories.ReminderRepository) *ReminderUseCase {
	return &ReminderUseCase{reminders: reminders}
}

// Create сохраняет новое напоминание. Дата создания назначается
// сервером. Дубликат идентификатора возвращает entities.ErrReminderConflict.
func (uc *ReminderUseCase) Create(ctx context.Context, reminder *entities.Reminder) error {
	log := logger.Log(ctx).With(zap.String("method", "ReminderUseCase.Create"))
	log.Debug(ctx, "creating reminder", zap.Int("reminderID", reminder.ID))

	reminder.CreationDate = time.Now().UTC()
	if err := uc.reminders.Create(ctx, reminder); err != nil {
		return fmt.Errorf("creating reminder: %w", err)
	}

	return nil
}

// GetByID возвращает напоминание по идентификатору.
func (uc *ReminderUseCase) GetByID(ctx context.Context, id int) (*entities.Reminder, error) {
	reminder, err := uc.reminders.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting reminder: %w", err)
	}
	return reminder, nil
}

// Update перезаписывает существующее напоминание под указанным
// идентификатором. Дата создания сохраняется.
func (uc *ReminderUseCase) Update(ctx context.Context, reminder *entities.Reminder, id int) (*entities.Reminder, error) {
	log := logger.Log(ctx).With(zap.String("method", "ReminderUseCase.Update"))
	log.Debug(ctx, "updating reminder", zap.Int("reminderID", id))

	reminder.ID = id
	updated, err := uc.reminders.Update(ctx, reminder)
	if err != nil {
		return nil, fmt.Errorf("updating reminder: %w", err)
	}

	return updated, nil
}

// Delete удаляет напоминание по идентификатору.
func (uc *ReminderUseCase) Delete(ctx context.Context, id int) error {
	log := logger.Log(ctx).With(zap.String("method", "ReminderUseCase.Delete"))
	log.Debug(ctx, "deleting reminder", zap.Int("reminderID", id))

	if err := uc.reminders.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting reminder: %w", err)
	}

	return nil
}

// ListByCreator возвращает напоминания пользователя. Отсутствие
// записей - пустой список, не ошибка.
func (uc *ReminderUseCase) ListByCreator(ctx context.Context, userID string) ([]*entities.Reminder, error) {
	reminders, err := uc.reminders.ListByCreator(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing reminders: %w", err)
	}
	return reminders, nil
}
