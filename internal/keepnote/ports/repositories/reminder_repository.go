package repositories

import (
	"context"

	"keepnote/internal/keepnote/domain/entities"
)

// ReminderRepository определяет интерфейс для работы с хранилищем напоминаний.
type ReminderRepository interface {
	Create(ctx context.Context, reminder *entities.Reminder) error
	GetByID(ctx context.Context, id int) (*entities.Reminder, error)
	Update(ctx context.Context, reminder *entities.Reminder) (*entities.Reminder, error)
	Delete(ctx context.Context, id int) error
	ListByCreator(ctx context.Context, userID string) ([]*entities.Reminder, error)
}
