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

// NoteUseCase реализует бизнес-логику работы с заметками. Это
// единственный компонент с межсущностными зависимостями: при создании
// и обновлении заметки ссылки на категорию и напоминание разрешаются
// через их реестры.
type NoteUseCase struct {
	notes      repositories.NoteRepository
	categories repositories.CategoryRepository
	reminders  repositories.ReminderRepository
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(
	notes repositories.NoteRepository,
	categories repositories.CategoryRepository,
	reminders repositories.ReminderRepository,
) *NoteUseCase {
	return &NoteUseCase{
		notes:      notes,
		categories: categories,
		reminders:  reminders,
	}
}

// resolveReferences заменяет клиентские заглушки категории и напоминания
// записями из хранилища. От клиента берется только идентификатор;
// неразрешимая ссылка прерывает операцию до какой-либо записи.
func (uc *NoteUseCase) resolveReferences(ctx context.Context, note *entities.Note) error {
	if note.Category != nil {
		category, err := uc.categories.GetByID(ctx, note.Category.ID)
		if err != nil {
			return fmt.Errorf("resolving category reference: %w", err)
		}
		note.Category = category
	}

	if note.Reminder != nil {
		reminder, err := uc.reminders.GetByID(ctx, note.Reminder.ID)
		if err != nil {
			return fmt.Errorf("resolving reminder reference: %w", err)
		}
		note.Reminder = reminder
	}

	return nil
}

// Create сохраняет новую заметку, предварительно разрешив ссылки.
// Неизвестная категория или напоминание возвращает соответствующую
// ошибку not-found, и заметка не создается. Дата создания назначается
// сервером. Дубликат идентификатора возвращает entities.ErrNoteConflict.
func (uc *NoteUseCase) Create(ctx context.Context, note *entities.Note) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.Create"))
	log.Debug(ctx, "creating note", zap.Int("noteID", note.ID))

	if err := uc.resolveReferences(ctx, note); err != nil {
		return err
	}

	note.CreationDate = time.Now().UTC()
	if err := uc.notes.Create(ctx, note); err != nil {
		return fmt.Errorf("creating note: %w", err)
	}

	return nil
}

// GetByID возвращает заметку по идентификатору.
func (uc *NoteUseCase) GetByID(ctx context.Context, id int) (*entities.Note, error) {
	note, err := uc.notes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting note: %w", err)
	}
	return note, nil
}

// Update перезаписывает заметку под указанным идентификатором.
// Существующая запись читается только как проверка наличия: ее поля
// отбрасываются, кроме даты создания. Ссылки разрешаются заново, как
// при создании. Возвращается входная заметка с разрешенными ссылками.
func (uc *NoteUseCase) Update(ctx context.Context, note *entities.Note, id int) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.Update"))
	log.Debug(ctx, "updating note", zap.Int("noteID", id))

	if _, err := uc.notes.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("checking note existence: %w", err)
	}

	if err := uc.resolveReferences(ctx, note); err != nil {
		return nil, err
	}

	note.ID = id
	updated, err := uc.notes.Update(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("updating note: %w", err)
	}

	return updated, nil
}

// Delete удаляет заметку по идентификатору.
func (uc *NoteUseCase) Delete(ctx context.Context, id int) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.Delete"))
	log.Debug(ctx, "deleting note", zap.Int("noteID", id))

	if err := uc.notes.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}

	return nil
}

// GetAllByUser возвращает заметки пользователя. Отсутствие записей -
// пустой список, не ошибка.
func (uc *NoteUseCase) GetAllByUser(ctx context.Context, userID string) ([]*entities.Note, error) {
	notes, err := uc.notes.ListByCreator(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	return notes, nil
}
