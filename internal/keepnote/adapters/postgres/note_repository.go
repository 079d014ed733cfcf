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

// NoteRepository реализует интерфейс repositories.NoteRepository.
//
// Снимки категории и напоминания хранятся в jsonb-колонках вместе
// с заметкой: удаление исходной записи не каскадирует на заметку.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// Create сохраняет новую заметку. Дубликат клиентского идентификатора
// возвращает entities.ErrNoteConflict.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Create"))
	log.Debug(ctx, "creating note", zap.Int("noteID", note.ID), zap.String("createdBy", note.CreatedBy))

	query := `
        INSERT INTO notes (note_id, note_title, note_content, note_status, note_creation_date, note_creator, category, reminder)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `

	_, err := r.pool.Exec(ctx, query,
		note.ID,
		note.Title,
		note.Content,
		note.Status,
		note.CreationDate,
		note.CreatedBy,
		note.Category,
		note.Reminder,
	)
	if err != nil {
		if isUniqueViolation(err) {
			log.Debug(ctx, "note already exists", zap.Int("noteID", note.ID))
			return entities.ErrNoteConflict
		}
		log.Error(ctx, "error creating note", zap.Error(err))
		return fmt.Errorf("error creating note: %w", err)
	}

	return nil
}

// GetByID находит заметку по идентификатору.
func (r *NoteRepository) GetByID(ctx context.Context, id int) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "GetByID"))

	query := `
        SELECT note_id, note_title, note_content, note_status, note_creation_date, note_creator, category, reminder
        FROM notes
        WHERE note_id = $1
    `

	var note entities.Note
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&note.ID,
		&note.Title,
		&note.Content,
		&note.Status,
		&note.CreationDate,
		&note.CreatedBy,
		&note.Category,
		&note.Reminder,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.Int("noteID", id))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "error querying note", zap.Error(err))
		return nil, fmt.Errorf("error querying note: %w", err)
	}

	return &note, nil
}

// Update перезаписывает существующую заметку целиком, кроме даты
// создания: она остается той, что была назначена при создании.
func (r *NoteRepository) Update(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Update"))
	log.Debug(ctx, "updating note", zap.Int("noteID", note.ID))

	query := `
        UPDATE notes
        SET note_title = $2, note_content = $3, note_status = $4, note_creator = $5, category = $6, reminder = $7
        WHERE note_id = $1
        RETURNING note_creation_date
    `

	err := r.pool.QueryRow(ctx, query,
		note.ID,
		note.Title,
		note.Content,
		note.Status,
		note.CreatedBy,
		note.Category,
		note.Reminder,
	).Scan(&note.CreationDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found for update", zap.Int("noteID", note.ID))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "error updating note", zap.Error(err))
		return nil, fmt.Errorf("error updating note: %w", err)
	}

	return note, nil
}

// Delete удаляет заметку по идентификатору.
func (r *NoteRepository) Delete(ctx context.Context, id int) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Delete"))

	result, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE note_id = $1`, id)
	if err != nil {
		log.Error(ctx, "error deleting note", zap.Error(err))
		return fmt.Errorf("error deleting note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found for deletion", zap.Int("noteID", id))
		return entities.ErrNoteNotFound
	}

	return nil
}

// ListByCreator возвращает все заметки, созданные пользователем.
func (r *NoteRepository) ListByCreator(ctx context.Context, userID string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "ListByCreator"))
	log.Debug(ctx, "listing notes", zap.String("userID", userID))

	query := `
        SELECT note_id, note_title, note_content, note_status, note_creation_date, note_creator, category, reminder
        FROM notes
        WHERE note_creator = $1
        ORDER BY note_id
    `

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		log.Error(ctx, "error listing notes", zap.Error(err))
		return nil, fmt.Errorf("error listing notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var note entities.Note
		if err := rows.Scan(
			&note.ID,
			&note.Title,
			&note.Content,
			&note.Status,
			&note.CreationDate,
			&note.CreatedBy,
			&note.Category,
			&note.Reminder,
		); err != nil {
			log.Error(ctx, "error scanning note", zap.Error(err))
			return nil, fmt.Errorf("error scanning note: %w", err)
		}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return notes, nil
}
