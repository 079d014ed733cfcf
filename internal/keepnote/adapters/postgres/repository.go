// Package postgres provides PostgreSQL implementations of repositories.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"keepnote/internal/keepnote/ports/repositories"
)

// PgxPoolInterface описывает используемое подмножество пула pgx.
// Интерфейс совместим с pgxmock для тестирования репозиториев.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// isUniqueViolation сообщает, нарушает ли ошибка уникальность первичного
// ключа. Идентификаторы задаются клиентом, поэтому повторная вставка
// должна завершаться конфликтом, а не перезаписью.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// RepositoryFactory создает репозитории для работы с базой данных.
type RepositoryFactory struct {
	pool PgxPoolInterface
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{pool: pool}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return NewUserRepository(f.pool)
}

// CategoryRepository возвращает репозиторий категорий.
func (f *RepositoryFactory) CategoryRepository() repositories.CategoryRepository {
	return NewCategoryRepository(f.pool)
}

// ReminderRepository возвращает репозиторий напоминаний.
func (f *RepositoryFactory) ReminderRepository() repositories.ReminderRepository {
	return NewReminderRepository(f.pool)
}

// NoteRepository возвращает репозиторий заметок.
func (f *RepositoryFactory) NoteRepository() repositories.NoteRepository {
	return NewNoteRepository(f.pool)
}
