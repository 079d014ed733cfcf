// Package repositories defines repository interfaces for the keepnote service.
package repositories

import (
	"context"

	"keepnote/internal/keepnote/domain/entities"
)

// UserRepository определяет интерфейс для работы с хранилищем пользователей.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, userID string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) (*entities.User, error)
	Delete(ctx context.Context, userID string) error
}
