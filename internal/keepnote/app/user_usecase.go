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

// UserUseCase реализует операции каталога пользователей.
type UserUseCase struct {
	users repositories.UserRepository
}

// NewUserUseCase создает новый экземпляр UserUseCase.
func NewUserUseCase(users repositories.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// Register регистрирует нового пользователя. Существующий идентификатор
// возвращает entities.ErrUserConflict. Дата регистрации назначается
// сервером и не принимается от клиента.
func (uc *UserUseCase) Register(ctx context.Context, user *entities.User) error {
	log := logger.Log(ctx).With(zap.String("method", "UserUseCase.Register"))
	log.Debug(ctx, "registering user", zap.String("userID", user.ID))

	user.AddedDate = time.Now().UTC()
	if err := uc.users.Create(ctx, user); err != nil {
		return fmt.Errorf("registering user: %w", err)
	}

	return nil
}

// Authenticate сравнивает пароль с сохраненным. Возвращает
// entities.ErrUserNotFound для неизвестного идентификатора; для
// известного - признак совпадения пароля.
func (uc *UserUseCase) Authenticate(ctx context.Context, userID, password string) (bool, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("authenticating user: %w", err)
	}

	return user.Password == password, nil
}

// GetByID возвращает пользователя по идентификатору.
func (uc *UserUseCase) GetByID(ctx context.Context, userID string) (*entities.User, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return user, nil
}

// Update перезаписывает данные существующего пользователя.
func (uc *UserUseCase) Update(ctx context.Context, user *entities.User, userID string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", "UserUseCase.Update"))
	log.Debug(ctx, "updating user", zap.String("userID", userID))

	user.ID = userID
	updated, err := uc.users.Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	return updated, nil
}

// Delete удаляет пользователя по идентификатору.
func (uc *UserUseCase) Delete(ctx context.Context, userID string) error {
	log := logger.Log(ctx).With(zap.String("method", "UserUseCase.Delete"))
	log.Debug(ctx, "deleting user", zap.String("userID", userID))

	if err := uc.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	return nil
}
