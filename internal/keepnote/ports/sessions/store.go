// Package sessions defines the session store interface for the keepnote service.
package sessions

import (
	"context"
	"errors"
)

// ErrSessionNotFound возвращается, когда токен не связан с сессией.
var ErrSessionNotFound = errors.New("session not found")

// Store определяет интерфейс хранилища сессий: непрозрачный токен
// связывается с идентификатором вошедшего пользователя до выхода
// или истечения срока жизни.
type Store interface {
	Create(ctx context.Context, userID string) (string, error)
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}
