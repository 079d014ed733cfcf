package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"keepnote/internal/keepnote/ports/sessions"
	"keepnote/pkg/logger"
)

// Константы для сообщений логгера.
const (
	msgLoginAttempt    = "login attempt"
	msgLoginFailed     = "login failed: password mismatch"
	msgUserLoggedIn    = "user logged in"
	msgUserLoggedOut   = "user logged out"
	msgLogoutNoSession = "logout without active session"
)

// AuthUseCase реализует вход и выход пользователя.
type AuthUseCase struct {
	users    *UserUseCase
	sessions sessions.Store
}

// NewAuthUseCase создает новый экземпляр AuthUseCase.
func NewAuthUseCase(users *UserUseCase, store sessions.Store) *AuthUseCase {
	return &AuthUseCase{users: users, sessions: store}
}

// Login проверяет учетные данные и открывает сессию. Неизвестный
// пользователь возвращает entities.ErrUserNotFound, несовпадающий
// пароль - ErrInvalidCredentials. Успех возвращает токен сессии.
func (a *AuthUseCase) Login(ctx context.Context, userID, password string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", "AuthUseCase.Login"), zap.String("userID", userID))
	log.Debug(ctx, msgLoginAttempt)

	ok, err := a.users.Authenticate(ctx, userID, password)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if !ok {
		log.Debug(ctx, msgLoginFailed)
		return "", ErrInvalidCredentials
	}

	token, err := a.sessions.Create(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("opening session: %w", err)
	}

	log.Info(ctx, msgUserLoggedIn)
	return token, nil
}

// Logout закрывает сессию по токену. Отсутствие активной сессии
// возвращает ErrNoSession.
func (a *AuthUseCase) Logout(ctx context.Context, token string) error {
	log := logger.Log(ctx).With(zap.String("method", "AuthUseCase.Logout"))

	if token == "" {
		log.Debug(ctx, msgLogoutNoSession)
		return ErrNoSession
	}

	if err := a.sessions.Delete(ctx, token); err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			log.Debug(ctx, msgLogoutNoSession)
			return ErrNoSession
		}
		return fmt.Errorf("closing session: %w", err)
	}

	log.Info(ctx, msgUserLoggedOut)
	return nil
}
