// Package sessions содержит Redis-реализацию хранилища сессий.
package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"keepnote/internal/keepnote/ports/sessions"
	"keepnote/pkg/db/redis"
	"keepnote/pkg/logger"
)

// Префикс ключей сессий в Redis.
const keyPrefix = "session:"

// Константы для сообщений об ошибках.
const (
	ErrorFailedToStore  = "failed to store session in redis"
	ErrorFailedToLoad   = "failed to load session from redis"
	ErrorFailedToDelete = "failed to delete session from redis"
)

// RedisStore реализует интерфейс sessions.Store поверх Redis.
// Токен сессии непрозрачен для клиента и живет до выхода или
// истечения TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore создает новое хранилище сессий.
func NewRedisStore(client *redis.Client, ttl time.Duration) sessions.Store {
	return &RedisStore{client: client, ttl: ttl}
}

// Create связывает новый токен с идентификатором пользователя.
func (s *RedisStore) Create(ctx context.Context, userID string) (string, error) {
	log := logger.Log(ctx).With(zap.String("store", "sessions"), zap.String("method", "Create"))

	token := uuid.New().String()
	if err := s.client.Set(ctx, keyPrefix+token, userID, s.ttl); err != nil {
		log.Error(ctx, ErrorFailedToStore, zap.Error(err))
		return "", fmt.Errorf("%s: %w", ErrorFailedToStore, err)
	}

	log.Debug(ctx, "session created", zap.String("userID", userID))
	return token, nil
}

// Get возвращает идентификатор пользователя, связанный с токеном.
// Неизвестный или истекший токен возвращает sessions.ErrSessionNotFound.
func (s *RedisStore) Get(ctx context.Context, token string) (string, error) {
	log := logger.Log(ctx).With(zap.String("store", "sessions"), zap.String("method", "Get"))

	userID, err := s.client.Get(ctx, keyPrefix+token)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", sessions.ErrSessionNotFound
		}
		log.Error(ctx, ErrorFailedToLoad, zap.Error(err))
		return "", fmt.Errorf("%s: %w", ErrorFailedToLoad, err)
	}

	return userID, nil
}

// Delete разрывает связь токена с пользователем.
// Отсутствующий токен возвращает sessions.ErrSessionNotFound.
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	log := logger.Log(ctx).With(zap.String("store", "sessions"), zap.String("method", "Delete"))

	removed, err := s.client.Delete(ctx, keyPrefix+token)
	if err != nil {
		log.Error(ctx, ErrorFailedToDelete, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToDelete, err)
	}
	if removed == 0 {
		return sessions.ErrSessionNotFound
	}

	log.Debug(ctx, "session deleted")
	return nil
}
