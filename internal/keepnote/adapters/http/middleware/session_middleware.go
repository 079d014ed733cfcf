package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	domainsession "keepnote/internal/keepnote/domain/session"
	"keepnote/internal/keepnote/ports/sessions"
	"keepnote/pkg/logger"
)

// Ключ locals с записью сессии запроса.
const sessionLocalsKey = "session"

// NewSessionMiddleware создает промежуточное ПО, загружающее сессию по
// токену из cookie. Отсутствующий или неизвестный токен дает нулевую
// запись сессии, а не ошибку: решение об авторизации принимают
// обработчики.
func NewSessionMiddleware(store sessions.Store, cookieName string) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "session"))

		var sess domainsession.Session

		if token := ctx.Cookies(cookieName); token != "" {
			userID, err := store.Get(requestCtx, token)
			switch {
			case err == nil:
				sess = domainsession.Session{UserID: userID}
			case errors.Is(err, sessions.ErrSessionNotFound):
				log.Debug(ctx.Context(), "stale session token")
			default:
				log.Error(requestCtx, "failed to load session", zap.Error(err))
			}
		}

		ctx.Locals(sessionLocalsKey, sess)

		return ctx.Next()
	}
}

// SessionFromCtx возвращает запись сессии текущего запроса.
// Без установленной сессии возвращается нулевая запись.
func SessionFromCtx(ctx fiber.Ctx) domainsession.Session {
	sess, ok := ctx.Locals(sessionLocalsKey).(domainsession.Session)
	if !ok {
		return domainsession.Session{}
	}
	return sess
}
