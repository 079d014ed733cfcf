// Package auth содержит HTTP обработчики входа и выхода.
package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"keepnote/internal/keepnote/adapters/http/httperr"
	"keepnote/internal/keepnote/app"
	"keepnote/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerLogin  = "auth handler: login"
	LogHandlerLogout = "auth handler: logout"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
)

// loginRequest - тело запроса на вход.
type loginRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

// Handler содержит HTTP обработчики аутентификации.
type Handler struct {
	auth       *app.AuthUseCase
	cookieName string
	sessionTTL time.Duration
}

// NewHandler создает новый экземпляр обработчика аутентификации.
func NewHandler(auth *app.AuthUseCase, cookieName string, sessionTTL time.Duration) *Handler {
	return &Handler{
		auth:       auth,
		cookieName: cookieName,
		sessionTTL: sessionTTL,
	}
}

// Login обрабатывает запрос на вход пользователя. Успешный вход
// устанавливает cookie с токеном сессии.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req loginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.SendStatus(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.ID == "" || req.Password == "" {
		return httperr.SendStatus(ctx, http.StatusBadRequest, "id and password are required")
	}

	token, err := h.auth.Login(requestCtx, req.ID, req.Password)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Send(ctx, err)
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Expires:  time.Now().Add(h.sessionTTL),
		HTTPOnly: true,
	})

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		"message": "successfully logged in",
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Logout обрабатывает запрос на выход пользователя. Выход без активной
// сессии возвращает 400.
func (h *Handler) Logout(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogout)

	token := ctx.Cookies(h.cookieName)
	if err := h.auth.Logout(requestCtx, token); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Send(ctx, err)
	}

	ctx.ClearCookie(h.cookieName)

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		"message": "successfully logged out",
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
