// Package users содержит HTTP обработчики каталога пользователей.
package users

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"keepnote/internal/keepnote/adapters/http/httperr"
	"keepnote/internal/keepnote/adapters/http/middleware"
	"keepnote/internal/keepnote/app"
	"keepnote/internal/keepnote/domain/entities"
	"keepnote/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister = "user handler: register"
	LogHandlerUpdate   = "user handler: update"
	LogHandlerDelete   = "user handler: delete"
	LogHandlerGet      = "user handler: get"

	ErrorInvalidRequest       = "invalid request"
	ErrorUnauthorized         = "unauthorized access"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Handler содержит HTTP обработчики для пользователей.
type Handler struct {
	users *app.UserUseCase
}

// NewHandler создает новый экземпляр обработчика пользователей.
func NewHandler(users *app.UserUseCase) *Handler {
	return &Handler{users: users}
}

// Register обрабатывает регистрацию нового пользователя. Единственная
// операция, доступная без сессии.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var user entities.User
	if err := ctx.Bind().JSON(&user); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.SendStatus(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if user.ID == "" || user.Password == "" {
		return httperr.SendStatus(ctx, http.StatusBadRequest, "id and password are required")
	}

	if err := h.users.Register(requestCtx, &user); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Send(ctx, err)
	}

	if err := ctx.Status(http.StatusCreated).JSON(&user); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Update перезаписывает данные пользователя. Идентификатор из тела
// запроса должен совпадать с идентификатором сессии; путь задает
// обновляемую запись.
func (h *Handler) Update(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdate)

	userID := ctx.Params("id")

	var user entities.User
	if err := ctx.Bind().JSON(&user); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.SendStatus(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if !middleware.SessionFromCtx(ctx).Matches(user.ID) {
		return httperr.SendStatus(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	updated, err := h.users.Update(requestCtx, &user, userID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Send(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(updated); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Delete удаляет пользователя. Достаточно любой активной сессии.
func (h *Handler) Delete(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDelete)

	if !middleware.SessionFromCtx(ctx).Present() {
		return httperr.SendStatus(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	if err := h.users.Delete(requestCtx, ctx.Params("id")); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Send(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		"message": "user deleted",
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Get возвращает пользователя по идентификатору. Достаточно любой
// активной сессии.
func (h *Handler) Get(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGet)

	if !middleware.SessionFromCtx(ctx).Present() {
		return httperr.SendStatus(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	user, err := h.users.GetByID(requestCtx, ctx.Params("id"))
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Send(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(user); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
