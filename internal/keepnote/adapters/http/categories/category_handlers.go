// Package categories содержит HTTP обработчики реестра категорий.
package categories

import (
	"fmt"
	"net/http"
	"strconv"

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
	LogHandlerCreate = "category handler: create"
	LogHandlerUpdate = "category handler: update"
	LogHandlerDelete = "category handler: delete"
	LogHandlerList   = "category handler: list"

	ErrorInvalidRequest       = "invalid request"
	ErrorInvalidID            = "invalid category id"
	ErrorUnauthorized         = "unauthorized access"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Handler содержит HTTP обработчики для категорий.
type Handler struct {
	categories *app.CategoryUseCase
}

// NewHandler создает новый экземпляр обработчика категорий.
func NewHandler(categories *app.CategoryUseCase) *Handler {
	return &Handler{categories: categories}
}

// Create сохраняет новую категорию. Достаточно любой активной сессии:
// создатель из тела запроса не сверяется с сессией.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreate)

	if !middleware.SessionFromCtx(ctx).Present() {
		return httperr.SendStatus(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	var category entities.Category
	if err := ctx.Bind().JSON(&category); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.SendStatus(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if err := h.categories.Create(requestCtx, &category); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Send(ctx, err)
	}

	if err := ctx.Status(http.StatusCreated).JSON(&category); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Update перезаписывает существующую категорию.
func (h *Handler) Update(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdate)

	if !middleware.SessionFromCtx(ctx).Present() {
		return httperr.SendStatus(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return httperr.SendStatus(ctx, http.StatusBadRequest, ErrorInvalidID)
	}

	var category entities.Category
	if err := ctx.Bind().JSON(&category); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.SendStatus(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	updated, err := h.categories.Update(requestCtx, &category, id)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Send(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(updated); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Delete удаляет категорию.
func (h *Handler) Delete(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDelete)

	if !middleware.SessionFromCtx(ctx).Present() {
		return httperr.SendStatus(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return httperr.SendStatus(ctx, http.StatusBadRequest, ErrorInvalidID)
	}

	if err := h.categories.Delete(requestCtx, id); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Send(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		"message": "category deleted",
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// List возвращает категории, созданные пользователем текущей сессии.
func (h *Handler) List(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerList)

	sess := middleware.SessionFromCtx(ctx)
	if !sess.Present() {
		return httperr.SendStatus(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	categories, err := h.categories.ListByCreator(requestCtx, sess.UserID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Send(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(categories); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
