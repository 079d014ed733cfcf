// Package reminders содержит HTTP обработчики реестра напоминаний.
package reminders

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
	LogHandlerCreate = "reminder handler: create"
	LogHandlerUpdate = "reminder handler: update"
	LogHandlerDelete = "reminder handler: delete"
	LogHandlerGet    = "reminder handler: get"
	LogHandlerList   = "reminder handler: list"

	ErrorInvalidRequest       = "invalid request"
	ErrorInvalidID            = "invalid reminder id"
	ErrorUnauthorized         = "unauthorized access"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Handler содержит HTTP обработчики для напоминаний.
type Handler struct {
	reminders *app.ReminderUseCase
}

// NewHandler создает новый экземпляр обработчика напоминаний.
func NewHandler(reminders *app.ReminderUseCase) *Handler {
	return &Handler{reminders: reminders}
}

// Create сохраняет новое напоминание. Создатель из тела запроса должен
// совпадать с идентификатором сессии.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreate)

	var reminder entities.Reminder
	if err := ctx.Bind().JSON(&reminder); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.SendStatus(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if !middleware.SessionFromCtx(ctx).Matches(reminder.CreatedBy) {
		return httperr.SendStatus(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	if err := h.reminders.Create(requestCtx, &reminder); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Send(ctx, err)
	}

	if err := ctx.Status(http.StatusCreated).JSON(&reminder); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Update перезаписывает существующее напоминание. Создатель из тела
// запроса должен совпадать с идентификатором сессии.
func (h *Handler) Update(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdate)

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return httperr.SendStatus(ctx, http.StatusBadRequest, ErrorInvalidID)
	}

	var reminder entities.Reminder
	if err := ctx.Bind().JSON(&reminder); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.SendStatus(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if !middleware.SessionFromCtx(ctx).Matches(reminder.CreatedBy) {
		return httperr.SendStatus(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	updated, err := h.reminders.Update(requestCtx, &reminder, id)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Send(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(updated); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Delete удаляет напоминание. Достаточно любой активной сессии.
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

	if err := h.reminders.Delete(requestCtx, id); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Send(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		"message": "reminder deleted",
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Get возвращает напоминание по идентификатору.
func (h *Handler) Get(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGet)

	if !middleware.SessionFromCtx(ctx).Present() {
		return httperr.SendStatus(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return httperr.SendStatus(ctx, http.StatusBadRequest, ErrorInvalidID)
	}

	reminder, err := h.reminders.GetByID(requestCtx, id)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Send(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(reminder); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// List возвращает напоминания, созданные пользователем текущей сессии.
func (h *Handler) List(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerList)

	sess := middleware.SessionFromCtx(ctx)
	if !sess.Present() {
		return httperr.SendStatus(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	reminders, err := h.reminders.ListByCreator(requestCtx, sess.UserID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Send(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(reminders); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
