// Package notes содержит HTTP обработчики сервиса заметок.
package notes

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
	LogHandlerCreate = "note handler: create"
	LogHandlerUpdate = "note handler: update"
	LogHandlerDelete = "note handler: delete"
	LogHandlerGet    = "note handler: get"
	LogHandlerList   = "note handler: list"

	ErrorInvalidRequest       = "invalid request"
	ErrorInvalidID            = "invalid note id"
	ErrorUnauthorized         = "unauthorized access"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Handler содержит HTTP обработчики для заметок.
type Handler struct {
	notes *app.NoteUseCase
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(notes *app.NoteUseCase) *Handler {
	return &Handler{notes: notes}
}

// Create сохраняет новую заметку. Создатель из тела запроса должен
// совпадать с идентификатором сессии. Неразрешимая ссылка на категорию
// или напоминание возвращает 404, и заметка не создается.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreate)

	var note entities.Note
	if err := ctx.Bind().JSON(&note); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.SendStatus(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if !middleware.SessionFromCtx(ctx).Matches(note.CreatedBy) {
		return httperr.SendStatus(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	if err := h.notes.Create(requestCtx, &note); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Send(ctx, err)
	}

	if err := ctx.Status(http.StatusCreated).JSON(&note); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Update перезаписывает существующую заметку. Создатель из тела запроса
// должен совпадать с идентификатором сессии; ссылки разрешаются заново.
func (h *Handler) Update(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdate)

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return httperr.SendStatus(ctx, http.StatusBadRequest, ErrorInvalidID)
	}

	var note entities.Note
	if err := ctx.Bind().JSON(&note); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.SendStatus(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if !middleware.SessionFromCtx(ctx).Matches(note.CreatedBy) {
		return httperr.SendStatus(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	updated, err := h.notes.Update(requestCtx, &note, id)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Send(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(updated); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Delete удаляет заметку. Достаточно любой активной сессии.
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

	if err := h.notes.Delete(requestCtx, id); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Send(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		"message": "note deleted",
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Get возвращает заметку по идентификатору. Сохраненный снимок
// категории и напоминания возвращается как есть, даже если исходные
// записи уже удалены.
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

	note, err := h.notes.GetByID(requestCtx, id)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Send(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(note); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// List возвращает заметки, созданные пользователем текущей сессии.
func (h *Handler) List(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerList)

	sess := middleware.SessionFromCtx(ctx)
	if !sess.Present() {
		return httperr.SendStatus(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	notes, err := h.notes.GetAllByUser(requestCtx, sess.UserID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Send(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(notes); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
