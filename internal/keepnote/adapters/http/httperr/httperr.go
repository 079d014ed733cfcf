// Package httperr отображает ошибки бизнес-логики в HTTP статусы.
package httperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"keepnote/internal/keepnote/app"
	"keepnote/internal/keepnote/domain/entities"
)

// Status возвращает HTTP статус для ошибки бизнес-логики.
// Not-found ссылочной сущности отображается так же, как not-found
// самой записи: границе доступен только вид ошибки.
func Status(err error) int {
	switch {
	case errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrCategoryNotFound),
		errors.Is(err, entities.ErrReminderNotFound),
		errors.Is(err, entities.ErrNoteNotFound):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrUserConflict),
		errors.Is(err, entities.ErrCategoryConflict),
		errors.Is(err, entities.ErrReminderConflict),
		errors.Is(err, entities.ErrNoteConflict):
		return http.StatusConflict
	case errors.Is(err, app.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, app.ErrNoSession):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Send отправляет JSON ответ с сообщением об ошибке и статусом,
// соответствующим ее виду. Неожиданные ошибки хранилища деградируют
// до общего ответа 500, не роняя обработчик.
func Send(ctx fiber.Ctx, err error) error {
	status := Status(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	if sendErr := ctx.Status(status).JSON(fiber.Map{
		"error": message,
	}); sendErr != nil {
		return fmt.Errorf("error sending response: %w", sendErr)
	}
	return nil
}

// SendStatus отправляет JSON ответ с заданным статусом и сообщением.
func SendStatus(ctx fiber.Ctx, status int, message string) error {
	if err := ctx.Status(status).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
