// Package http содержит компоненты HTTP сервера keepnote.
package http

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"keepnote/internal/keepnote/adapters/http/auth"
	"keepnote/internal/keepnote/adapters/http/categories"
	"keepnote/internal/keepnote/adapters/http/middleware"
	"keepnote/internal/keepnote/adapters/http/notes"
	"keepnote/internal/keepnote/adapters/http/reminders"
	"keepnote/internal/keepnote/adapters/http/users"
	"keepnote/internal/keepnote/app"
	"keepnote/internal/keepnote/ports/sessions"
)

// RouterDeps собирает зависимости маршрутизатора.
type RouterDeps struct {
	Auth       *app.AuthUseCase
	Users      *app.UserUseCase
	Categories *app.CategoryUseCase
	Reminders  *app.ReminderUseCase
	Notes      *app.NoteUseCase

	SessionStore  sessions.Store
	SessionCookie string
	SessionTTL    time.Duration
}

// SetupRouter настраивает маршрутизацию HTTP сервера.
func SetupRouter(app *fiber.App, deps RouterDeps) {
	authHandler := auth.NewHandler(deps.Auth, deps.SessionCookie, deps.SessionTTL)
	userHandler := users.NewHandler(deps.Users)
	categoryHandler := categories.NewHandler(deps.Categories)
	reminderHandler := reminders.NewHandler(deps.Reminders)
	noteHandler := notes.NewHandler(deps.Notes)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())
	app.Use(middleware.NewSessionMiddleware(deps.SessionStore, deps.SessionCookie))

	// Сессия.
	app.Post("/login", authHandler.Login)
	app.Get("/logout", authHandler.Logout)

	// Пользователи.
	app.Post("/user/register", userHandler.Register)
	app.Put("/user/:id", userHandler.Update)
	app.Delete("/user/:id", userHandler.Delete)
	app.Get("/user/:id", userHandler.Get)

	// Категории.
	app.Post("/category", categoryHandler.Create)
	app.Put("/category/:id", categoryHandler.Update)
	app.Delete("/category/:id", categoryHandler.Delete)
	app.Get("/category", categoryHandler.List)

	// Напоминания.
	app.Post("/reminder", reminderHandler.Create)
	app.Put("/reminder/:id", reminderHandler.Update)
	app.Delete("/reminder/:id", reminderHandler.Delete)
	app.Get("/reminder", reminderHandler.List)
	app.Get("/reminder/:id", reminderHandler.Get)

	// Заметки.
	app.Post("/note", noteHandler.Create)
	app.Put("/note/:id", noteHandler.Update)
	app.Delete("/note/:id", noteHandler.Delete)
	app.Get("/note", noteHandler.List)
	app.Get("/note/:id", noteHandler.Get)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
