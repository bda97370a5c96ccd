// Package http содержит компоненты HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"useradmin/internal/users/adapters/http/middleware"
	"useradmin/internal/users/adapters/http/users"
	"useradmin/internal/users/ports/api"
	v1 "useradmin/pkg/api/v1"
)

// SetupRouter настраивает маршрутизацию HTTP сервера.
func SetupRouter(app *fiber.App, userService api.UserUseCase, allowedOrigins []string) {
	userHandler := users.NewHandler(userService)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())
	app.Use(middleware.NewCORSMiddleware(allowedOrigins))

	userRoutes := app.Group("/users")
	userRoutes.Get("/", userHandler.ListUsers)
	userRoutes.Get("/:id", userHandler.GetUser)
	userRoutes.Post("/save", userHandler.SaveUser)
	userRoutes.Post("/update", userHandler.UpdateUser)
	userRoutes.Delete("/delete", userHandler.DeleteUser)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).
			JSON(v1.Failure(fiber.StatusNotFound, "Route not found", ""))
	})
}
