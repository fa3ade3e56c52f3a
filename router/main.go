package router

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/taskmgr/go-task-api/handlers"
	"github.com/taskmgr/go-task-api/middleware"
	"github.com/taskmgr/go-task-api/utils"
)

func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api")

	api.Get("/health", h.HandleHealthCheck)
	api.Post("/login", middleware.ValidateLogin, h.LoginHandler)

	items := api.Group("/items", middleware.JWTMiddleware(h.Tokens))

	items.Get("/", h.HandleListTasks)
	items.Post("/", middleware.ValidateCreateTask, h.HandleCreateTask)
	items.Put("/:id", middleware.ValidateUpdateTask, h.HandleUpdateTask)
	items.Delete("/:id", h.HandleDeleteTask)

	api.Get("/events", middleware.JWTMiddleware(h.Tokens), h.HandleTaskEvents)

	// Route không khớp -> 404 với mã lỗi ổn định
	app.Use(func(c *fiber.Ctx) error {
		return utils.Error(c, 404, utils.ErrNotFound,
			fmt.Sprintf("Endpoint %s %s not found", c.Method(), c.OriginalURL()))
	})
}
