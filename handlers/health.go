package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/taskmgr/go-task-api/utils"
)

// HandleHealthCheck godoc
// @Summary Kiểm tra trạng thái API
// @Tags health
// @Produce json
// @Success 200 {object} models.Response
// @Router /health [get]
func (h *Handler) HandleHealthCheck(c *fiber.Ctx) error {
	return utils.Success(c, 200, "Task Manager API is running", fiber.Map{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   "1.0.0",
	})
}
