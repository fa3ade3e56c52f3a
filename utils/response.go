package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/taskmgr/go-task-api/models"
)

// Mã lỗi ổn định cho client
const (
	ErrValidation     = "VALIDATION_ERROR"
	ErrUnauthorized   = "UNAUTHORIZED"
	ErrAuthFailed     = "AUTHENTICATION_FAILED"
	ErrForbidden      = "FORBIDDEN"
	ErrTaskNotFound   = "TASK_NOT_FOUND"
	ErrNotFound       = "ENDPOINT_NOT_FOUND"
	ErrInternalServer = "INTERNAL_SERVER_ERROR"
)

// Success gửi response thành công theo envelope chung
func Success(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(models.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error gửi response lỗi với mã lỗi ổn định
func Error(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(models.Response{
		Success: false,
		Error:   code,
		Message: message,
	})
}

// ErrorWithDetails gửi lỗi kèm map field -> lý do
func ErrorWithDetails(c *fiber.Ctx, status int, code, message string, details map[string]string) error {
	return c.Status(status).JSON(models.Response{
		Success: false,
		Error:   code,
		Message: message,
		Details: details,
	})
}
