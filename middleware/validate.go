package middleware

import (
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"github.com/taskmgr/go-task-api/models"
	"github.com/taskmgr/go-task-api/utils"
)

// Khóa Locals chứa body đã parse và kiểm tra xong
const (
	LoginInputKey  = "loginInput"
	CreateInputKey = "createInput"
	UpdateInputKey = "updateInput"
)

// fieldError là một luật kiểm tra bị vi phạm trên một field
type fieldError struct {
	message string
	field   string
	reason  string
}

// respond trả lỗi 400 kèm map field -> lý do, chỉ chứa field bị sai
func (fe *fieldError) respond(c *fiber.Ctx) error {
	return utils.ErrorWithDetails(c, 400, utils.ErrValidation,
		fe.message, map[string]string{fe.field: fe.reason})
}

// ValidateLogin kiểm tra body đăng nhập, luật sai đầu tiên dừng luôn
func ValidateLogin(c *fiber.Ctx) error {
	input := new(models.LoginInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Error(c, 400, utils.ErrValidation, "Invalid request body")
	}

	if input.Username == "" || input.Password == "" {
		details := map[string]string{}
		if input.Username == "" {
			details["username"] = "Username is required"
		}
		if input.Password == "" {
			details["password"] = "Password is required"
		}
		return utils.ErrorWithDetails(c, 400, utils.ErrValidation,
			"Username and password are required", details)
	}

	if len(input.Username) < 3 {
		return utils.Error(c, 400, utils.ErrValidation,
			"Username must be at least 3 characters long")
	}

	c.Locals(LoginInputKey, input)
	return c.Next()
}

// ValidateCreateTask kiểm tra body tạo task: title bắt buộc,
// description và priority tùy chọn
func ValidateCreateTask(c *fiber.Ctx) error {
	input := new(models.CreateTaskInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Error(c, 400, utils.ErrValidation, "Invalid request body")
	}

	if fe := checkTitle(input.Title); fe != nil {
		return fe.respond(c)
	}
	if fe := checkDescription(input.Description); fe != nil {
		return fe.respond(c)
	}
	if fe := checkPriority(input.Priority); fe != nil {
		return fe.respond(c)
	}

	c.Locals(CreateInputKey, input)
	return c.Next()
}

// ValidateUpdateTask kiểm tra body cập nhật task.
// Mọi field đều tùy chọn — chỉ kiểm tra field nào có mặt trong body.
func ValidateUpdateTask(c *fiber.Ctx) error {
	input := new(models.UpdateTaskInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Error(c, 400, utils.ErrValidation, "Invalid request body")
	}

	if input.Title != nil {
		if fe := checkTitle(*input.Title); fe != nil {
			return fe.respond(c)
		}
	}
	if input.Description != nil {
		if fe := checkDescription(*input.Description); fe != nil {
			return fe.respond(c)
		}
	}
	if input.Priority != nil {
		if fe := checkPriority(*input.Priority); fe != nil {
			return fe.respond(c)
		}
	}

	c.Locals(UpdateInputKey, input)
	return c.Next()
}

// Giới hạn độ dài tính theo ký tự, không theo byte
func checkTitle(title string) *fieldError {
	if strings.TrimSpace(title) == "" {
		return &fieldError{"Task title is required", "title", "Title cannot be empty"}
	}
	if utf8.RuneCountInString(title) > 200 {
		return &fieldError{"Task title is too long", "title", "Title must be less than 200 characters"}
	}
	return nil
}

func checkDescription(description string) *fieldError {
	if utf8.RuneCountInString(description) > 1000 {
		return &fieldError{"Task description is too long", "description", "Description must be less than 1000 characters"}
	}
	return nil
}

func checkPriority(priority string) *fieldError {
	if priority != "" && !models.ValidPriority(priority) {
		return &fieldError{"Invalid priority value", "priority", "Priority must be one of: low, medium, high"}
	}
	return nil
}
