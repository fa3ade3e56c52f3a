package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/taskmgr/go-task-api/middleware"
	"github.com/taskmgr/go-task-api/models"
	"github.com/taskmgr/go-task-api/users"
	"github.com/taskmgr/go-task-api/utils"
)

// LoginHandler godoc
// @Summary Đăng nhập và nhận bearer token 24h
// @Tags auth
// @Accept json
// @Produce json
// @Param body body models.LoginInput true "Thông tin đăng nhập"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.Response
// @Failure 401 {object} models.Response
// @Router /login [post]
func (h *Handler) LoginHandler(c *fiber.Ctx) error {
	input := c.Locals(middleware.LoginInputKey).(*models.LoginInput)

	// Không phân biệt "sai user" với "sai mật khẩu" để tránh dò tài khoản
	user, err := h.Users.FindByUsername(input.Username)
	if err != nil {
		return utils.Error(c, 401, utils.ErrAuthFailed, "Invalid username or password")
	}

	if !users.VerifyPassword(user, input.Password, h.AllowPlaintextLogin) {
		return utils.Error(c, 401, utils.ErrAuthFailed, "Invalid username or password")
	}

	signed, err := h.Tokens.Generate(user)
	if err != nil {
		return utils.Error(c, 500, utils.ErrInternalServer, "An error occurred during login")
	}

	return utils.Success(c, 200, "Login successful", fiber.Map{
		"token": signed,
		"user":  user,
	})
}
