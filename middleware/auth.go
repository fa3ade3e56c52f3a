package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/taskmgr/go-task-api/token"
	"github.com/taskmgr/go-task-api/utils"
)

// ClaimsKey là khóa Locals chứa claims đã giải mã
const ClaimsKey = "claims"

// JWTMiddleware xác thực bearer token.
// Thiếu token -> 401, token sai hoặc hết hạn -> 403.
func JWTMiddleware(tokens *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Lấy token từ header Authorization
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.Error(c, 401, utils.ErrUnauthorized, "Access token is required")
		}

		// Tách từ "Bearer <token>"
		raw := strings.TrimPrefix(authHeader, "Bearer ")
		if raw == authHeader || raw == "" {
			return utils.Error(c, 401, utils.ErrUnauthorized, "Access token is required")
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			return utils.Error(c, 403, utils.ErrForbidden, "Invalid or expired token")
		}

		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}

// Claims lấy claims đã được middleware auth lưu vào context
func Claims(c *fiber.Ctx) *token.Claims {
	claims, _ := c.Locals(ClaimsKey).(*token.Claims)
	return claims
}
