package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"luxrealty_backend/internal/model"
	"luxrealty_backend/pkg/utils/jwt"
)

// SessionCookie name of the httpOnly cookie carrying the CRM session token.
const SessionCookie = "crm_session"

// AuthMiddleware is the CRM session guard. It accepts a Bearer header or the
// session cookie; without a valid token the request ends at 401 and the
// frontend routes back to the login view.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			token = c.Cookies(SessionCookie)
		}
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		claims, err := jwt.ValidateToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		c.Locals("user", claims)
		return c.Next()
	}
}

// RequireAdmin gates project mutations on the admin role.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("user").(*jwt.Claims)
		if !ok || claims.Role != string(model.RoleAdmin) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Admin access required",
			})
		}
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
