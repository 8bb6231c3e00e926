// internals/middlewares/auth/role_middleware.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	helper "sekolahku_backend/internals/helpers"
)

// RequireRoles membatasi akses ke role tertentu (pasang SETELAH AuthMiddleware).
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocRole).(string)
		for _, allowed := range roles {
			if strings.EqualFold(role, allowed) {
				return c.Next()
			}
		}
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden")
	}
}
