// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"sekolahku_backend/internals/configs"
	helper "sekolahku_backend/internals/helpers"
)

// Kunci Locals yang diisi setelah token valid.
const (
	LocUserID   = "user_id"
	LocUsername = "username"
	LocRole     = "role"
)

// AuthMiddleware memverifikasi bearer token (header atau cookie).
// Token invalid/expired/absen selalu 401 seragam — tanpa membedakan sebabnya.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		secret := configs.JWTSecret
		if secret == "" {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		userID, _ := claims["user_id"].(string)
		if userID == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		c.Locals(LocUserID, userID)
		if v, ok := claims["username"].(string); ok {
			c.Locals(LocUsername, v)
		}
		if v, ok := claims["role"].(string); ok {
			c.Locals(LocRole, v)
		}

		return c.Next()
	}
}
