// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/configs"
)

// GetRawToken mengembalikan access token dari:
// 1) Authorization header "Bearer <token>"
// 2) cookie "auth_token"
func GetRawToken(c *fiber.Ctx) string {
	const p = "Bearer "
	auth := c.Get(fiber.HeaderAuthorization)
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return strings.TrimSpace(c.Cookies(configs.AuthCookieName))
}

// SetAuthCookie memasang cookie sesi (http-only, SameSite=Lax).
func SetAuthCookie(c *fiber.Ctx, token string, maxAgeSeconds int) {
	c.Cookie(&fiber.Cookie{
		Name:     configs.AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAgeSeconds,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func ClearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     configs.AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
