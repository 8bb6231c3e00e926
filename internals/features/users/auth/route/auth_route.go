// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sekolahku_backend/internals/features/users/auth/controller"
	rateLimiter "sekolahku_backend/internals/middlewares"
	authMW "sekolahku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	baseAuth := app.Group("/api/auth")

	// 🔓 Public
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/logout", authController.Logout)

	// 🔒 Protected
	baseAuth.Get("/me", authMW.AuthMiddleware(), authController.Me)
}
