// file: internals/features/dashboard/route/dashboard_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sekolahku_backend/internals/features/dashboard/controller"
	authMW "sekolahku_backend/internals/middlewares/auth"
)

func DashboardRoutes(app *fiber.App, db *gorm.DB) {
	dashboardController := controller.NewDashboardController(db)

	admin := app.Group("/api/admin", authMW.AuthMiddleware())

	admin.Get("/dashboard", dashboardController.GetDashboard)
}
