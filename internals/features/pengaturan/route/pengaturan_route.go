// file: internals/features/pengaturan/route/pengaturan_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	controller "sekolahku_backend/internals/features/pengaturan/controller"
	authMW "sekolahku_backend/internals/middlewares/auth"
)

func PengaturanRoutes(app *fiber.App, db *gorm.DB) {
	pengaturanController := controller.NewPengaturanController(db)

	pengaturan := app.Group("/api/pengaturan")

	pengaturan.Get("/", pengaturanController.GetAllPengaturan)
	pengaturan.Put("/",
		authMW.AuthMiddleware(),
		authMW.RequireRoles(constants.AdminRoles...),
		pengaturanController.UpdatePengaturan,
	)
}
