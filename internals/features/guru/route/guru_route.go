// file: internals/features/guru/route/guru_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sekolahku_backend/internals/features/guru/controller"
	authMW "sekolahku_backend/internals/middlewares/auth"
)

func GuruRoutes(app *fiber.App, db *gorm.DB) {
	guruController := controller.NewGuruController(db)
	requireAuth := authMW.AuthMiddleware()

	guru := app.Group("/api/guru")

	guru.Get("/", guruController.GetAllGuru)
	guru.Get("/:id", guruController.GetGuru)

	guru.Post("/", requireAuth, guruController.CreateGuru)
	guru.Put("/:id", requireAuth, guruController.UpdateGuru)
	guru.Delete("/:id", requireAuth, guruController.DeleteGuru)
}
