// file: internals/features/galeri/route/galeri_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sekolahku_backend/internals/features/galeri/controller"
	authMW "sekolahku_backend/internals/middlewares/auth"
)

func GaleriRoutes(app *fiber.App, db *gorm.DB) {
	galeriController := controller.NewGaleriController(db)
	requireAuth := authMW.AuthMiddleware()

	galeri := app.Group("/api/galeri")

	galeri.Get("/", galeriController.GetAllGaleri)
	galeri.Get("/:id", galeriController.GetGaleri)

	galeri.Post("/", requireAuth, galeriController.CreateGaleri)
	galeri.Put("/:id", requireAuth, galeriController.UpdateGaleri)
	galeri.Delete("/:id", requireAuth, galeriController.DeleteGaleri)
}
