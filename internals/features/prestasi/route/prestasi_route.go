// file: internals/features/prestasi/route/prestasi_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sekolahku_backend/internals/features/prestasi/controller"
	authMW "sekolahku_backend/internals/middlewares/auth"
)

func PrestasiRoutes(app *fiber.App, db *gorm.DB) {
	prestasiController := controller.NewPrestasiController(db)
	requireAuth := authMW.AuthMiddleware()

	prestasi := app.Group("/api/prestasi")

	prestasi.Get("/", prestasiController.GetAllPrestasi)
	prestasi.Get("/:id", prestasiController.GetPrestasi)

	prestasi.Post("/", requireAuth, prestasiController.CreatePrestasi)
	prestasi.Put("/:id", requireAuth, prestasiController.UpdatePrestasi)
	prestasi.Delete("/:id", requireAuth, prestasiController.DeletePrestasi)
}
