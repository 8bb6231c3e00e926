// file: internals/features/ekskul/route/ekskul_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sekolahku_backend/internals/features/ekskul/controller"
	authMW "sekolahku_backend/internals/middlewares/auth"
)

func EkskulRoutes(app *fiber.App, db *gorm.DB) {
	ekskulController := controller.NewEkskulController(db)
	requireAuth := authMW.AuthMiddleware()

	ekskul := app.Group("/api/ekskul")

	ekskul.Get("/", ekskulController.GetAllEkskul)
	ekskul.Get("/:id", ekskulController.GetEkskul)

	ekskul.Post("/", requireAuth, ekskulController.CreateEkskul)
	ekskul.Put("/:id", requireAuth, ekskulController.UpdateEkskul)
	ekskul.Delete("/:id", requireAuth, ekskulController.DeleteEkskul)
}
