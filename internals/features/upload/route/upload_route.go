// file: internals/features/upload/route/upload_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	controller "sekolahku_backend/internals/features/upload/controller"
	"sekolahku_backend/internals/helpers/storage"
	authMW "sekolahku_backend/internals/middlewares/auth"
)

func UploadRoutes(app *fiber.App, svc storage.Service) {
	uploadController := controller.NewUploadController(svc)
	requireAuth := authMW.AuthMiddleware()

	upload := app.Group("/api/upload", requireAuth)

	upload.Post("/", uploadController.UploadImages)
	upload.Delete("/", uploadController.DeleteImage)
}
