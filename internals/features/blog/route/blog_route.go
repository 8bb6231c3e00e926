// file: internals/features/blog/route/blog_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sekolahku_backend/internals/features/blog/controller"
	authMW "sekolahku_backend/internals/middlewares/auth"
)

func BlogRoutes(app *fiber.App, db *gorm.DB) {
	blogController := controller.NewBlogController(db)
	requireAuth := authMW.AuthMiddleware()

	blog := app.Group("/api/blog")

	// 🔓 Public
	blog.Get("/", blogController.GetAllBlogs)
	blog.Get("/:slug", blogController.GetBlogBySlug)

	// 🔒 Mutasi wajib token
	blog.Post("/", requireAuth, blogController.CreateBlog)
	blog.Put("/:slug", requireAuth, blogController.UpdateBlog)
	blog.Delete("/:slug", requireAuth, blogController.DeleteBlog)
}
