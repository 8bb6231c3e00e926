// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	blogRoute "sekolahku_backend/internals/features/blog/route"
	dashboardRoute "sekolahku_backend/internals/features/dashboard/route"
	ekskulRoute "sekolahku_backend/internals/features/ekskul/route"
	galeriRoute "sekolahku_backend/internals/features/galeri/route"
	guruRoute "sekolahku_backend/internals/features/guru/route"
	pengaturanRoute "sekolahku_backend/internals/features/pengaturan/route"
	prestasiRoute "sekolahku_backend/internals/features/prestasi/route"
	uploadRoute "sekolahku_backend/internals/features/upload/route"
	authRoute "sekolahku_backend/internals/features/users/auth/route"
	"sekolahku_backend/internals/helpers/storage"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, media storage.Service) {
	startTime = time.Now()

	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up BlogRoutes...")
	blogRoute.BlogRoutes(app, db)

	log.Println("[INFO] Setting up EkskulRoutes...")
	ekskulRoute.EkskulRoutes(app, db)

	log.Println("[INFO] Setting up GuruRoutes...")
	guruRoute.GuruRoutes(app, db)

	log.Println("[INFO] Setting up PrestasiRoutes...")
	prestasiRoute.PrestasiRoutes(app, db)

	log.Println("[INFO] Setting up GaleriRoutes...")
	galeriRoute.GaleriRoutes(app, db)

	log.Println("[INFO] Setting up PengaturanRoutes...")
	pengaturanRoute.PengaturanRoutes(app, db)

	log.Println("[INFO] Setting up UploadRoutes...")
	uploadRoute.UploadRoutes(app, media)

	log.Println("[INFO] Setting up DashboardRoutes...")
	dashboardRoute.DashboardRoutes(app, db)
}
