package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	blogModel "sekolahku_backend/internals/features/blog/model"
	ekskulModel "sekolahku_backend/internals/features/ekskul/model"
	galeriModel "sekolahku_backend/internals/features/galeri/model"
	guruModel "sekolahku_backend/internals/features/guru/model"
	prestasiModel "sekolahku_backend/internals/features/prestasi/model"
	helper "sekolahku_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// 📊 GET /api/admin/dashboard (auth) — angka ringkasan untuk landing admin
func (ctrl *DashboardController) GetDashboard(c *fiber.Ctx) error {
	var (
		blogTotal     int64
		blogPublished int64
		ekskulTotal   int64
		guruAktif     int64
		prestasiTotal int64
		galeriTotal   int64
	)

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&blogTotal, ctrl.DB.Model(&blogModel.BlogModel{})},
		{&blogPublished, ctrl.DB.Model(&blogModel.BlogModel{}).Where("published = ?", true)},
		{&ekskulTotal, ctrl.DB.Model(&ekskulModel.EkskulModel{})},
		{&guruAktif, ctrl.DB.Model(&guruModel.GuruModel{}).Where("status = ?", "aktif")},
		{&prestasiTotal, ctrl.DB.Model(&prestasiModel.PrestasiModel{})},
		{&galeriTotal, ctrl.DB.Model(&galeriModel.GaleriModel{})},
	}
	for _, cnt := range counts {
		if err := cnt.query.Count(cnt.dest).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
		}
	}

	var recentBlogs []blogModel.BlogModel
	if err := ctrl.DB.Order("created_at DESC").Limit(5).Find(&recentBlogs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"counts": fiber.Map{
			"blog":           blogTotal,
			"blog_published": blogPublished,
			"ekskul":         ekskulTotal,
			"guru_aktif":     guruAktif,
			"prestasi":       prestasiTotal,
			"galeri":         galeriTotal,
		},
		"recent_blogs": recentBlogs,
	})
}
