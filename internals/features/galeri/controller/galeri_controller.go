package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/galeri/dto"
	"sekolahku_backend/internals/features/galeri/model"
	helper "sekolahku_backend/internals/helpers"
	authMW "sekolahku_backend/internals/middlewares/auth"
)

var validate = validator.New()

type GaleriController struct {
	DB *gorm.DB
}

func NewGaleriController(db *gorm.DB) *GaleriController {
	return &GaleriController{DB: db}
}

func (ctrl *GaleriController) findByIDOrSlug(idOrSlug string) (*model.GaleriModel, error) {
	var galeri model.GaleriModel
	if id, err := uuid.Parse(idOrSlug); err == nil {
		if err := ctrl.DB.First(&galeri, "galeri_id = ?", id).Error; err == nil {
			return &galeri, nil
		} else if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}
	if err := ctrl.DB.First(&galeri, "slug = ?", idOrSlug).Error; err != nil {
		return nil, err
	}
	return &galeri, nil
}

// 📄 GET /api/galeri
func (ctrl *GaleriController) GetAllGaleri(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.GaleriModel{})

	if kategori := c.Query("kategori"); kategori != "" {
		q = q.Where("kategori = ?", kategori)
	}
	if c.Query("published") == "true" {
		q = q.Where("published = ?", true)
	}

	q = q.Order("tanggal DESC")
	if limit := c.QueryInt("limit", 0); limit > 0 {
		q = q.Limit(limit)
	}

	var list []model.GaleriModel
	if err := q.Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}

	return helper.JsonList(c, list, len(list), nil)
}

// ➕ POST /api/galeri (auth)
func (ctrl *GaleriController) CreateGaleri(c *fiber.Ctx) error {
	var req dto.CreateGaleriRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	tanggal, err := dto.ParseTanggal(req.Tanggal)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid")
	}

	galeri := dto.ToGaleriModel(req, tanggal)

	if galeri.Slug == "" {
		galeri.Slug = helper.Slugify(galeri.Judul, 100)
	}
	slug, err := helper.EnsureUniqueSlug(ctrl.DB, "galeris", "slug", galeri.Slug)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}
	galeri.Slug = slug

	if userID, err := uuid.Parse(c.Locals(authMW.LocUserID).(string)); err == nil {
		galeri.CreatedBy = &userID
	}

	if err := ctrl.DB.Create(&galeri).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat galeri")
	}

	return helper.JsonCreated(c, "Galeri berhasil dibuat", galeri)
}

// 📄 GET /api/galeri/:id — by id atau slug, views +1
func (ctrl *GaleriController) GetGaleri(c *fiber.Ctx) error {
	galeri, err := ctrl.findByIDOrSlug(c.Params("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Galeri tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}

	galeri.Views++
	if err := ctrl.DB.Model(&model.GaleriModel{}).
		Where("galeri_id = ?", galeri.ID).
		UpdateColumn("views", galeri.Views).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}

	return helper.JsonOK(c, "", galeri)
}

// 🔄 PUT /api/galeri/:id (auth)
func (ctrl *GaleriController) UpdateGaleri(c *fiber.Ctx) error {
	galeri, err := ctrl.findByIDOrSlug(c.Params("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Galeri tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}

	var req dto.UpdateGaleriRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := dto.ApplyUpdate(galeri, req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid")
	}

	if err := ctrl.DB.Save(galeri).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update galeri")
	}

	return helper.JsonUpdated(c, "Galeri berhasil diupdate", galeri)
}

// 🗑 DELETE /api/galeri/:id (auth)
func (ctrl *GaleriController) DeleteGaleri(c *fiber.Ctx) error {
	galeri, err := ctrl.findByIDOrSlug(c.Params("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Galeri tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}

	if err := ctrl.DB.Delete(&model.GaleriModel{}, "galeri_id = ?", galeri.ID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus galeri")
	}

	return helper.JsonDeleted(c, "Galeri berhasil dihapus")
}
