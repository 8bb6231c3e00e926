package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/ekskul/dto"
	"sekolahku_backend/internals/features/ekskul/model"
	helper "sekolahku_backend/internals/helpers"
	authMW "sekolahku_backend/internals/middlewares/auth"
)

var validate = validator.New()

type EkskulController struct {
	DB *gorm.DB
}

func NewEkskulController(db *gorm.DB) *EkskulController {
	return &EkskulController{DB: db}
}

// findByIDOrSlug: coba UUID dulu, kalau bukan UUID pakai slug.
func (ctrl *EkskulController) findByIDOrSlug(idOrSlug string) (*model.EkskulModel, error) {
	var ekskul model.EkskulModel
	if id, err := uuid.Parse(idOrSlug); err == nil {
		if err := ctrl.DB.First(&ekskul, "ekskul_id = ?", id).Error; err == nil {
			return &ekskul, nil
		} else if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}
	if err := ctrl.DB.First(&ekskul, "slug = ?", idOrSlug).Error; err != nil {
		return nil, err
	}
	return &ekskul, nil
}

// 📄 GET /api/ekskul
func (ctrl *EkskulController) GetAllEkskul(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.EkskulModel{})
	if c.Query("published") == "true" {
		q = q.Where("published = ?", true)
	}
	if c.Query("featured") == "true" {
		q = q.Where("featured = ?", true)
	}

	q = q.Order("sort_order ASC, created_at DESC")
	if limit := c.QueryInt("limit", 0); limit > 0 {
		q = q.Limit(limit)
	}

	var list []model.EkskulModel
	if err := q.Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}

	return helper.JsonList(c, list, len(list), nil)
}

// ➕ POST /api/ekskul (auth)
func (ctrl *EkskulController) CreateEkskul(c *fiber.Ctx) error {
	var req dto.CreateEkskulRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ekskul := dto.ToEkskulModel(req)

	if ekskul.Slug == "" {
		ekskul.Slug = helper.Slugify(ekskul.Title, 100)
	}
	slug, err := helper.EnsureUniqueSlug(ctrl.DB, "ekskuls", "slug", ekskul.Slug)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}
	ekskul.Slug = slug

	if userID, err := uuid.Parse(c.Locals(authMW.LocUserID).(string)); err == nil {
		ekskul.CreatedBy = &userID
		ekskul.UpdatedBy = &userID
	}

	if err := ctrl.DB.Create(&ekskul).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat ekskul")
	}

	return helper.JsonCreated(c, "Ekskul berhasil dibuat", ekskul)
}

// 📄 GET /api/ekskul/:id — by id atau slug, views +1
func (ctrl *EkskulController) GetEkskul(c *fiber.Ctx) error {
	ekskul, err := ctrl.findByIDOrSlug(c.Params("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Ekskul tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}

	meta := ekskul.Meta.Data()
	meta.Views++
	ekskul.Meta = datatypes.NewJSONType(meta)
	if err := ctrl.DB.Model(&model.EkskulModel{}).
		Where("ekskul_id = ?", ekskul.ID).
		UpdateColumn("meta", ekskul.Meta).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}

	return helper.JsonOK(c, "", ekskul)
}

// 🔄 PUT /api/ekskul/:id (auth)
func (ctrl *EkskulController) UpdateEkskul(c *fiber.Ctx) error {
	ekskul, err := ctrl.findByIDOrSlug(c.Params("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Ekskul tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}

	var req dto.UpdateEkskulRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	dto.ApplyUpdate(ekskul, req)

	if userID, err := uuid.Parse(c.Locals(authMW.LocUserID).(string)); err == nil {
		ekskul.UpdatedBy = &userID
	}

	if err := ctrl.DB.Save(ekskul).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update ekskul")
	}

	return helper.JsonUpdated(c, "Ekskul berhasil diupdate", ekskul)
}

// 🗑 DELETE /api/ekskul/:id (auth)
func (ctrl *EkskulController) DeleteEkskul(c *fiber.Ctx) error {
	ekskul, err := ctrl.findByIDOrSlug(c.Params("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Ekskul tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}

	if err := ctrl.DB.Delete(&model.EkskulModel{}, "ekskul_id = ?", ekskul.ID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus ekskul")
	}

	return helper.JsonDeleted(c, "Ekskul berhasil dihapus")
}
