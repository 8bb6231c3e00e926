package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/prestasi/dto"
	"sekolahku_backend/internals/features/prestasi/model"
	helper "sekolahku_backend/internals/helpers"
)

var validate = validator.New()

type PrestasiController struct {
	DB *gorm.DB
}

func NewPrestasiController(db *gorm.DB) *PrestasiController {
	return &PrestasiController{DB: db}
}

// 📄 GET /api/prestasi — list publik selalu published saja
func (ctrl *PrestasiController) GetAllPrestasi(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.PrestasiModel{}).Where("published = ?", true)

	if jenis := c.Query("jenis"); jenis != "" {
		q = q.Where("jenis = ?", jenis)
	}
	if tingkat := c.Query("tingkat"); tingkat != "" {
		q = q.Where("tingkat = ?", tingkat)
	}
	if tahun := c.QueryInt("tahun", 0); tahun > 0 {
		q = q.Where("tahun = ?", tahun)
	}

	q = q.Order("tahun DESC, tanggal DESC")
	if limit := c.QueryInt("limit", 0); limit > 0 {
		q = q.Limit(limit)
	}

	var list []model.PrestasiModel
	if err := q.Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}

	return helper.JsonList(c, list, len(list), nil)
}

// ➕ POST /api/prestasi (auth)
func (ctrl *PrestasiController) CreatePrestasi(c *fiber.Ctx) error {
	var req dto.CreatePrestasiRequest
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

	prestasi := dto.ToPrestasiModel(req, tanggal)
	if err := ctrl.DB.Create(&prestasi).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat data prestasi")
	}

	return helper.JsonCreated(c, "Prestasi berhasil ditambahkan", prestasi)
}

// 📄 GET /api/prestasi/:id
func (ctrl *PrestasiController) GetPrestasi(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID prestasi tidak valid")
	}

	var prestasi model.PrestasiModel
	if err := ctrl.DB.First(&prestasi, "prestasi_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Prestasi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}

	return helper.JsonOK(c, "", prestasi)
}

// 🔄 PUT /api/prestasi/:id (auth)
func (ctrl *PrestasiController) UpdatePrestasi(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID prestasi tidak valid")
	}

	var prestasi model.PrestasiModel
	if err := ctrl.DB.First(&prestasi, "prestasi_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Prestasi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}

	var req dto.UpdatePrestasiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := dto.ApplyUpdate(&prestasi, req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid")
	}

	if err := ctrl.DB.Save(&prestasi).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update data prestasi")
	}

	return helper.JsonUpdated(c, "Prestasi berhasil diupdate", prestasi)
}

// 🗑 DELETE /api/prestasi/:id (auth)
func (ctrl *PrestasiController) DeletePrestasi(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID prestasi tidak valid")
	}

	res := ctrl.DB.Delete(&model.PrestasiModel{}, "prestasi_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data prestasi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Prestasi tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Prestasi berhasil dihapus")
}
