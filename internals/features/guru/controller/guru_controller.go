package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/guru/dto"
	"sekolahku_backend/internals/features/guru/model"
	helper "sekolahku_backend/internals/helpers"
)

var validate = validator.New()

type GuruController struct {
	DB *gorm.DB
}

func NewGuruController(db *gorm.DB) *GuruController {
	return &GuruController{DB: db}
}

// 📄 GET /api/guru
func (ctrl *GuruController) GetAllGuru(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.GuruModel{})

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if bidang := c.Query("bidang"); bidang != "" {
		// bidang disimpan sebagai array JSON, match per elemen string
		q = q.Where("CAST(bidang AS TEXT) LIKE ?", "%\""+bidang+"\"%")
	}

	q = q.Order("urutan ASC, nama ASC")
	if limit := c.QueryInt("limit", 0); limit > 0 {
		q = q.Limit(limit)
	}

	var list []model.GuruModel
	if err := q.Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}

	return helper.JsonList(c, list, len(list), nil)
}

// ➕ POST /api/guru (auth)
func (ctrl *GuruController) CreateGuru(c *fiber.Ctx) error {
	var req dto.CreateGuruRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	guru := dto.ToGuruModel(req)
	if err := ctrl.DB.Create(&guru).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat data guru")
	}

	return helper.JsonCreated(c, "Guru berhasil ditambahkan", guru)
}

// 📄 GET /api/guru/:id
func (ctrl *GuruController) GetGuru(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID guru tidak valid")
	}

	var guru model.GuruModel
	if err := ctrl.DB.First(&guru, "guru_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}

	return helper.JsonOK(c, "", guru)
}

// 🔄 PUT /api/guru/:id (auth)
func (ctrl *GuruController) UpdateGuru(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID guru tidak valid")
	}

	var guru model.GuruModel
	if err := ctrl.DB.First(&guru, "guru_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}

	var req dto.UpdateGuruRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	dto.ApplyUpdate(&guru, req)

	if err := ctrl.DB.Save(&guru).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update data guru")
	}

	return helper.JsonUpdated(c, "Guru berhasil diupdate", guru)
}

// 🗑 DELETE /api/guru/:id (auth)
func (ctrl *GuruController) DeleteGuru(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID guru tidak valid")
	}

	res := ctrl.DB.Delete(&model.GuruModel{}, "guru_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data guru")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Guru berhasil dihapus")
}
