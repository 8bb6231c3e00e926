package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/constants"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/storage"
)

type UploadController struct {
	Storage storage.Service
}

func NewUploadController(svc storage.Service) *UploadController {
	return &UploadController{Storage: svc}
}

// ⬆️ POST /api/upload (auth) — multipart field `files`, opsional `folder`
func (ctrl *UploadController) UploadImages(c *fiber.Ctx) error {
	if ctrl.Storage == nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Media host tidak terkonfigurasi")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid multipart form")
	}

	files := form.File["files"]
	if len(files) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada file yang diupload")
	}

	folder := c.FormValue("folder", "sekolah")

	// validasi semua file dulu sebelum satupun dikirim ke media host
	for _, fh := range files {
		ct := fh.Header.Get("Content-Type")
		if !constants.IsAllowedImageType(ct) {
			return helper.JsonError(c, fiber.StatusBadRequest,
				fmt.Sprintf("Tipe file %s tidak diizinkan", fh.Filename))
		}
		if fh.Size > constants.MaxUploadSize {
			return helper.JsonError(c, fiber.StatusBadRequest,
				fmt.Sprintf("Ukuran file %s melebihi 5MB", fh.Filename))
		}
	}

	results := make([]storage.UploadResult, 0, len(files))
	for _, fh := range files {
		res, err := ctrl.Storage.UploadImage(c.Context(), fh, folder)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError,
				fmt.Sprintf("Gagal mengupload file %s", fh.Filename))
		}
		results = append(results, res)
	}

	return helper.JsonCreated(c, "Upload berhasil", results)
}

type deleteRequest struct {
	PublicID string `json:"public_id"`
}

// 🗑 DELETE /api/upload (auth) — hapus asset di media host by public_id
func (ctrl *UploadController) DeleteImage(c *fiber.Ctx) error {
	if ctrl.Storage == nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Media host tidak terkonfigurasi")
	}

	var req deleteRequest
	if err := c.BodyParser(&req); err != nil || req.PublicID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "public_id wajib diisi")
	}

	ok, err := ctrl.Storage.Delete(c.Context(), req.PublicID)
	if err != nil || !ok {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus file di media host")
	}

	return helper.JsonDeleted(c, "File berhasil dihapus")
}
