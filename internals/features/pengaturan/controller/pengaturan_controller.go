package controller

import (
	"encoding/json"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/pengaturan/model"
	helper "sekolahku_backend/internals/helpers"
)

type PengaturanController struct {
	DB *gorm.DB
}

func NewPengaturanController(db *gorm.DB) *PengaturanController {
	return &PengaturanController{DB: db}
}

type keyValueItem struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// 📄 GET /api/pengaturan
func (ctrl *PengaturanController) GetAllPengaturan(c *fiber.Ctx) error {
	var list []model.PengaturanModel
	if err := ctrl.DB.Order("sort_order ASC").Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}
	return helper.JsonList(c, list, len(list), nil)
}

// 🔄 PUT /api/pengaturan (auth + admin)
// Body array [{key,value}] → upsert per key; body objek {key: value} → update key yang sudah ada saja.
func (ctrl *PengaturanController) UpdatePengaturan(c *fiber.Ctx) error {
	body := c.Body()

	var items []keyValueItem
	if err := sonic.Unmarshal(body, &items); err == nil {
		return ctrl.upsertItems(c, items)
	}

	var kv map[string]json.RawMessage
	if err := sonic.Unmarshal(body, &kv); err == nil {
		return ctrl.updateExisting(c, kv)
	}

	return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
}

func (ctrl *PengaturanController) upsertItems(c *fiber.Ctx, items []keyValueItem) error {
	for _, item := range items {
		key := strings.ToLower(strings.TrimSpace(item.Key))
		if key == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "Key pengaturan tidak boleh kosong")
		}

		var existing model.PengaturanModel
		err := ctrl.DB.First(&existing, "key = ?", key).Error
		switch {
		case err == nil:
			if err := ctrl.DB.Model(&existing).
				UpdateColumn("value", datatypes.JSON(item.Value)).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengaturan")
			}
		case err == gorm.ErrRecordNotFound:
			row := model.PengaturanModel{Key: key, Value: datatypes.JSON(item.Value)}
			if err := ctrl.DB.Create(&row).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengaturan")
			}
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
		}
	}

	return helper.JsonUpdated(c, "Pengaturan berhasil disimpan", fiber.Map{"updated": len(items)})
}

func (ctrl *PengaturanController) updateExisting(c *fiber.Ctx, kv map[string]json.RawMessage) error {
	updated := 0
	for key, value := range kv {
		key = strings.ToLower(strings.TrimSpace(key))
		res := ctrl.DB.Model(&model.PengaturanModel{}).
			Where("key = ?", key).
			UpdateColumn("value", datatypes.JSON(value))
		if res.Error != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengaturan")
		}
		updated += int(res.RowsAffected)
	}

	return helper.JsonUpdated(c, "Pengaturan berhasil disimpan", fiber.Map{"updated": updated})
}
