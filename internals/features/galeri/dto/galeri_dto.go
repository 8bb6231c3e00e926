package dto

import (
	"time"

	"gorm.io/datatypes"

	"sekolahku_backend/internals/features/galeri/model"
)

type CreateGaleriRequest struct {
	Judul      string                 `json:"judul" validate:"required,min=3"`
	Slug       string                 `json:"slug" validate:"omitempty,max=160"`
	Deskripsi  string                 `json:"deskripsi"`
	Kategori   string                 `json:"kategori" validate:"required,oneof=kegiatan ekskul acara infrastruktur"`
	CoverImage model.GaleriCoverImage `json:"cover_image"`
	Images     []model.GaleriImage    `json:"images"`
	Tanggal    string                 `json:"tanggal" validate:"required"`
	Published  bool                   `json:"published"`
}

type UpdateGaleriRequest struct {
	Judul      *string                 `json:"judul" validate:"omitempty,min=3"`
	Deskripsi  *string                 `json:"deskripsi"`
	Kategori   *string                 `json:"kategori" validate:"omitempty,oneof=kegiatan ekskul acara infrastruktur"`
	CoverImage *model.GaleriCoverImage `json:"cover_image"`
	Images     *[]model.GaleriImage    `json:"images"`
	Tanggal    *string                 `json:"tanggal"`
	Published  *bool                   `json:"published"`
}

// ParseTanggal menerima RFC3339 atau format tanggal pendek (YYYY-MM-DD).
func ParseTanggal(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func ToGaleriModel(req CreateGaleriRequest, tanggal time.Time) model.GaleriModel {
	images := req.Images
	if images == nil {
		images = []model.GaleriImage{}
	}
	return model.GaleriModel{
		Judul:      req.Judul,
		Slug:       req.Slug,
		Deskripsi:  req.Deskripsi,
		Kategori:   req.Kategori,
		CoverImage: datatypes.NewJSONType(req.CoverImage),
		Images:     datatypes.NewJSONSlice(images),
		Tanggal:    tanggal,
		Published:  req.Published,
	}
}

func ApplyUpdate(m *model.GaleriModel, req UpdateGaleriRequest) error {
	if req.Judul != nil {
		m.Judul = *req.Judul
	}
	if req.Deskripsi != nil {
		m.Deskripsi = *req.Deskripsi
	}
	if req.Kategori != nil {
		m.Kategori = *req.Kategori
	}
	if req.CoverImage != nil {
		m.CoverImage = datatypes.NewJSONType(*req.CoverImage)
	}
	if req.Images != nil {
		m.Images = datatypes.NewJSONSlice(*req.Images)
	}
	if req.Tanggal != nil {
		t, err := ParseTanggal(*req.Tanggal)
		if err != nil {
			return err
		}
		m.Tanggal = t
	}
	if req.Published != nil {
		m.Published = *req.Published
	}
	return nil
}
